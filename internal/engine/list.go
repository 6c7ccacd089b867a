package engine

import (
	"context"
	"fmt"

	"github.com/proj-cli/proj/internal/registry"
)

// List returns the grouped project listing.
func (e *Engine) List(ctx context.Context) (*ListResult, error) {
	reg, err := e.registry()
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Groups: registry.Groups(reg.Names(), reg.ActiveIndex),
		Total:  len(reg.Projects),
		Active: reg.CurrentName(),
	}, nil
}

// Show returns detailed information about a project. An empty name means
// the active project.
func (e *Engine) Show(ctx context.Context, name string) (*ProjectInfo, error) {
	reg, err := e.registry()
	if err != nil {
		return nil, err
	}

	idx := reg.ActiveIndex
	if name != "" {
		i, ok := reg.Resolve(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProject, name)
		}
		idx = i
	}

	p := reg.Projects[idx]
	return &ProjectInfo{
		Name:        p.Name,
		Index:       idx + 1,
		ActiveDir:   p.ActiveDir,
		OpenedFiles: p.OpenedFiles,
		Active:      idx == reg.ActiveIndex,
	}, nil
}

// Names returns the project names in registry order. Used for dynamic
// shell completion of project-name arguments.
func (e *Engine) Names(ctx context.Context) ([]string, error) {
	reg, err := e.registry()
	if err != nil {
		return nil, err
	}
	return reg.Names(), nil
}

// Active returns the name of the active project.
func (e *Engine) Active(ctx context.Context) (string, error) {
	reg, err := e.registry()
	if err != nil {
		return "", err
	}
	return reg.CurrentName(), nil
}
