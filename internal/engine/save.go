package engine

import (
	"context"
	"fmt"

	"github.com/proj-cli/proj/internal/registry"
)

// Save captures the live session (open files and working directory) into
// the named project and marks it active. An empty name means the active
// project. A name that resolves to no existing project creates one at the
// end of the registry.
// Algorithm steps:
// 1. Capture open files and working directory from the session
// 2. Resolve the target name, or append a new project
// 3. Overwrite the project's snapshot and mark it active
// 4. Persist and re-export the completion name list
func (e *Engine) Save(ctx context.Context, name string) (*SaveResult, error) {
	reg, err := e.registry()
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = reg.CurrentName()
	}

	// Step 1: Capture the live session
	files, err := e.session.ListOpenFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to list open files: %w", err)
	}
	dir, err := e.session.WorkingDirectory()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	// Step 2: Resolve or append
	idx, ok := reg.Resolve(name)
	created := false
	if !ok {
		idx = reg.Append(registry.Project{Name: name})
		created = true
	}

	// Step 3: Overwrite the snapshot; the stored name keeps its original
	// casing for existing projects
	p := &reg.Projects[idx]
	p.OpenedFiles = files
	p.ActiveDir = dir
	reg.ActiveIndex = idx

	// Step 4: Persist and export
	if err := e.persist(); err != nil {
		return nil, err
	}

	result := &SaveResult{
		Name:      p.Name,
		Created:   created,
		FileCount: len(files),
		Dir:       dir,
	}
	if warn := e.exportNames(reg); warn != "" {
		result.Warnings = append(result.Warnings, warn)
	}
	return result, nil
}
