package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/proj-cli/proj/internal/registry"
)

// Rename renames a project. An empty oldName means the active project.
// Renaming to a name that collides with another project is not rejected;
// name resolution always finds the first match in registry order.
func (e *Engine) Rename(ctx context.Context, oldName, newName string) (*RenameResult, error) {
	reg, err := e.registry()
	if err != nil {
		return nil, err
	}

	if newName == "" {
		return nil, fmt.Errorf("%w: rename requires a new name", ErrInvalidArguments)
	}
	if oldName == "" {
		oldName = reg.CurrentName()
	}

	idx, ok := reg.Resolve(oldName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProject, oldName)
	}

	result := &RenameResult{OldName: reg.Projects[idx].Name, NewName: newName}
	reg.Projects[idx].Name = newName

	if err := e.persist(); err != nil {
		return nil, err
	}
	if warn := e.exportNames(reg); warn != "" {
		result.Warnings = append(result.Warnings, warn)
	}
	return result, nil
}

// Delete removes a project from the registry. An empty name means the
// active project. The "default" project is protected and can never be
// deleted. If the deleted project was active, "default" becomes active;
// otherwise the previously active project stays active (re-resolved by
// name, since indices shift).
func (e *Engine) Delete(ctx context.Context, name string) (*DeleteResult, error) {
	reg, err := e.registry()
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = reg.CurrentName()
	}

	idx, ok := reg.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProject, name)
	}
	if strings.EqualFold(reg.Projects[idx].Name, registry.DefaultName) {
		return nil, ErrCannotDeleteDefault
	}

	result := &DeleteResult{
		Name:      reg.Projects[idx].Name,
		WasActive: idx == reg.ActiveIndex,
	}
	previousActive := reg.CurrentName()

	reg.Remove(idx)
	if result.WasActive {
		reg.SetActiveByName(registry.DefaultName)
	} else {
		reg.SetActiveByName(previousActive)
	}
	result.NewActive = reg.CurrentName()

	if err := e.persist(); err != nil {
		return nil, err
	}
	if warn := e.exportNames(reg); warn != "" {
		result.Warnings = append(result.Warnings, warn)
	}
	return result, nil
}
