package engine

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/proj-cli/proj/internal/registry"
)

// Load restores the named project's session. An empty name means
// "default". If the project is already active and the live session matches
// its snapshot (open files compared as a set, plus the working directory),
// the load is a no-op. Otherwise the current session is closed (saving the
// outgoing project if modified), the target's files are reopened in order,
// and the working directory is switched. Files or directories that no
// longer exist are skipped with a warning, never an abort.
// Algorithm steps:
// 1. Resolve the target name
// 2. If already active with no drift: report and stop
// 3. Close the current session (saves the outgoing project if modified)
// 4. Reopen the target's files in order, skipping missing ones
// 5. Switch the working directory, unless it no longer exists
// 6. Mark the target active and persist
func (e *Engine) Load(ctx context.Context, name string) (*LoadResult, error) {
	reg, err := e.registry()
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = registry.DefaultName
	}

	// Step 1: Resolve
	idx, ok := reg.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProject, name)
	}

	result := &LoadResult{Name: reg.Projects[idx].Name}

	// Step 2: No-op when the target is active and the session matches
	if idx == reg.ActiveIndex {
		live, err := e.session.ListOpenFiles()
		if err != nil {
			return nil, fmt.Errorf("failed to list open files: %w", err)
		}
		dir, err := e.session.WorkingDirectory()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		p := reg.Projects[idx]
		if sameFileSet(p.OpenedFiles, live) && p.ActiveDir == dir {
			result.AlreadyActive = true
			return result, nil
		}
	}

	// Step 3: Close the outgoing session
	closed, err := e.Close(ctx)
	if err != nil {
		return nil, err
	}
	result.SavedPrevious = closed.Saved
	result.Warnings = append(result.Warnings, closed.Warnings...)

	// Step 4: Reopen the target's files in order
	target := reg.Projects[idx]
	for _, f := range target.OpenedFiles {
		if err := e.session.OpenFile(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				result.MissingFiles = append(result.MissingFiles, f)
				continue
			}
			return nil, fmt.Errorf("failed to open %q: %w", f, err)
		}
		result.OpenedCount++
	}

	// Step 5: Switch the working directory
	if err := e.session.SetWorkingDirectory(target.ActiveDir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			result.MissingDir = target.ActiveDir
		} else {
			return nil, fmt.Errorf("failed to set working directory: %w", err)
		}
	}

	// Step 6: Mark active and persist
	reg.ActiveIndex = idx
	if err := e.persist(); err != nil {
		return nil, err
	}

	return result, nil
}

// Switch implements the project-name shortcut: an unrecognized command
// token that matches a project name saves the current project and loads
// the named one. The load is skipped when the named project is already
// current. A token matching no project fails with ErrUnknownCommand.
func (e *Engine) Switch(ctx context.Context, token string) (*SwitchResult, error) {
	reg, err := e.registry()
	if err != nil {
		return nil, err
	}

	idx, ok := reg.Resolve(token)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, token)
	}
	targetName := reg.Projects[idx].Name
	alreadyCurrent := idx == reg.ActiveIndex

	saved, err := e.Save(ctx, "")
	if err != nil {
		return nil, err
	}

	result := &SwitchResult{Saved: saved.Name}
	if alreadyCurrent {
		result.AlreadyActive = true
		return result, nil
	}

	load, err := e.Load(ctx, targetName)
	if err != nil {
		return nil, err
	}
	result.Load = load
	return result, nil
}
