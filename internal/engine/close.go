package engine

import (
	"context"
	"fmt"

	"github.com/proj-cli/proj/internal/registry"
)

// Close clears the live session. If the active project has drifted it is
// saved first, so no open-file state is lost. The active project resets to
// "default".
// Algorithm steps:
// 1. Save the active project if modified
// 2. Close every open file in the session
// 3. Reset the active index to the default project
// 4. Persist
func (e *Engine) Close(ctx context.Context) (*CloseResult, error) {
	reg, err := e.registry()
	if err != nil {
		return nil, err
	}

	result := &CloseResult{}

	// Step 1: Save if modified
	modified, err := e.Modified(ctx)
	if err != nil {
		return nil, err
	}
	if modified {
		saved, err := e.Save(ctx, "")
		if err != nil {
			return nil, err
		}
		result.Saved = true
		result.SavedName = saved.Name
		result.Warnings = append(result.Warnings, saved.Warnings...)
	}

	// Step 2: Clear the session
	if err := e.session.CloseAllFiles(); err != nil {
		return nil, fmt.Errorf("failed to close open files: %w", err)
	}

	// Step 3: Fall back to the default project. If "default" was renamed
	// away, the first slot stands in for it.
	reg.SetActiveByName(registry.DefaultName)

	// Step 4: Persist
	if err := e.persist(); err != nil {
		return nil, err
	}

	return result, nil
}
