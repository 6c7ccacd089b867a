// Package engine provides the core business logic for proj operations.
//
// The engine package acts as the orchestration layer between CLI commands
// and the registry. It owns the in-memory registry (loaded once per
// process, written through on every mutation), the session adapter, and
// the completion exporter.
//
// Key components:
//   - Engine: Main orchestrator, one method per command verb
//   - Save/Load/Close: session capture and restore
//   - Modified: drift detection between registry and live session
//   - Rename/Delete: registry management
package engine

import (
	"errors"
	"fmt"
	"os"

	"github.com/proj-cli/proj/internal/completion"
	"github.com/proj-cli/proj/internal/registry"
	"github.com/proj-cli/proj/internal/session"
	"github.com/proj-cli/proj/internal/state"
)

// Engine orchestrates all proj operations.
// It is the main API surface called by the CLI.
type Engine struct {
	store    state.RegistryStore
	session  session.Adapter
	exporter completion.Exporter

	// defaultDir is the working directory recorded for the bootstrap
	// "default" project on first run.
	defaultDir string

	// reg is the cached registry, loaded on first use.
	reg *registry.Registry
}

// New creates a new Engine with the given dependencies.
func New(store state.RegistryStore, sess session.Adapter, exporter completion.Exporter, defaultDir string) *Engine {
	return &Engine{
		store:      store,
		session:    sess,
		exporter:   exporter,
		defaultDir: defaultDir,
	}
}

// registry returns the cached registry, loading it from the store on first
// use. On first run the bootstrap registry is created and persisted before
// any command proceeds.
func (e *Engine) registry() (*registry.Registry, error) {
	if e.reg != nil {
		return e.reg, nil
	}

	reg, err := e.store.Load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load registry: %w", err)
		}
		reg = registry.New(e.defaultDir)
		if err := e.store.Save(reg); err != nil {
			return nil, fmt.Errorf("failed to persist bootstrap registry: %w", err)
		}
	}

	e.reg = reg
	return e.reg, nil
}

// persist writes the cached registry through to the store.
func (e *Engine) persist() error {
	if err := e.store.Save(e.reg); err != nil {
		return fmt.Errorf("failed to persist registry: %w", err)
	}
	return nil
}

// exportNames publishes the project name list for shell completion.
// Failure is a warning, not an error; the returned string is empty on
// success.
func (e *Engine) exportNames(reg *registry.Registry) string {
	if err := e.exporter.ExportProjectNames(reg.Names()); err != nil {
		return fmt.Sprintf("completion export failed: %v", err)
	}
	return ""
}
