// Package state persists the project registry as a single JSON blob.
package state

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/proj-cli/proj/internal/fsops"
	"github.com/proj-cli/proj/internal/registry"
)

// RegistryStore provides an interface for persisting the project registry.
type RegistryStore interface {
	// Load loads the registry. Returns os.ErrNotExist on first run, before
	// any registry has been persisted.
	Load() (*registry.Registry, error)

	// Save saves the registry atomically.
	Save(reg *registry.Registry) error
}

// FileRegistryStore implements RegistryStore using a JSON file on disk.
type FileRegistryStore struct {
	fs   fsops.FS
	path string
}

// NewFileRegistryStore creates a new FileRegistryStore.
func NewFileRegistryStore(fs fsops.FS, path string) *FileRegistryStore {
	return &FileRegistryStore{fs: fs, path: path}
}

// Load loads the registry from disk.
func (s *FileRegistryStore) Load() (*registry.Registry, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	var reg registry.Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal registry: %w", err)
	}

	return &reg, nil
}

// Save saves the registry atomically.
func (s *FileRegistryStore) Save(reg *registry.Registry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if err := s.fs.AtomicWrite(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry: %w", err)
	}

	return nil
}
