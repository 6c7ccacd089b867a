// Package config manages proj configuration and filesystem paths.
//
// Configuration includes the locations of proj data files, which can be
// customized via environment variables. The default root is ~/.proj/
// containing the registry, session mirror, completion word list, and the
// optional config.yaml settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by proj.
type Paths struct {
	// Root is the base directory for all proj data (default: ~/.proj)
	Root string

	// Registry is the path to the persisted project registry
	Registry string

	// Session is the path to the live editor session mirror
	Session string

	// Completions is the path to the exported completion word list
	Completions string

	// Config is the path to the settings file
	Config string
}

// DefaultPaths returns the default paths for proj.
// Paths can be overridden with environment variables:
// - PROJ_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("PROJ_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".proj")
	}

	return &Paths{
		Root:        root,
		Registry:    filepath.Join(root, "registry.json"),
		Session:     filepath.Join(root, "session.json"),
		Completions: filepath.Join(root, "completions"),
		Config:      filepath.Join(root, "config.yaml"),
	}, nil
}

// EnsureDirectories creates the data directory if it doesn't exist.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.Root, err)
	}

	return nil
}
