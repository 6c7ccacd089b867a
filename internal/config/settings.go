package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds user-tunable options read from config.yaml.
// All fields are optional; zero values fall back to defaults.
type Settings struct {
	// DefaultDir is the working directory recorded for the bootstrap
	// "default" project. Defaults to the user's home directory.
	DefaultDir string `yaml:"defaultDir"`

	// CompletionsPath overrides where the completion word list is written.
	CompletionsPath string `yaml:"completionsPath"`
}

// LoadSettings reads settings from the given path. A missing file is not an
// error; it yields zero-value settings.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return &s, nil
}

// ResolveDefaultDir returns the configured default project directory,
// falling back to the user's home directory.
func (s *Settings) ResolveDefaultDir() (string, error) {
	if s.DefaultDir != "" {
		return s.DefaultDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return home, nil
}
