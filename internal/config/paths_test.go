package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPaths_EnvOverride(t *testing.T) {
	root := t.TempDir()
	t.Setenv("PROJ_ROOT", root)

	paths, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}

	if paths.Root != root {
		t.Errorf("Root = %q, want %q", paths.Root, root)
	}
	if paths.Registry != filepath.Join(root, "registry.json") {
		t.Errorf("Registry = %q, want under %q", paths.Registry, root)
	}
	if paths.Session != filepath.Join(root, "session.json") {
		t.Errorf("Session = %q, want under %q", paths.Session, root)
	}
	if paths.Completions != filepath.Join(root, "completions") {
		t.Errorf("Completions = %q, want under %q", paths.Completions, root)
	}
	if paths.Config != filepath.Join(root, "config.yaml") {
		t.Errorf("Config = %q, want under %q", paths.Config, root)
	}
}

func TestDefaultPaths_HomeFallback(t *testing.T) {
	t.Setenv("PROJ_ROOT", "")

	paths, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}
	if !strings.HasSuffix(paths.Root, ".proj") {
		t.Errorf("expected root ending in .proj, got %q", paths.Root)
	}
}

func TestEnsureDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "proj")
	paths := &Paths{Root: root}

	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		t.Fatalf("expected root to exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected root to be a directory")
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.DefaultDir != "" || s.CompletionsPath != "" {
		t.Errorf("expected zero settings, got %+v", s)
	}
}

func TestLoadSettings_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "defaultDir: /srv/projects\ncompletionsPath: /tmp/proj-words\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.DefaultDir != "/srv/projects" {
		t.Errorf("DefaultDir = %q, want /srv/projects", s.DefaultDir)
	}
	if s.CompletionsPath != "/tmp/proj-words" {
		t.Errorf("CompletionsPath = %q, want /tmp/proj-words", s.CompletionsPath)
	}
}

func TestLoadSettings_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t bad"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadSettings(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestResolveDefaultDir(t *testing.T) {
	s := &Settings{DefaultDir: "/srv/projects"}
	dir, err := s.ResolveDefaultDir()
	if err != nil {
		t.Fatalf("ResolveDefaultDir() error = %v", err)
	}
	if dir != "/srv/projects" {
		t.Errorf("expected configured dir, got %q", dir)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	dir, err = (&Settings{}).ResolveDefaultDir()
	if err != nil {
		t.Fatalf("ResolveDefaultDir() error = %v", err)
	}
	if dir != home {
		t.Errorf("expected home fallback %q, got %q", home, dir)
	}
}
