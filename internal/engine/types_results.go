package engine

import "github.com/proj-cli/proj/internal/registry"

// ProjectInfo describes a single project.
type ProjectInfo struct {
	// Name is the project's registry name.
	Name string `json:"name"`

	// Index is the project's 1-based position in the registry.
	Index int `json:"index"`

	// ActiveDir is the stored working directory.
	ActiveDir string `json:"activeDir"`

	// OpenedFiles is the stored ordered open-file list.
	OpenedFiles []string `json:"openedFiles"`

	// Active reports whether this is the active project.
	Active bool `json:"active"`
}

// ListResult is the grouped project listing.
type ListResult struct {
	// Groups is the hierarchical presentation order.
	Groups []registry.Group `json:"groups"`

	// Total is the number of projects in the registry.
	Total int `json:"total"`

	// Active is the name of the active project.
	Active string `json:"active"`
}

// SaveResult reports the outcome of a save.
type SaveResult struct {
	// Name is the saved project's registry name.
	Name string `json:"name"`

	// Created reports whether the project was newly appended.
	Created bool `json:"created"`

	// FileCount is the number of open files captured.
	FileCount int `json:"fileCount"`

	// Dir is the working directory captured.
	Dir string `json:"dir"`

	// Warnings holds non-fatal problems (completion export failures).
	Warnings []string `json:"warnings,omitempty"`
}

// LoadResult reports the outcome of a load.
type LoadResult struct {
	// Name is the loaded project's registry name.
	Name string `json:"name"`

	// AlreadyActive reports that the project was active with no drift, so
	// the load was a no-op.
	AlreadyActive bool `json:"alreadyActive"`

	// SavedPrevious reports that the outgoing project was modified and was
	// saved before the restore.
	SavedPrevious bool `json:"savedPrevious"`

	// OpenedCount is the number of files successfully reopened.
	OpenedCount int `json:"openedCount"`

	// MissingFiles lists stored files that no longer exist and were
	// skipped during the restore.
	MissingFiles []string `json:"missingFiles,omitempty"`

	// MissingDir is set when the stored working directory no longer
	// exists; the session directory is left unchanged.
	MissingDir string `json:"missingDir,omitempty"`

	// Warnings holds non-fatal problems (completion export failures).
	Warnings []string `json:"warnings,omitempty"`
}

// RenameResult reports the outcome of a rename.
type RenameResult struct {
	OldName string `json:"oldName"`
	NewName string `json:"newName"`

	Warnings []string `json:"warnings,omitempty"`
}

// DeleteResult reports the outcome of a delete.
type DeleteResult struct {
	// Name is the deleted project's registry name.
	Name string `json:"name"`

	// WasActive reports whether the deleted project was active.
	WasActive bool `json:"wasActive"`

	// NewActive is the name of the active project after the delete.
	NewActive string `json:"newActive"`

	Warnings []string `json:"warnings,omitempty"`
}

// CloseResult reports the outcome of a close.
type CloseResult struct {
	// Saved reports whether the outgoing project was modified and saved.
	Saved bool `json:"saved"`

	// SavedName is the name the outgoing project was saved under.
	SavedName string `json:"savedName,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// SwitchResult reports the outcome of the project-name shortcut: save the
// current project, then load the named one.
type SwitchResult struct {
	// Saved is the name the current project was saved under.
	Saved string `json:"saved"`

	// AlreadyActive reports that the named project was already current, so
	// the load step was skipped.
	AlreadyActive bool `json:"alreadyActive"`

	// Load is the restore outcome; nil when the load step was skipped.
	Load *LoadResult `json:"load,omitempty"`
}
