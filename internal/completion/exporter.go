// Package completion exports the project name list for shell completion.
package completion

import (
	"fmt"
	"strings"

	"github.com/proj-cli/proj/internal/fsops"
)

// Exporter publishes the current project name list to an external
// completion descriptor. Export failures are reported by callers as
// warnings, never as command failures.
type Exporter interface {
	ExportProjectNames(names []string) error
}

// FileExporter writes one project name per line to a word-list file that
// shell completion scripts source.
type FileExporter struct {
	fs   fsops.FS
	path string
}

// NewFileExporter creates a new FileExporter writing to path.
func NewFileExporter(fs fsops.FS, path string) *FileExporter {
	return &FileExporter{fs: fs, path: path}
}

// ExportProjectNames writes the name list atomically.
func (e *FileExporter) ExportProjectNames(names []string) error {
	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('\n')
	}

	if err := e.fs.AtomicWrite(e.path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write completion list: %w", err)
	}

	return nil
}
