package engine

import (
	"context"
	"fmt"
	"strings"
)

// Modified reports whether the live session has drifted from the active
// project's stored open-file list. The comparison is position-sensitive
// and case-insensitive: a reordered but otherwise identical file list
// counts as modified. The working directory is not part of this check.
func (e *Engine) Modified(ctx context.Context) (bool, error) {
	reg, err := e.registry()
	if err != nil {
		return false, err
	}

	live, err := e.session.ListOpenFiles()
	if err != nil {
		return false, fmt.Errorf("failed to list open files: %w", err)
	}

	return !sameFileList(reg.Active().OpenedFiles, live), nil
}

// sameFileList compares two file lists element-wise by position,
// case-insensitively.
func sameFileList(stored, live []string) bool {
	if len(stored) != len(live) {
		return false
	}
	for i := range stored {
		if !strings.EqualFold(stored[i], live[i]) {
			return false
		}
	}
	return true
}

// sameFileSet compares two file lists as sets, case-insensitively. Used by
// the load no-op check, which tolerates reordering.
func sameFileSet(stored, live []string) bool {
	if len(stored) != len(live) {
		return false
	}
	seen := make(map[string]int, len(stored))
	for _, f := range stored {
		seen[strings.ToLower(f)]++
	}
	for _, f := range live {
		key := strings.ToLower(f)
		if seen[key] == 0 {
			return false
		}
		seen[key]--
	}
	return true
}
