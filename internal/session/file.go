package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/proj-cli/proj/internal/fsops"
)

// sessionState is the on-disk shape of the session mirror.
type sessionState struct {
	OpenFiles  []string `json:"openFiles"`
	WorkingDir string   `json:"workingDir"`
}

// FileSession implements Adapter over a JSON session file maintained
// jointly by proj and the editor plugin. A missing session file reads as an
// empty session rooted at the process working directory.
type FileSession struct {
	fs   fsops.FS
	path string
}

// NewFileSession creates a new FileSession backed by the file at path.
func NewFileSession(fs fsops.FS, path string) *FileSession {
	return &FileSession{fs: fs, path: path}
}

func (s *FileSession) load() (*sessionState, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get working directory: %w", err)
			}
			return &sessionState{OpenFiles: []string{}, WorkingDir: cwd}, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var st sessionState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if st.OpenFiles == nil {
		st.OpenFiles = []string{}
	}

	return &st, nil
}

func (s *FileSession) save(st *sessionState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.fs.AtomicWrite(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	return nil
}

// ListOpenFiles returns the ordered list of open file paths.
func (s *FileSession) ListOpenFiles() ([]string, error) {
	st, err := s.load()
	if err != nil {
		return nil, err
	}
	return st.OpenFiles, nil
}

// OpenFile records path as open. The file must exist on disk.
func (s *FileSession) OpenFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file %q: %w", path, os.ErrNotExist)
		}
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	st, err := s.load()
	if err != nil {
		return err
	}
	st.OpenFiles = append(st.OpenFiles, path)
	return s.save(st)
}

// CloseAllFiles clears the open-file list.
func (s *FileSession) CloseAllFiles() error {
	st, err := s.load()
	if err != nil {
		return err
	}
	st.OpenFiles = []string{}
	return s.save(st)
}

// WorkingDirectory returns the session's working directory.
func (s *FileSession) WorkingDirectory() (string, error) {
	st, err := s.load()
	if err != nil {
		return "", err
	}
	return st.WorkingDir, nil
}

// SetWorkingDirectory changes the session's working directory. The
// directory must exist.
func (s *FileSession) SetWorkingDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory %q: %w", path, os.ErrNotExist)
		}
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("directory %q: %w", path, os.ErrNotExist)
	}

	st, err := s.load()
	if err != nil {
		return err
	}
	st.WorkingDir = path
	return s.save(st)
}
