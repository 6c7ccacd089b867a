// Package session defines the boundary to the live editor session.
//
// The editor (or an editor plugin) mirrors its open-file list and working
// directory into a session file; proj reads and drives that mirror through
// the Adapter interface. Tests substitute a fake adapter.
package session

// Adapter exposes the live editor session: which files are open and what
// the working directory is. All registry drift checks and restores go
// through this interface.
type Adapter interface {
	// ListOpenFiles returns the ordered list of open file paths.
	ListOpenFiles() ([]string, error)

	// OpenFile opens the given file in the session. Returns an error
	// wrapping os.ErrNotExist if the file no longer exists on disk.
	OpenFile(path string) error

	// CloseAllFiles closes every open file.
	CloseAllFiles() error

	// WorkingDirectory returns the session's working directory.
	WorkingDirectory() (string, error)

	// SetWorkingDirectory changes the session's working directory. Returns
	// an error wrapping os.ErrNotExist if the directory no longer exists.
	SetWorkingDirectory(path string) error
}
