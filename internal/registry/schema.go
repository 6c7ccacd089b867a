package registry

// DefaultName is the name of the protected project that always exists.
// It can never be deleted; close and load fall back to it.
const DefaultName = "default"

// Project represents a named snapshot of an editor session: the working
// directory and the ordered list of files that were open.
type Project struct {
	// Name uniquely identifies the project (case-insensitive). A single
	// "parent:child" separator places the project in a display group.
	Name string `json:"name"`

	// OpenedFiles is the ordered list of file paths captured from the
	// session. Order is significant for drift detection.
	OpenedFiles []string `json:"openedFiles"`

	// ActiveDir is the working directory captured from the session.
	ActiveDir string `json:"activeDir"`
}

// Registry is the full ordered collection of projects plus the pointer to
// the active one. ActiveIndex is zero-based and always refers to an
// existing project.
type Registry struct {
	Projects    []Project `json:"projects"`
	ActiveIndex int       `json:"activeIndex"`
}

// New creates the bootstrap registry: a single "default" project pointing
// at defaultDir with no open files, marked active.
func New(defaultDir string) *Registry {
	return &Registry{
		Projects: []Project{
			{Name: DefaultName, OpenedFiles: []string{}, ActiveDir: defaultDir},
		},
		ActiveIndex: 0,
	}
}
