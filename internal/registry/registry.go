package registry

import "strings"

// Resolve looks up a project by name, case-insensitively.
// Returns the project's index and whether it was found.
func (r *Registry) Resolve(name string) (int, bool) {
	for i, p := range r.Projects {
		if strings.EqualFold(p.Name, name) {
			return i, true
		}
	}
	return 0, false
}

// Active returns the active project.
func (r *Registry) Active() *Project {
	return &r.Projects[r.ActiveIndex]
}

// CurrentName returns the name of the active project.
func (r *Registry) CurrentName() string {
	return r.Active().Name
}

// Names returns the project names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.Projects))
	for i, p := range r.Projects {
		names[i] = p.Name
	}
	return names
}

// Append adds a new project at the end and returns its index.
func (r *Registry) Append(p Project) int {
	r.Projects = append(r.Projects, p)
	return len(r.Projects) - 1
}

// Remove deletes the project at index i, shifting subsequent indices down.
// The caller is responsible for recomputing ActiveIndex afterwards.
func (r *Registry) Remove(i int) {
	r.Projects = append(r.Projects[:i], r.Projects[i+1:]...)
}

// SetActiveByName marks the named project active. If the name does not
// resolve, the active index falls back to the first slot so it always
// refers to an existing project.
func (r *Registry) SetActiveByName(name string) bool {
	if i, ok := r.Resolve(name); ok {
		r.ActiveIndex = i
		return true
	}
	r.ActiveIndex = 0
	return false
}
