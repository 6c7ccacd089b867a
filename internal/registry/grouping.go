package registry

import "strings"

// UngroupedHeading is the fixed heading for projects without a group prefix.
const UngroupedHeading = "Projects"

// Entry is a single rendered line in a grouped listing.
type Entry struct {
	// Index is the project's 1-based position in the registry.
	Index int `json:"index"`

	// Name is the rendered name: the full name for ungrouped projects,
	// the part after the colon for grouped ones.
	Name string `json:"name"`

	// FullName is the project's registry name.
	FullName string `json:"fullName"`

	// Active reports whether this is the active project.
	Active bool `json:"active"`
}

// Group is one section of a grouped listing.
type Group struct {
	// Heading is the section title: UngroupedHeading for the ungrouped
	// bucket, the upper-cased prefix otherwise.
	Heading string `json:"heading"`

	// Ungrouped reports whether this is the fixed ungrouped bucket.
	Ungrouped bool `json:"ungrouped"`

	// Active reports whether this group contains the active project.
	Active bool `json:"active"`

	Entries []Entry `json:"entries"`
}

// Groups derives the hierarchical presentation order from the given names
// and active index. Names without a colon form the ungrouped bucket,
// rendered first; names with a colon are grouped by prefix, groups ordered
// by first occurrence of each distinct prefix. Registry order is preserved
// within every section. Pure function: same inputs, same output.
func Groups(names []string, activeIndex int) []Group {
	ungrouped := Group{Heading: UngroupedHeading, Ungrouped: true}
	var grouped []Group
	byPrefix := make(map[string]int)

	for i, name := range names {
		entry := Entry{
			Index:    i + 1,
			Name:     name,
			FullName: name,
			Active:   i == activeIndex,
		}

		prefix, child, found := strings.Cut(name, ":")
		if !found {
			if entry.Active {
				ungrouped.Active = true
			}
			ungrouped.Entries = append(ungrouped.Entries, entry)
			continue
		}

		entry.Name = child
		key := strings.ToLower(prefix)
		gi, ok := byPrefix[key]
		if !ok {
			gi = len(grouped)
			byPrefix[key] = gi
			grouped = append(grouped, Group{Heading: strings.ToUpper(prefix)})
		}
		if entry.Active {
			grouped[gi].Active = true
		}
		grouped[gi].Entries = append(grouped[gi].Entries, entry)
	}

	var out []Group
	if len(ungrouped.Entries) > 0 {
		out = append(out, ungrouped)
	}
	return append(out, grouped...)
}
