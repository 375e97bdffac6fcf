package entities

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// TypeOption is one entry of the type menu
type TypeOption struct {
	Key  string // upstream name, e.g. "fire"
	Name string // localized name, e.g. "Feu"
}

// TypeFilter is the type menu state. Selected is empty (no filter) or the
// Name of one of Options.
type TypeFilter struct {
	Selected string
	Options  []TypeOption
}

// Normalize accepts a selection given as either an option key or name and
// rewrites it to the option name. An unknown selection clears the filter.
func (f TypeFilter) Normalize() TypeFilter {
	if f.Selected == "" {
		return f
	}

	for _, opt := range f.Options {
		if opt.Name == f.Selected || opt.Key == f.Selected {
			f.Selected = opt.Name
			return f
		}
	}

	f.Selected = ""
	return f
}

// FilterSummaries keeps the entries whose name contains search (case
// insensitive) and whose types include selectedType. Empty criteria match
// everything. The input slice is not modified.
func FilterSummaries(summaries []Summary, search, selectedType string) []Summary {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(search))

	out := make([]Summary, 0, len(summaries))
	for _, s := range summaries {
		if needle != "" && !strings.Contains(fold.String(s.Name), needle) {
			continue
		}
		if selectedType != "" && !slices.Contains(s.Types, selectedType) {
			continue
		}
		out = append(out, s)
	}
	return out
}
