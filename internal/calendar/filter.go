package calendar

import (
	"strings"

	"catedra-calendar/internal/model"
)

// FilterState narrows the entry collection for display. Persons is a set of
// roster names; Search is an optional case-insensitive substring on the text.
type FilterState struct {
	Persons []string `json:"persons"`
	Search  string   `json:"search"`
}

// Filter returns the entries whose person (empty string when absent) is in
// the selected set, optionally narrowed by the search text. Pure and stable:
// the input slice is never mutated and output order matches input order.
func Filter(entries []model.Entry, f FilterState) []model.Entry {
	selected := make(map[string]bool, len(f.Persons))
	for _, p := range f.Persons {
		selected[p] = true
	}
	needle := strings.ToLower(f.Search)

	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if !selected[e.Person] {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(e.Text), needle) {
			continue
		}
		out = append(out, e)
	}
	return out
}
