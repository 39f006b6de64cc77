// Package notes is the in-memory note store and the view state around it:
// which note is selected, what the search box holds, and the unsaved draft.
package notes

import "strings"

// Note is a single unit of user text identified by a session-unique ID.
type Note struct {
	ID   string
	Text string
}

// matches reports whether text contains term, ignoring case.
// An empty term matches everything.
func matches(text, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}
