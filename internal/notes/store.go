package notes

import (
	"iter"
	"log/slog"
	"slices"
	"strings"
)

// maxIDAttempts bounds regeneration when a generator returns an unusable id.
const maxIDAttempts = 8

// Store owns the note list, the selection, the search term and the draft.
// It is not safe for concurrent use; the UI event loop is its only caller.
type Store struct {
	notes      []Note
	selectedID string
	searchTerm string
	draft      string

	ids     IDGenerator
	logger  *slog.Logger
	version uint64

	subs    []subscription
	nextSub int
}

// New creates an empty store: no notes, no selection, empty search and draft.
func New(opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Store{
		ids:    o.ids,
		logger: o.logger,
	}
}

// --- Operations ---

// Add trims text and, if anything is left, appends it as a new note,
// clears the draft and selects the note. Blank input changes nothing.
func (s *Store) Add(text string) (Note, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Note{}, false
	}
	id, ok := s.freshID()
	if !ok {
		s.logger.Warn("id generator produced no usable id", "attempts", maxIDAttempts)
		return Note{}, false
	}

	note := Note{ID: id, Text: trimmed}
	s.notes = append(s.notes, note)
	s.draft = ""
	s.selectedID = id
	s.changed(Event{Kind: EventAdded, NoteID: id})
	return note, true
}

// AddDraft adds the current draft as a note.
func (s *Store) AddDraft() (Note, bool) {
	return s.Add(s.draft)
}

// SetDraft replaces the pending text for the next note.
func (s *Store) SetDraft(text string) {
	if text == s.draft {
		return
	}
	s.draft = text
	s.changed(Event{Kind: EventDraftChanged})
}

// Delete removes the note with id. Deleting the selected note clears the selection.
func (s *Store) Delete(id string) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	s.notes = slices.Delete(s.notes, idx, idx+1)

	ev := Event{Kind: EventDeleted, NoteID: id}
	if id == s.selectedID {
		s.selectedID = ""
		ev.SelectionCleared = true
	}
	s.changed(ev)
	return true
}

// Select marks the note with id as selected. Unknown ids are ignored.
func (s *Store) Select(id string) bool {
	if s.index(id) < 0 {
		return false
	}
	if id == s.selectedID {
		return true
	}
	s.selectedID = id
	s.changed(Event{Kind: EventSelected, NoteID: id})
	return true
}

// ClearSelection drops the current selection, if any.
func (s *Store) ClearSelection() {
	if s.selectedID == "" {
		return
	}
	prev := s.selectedID
	s.selectedID = ""
	s.changed(Event{Kind: EventSelectionCleared, NoteID: prev})
}

// UpdateSelectedText replaces the selected note's text verbatim.
// Empty text is allowed. Without a selection nothing happens.
func (s *Store) UpdateSelectedText(text string) bool {
	idx := s.index(s.selectedID)
	if idx < 0 {
		return false
	}
	if s.notes[idx].Text == text {
		return true
	}
	s.notes[idx].Text = text
	s.changed(Event{Kind: EventEdited, NoteID: s.selectedID})
	return true
}

// SetSearchTerm replaces the filter used by Filtered.
func (s *Store) SetSearchTerm(term string) {
	if term == s.searchTerm {
		return
	}
	s.searchTerm = term
	s.changed(Event{Kind: EventSearchChanged})
}

// --- Derived views ---

// Filtered yields, in list order, the notes matching the search term.
// Each iteration reads the current state.
func (s *Store) Filtered() iter.Seq[Note] {
	return func(yield func(Note) bool) {
		term := s.searchTerm
		for _, n := range s.notes {
			if !matches(n.Text, term) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Selected resolves the selection. A dangling id counts as no selection.
func (s *Store) Selected() (Note, bool) {
	idx := s.index(s.selectedID)
	if idx < 0 {
		return Note{}, false
	}
	return s.notes[idx], true
}

// Get returns the note with id.
func (s *Store) Get(id string) (Note, bool) {
	idx := s.index(id)
	if idx < 0 {
		return Note{}, false
	}
	return s.notes[idx], true
}

// Notes returns a copy of every note in insertion order.
func (s *Store) Notes() []Note {
	return slices.Clone(s.notes)
}

func (s *Store) Len() int { return len(s.notes) }

func (s *Store) SearchTerm() string { return s.searchTerm }

func (s *Store) Draft() string { return s.draft }

// SelectedID returns the selected note id, or "" when nothing is selected.
func (s *Store) SelectedID() string {
	if s.index(s.selectedID) < 0 {
		return ""
	}
	return s.selectedID
}

// Version increases by one on every state change.
func (s *Store) Version() uint64 { return s.version }

// --- Subscriptions ---

// Subscribe registers fn for every future change and returns a func that
// removes it.
func (s *Store) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

func (s *Store) changed(ev Event) {
	s.version++
	s.logger.Debug("note store changed",
		"event", ev.Kind.String(),
		"note_id", ev.NoteID,
		"version", s.version,
	)
	// Copy so listeners may unsubscribe while being notified.
	for _, sub := range slices.Clone(s.subs) {
		sub.fn(ev)
	}
}

func (s *Store) index(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.notes, func(n Note) bool {
		return n.ID == id
	})
}

func (s *Store) freshID() (string, bool) {
	for range maxIDAttempts {
		id := s.ids.NewID()
		if id != "" && s.index(id) < 0 {
			return id, true
		}
	}
	return "", false
}
