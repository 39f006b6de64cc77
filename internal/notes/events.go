package notes

// EventKind identifies which state transition a Store just made.
type EventKind int

const (
	EventAdded EventKind = iota + 1
	EventDeleted
	EventSelected
	EventSelectionCleared
	EventEdited
	EventSearchChanged
	EventDraftChanged
)

func (k EventKind) String() string {
	switch k {
	case EventAdded:
		return "added"
	case EventDeleted:
		return "deleted"
	case EventSelected:
		return "selected"
	case EventSelectionCleared:
		return "selection_cleared"
	case EventEdited:
		return "edited"
	case EventSearchChanged:
		return "search_changed"
	case EventDraftChanged:
		return "draft_changed"
	}
	return "unknown"
}

// Event describes a completed state change.
type Event struct {
	Kind   EventKind
	NoteID string
	// SelectionCleared is set on EventDeleted when the removed note was selected.
	SelectionCleared bool
}

// Listener receives events synchronously after each change.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}
