package components

// List tracks a cursor and scroll offset over a slice of row labels.
type List struct {
	Items    []string
	Cursor   int
	Offset   int
	PageSize int
}

// NewList creates a list with the given page size.
func NewList(pageSize int) *List {
	if pageSize < 1 {
		pageSize = 1
	}
	return &List{PageSize: pageSize}
}

// SetItems replaces the rows. The cursor stays where it was, pulled back
// inside the new bounds.
func (l *List) SetItems(items []string) {
	l.Items = items
	l.SetCursor(l.Cursor)
}

// SetCursor moves the cursor to idx, clamped, and scrolls it into view.
func (l *List) SetCursor(idx int) {
	if idx > len(l.Items)-1 {
		idx = len(l.Items) - 1
	}
	if idx < 0 {
		idx = 0
	}
	l.Cursor = idx
	l.scrollToCursor()
}

// SetPageSize changes how many rows are visible at once.
func (l *List) SetPageSize(n int) {
	if n < 1 {
		n = 1
	}
	l.PageSize = n
	l.scrollToCursor()
}

// Down moves the cursor down.
func (l *List) Down() {
	if l.Cursor < len(l.Items)-1 {
		l.Cursor++
		l.scrollToCursor()
	}
}

// Up moves the cursor up.
func (l *List) Up() {
	if l.Cursor > 0 {
		l.Cursor--
		l.scrollToCursor()
	}
}

// Visible returns the currently visible items.
func (l *List) Visible() []string {
	if len(l.Items) == 0 {
		return nil
	}
	end := l.Offset + l.PageSize
	if end > len(l.Items) {
		end = len(l.Items)
	}
	return l.Items[l.Offset:end]
}

// Selected returns the cursor index, or -1 for an empty list.
func (l *List) Selected() int {
	if len(l.Items) == 0 {
		return -1
	}
	return l.Cursor
}

// IsSelected returns true if the given absolute index is the cursor.
func (l *List) IsSelected(absIdx int) bool {
	return len(l.Items) > 0 && absIdx == l.Cursor
}

// RelToAbs converts a relative (visible) index to absolute.
func (l *List) RelToAbs(relIdx int) int {
	return l.Offset + relIdx
}

func (l *List) scrollToCursor() {
	if l.Cursor < l.Offset {
		l.Offset = l.Cursor
	}
	if l.Cursor >= l.Offset+l.PageSize {
		l.Offset = l.Cursor - l.PageSize + 1
	}
	maxOffset := len(l.Items) - l.PageSize
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.Offset > maxOffset {
		l.Offset = maxOffset
	}
	if l.Offset < 0 {
		l.Offset = 0
	}
}
