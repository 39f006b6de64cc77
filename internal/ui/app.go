package ui

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/quill/internal/config"
	"github.com/gravitrone/quill/internal/logging"
	"github.com/gravitrone/quill/internal/notes"
	"github.com/gravitrone/quill/internal/ui/components"
)

// --- Focus Areas ---

type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusComposer
	focusEditor
	focusCount
)

const (
	placeholderText = "Select a note on the left or create a new one."
	emptyNoteLabel  = "(empty)"

	defaultWidth  = 100
	defaultHeight = 30

	sidebarMinWidth    = 28
	sidebarMaxWidth    = 44
	searchPaneHeight   = 3
	composerRows       = 3
	composerPaneHeight = composerRows + 2
	minBodyHeight      = 12
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// --- Messages ---

type clearToastMsg struct{}

type appToast struct {
	level string
	text  string
}

// --- App Model ---

// App is the root TUI model. It owns no note state of its own: every widget
// is a view of the store and resyncs whenever the store version moves.
type App struct {
	store  *notes.Store
	config *config.Config
	logger *slog.Logger

	width  int
	height int
	focus  focusArea

	list         *components.List
	visible      []notes.Note
	search       textinput.Model
	composer     textarea.Model
	editor       textarea.Model
	editorNoteID string
	synced       uint64

	previewOpen bool
	preview     string
	renderer    *previewRenderer

	confirmDeleteID string
	helpOpen        bool
	quitConfirm     bool
	err             string
	toast           *appToast
}

type layout struct {
	width      int
	sidebar    int
	main       int
	body       int
	listHeight int
}

// NewApp creates the root application model around store.
func NewApp(store *notes.Store, cfg *config.Config, logger *slog.Logger) App {
	if store == nil {
		store = notes.New()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search notes"

	composer := textarea.New()
	composer.Placeholder = "Write a note, ctrl+s to save"
	composer.ShowLineNumbers = false
	composer.MaxHeight = 0

	editor := textarea.New()
	editor.Placeholder = "Empty note"
	editor.ShowLineNumbers = false
	editor.MaxHeight = 0

	a := App{
		store:    store,
		config:   cfg,
		logger:   logger,
		focus:    focusList,
		list:     components.NewList(1),
		search:   search,
		composer: composer,
		editor:   editor,
		renderer: &previewRenderer{},
	}
	a.search.Blur()
	a.composer.Blur()
	a.editor.Blur()
	a.applyLayout()
	a.refresh()
	return a
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Pick up changes made to the store outside the UI.
	a.sync()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.applyLayout()
		a.refreshPreview()
		return a, nil
	case clearToastMsg:
		a.toast = nil
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Cursor blinks and other widget messages belong to the focused input.
	cmd := a.updateFocused(msg)
	return a, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.quitConfirm {
		switch {
		case isKey(msg, "y"), isForceQuit(msg):
			return a, tea.Quit
		case isKey(msg, "n"), isBack(msg):
			a.quitConfirm = false
		}
		return a, nil
	}
	if a.confirmDeleteID != "" {
		switch {
		case isKey(msg, "y"), isEnter(msg):
			cmd := a.deleteNote(a.confirmDeleteID)
			return a, cmd
		case isKey(msg, "n"), isBack(msg):
			a.confirmDeleteID = ""
		}
		return a, nil
	}
	if a.helpOpen {
		if isBack(msg) || isKey(msg, "?", "q") {
			a.helpOpen = false
		}
		return a, nil
	}
	if a.err != "" {
		a.err = ""
	}

	// Global keys
	if isForceQuit(msg) {
		return a.quit()
	}
	if isFocusNext(msg) {
		cmd := a.cycleFocus(1)
		return a, cmd
	}
	if isFocusPrev(msg) {
		cmd := a.cycleFocus(-1)
		return a, cmd
	}

	switch a.focus {
	case focusList:
		return a.handleListKey(msg)
	case focusSearch:
		if isBack(msg) || isEnter(msg) {
			cmd := a.setFocus(focusList)
			return a, cmd
		}
	case focusComposer:
		if isBack(msg) {
			cmd := a.setFocus(focusList)
			return a, cmd
		}
		if isSubmit(msg) {
			cmd := a.submitDraft()
			return a, cmd
		}
	case focusEditor:
		if isBack(msg) {
			cmd := a.setFocus(focusList)
			return a, cmd
		}
	}

	cmd := a.updateFocused(msg)
	return a, cmd
}

func (a App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case isQuit(msg):
		return a.quit()
	case isKey(msg, "?"):
		a.helpOpen = true
	case isUp(msg, a.config.VimKeys):
		a.list.Up()
	case isDown(msg, a.config.VimKeys):
		a.list.Down()
	case isEnter(msg):
		if a.selectCursor() {
			cmd = a.setFocus(focusEditor)
		}
	case isSpace(msg):
		a.selectCursor()
	case isKey(msg, "e"):
		cmd = a.editSelected()
	case isDelete(msg):
		cmd = a.requestDelete()
	case isKey(msg, "/"):
		cmd = a.setFocus(focusSearch)
	case isKey(msg, "n"):
		cmd = a.setFocus(focusComposer)
	case isKey(msg, "p"):
		a.previewOpen = !a.previewOpen
		a.refreshPreview()
	case isKey(msg, "y"):
		cmd = a.copySelected()
	case isBack(msg):
		if a.store.SearchTerm() != "" {
			a.store.SetSearchTerm("")
		} else {
			a.store.ClearSelection()
		}
		a.sync()
	}
	return a, cmd
}

func (a App) View() string {
	l := a.layout()
	header := RenderBanner(l.width, a.store.Len())

	var body string
	switch {
	case a.quitConfirm:
		body = a.overlay(components.ConfirmDialog("Quit", "Your unsaved draft will be lost. Quit anyway?"), l)
	case a.confirmDeleteID != "":
		body = a.overlay(a.renderDeleteConfirm(), l)
	case a.helpOpen:
		body = a.overlay(a.renderHelp(l), l)
	case a.err != "":
		body = a.overlay(components.ErrorBox("Error", a.err, l.width), l)
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(l), a.renderMain(l))
	}

	feedback := ""
	if a.toast != nil {
		feedback = " " + toastStyle(a.toast.level).Render(a.toast.text)
	}
	hints := components.StatusBar(a.statusHints(), l.width)

	return header + "\n" + body + "\n" + feedback + "\n" + hints
}

// --- Store Sync ---

// sync refreshes the widgets when the store changed since the last refresh.
func (a *App) sync() {
	if a.store.Version() != a.synced {
		a.refresh()
	}
}

func (a *App) refresh() {
	a.synced = a.store.Version()

	a.visible = slices.Collect(a.store.Filtered())
	labels := make([]string, len(a.visible))
	for i, n := range a.visible {
		labels[i] = noteLabel(n.Text, a.config.PreviewWidth)
	}
	a.list.SetItems(labels)

	sel, ok := a.store.Selected()
	switch {
	case !ok:
		if a.editorNoteID != "" {
			a.editor.Reset()
			a.editorNoteID = ""
		}
		if a.focus == focusEditor {
			a.blurAll()
			a.focus = focusList
		}
	case sel.ID != a.editorNoteID:
		a.editor.SetValue(sel.Text)
		a.editorNoteID = sel.ID
		a.moveCursorTo(sel.ID)
	case a.editor.Value() != sel.Text:
		a.editor.SetValue(sel.Text)
	}

	if a.store.Draft() == "" && a.composer.Value() != "" {
		a.composer.Reset()
	}
	if a.search.Value() != a.store.SearchTerm() {
		a.search.SetValue(a.store.SearchTerm())
	}
	a.refreshPreview()
}

// updateFocused forwards msg to the focused input and pushes its value back
// into the store.
func (a *App) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.focus {
	case focusSearch:
		a.search, cmd = a.search.Update(msg)
		a.store.SetSearchTerm(a.search.Value())
	case focusComposer:
		a.composer, cmd = a.composer.Update(msg)
		a.store.SetDraft(a.composer.Value())
	case focusEditor:
		// The textarea normalizes tabs and CRLF on load, so only write back
		// what an actual edit produced.
		before := a.editor.Value()
		a.editor, cmd = a.editor.Update(msg)
		if a.editor.Value() != before && a.editorNoteID != "" && a.store.SelectedID() == a.editorNoteID {
			a.store.UpdateSelectedText(a.editor.Value())
		}
	}
	a.sync()
	return cmd
}

func (a *App) moveCursorTo(id string) {
	for i, n := range a.visible {
		if n.ID == id {
			a.list.SetCursor(i)
			return
		}
	}
}

// --- Focus ---

func (a *App) blurAll() {
	a.search.Blur()
	a.composer.Blur()
	a.editor.Blur()
}

func (a *App) setFocus(f focusArea) tea.Cmd {
	if f == focusEditor {
		if _, ok := a.store.Selected(); !ok {
			return nil
		}
		a.previewOpen = false
		a.preview = ""
	}
	a.blurAll()
	a.focus = f
	switch f {
	case focusSearch:
		return a.search.Focus()
	case focusComposer:
		return a.composer.Focus()
	case focusEditor:
		return a.editor.Focus()
	}
	return nil
}

func (a *App) cycleFocus(dir int) tea.Cmd {
	_, hasSelection := a.store.Selected()
	next := a.focus
	for range focusCount {
		next = (next + focusArea(dir) + focusCount) % focusCount
		if next == focusEditor && !hasSelection {
			continue
		}
		break
	}
	return a.setFocus(next)
}

// --- Actions ---

func (a *App) cursorNote() (notes.Note, bool) {
	idx := a.list.Selected()
	if idx < 0 || idx >= len(a.visible) {
		return notes.Note{}, false
	}
	return a.visible[idx], true
}

func (a *App) selectCursor() bool {
	n, ok := a.cursorNote()
	if !ok {
		return false
	}
	a.store.Select(n.ID)
	a.sync()
	return true
}

func (a *App) editSelected() tea.Cmd {
	if _, ok := a.store.Selected(); !ok && !a.selectCursor() {
		return a.setToast("warning", "No note selected")
	}
	return a.setFocus(focusEditor)
}

func (a *App) requestDelete() tea.Cmd {
	n, ok := a.cursorNote()
	if !ok {
		return nil
	}
	if a.config.ConfirmDelete {
		a.confirmDeleteID = n.ID
		return nil
	}
	return a.deleteNote(n.ID)
}

func (a *App) deleteNote(id string) tea.Cmd {
	a.confirmDeleteID = ""
	if !a.store.Delete(id) {
		return nil
	}
	a.sync()
	return a.setToast("success", "Note deleted")
}

func (a *App) submitDraft() tea.Cmd {
	if _, ok := a.store.AddDraft(); !ok {
		return a.setToast("warning", "Nothing to save, the note is empty")
	}
	a.sync()
	return a.setToast("success", "Note added")
}

func (a *App) copySelected() tea.Cmd {
	n, ok := a.store.Selected()
	if !ok {
		return a.setToast("warning", "No note selected")
	}
	if err := clipboardWrite(n.Text); err != nil {
		a.logger.Warn("clipboard write failed", "err", err)
		a.err = fmt.Sprintf("copy to clipboard: %v", err)
		return nil
	}
	return a.setToast("success", "Copied to clipboard")
}

func (a App) quit() (tea.Model, tea.Cmd) {
	if strings.TrimSpace(a.store.Draft()) != "" {
		a.quitConfirm = true
		return a, nil
	}
	return a, tea.Quit
}

func (a *App) refreshPreview() {
	a.preview = ""
	if !a.previewOpen {
		return
	}
	sel, ok := a.store.Selected()
	if !ok {
		return
	}
	out, err := a.renderer.render(sel.Text, a.config.Theme, components.PaneContentWidth(a.layout().main))
	if err != nil {
		a.logger.Warn("preview failed", "err", err)
		a.err = err.Error()
		a.previewOpen = false
		return
	}
	a.preview = out
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

// --- Layout ---

func (a App) layout() layout {
	w, h := a.width, a.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}

	side := w * 35 / 100
	if side < sidebarMinWidth {
		side = sidebarMinWidth
	}
	if side > sidebarMaxWidth {
		side = sidebarMaxWidth
	}

	// Banner and feedback take a row each, the status bar may wrap to two.
	body := h - 4
	if body < minBodyHeight {
		body = minBodyHeight
	}
	return layout{
		width:      w,
		sidebar:    side,
		main:       max(w-side, sidebarMinWidth),
		body:       body,
		listHeight: body - searchPaneHeight - composerPaneHeight,
	}
}

func (a *App) applyLayout() {
	l := a.layout()
	sideInner := components.PaneContentWidth(l.sidebar)

	a.search.Width = max(sideInner-lipgloss.Width(a.search.Prompt)-1, 1)
	a.composer.SetWidth(sideInner)
	a.composer.SetHeight(composerRows)
	a.editor.SetWidth(components.PaneContentWidth(l.main))
	a.editor.SetHeight(l.body - 2)
	a.list.SetPageSize(l.listHeight - 2)
}

// --- Rendering ---

// noteLabel cuts the raw text to width runes before flattening it onto one
// line, so the ellipsis reflects the note's real length.
func noteLabel(text string, width int) string {
	line := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		return r
	}, components.SanitizeText(components.Ellipsize(text, width)))
	if strings.TrimSpace(line) == "" {
		return emptyNoteLabel
	}
	return line
}

func (a App) renderSidebar(l layout) string {
	searchPane := components.Pane("Search", a.search.View(), l.sidebar, searchPaneHeight, a.focus == focusSearch)
	listPane := components.Pane(a.listTitle(), a.renderList(l), l.sidebar, l.listHeight, a.focus == focusList)
	composerPane := components.Pane("New note", a.composer.View(), l.sidebar, composerPaneHeight, a.focus == focusComposer)
	return lipgloss.JoinVertical(lipgloss.Left, searchPane, listPane, composerPane)
}

func (a App) listTitle() string {
	if a.store.SearchTerm() == "" {
		return "Notes"
	}
	return fmt.Sprintf("Notes %d/%d", len(a.visible), a.store.Len())
}

func (a App) renderList(l layout) string {
	if len(a.visible) == 0 {
		if a.store.SearchTerm() != "" {
			return MutedStyle.Render("No notes match your search.")
		}
		return MutedStyle.Render("No notes yet. Press n to write one.")
	}

	// cursor, marker and delete affordance take 7 columns
	labelWidth := components.PaneContentWidth(l.sidebar) - 7
	selectedID := a.store.SelectedID()
	active := a.focus == focusList

	labels := a.list.Visible()
	rows := make([]string, 0, len(labels))
	for i, label := range labels {
		abs := a.list.RelToAbs(i)
		n := a.visible[abs]
		if lipgloss.Width(label) > labelWidth {
			label = components.ClampTextWidth(label, labelWidth)
		}

		style := NormalStyle
		if label == emptyNoteLabel {
			style = MutedStyle
		}
		marker := "  "
		if n.ID == selectedID {
			marker = SelectedStyle.Render("● ")
			style = SelectedStyle
		}

		onCursor := active && a.list.IsSelected(abs)
		cursor := "  "
		if onCursor {
			cursor = CursorStyle.Render("> ")
		}
		row := cursor + marker + style.Render(label)
		if onCursor {
			row += " " + DeleteAffordanceStyle.Render("✕")
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (a App) renderMain(l layout) string {
	if _, ok := a.store.Selected(); !ok {
		content := lipgloss.Place(
			components.PaneContentWidth(l.main), l.body-2,
			lipgloss.Center, lipgloss.Center,
			PlaceholderStyle.Render(placeholderText),
		)
		return components.Pane("", content, l.main, l.body, false)
	}
	if a.previewOpen && a.focus != focusEditor {
		return components.Pane("Preview", a.preview, l.main, l.body, false)
	}
	return components.Pane("Note", a.editor.View(), l.main, l.body, a.focus == focusEditor)
}

func (a App) renderDeleteConfirm() string {
	n, _ := a.store.Get(a.confirmDeleteID)
	label := noteLabel(n.Text, a.config.PreviewWidth)
	return components.ConfirmDialog("Delete note", "Delete \""+label+"\"?")
}

func (a App) renderHelp(l layout) string {
	sections := []struct {
		title string
		hints []string
	}{
		{"Notes", listHints()},
		{"Inputs", []string{
			components.Hint("tab", "Next pane"),
			components.Hint("shift+tab", "Previous pane"),
			components.Hint("ctrl+s", "Save new note"),
			components.Hint("esc", "Back to list"),
			components.Hint("ctrl+c", "Quit"),
		}},
	}
	lines := []string{MutedStyle.Render("esc to close")}
	for _, s := range sections {
		lines = append(lines, "", SelectedStyle.Render(s.title))
		for _, h := range s.hints {
			lines = append(lines, "  "+h)
		}
	}
	return components.TitledBox("Help", strings.Join(lines, "\n"), l.width)
}

func (a App) overlay(content string, l layout) string {
	return lipgloss.Place(l.width, l.body, lipgloss.Center, lipgloss.Center, content)
}

func listHints() []string {
	return []string{
		components.Hint("↑/↓", "Move"),
		components.Hint("enter", "Edit"),
		components.Hint("n", "New"),
		components.Hint("/", "Search"),
		components.Hint("d", "Delete"),
		components.Hint("p", "Preview"),
		components.Hint("y", "Copy"),
		components.Hint("?", "Help"),
		components.Hint("q", "Quit"),
	}
}

func (a App) statusHints() []string {
	switch {
	case a.quitConfirm, a.confirmDeleteID != "":
		return []string{
			components.Hint("y", "Confirm"),
			components.Hint("n", "Cancel"),
		}
	case a.helpOpen:
		return []string{components.Hint("esc", "Back")}
	case a.err != "":
		return []string{components.Hint("any key", "Dismiss")}
	}

	switch a.focus {
	case focusSearch:
		return []string{
			components.Hint("enter", "Done"),
			components.Hint("esc", "Back"),
			components.Hint("tab", "Next"),
		}
	case focusComposer:
		return []string{
			components.Hint("ctrl+s", "Save"),
			components.Hint("esc", "Back"),
			components.Hint("tab", "Next"),
		}
	case focusEditor:
		return []string{
			components.Hint("esc", "Back"),
			components.Hint("tab", "Next"),
		}
	}
	return listHints()
}
