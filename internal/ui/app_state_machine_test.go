package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/quill/internal/config"
)

func TestComposerSubmitAddsAndSelectsNote(t *testing.T) {
	app, store := testApp(t, nil)

	app = press(app, typed("n"))
	require.Equal(t, focusComposer, app.focus)

	app = press(app, typed("Buy milk"))
	assert.Equal(t, "Buy milk", store.Draft())

	model, cmd := app.Update(key(tea.KeyCtrlS))
	app = model.(App)
	require.NotNil(t, cmd)

	require.Equal(t, 1, store.Len())
	sel, ok := store.Selected()
	require.True(t, ok)
	assert.Equal(t, "Buy milk", sel.Text)
	assert.Equal(t, "", store.Draft())
	assert.Equal(t, "", app.composer.Value())
	assert.Equal(t, "Buy milk", app.editor.Value())
	require.NotNil(t, app.toast)
	assert.Equal(t, "success", app.toast.level)
}

func TestComposerSubmitTrimsDraft(t *testing.T) {
	app, store := testApp(t, nil)

	app = press(app, typed("n"), typed("  Call Bob  "), key(tea.KeyCtrlS))

	sel, ok := store.Selected()
	require.True(t, ok)
	assert.Equal(t, "Call Bob", sel.Text)
	assert.Equal(t, 0, app.list.Selected())
}

func TestComposerBlankSubmitIsNoop(t *testing.T) {
	app, store := testApp(t, nil)

	app = press(app, typed("n"), typed("   "), key(tea.KeyCtrlS))

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, "   ", store.Draft())
	require.NotNil(t, app.toast)
	assert.Equal(t, "warning", app.toast.level)
}

func TestSearchBoxFiltersList(t *testing.T) {
	app, store := testApp(t, nil, "Buy milk", "Call Bob", "Buy eggs")

	app = press(app, typed("/"), typed("buy"))
	require.Equal(t, focusSearch, app.focus)
	assert.Equal(t, "buy", store.SearchTerm())
	assert.Equal(t, []string{"Buy milk", "Buy eggs"}, visibleTexts(app))

	app = press(app, key(tea.KeyEnter))
	assert.Equal(t, focusList, app.focus)
	assert.Equal(t, "buy", store.SearchTerm())

	// First esc in the list clears the search, the second the selection.
	app = press(app, key(tea.KeyEsc))
	assert.Equal(t, "", store.SearchTerm())
	assert.Equal(t, "", app.search.Value())
	assert.Len(t, app.visible, 3)
	assert.NotEmpty(t, store.SelectedID())

	press(app, key(tea.KeyEsc))
	assert.Empty(t, store.SelectedID())
}

func TestSearchLeavesSelectionAlone(t *testing.T) {
	app, store := testApp(t, nil, "Buy milk", "Call Bob")
	selected := store.SelectedID()

	press(app, typed("/"), typed("milk"))

	assert.Equal(t, selected, store.SelectedID())
}

func TestEnterSelectsNoteAndEditorUpdatesIt(t *testing.T) {
	app, store := testApp(t, nil, "first", "second")
	require.Equal(t, "2", store.SelectedID())

	app = press(app, key(tea.KeyUp), key(tea.KeyEnter))
	require.Equal(t, "1", store.SelectedID())
	require.Equal(t, focusEditor, app.focus)
	assert.Equal(t, "first", app.editor.Value())

	app = press(app, typed("!"))

	n, ok := store.Get("1")
	require.True(t, ok)
	assert.Equal(t, "first!", n.Text)
	assert.Equal(t, []string{"first!", "second"}, visibleTexts(app))
}

func TestEditorClearingTextKeepsNote(t *testing.T) {
	app, store := testApp(t, nil, "x")

	app = press(app, typed("e"), key(tea.KeyBackspace))

	require.Equal(t, 1, store.Len())
	sel, ok := store.Selected()
	require.True(t, ok)
	assert.Equal(t, "", sel.Text)
	assert.Contains(t, cleanView(app), emptyNoteLabel)
}

func TestSpaceSelectsWithoutEditing(t *testing.T) {
	app, store := testApp(t, nil, "first", "second")

	app = press(app, key(tea.KeyUp), key(tea.KeySpace))

	assert.Equal(t, "1", store.SelectedID())
	assert.Equal(t, focusList, app.focus)
}

func TestEditWithoutNotesWarns(t *testing.T) {
	app, _ := testApp(t, nil)

	app = press(app, typed("e"))

	assert.Equal(t, focusList, app.focus)
	require.NotNil(t, app.toast)
	assert.Equal(t, "No note selected", app.toast.text)
}

func TestDeleteAsksForConfirmation(t *testing.T) {
	app, store := testApp(t, nil, "keep", "drop")

	app = press(app, typed("d"))
	require.Equal(t, "2", app.confirmDeleteID)
	assert.Contains(t, cleanView(app), "Delete note")

	app = press(app, typed("n"))
	assert.Empty(t, app.confirmDeleteID)
	assert.Equal(t, 2, store.Len())

	app = press(app, typed("d"), typed("y"))
	assert.Equal(t, 1, store.Len())
	assert.Empty(t, store.SelectedID())
	assert.Equal(t, []string{"keep"}, visibleTexts(app))
	assert.Contains(t, cleanView(app), placeholderText)
}

func TestDeleteOtherNoteKeepsSelection(t *testing.T) {
	cfg := config.Default()
	cfg.ConfirmDelete = false
	app, store := testApp(t, cfg, "a", "b", "c")
	require.Equal(t, "3", store.SelectedID())

	app = press(app, key(tea.KeyUp), key(tea.KeyUp), typed("x"))

	assert.Equal(t, "3", store.SelectedID())
	assert.Equal(t, []string{"b", "c"}, visibleTexts(app))
}

func TestDeleteOnEmptyListIsNoop(t *testing.T) {
	app, _ := testApp(t, nil)

	app = press(app, typed("d"))

	assert.Empty(t, app.confirmDeleteID)
}

func TestTabCycleSkipsEditorWithoutSelection(t *testing.T) {
	app, _ := testApp(t, nil)

	app = press(app, key(tea.KeyTab))
	assert.Equal(t, focusSearch, app.focus)
	app = press(app, key(tea.KeyTab))
	assert.Equal(t, focusComposer, app.focus)
	app = press(app, key(tea.KeyTab))
	assert.Equal(t, focusList, app.focus)
}

func TestTabCycleIncludesEditorWithSelection(t *testing.T) {
	app, _ := testApp(t, nil, "note")

	app = press(app, key(tea.KeyShiftTab))
	assert.Equal(t, focusEditor, app.focus)
	assert.True(t, app.editor.Focused())

	app = press(app, key(tea.KeyTab))
	assert.Equal(t, focusList, app.focus)
	assert.False(t, app.editor.Focused())
}

func TestVimKeysMoveCursor(t *testing.T) {
	cfg := config.Default()
	cfg.VimKeys = true
	app, _ := testApp(t, cfg, "a", "b")
	require.Equal(t, 1, app.list.Selected())

	app = press(app, typed("k"))
	assert.Equal(t, 0, app.list.Selected())
	app = press(app, typed("j"))
	assert.Equal(t, 1, app.list.Selected())
}

func TestVimKeysOffIgnoresJK(t *testing.T) {
	app, _ := testApp(t, nil, "a", "b")

	app = press(app, typed("k"))

	assert.Equal(t, 1, app.list.Selected())
}

func TestCopySelectedWritesClipboard(t *testing.T) {
	var got string
	orig := clipboardWrite
	clipboardWrite = func(text string) error {
		got = text
		return nil
	}
	t.Cleanup(func() { clipboardWrite = orig })

	app, _ := testApp(t, nil, "copy me")
	app = press(app, typed("y"))

	assert.Equal(t, "copy me", got)
	require.NotNil(t, app.toast)
	assert.Equal(t, "success", app.toast.level)
}

func TestCopyFailureShowsErrorUntilNextKey(t *testing.T) {
	orig := clipboardWrite
	clipboardWrite = func(string) error { return errors.New("no display") }
	t.Cleanup(func() { clipboardWrite = orig })

	app, _ := testApp(t, nil, "copy me")
	app = press(app, typed("y"))

	require.Contains(t, app.err, "no display")
	assert.Contains(t, cleanView(app), "no display")

	app = press(app, key(tea.KeyDown))
	assert.Empty(t, app.err)
}

func TestQuitConfirmWhenDraftPending(t *testing.T) {
	app, _ := testApp(t, nil)
	app = press(app, typed("n"), typed("half a thought"), key(tea.KeyEsc))

	model, cmd := app.Update(typed("q"))
	app = model.(App)
	assert.Nil(t, cmd)
	assert.True(t, app.quitConfirm)

	app = press(app, typed("n"))
	assert.False(t, app.quitConfirm)

	model, _ = app.Update(key(tea.KeyCtrlC))
	app = model.(App)
	require.True(t, app.quitConfirm)

	_, cmd = app.Update(key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQuitWithoutDraftExits(t *testing.T) {
	app, _ := testApp(t, nil, "saved")

	_, cmd := app.Update(typed("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTypingQInInputDoesNotQuit(t *testing.T) {
	app, store := testApp(t, nil)

	model, _ := press(app, typed("n")).Update(typed("q"))
	app = model.(App)

	assert.False(t, app.quitConfirm)
	assert.Equal(t, "q", store.Draft())
}

func TestHelpToggle(t *testing.T) {
	app, _ := testApp(t, nil)

	app = press(app, typed("?"))
	assert.True(t, app.helpOpen)
	assert.Contains(t, cleanView(app), "Save new note")

	app = press(app, key(tea.KeyEsc))
	assert.False(t, app.helpOpen)
}

func TestPreviewToggleRendersMarkdown(t *testing.T) {
	cfg := config.Default()
	cfg.Theme = "ascii"
	app, _ := testApp(t, cfg, "# Groceries\n\n- milk")

	app = press(app, typed("p"))
	require.True(t, app.previewOpen)
	assert.Contains(t, app.preview, "Groceries")
	assert.Contains(t, cleanView(app), "Preview")

	app = press(app, typed("e"))
	assert.False(t, app.previewOpen)
	assert.Equal(t, focusEditor, app.focus)
}

func TestClearToastMsg(t *testing.T) {
	app, _ := testApp(t, nil)
	app = press(app, typed("e"))
	require.NotNil(t, app.toast)

	app = press(app, clearToastMsg{})
	assert.Nil(t, app.toast)
}

func TestExternalStoreChangesResync(t *testing.T) {
	app, store := testApp(t, nil, "a")

	store.Add("from outside")
	app = press(app, clearToastMsg{})

	assert.Equal(t, []string{"a", "from outside"}, visibleTexts(app))
	assert.Equal(t, "from outside", app.editor.Value())
}

func TestClearSelectionMovesFocusOffEditor(t *testing.T) {
	app, store := testApp(t, nil, "a")
	app = press(app, typed("e"))
	require.Equal(t, focusEditor, app.focus)

	store.ClearSelection()
	app = press(app, clearToastMsg{})

	assert.Equal(t, focusList, app.focus)
	assert.Equal(t, "", app.editor.Value())
}

func TestEditorCursorKeysLeaveNoteTextAlone(t *testing.T) {
	for _, text := range []string{"a\tb", "line1\r\nline2"} {
		t.Run(text, func(t *testing.T) {
			app, store := testApp(t, nil, text, "second")
			app = press(app, key(tea.KeyUp), key(tea.KeyEnter))
			require.Equal(t, focusEditor, app.focus)
			version := store.Version()

			app = press(app, key(tea.KeyRight), key(tea.KeyLeft), key(tea.KeyDown))

			n, ok := store.Get("1")
			require.True(t, ok)
			assert.Equal(t, text, n.Text)
			assert.Equal(t, version, store.Version())
			assert.Equal(t, focusEditor, app.focus)
		})
	}
}
