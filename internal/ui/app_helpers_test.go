package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/quill/internal/config"
	"github.com/gravitrone/quill/internal/notes"
	"github.com/gravitrone/quill/internal/ui/components"
)

func testStore(t *testing.T, texts ...string) *notes.Store {
	t.Helper()
	store := notes.New(notes.WithIDGenerator(&notes.SequenceIDs{}))
	for _, text := range texts {
		_, ok := store.Add(text)
		require.True(t, ok)
	}
	return store
}

func testApp(t *testing.T, cfg *config.Config, texts ...string) (App, *notes.Store) {
	t.Helper()
	store := testStore(t, texts...)
	app := NewApp(store, cfg, nil)
	return press(app, tea.WindowSizeMsg{Width: 120, Height: 40}), store
}

func press(app App, msgs ...tea.Msg) App {
	for _, msg := range msgs {
		model, _ := app.Update(msg)
		app = model.(App)
	}
	return app
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func cleanView(app App) string {
	return components.SanitizeText(app.View())
}

func visibleTexts(app App) []string {
	out := make([]string, 0, len(app.visible))
	for _, n := range app.visible {
		out = append(out, n.Text)
	}
	return out
}
