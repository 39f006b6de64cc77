package components

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#c78854")).
			Padding(1, 2).
			Width(40)

	dialogHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#c78854")).
				Bold(true)

	dialogBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da"))

	dialogHintStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// ConfirmDialog renders a yes/no confirmation.
func ConfirmDialog(title, message string) string {
	header := dialogHeaderStyle.Render(SanitizeOneLine(title))
	body := dialogBodyStyle.Render(SanitizeText(message))
	hint := dialogHintStyle.Render("y: confirm | n: cancel")
	return dialogStyle.Render(header + "\n\n" + body + "\n\n" + hint)
}
