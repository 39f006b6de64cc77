package components

import "github.com/charmbracelet/lipgloss"

var (
	hintKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#8c93a8")).
			Bold(true).
			Padding(0, 1)
	hintDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))
	statusSep = lipgloss.NewStyle().
			Foreground(colorBorder).
			Render(" │ ")
	statusBarStyle = lipgloss.NewStyle().
			PaddingLeft(1)
)

// StatusBar renders the bottom hint bar. Hints that do not fit on one line
// wrap onto the next.
func StatusBar(hints []string, width int) string {
	if len(hints) == 0 {
		return ""
	}
	rows := wrapSegments(hints, width-1)
	block := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if width > 0 {
		return statusBarStyle.Width(width).Render(block)
	}
	return statusBarStyle.Render(block)
}

// Hint formats a single keybind hint like "[ctrl+s] save".
func Hint(key, desc string) string {
	return hintKeyStyle.Render(key) + " " + hintDescStyle.Render(desc)
}

func wrapSegments(segments []string, width int) []string {
	join := func(row []string) string {
		out := ""
		for i, s := range row {
			if i > 0 {
				out += statusSep
			}
			out += s
		}
		return out
	}
	if width <= 0 {
		return []string{join(segments)}
	}
	sepWidth := lipgloss.Width(statusSep)
	rows := make([]string, 0, 2)
	var current []string
	currentWidth := 0
	for _, seg := range segments {
		segWidth := lipgloss.Width(seg)
		if len(current) > 0 && currentWidth+sepWidth+segWidth > width {
			rows = append(rows, join(current))
			current = []string{seg}
			currentWidth = segWidth
			continue
		}
		if len(current) > 0 {
			currentWidth += sepWidth
		}
		current = append(current, seg)
		currentWidth += segWidth
	}
	if len(current) > 0 {
		rows = append(rows, join(current))
	}
	return rows
}
