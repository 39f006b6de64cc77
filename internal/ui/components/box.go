package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorBorder       = lipgloss.Color("#2b3444")
	colorBorderActive = lipgloss.Color("#5b8bd4")
	colorHeader       = lipgloss.Color("#5b8bd4")
	colorMuted        = lipgloss.Color("#8c93a8")

	paneBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	paneBorderActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorderActive).
				Padding(0, 1)

	boxBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	boxHeaderStyle = lipgloss.NewStyle().
			Foreground(colorHeader).
			Bold(true)

	boxHeaderMutedStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Bold(true)

	errorBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7a2f3a")).
			Padding(1, 2)

	errorHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e06c75")).
				Bold(true)

	errorBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6b5b5"))
)

func boxWidth(width int) int {
	// ~70% of terminal width, capped at 72
	if width <= 0 {
		return 0
	}
	w := width * 70 / 100
	if w < 36 {
		w = 36
	}
	if w > 72 {
		w = 72
	}
	return w
}

// safeBoxWidth returns the outer width of a floating box, never wider than
// the terminal.
func safeBoxWidth(width int) int {
	w := boxWidth(width)
	if width > 0 && w > width {
		return width
	}
	return w
}

// outer converts an outer (border-inclusive) width to the lipgloss width.
func outer(w int) int {
	if w <= 2 {
		return 0
	}
	return w - 2
}

// PaneContentWidth returns the usable text width inside a Pane of the given outer width.
func PaneContentWidth(width int) int {
	// Border adds 2, padding adds 2.
	inner := width - 4
	if inner < 0 {
		return 0
	}
	return inner
}

// Pane renders a fixed-size titled panel. width and height are outer sizes.
// Active panes get the highlighted border.
func Pane(title, content string, width, height int, active bool) string {
	style := paneBorder
	header := boxHeaderMutedStyle
	borderColor := colorBorder
	if active {
		style = paneBorderActive
		header = boxHeaderStyle
		borderColor = colorBorderActive
	}
	if width > 0 {
		style = style.Width(outer(width))
	}
	if height > 2 {
		style = style.Height(height - 2)
		content = clampLines(content, height-2)
	}
	return withTitle(style.Render(content), title, header, borderColor)
}

// TitledBox renders a floating box with a header title, sized off the terminal width.
func TitledBox(title, content string, width int) string {
	boxed := boxBorder.Width(outer(safeBoxWidth(width))).Render(content)
	return withTitle(boxed, title, boxHeaderStyle, colorBorder)
}

// ErrorBox renders a red bordered box for errors.
func ErrorBox(title, message string, width int) string {
	header := ""
	if title != "" {
		header = errorHeaderStyle.Render(title) + "\n\n"
	}
	body := errorBodyStyle.Render(SanitizeText(message))
	return errorBorder.Width(outer(safeBoxWidth(width))).Render(header + body)
}

func withTitle(boxed, title string, headerStyle lipgloss.Style, borderColor lipgloss.Color) string {
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	middleLen := lineWidth - 2
	titleText := fmt.Sprintf(" %s ", SanitizeOneLine(title))
	if lipgloss.Width(titleText) > middleLen {
		titleText = truncateRunes(titleText, middleLen)
	}

	right := middleLen - 1 - lipgloss.Width(titleText)
	left := 1
	if right < 0 {
		left, right = 0, middleLen-lipgloss.Width(titleText)
	}
	if right < 0 {
		right = 0
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	leftSeg := borderStyle.Render(border.TopLeft + strings.Repeat(border.Top, left))
	rightSeg := borderStyle.Render(strings.Repeat(border.Top, right) + border.TopRight)
	lines[0] = leftSeg + headerStyle.Render(titleText) + rightSeg
	return strings.Join(lines, "\n")
}

func clampLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

// ClampTextWidth truncates text to the given visual width after flattening it to one line.
func ClampTextWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	cleaned := SanitizeOneLine(text)
	if lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	return truncateRunes(cleaned, width)
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	var b strings.Builder
	b.Grow(max)
	n := 0
	for _, r := range s {
		if n >= max {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// Indent adds left padding to every line of a multi-line string.
func Indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
