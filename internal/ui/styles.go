package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary    = lipgloss.Color("#5b8bd4") // blue
	ColorSecondary  = lipgloss.Color("#436b77") // teal
	ColorAccent     = lipgloss.Color("#a7754e") // warm
	ColorBackground = lipgloss.Color("#16161d") // dark
	ColorText       = lipgloss.Color("#d7d9da") // main text
	ColorMuted      = lipgloss.Color("#8c93a8") // muted text
	ColorSuccess    = lipgloss.Color("#3f866b") // green
	ColorError      = lipgloss.Color("#e06c75") // red
	ColorWarning    = lipgloss.Color("#c78854") // warning
	ColorBorder     = lipgloss.Color("#2b3444") // border
)

// --- Reusable Styles ---

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	BannerAccentStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)

	DeleteAffordanceStyle = lipgloss.NewStyle().
				Foreground(ColorError)
)

// toastStyle picks the foreground for a toast level.
func toastStyle(level string) lipgloss.Style {
	switch level {
	case "success":
		return SuccessStyle
	case "warning":
		return WarningStyle
	case "error":
		return ErrorStyle
	}
	return MutedStyle
}
