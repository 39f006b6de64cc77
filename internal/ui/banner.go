package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	bannerTitle    = "quill"
	bannerSubtitle = "notes for this session"
)

// RenderBanner returns the one-line header with the note count on the right.
func RenderBanner(width, count int) string {
	left := BannerStyle.Render("✎ "+bannerTitle) + "  " + BannerAccentStyle.Render(bannerSubtitle)
	right := MutedStyle.Render(noteCount(count))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if width <= 0 || gap < 1 {
		return left + "  " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

func noteCount(n int) string {
	if n == 1 {
		return "1 note"
	}
	return fmt.Sprintf("%d notes", n)
}
