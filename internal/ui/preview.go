package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

const previewMinWidth = 20

// previewRenderer caches a glamour renderer for one style and wrap width.
// Building a renderer parses the whole style sheet, so it is rebuilt only
// when the pane is resized or the theme changes.
type previewRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

func (p *previewRenderer) render(text, style string, width int) (string, error) {
	if width < previewMinWidth {
		width = previewMinWidth
	}
	if p.renderer == nil || p.style != style || p.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("preview renderer: %w", err)
		}
		p.renderer, p.style, p.width = r, style, width
	}

	out, err := p.renderer.Render(text)
	if err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}
