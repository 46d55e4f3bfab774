package tui

import (
	"strings"

	"charm.land/glamour/v2"
	"charm.land/lipgloss/v2"
)

// renderMarkdown renders markdown content using glamour.
// Falls back to plain wrapped text if rendering fails.
func renderMarkdown(content string, width int) string {
	// Cap width to 120 for readability
	if width > 120 {
		width = 120
	}
	if width < 20 {
		width = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wrapText(content, width)
	}

	rendered, err := r.Render(content)
	if err != nil {
		return wrapText(content, width)
	}

	// glamour pads with blank lines on both ends
	return strings.Trim(rendered, "\n")
}

// wrapText wraps plain text to width.
func wrapText(content string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(content)
}
