package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/eventify/internal/tui/theme"
)

// Footer renders the page hints and the copyright line.
type Footer struct {
	year  int
	hints string
}

// NewFooter creates a new Footer for the given copyright year.
func NewFooter(year int) *Footer {
	return &Footer{year: year}
}

// SetHints sets the page-specific hints shown on the first row.
func (f *Footer) SetHints(hints string) {
	f.hints = hints
}

// Copyright returns the copyright line.
func (f *Footer) Copyright() string {
	return fmt.Sprintf("© %d Eventify. All rights reserved.", f.year)
}

// Draw renders the footer to the screen at the given area.
func (f *Footer) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	if area.Dy() < 1 {
		return nil
	}
	width := area.Dx()
	rows := f.build(width)
	for i, row := range rows {
		if i >= area.Dy() {
			break
		}
		DrawText(scr, uv.Rect(area.Min.X, area.Min.Y+i, width, 1), row)
	}
	return nil
}

// build returns the footer rows: page hints, then copyright with the
// navigation hints right-aligned. Hints are dropped when they don't fit.
func (f *Footer) build(width int) []string {
	s := theme.Current().S()

	hints := " " + f.hints
	if lipgloss.Width(hints) > width {
		hints = ""
	}

	left := " " + s.Footer.Render(f.Copyright())
	right := HintNav() + " "
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	bottom := left
	if gap >= 1 {
		bottom = left + strings.Repeat(" ", gap) + right
	}
	return []string{hints, bottom}
}
