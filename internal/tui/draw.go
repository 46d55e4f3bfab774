package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/eventify/internal/tui/theme"
)

// DrawText renders plain text at a position
func DrawText(scr uv.Screen, area uv.Rectangle, text string) {
	uv.NewStyledString(text).Draw(scr, area)
}

// DrawStyled renders lipgloss-styled content sized to the area
func DrawStyled(scr uv.Screen, area uv.Rectangle, style lipgloss.Style, text string) {
	content := style.Width(area.Dx()).MaxHeight(area.Dy()).Render(text)
	uv.NewStyledString(content).Draw(scr, area)
}

// DrawRule renders "Title ────────" across the top row of area and returns
// the area below it.
func DrawRule(scr uv.Screen, area uv.Rectangle, title string) uv.Rectangle {
	if area.Dy() <= 0 {
		return area
	}
	s := theme.Current().S()

	styledTitle := s.PageTitle.Render(title)
	ruleWidth := area.Dx() - lipgloss.Width(styledTitle) - 1
	if ruleWidth < 0 {
		ruleWidth = 0
	}
	header := styledTitle + " " + s.HintSeparator.Render(strings.Repeat("─", ruleWidth))
	DrawText(scr, uv.Rect(area.Min.X, area.Min.Y, area.Dx(), 1), header)

	return uv.Rectangle{
		Min: uv.Position{X: area.Min.X, Y: area.Min.Y + 1},
		Max: area.Max,
	}
}

// DrawScrollIndicator renders a scroll position indicator at the
// bottom-right of area.
func DrawScrollIndicator(scr uv.Screen, area uv.Rectangle, percent float64) {
	indicator := fmt.Sprintf(" %d%% ", int(percent*100))
	if area.Dx() < len(indicator) || area.Dy() < 1 {
		return
	}
	indicatorArea := uv.Rectangle{
		Min: uv.Position{X: area.Max.X - len(indicator), Y: area.Max.Y - 1},
		Max: uv.Position{X: area.Max.X, Y: area.Max.Y},
	}
	DrawText(scr, indicatorArea, theme.Current().S().Muted.Render(indicator))
}
