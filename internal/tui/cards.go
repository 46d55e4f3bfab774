package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/tui/theme"
)

// renderEventCard renders an event as a bordered card.
func renderEventCard(e catalog.Event, width int, selected bool) string {
	t := theme.Current()
	s := t.S()

	box := s.Card
	if selected {
		box = s.CardFocused
	}
	if width > 0 {
		box = box.Width(width)
	}

	date := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Primary)).
		Bold(true).
		Render(catalog.FormatDate(e.Date))

	title := s.Bold.Render(truncate(e.Title, width-4))
	if selected {
		title = s.Brand.Render("▸ " + truncate(e.Title, width-6))
	}

	lines := []string{
		date,
		title,
		s.Muted.Render("◷ " + e.Time),
		s.Muted.Render("⌖ " + truncate(e.Location, width-6)),
		s.Muted.Render(fmt.Sprintf("☺ %d attendees", e.Attendees)),
		s.Muted.Render("Organized by ") + s.Text.Render(e.Organizer.Name),
	}
	return box.Render(strings.Join(lines, "\n"))
}

// renderTimelineEntry renders one row of the timeline view.
func renderTimelineEntry(e catalog.Event, width int, upcoming, selected bool) string {
	s := theme.Current().S()

	day, month := catalog.DayAndMonth(e.Date)
	badge := lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Render(day + "\n" + month)
	marker := s.Muted.Render("○")
	if upcoming {
		marker = s.Success.Render("●")
	}

	title := s.Bold.Render(e.Title)
	if selected {
		title = s.Brand.Render("▸ " + e.Title)
	}
	body := title + "\n" +
		s.Muted.Render(catalog.FormatDate(e.Date)+" • "+e.Time) + "\n" +
		s.Muted.Render("⌖ "+truncate(e.Location, width-12))

	return lipgloss.JoinHorizontal(lipgloss.Top, badge, " "+marker+" ", body)
}

// renderTabs renders a row of tabs with the active one highlighted.
func renderTabs(labels []string, active int) string {
	s := theme.Current().S()
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = s.TabActive.Render(l)
		} else {
			parts[i] = s.Tab.Render(l)
		}
	}
	return strings.Join(parts, " ")
}

// renderButton renders a bracketed key button, e.g. "[a] Attending".
func renderButton(key, label string, active bool) string {
	t := theme.Current()
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BorderDefault)).
		Foreground(lipgloss.Color(t.FgBase)).
		Padding(0, 1)
	if active {
		style = style.
			BorderForeground(lipgloss.Color(t.Primary)).
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true)
	}
	return style.Render(theme.Current().S().HintKey.Render(key) + " " + label)
}

// truncate shortens s to width cells, adding an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
