package wizard

import (
	"strings"

	"github.com/mark3labs/eventify/internal/tui/theme"
)

// renderHintBar renders a hint bar with the given key-description pairs.
// Example: renderHintBar("tab", "next field", "ctrl+n", "next")
// Returns: "tab next field • ctrl+n next"
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + s.HintSeparator.Render("•") + " ")
		}
		b.WriteString(s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1]))
	}
	return b.String()
}

// renderTabs renders a row of tab labels with the active one highlighted.
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

// renderField renders a labeled input box.
func renderField(label, body string, focused bool, width int) string {
	s := theme.Current().S()
	box := s.Input
	if focused {
		box = s.InputActive
	}
	if width > 0 {
		box = box.Width(width)
	}
	return s.Bold.Render(label) + "\n" + box.Render(body)
}
