package tui

import (
	"regexp"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// SanitizePaste cleans up pasted content: ANSI sequences and control
// characters other than newline and tab are dropped, CRLF becomes LF and
// trailing whitespace is trimmed.
func SanitizePaste(content string) string {
	content = ansi.Strip(content)
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var result strings.Builder
	for _, r := range content {
		switch {
		case r == '\n' || r == '\t':
			result.WriteRune(r)
		case r < 32 || r == 127:
			continue
		default:
			result.WriteRune(r)
		}
	}

	return strings.TrimRight(result.String(), " \t\n")
}

// newlinePattern matches one or more newline characters
var newlinePattern = regexp.MustCompile(`\n+`)

// collapseNewlines replaces runs of newlines with a single space, for
// single-line inputs like the event search box.
func collapseNewlines(content string) string {
	return newlinePattern.ReplaceAllString(content, " ")
}

// handlePaste forwards sanitized pasted text to the page when one of its
// text fields has focus. Pastes are dropped otherwise.
func (a *App) handlePaste(msg tea.PasteMsg) tea.Cmd {
	if !a.screen.Capturing() {
		return nil
	}
	content := SanitizePaste(msg.Content)
	if _, ok := a.screen.(*EventsPage); ok {
		content = collapseNewlines(content)
	}
	if content == "" {
		return nil
	}
	return a.screen.Update(tea.PasteMsg{Content: content})
}
