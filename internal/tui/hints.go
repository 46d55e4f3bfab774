package tui

import (
	"strings"

	"github.com/mark3labs/eventify/internal/tui/theme"
)

// Standard key representations for consistent hints across the app.
const (
	KeyUpDown   = "↑/↓"
	KeyUpDownJK = "↑↓/jk"
	KeyEnter    = "enter"
	KeyEsc      = "esc"
	KeyTab      = "tab"
	KeyCtrlC    = "ctrl+c"
	KeyPgUpDown = "pgup/pgdn"
	KeySlash    = "/"
)

// RenderHint renders a single key-description pair.
// Example: RenderHint("enter", "open") -> "enter open"
func RenderHint(key, desc string) string {
	s := theme.Current().S()
	return s.HintKey.Render(key) + " " + s.HintDesc.Render(desc)
}

// RenderHintBar renders a hint bar with multiple key-description pairs
// separated by a bullet.
// Example: RenderHintBar("/", "search", "f", "filter")
// Returns: "/ search • f filter"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + s.HintSeparator.Render("•") + " ")
		}
		b.WriteString(RenderHint(pairs[i], pairs[i+1]))
	}
	return b.String()
}

// HintNav returns the global navigation hints.
// "h home • e events • c create • q quit"
func HintNav() string {
	return RenderHintBar("h", "home", "e", "events", "c", "create", "q", "quit")
}

// HintEvents returns the events page hints.
func HintEvents() string {
	return RenderHintBar(KeyUpDownJK, "move", KeyEnter, "open", KeySlash, "search", "f", "filter", "v", "view", KeyTab, "mine")
}

// HintSearch returns hints while the search field has focus.
func HintSearch() string {
	return RenderHintBar(KeyEnter, "apply", KeyEsc, "done")
}

// HintDetail returns the event detail hints.
func HintDetail() string {
	return RenderHintBar("a", "attend", "d", "decline", "r", "reset", "s", "share", KeyTab, "details/location", KeyEsc, "back")
}
