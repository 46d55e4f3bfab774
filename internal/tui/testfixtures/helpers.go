package testfixtures

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
)

// Initialize test environment
func init() {
	// Ascii profile keeps rendered views free of color codes across platforms
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// FixedNow sits between the past and upcoming catalog fixtures:
// events 1, 3 and 6 are upcoming, 2, 4 and 5 are past.
var FixedNow = time.Date(2024, 8, 1, 15, 0, 0, 0, time.UTC)

// Clock returns FixedNow.
func Clock() time.Time {
	return FixedNow
}

// Plain strips ANSI sequences so views can be matched as text.
func Plain(s string) string {
	return ansi.Strip(s)
}

// Contains reports whether the plain text of s contains substr.
func Contains(s, substr string) bool {
	return strings.Contains(Plain(s), substr)
}
