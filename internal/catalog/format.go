package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// DefaultBaseURL is the public site address used for share and invite links.
const DefaultBaseURL = "https://eventify.app"

// inviteCode is the placeholder invitation code handed out by the create flow.
const inviteCode = "abc123"

// FormatDate renders a YYYY-MM-DD date as "September 15, 2024".
// Unparseable input is returned unchanged.
func FormatDate(date string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("January 2, 2006")
}

// FormatLine renders an event on one line, as listed by the CLI and the
// MCP list-events tool.
func FormatLine(e Event) string {
	return fmt.Sprintf("%s: %s | %s %s | %s | %d attending",
		e.ID, e.Title, FormatDate(e.Date), e.Time, e.Location, e.Attendees)
}

// DayAndMonth returns the day number and short upper-case month of a date,
// e.g. ("15", "SEP"). Unparseable input yields empty strings.
func DayAndMonth(date string) (string, string) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", ""
	}
	return fmt.Sprintf("%d", d.Day()), strings.ToUpper(d.Format("Jan"))
}

// TimeOptions returns every quarter hour of the day as "HH:MM".
func TimeOptions() []string {
	out := make([]string, 0, 24*4)
	for i := 0; i < 24*4; i++ {
		out = append(out, fmt.Sprintf("%02d:%02d", i/4, (i%4)*15))
	}
	return out
}

// ShareURL returns the public link for an event.
func ShareURL(baseURL string, e Event) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	s := slug.Make(e.Title)
	if s == "" {
		return fmt.Sprintf("%s/events/%s", strings.TrimSuffix(baseURL, "/"), e.ID)
	}
	return fmt.Sprintf("%s/events/%s-%s", strings.TrimSuffix(baseURL, "/"), e.ID, s)
}

// InviteURL returns the invitation link shown in the attendees step.
func InviteURL(baseURL string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return fmt.Sprintf("%s/invite/%s", strings.TrimSuffix(baseURL, "/"), inviteCode)
}
