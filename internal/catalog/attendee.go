package catalog

import (
	"fmt"
	"strings"
)

// RSVPStatus is an attendee's response to an invitation.
type RSVPStatus string

const (
	RSVPAttending RSVPStatus = "attending"
	RSVPDeclined  RSVPStatus = "declined"
	RSVPPending   RSVPStatus = "pending"
)

// ParseRSVPStatus parses an RSVP status string
func ParseRSVPStatus(s string) (RSVPStatus, error) {
	switch RSVPStatus(strings.ToLower(strings.TrimSpace(s))) {
	case RSVPAttending:
		return RSVPAttending, nil
	case RSVPDeclined:
		return RSVPDeclined, nil
	case RSVPPending:
		return RSVPPending, nil
	default:
		return RSVPPending, fmt.Errorf("invalid rsvp status: %s", s)
	}
}

// Label returns the capitalized status for display.
func (s RSVPStatus) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Message is the confirmation shown after the user changes their own RSVP.
func (s RSVPStatus) Message() string {
	switch s {
	case RSVPAttending:
		return "You're attending this event!"
	case RSVPDeclined:
		return "You've declined this event."
	default:
		return "Your RSVP status has been reset."
	}
}

// Attendee is a person invited to an event.
type Attendee struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Avatar string     `json:"avatar,omitempty"`
	Status RSVPStatus `json:"status"`
	Note   string     `json:"note,omitempty"`
}

// Initials returns the first two letters of the attendee name, upper-cased.
func (a Attendee) Initials() string {
	return initials(a.Name)
}

// AttendeeSummary counts attendees per RSVP status.
type AttendeeSummary struct {
	Attending int `json:"attending"`
	Pending   int `json:"pending"`
	Declined  int `json:"declined"`
}

// Total returns the number of attendees counted.
func (s AttendeeSummary) Total() int {
	return s.Attending + s.Pending + s.Declined
}

// Summarize counts attendees per status. Unknown statuses are ignored.
func Summarize(attendees []Attendee) AttendeeSummary {
	var s AttendeeSummary
	for _, a := range attendees {
		switch a.Status {
		case RSVPAttending:
			s.Attending++
		case RSVPPending:
			s.Pending++
		case RSVPDeclined:
			s.Declined++
		}
	}
	return s
}
