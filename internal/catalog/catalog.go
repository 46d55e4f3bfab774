// Package catalog holds the static event, attendee and venue fixtures and the
// read-only queries the UI runs over them.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEventNotFound is returned when an event id does not exist in the catalog.
var ErrEventNotFound = errors.New("event not found")

// DateLayout is the layout of Event.Date.
const DateLayout = "2006-01-02"

// Organizer is the person or group hosting an event.
type Organizer struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Initials returns the first two letters of the organizer name, upper-cased.
func (o Organizer) Initials() string {
	return initials(o.Name)
}

// Event is a catalog entry.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Time      string    `json:"time"` // Display label, e.g. "09:00 AM"
	Location  string    `json:"location"`
	Image     string    `json:"image,omitempty"`
	Attendees int       `json:"attendees"`
	Organizer Organizer `json:"organizer"`
}

// Day returns the event date at midnight in loc.
// Unparseable dates yield the zero time.
func (e Event) Day(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(DateLayout, e.Date, loc)
	if err != nil {
		return time.Time{}
	}
	return d
}

// StartsAt combines Date and the Time label into a single instant in loc.
func (e Event) StartsAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout+" 03:04 PM", e.Date+" "+e.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing start of event %s: %w", e.ID, err)
	}
	return t, nil
}

// Catalog serves events and attendees from memory.
type Catalog struct {
	events    []Event
	attendees []Attendee
	venues    []Venue
}

// New creates a catalog over the given data.
func New(events []Event, attendees []Attendee, venues []Venue) *Catalog {
	return &Catalog{
		events:    events,
		attendees: attendees,
		venues:    venues,
	}
}

// Default returns a catalog backed by the built-in fixtures.
func Default() *Catalog {
	return New(fixtureEvents(), fixtureAttendees(), fixtureVenues())
}

// All returns every event in catalog order.
func (c *Catalog) All() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// myEventsCount is how many catalog events count as the user's own.
const myEventsCount = 3

// Mine returns the events the current user is hosting or attending.
func (c *Catalog) Mine() []Event {
	n := myEventsCount
	if n > len(c.events) {
		n = len(c.events)
	}
	out := make([]Event, n)
	copy(out, c.events[:n])
	return out
}

// Featured returns the events highlighted on the home page.
func (c *Catalog) Featured() []Event {
	return c.Mine()
}

// Find returns the event with the given id.
func (c *Catalog) Find(id string) (Event, error) {
	for _, e := range c.events {
		if e.ID == id {
			return e, nil
		}
	}
	return Event{}, fmt.Errorf("%w: %q", ErrEventNotFound, id)
}

// Attendees returns the attendee list shown on every event page.
func (c *Catalog) Attendees() []Attendee {
	out := make([]Attendee, len(c.attendees))
	copy(out, c.attendees)
	return out
}

// Venues returns all bookable venues.
func (c *Catalog) Venues() []Venue {
	out := make([]Venue, len(c.venues))
	copy(out, c.venues)
	return out
}

// SearchVenues returns venues whose name contains term, ignoring case.
// An empty term matches every venue.
func (c *Catalog) SearchVenues(term string) []Venue {
	needle := strings.ToLower(term)
	var out []Venue
	for _, v := range c.venues {
		if strings.Contains(strings.ToLower(v.Name), needle) {
			out = append(out, v)
		}
	}
	return out
}

func initials(name string) string {
	r := []rune(name)
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}
