package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// When restricts events by date relative to today.
type When string

const (
	WhenAll      When = "all"
	WhenUpcoming When = "upcoming"
	WhenPast     When = "past"
)

// ParseWhen parses a date filter string. Empty input means WhenAll.
func ParseWhen(s string) (When, error) {
	switch When(strings.ToLower(strings.TrimSpace(s))) {
	case "", WhenAll:
		return WhenAll, nil
	case WhenUpcoming:
		return WhenUpcoming, nil
	case WhenPast:
		return WhenPast, nil
	default:
		return WhenAll, fmt.Errorf("invalid filter: %s (must be all, upcoming, or past)", s)
	}
}

// Next returns the filter that follows w in the all → upcoming → past cycle.
func (w When) Next() When {
	switch w {
	case WhenAll:
		return WhenUpcoming
	case WhenUpcoming:
		return WhenPast
	default:
		return WhenAll
	}
}

// Label returns the select-box label for w.
func (w When) Label() string {
	switch w {
	case WhenUpcoming:
		return "Upcoming Events"
	case WhenPast:
		return "Past Events"
	default:
		return "All Events"
	}
}

// Query narrows an event list.
type Query struct {
	Search string // Case-insensitive title substring
	When   When
}

// isUpcoming reports whether an event falls on or after the day containing now.
func isUpcoming(e Event, now time.Time) bool {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	return !e.Day(loc).Before(today)
}

// Filter returns the events matching q, preserving input order.
func Filter(events []Event, q Query, now time.Time) []Event {
	needle := strings.ToLower(q.Search)
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if !strings.Contains(strings.ToLower(e.Title), needle) {
			continue
		}
		switch q.When {
		case WhenUpcoming:
			if !isUpcoming(e, now) {
				continue
			}
		case WhenPast:
			if isUpcoming(e, now) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// SortByDate returns a copy of events ordered by date, earliest first.
// Events on the same day keep their relative order.
func SortByDate(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// TimelineView is a date-ordered split of events around today.
type TimelineView struct {
	Upcoming []Event
	Past     []Event
}

// Timeline sorts events by date and splits them into upcoming and past.
func Timeline(events []Event, now time.Time) TimelineView {
	var tv TimelineView
	for _, e := range SortByDate(events) {
		if isUpcoming(e, now) {
			tv.Upcoming = append(tv.Upcoming, e)
		} else {
			tv.Past = append(tv.Past, e)
		}
	}
	return tv
}
