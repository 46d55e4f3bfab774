// Package ics renders catalog events as iCalendar documents.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/mark3labs/eventify/internal/catalog"
)

// DefaultDuration is used for the end time since catalog events carry only a start.
const DefaultDuration = time.Hour

const productID = "-//eventify//eventify//EN"

// UID returns the stable VEVENT uid for a catalog event.
func UID(e catalog.Event) string {
	return e.ID + "@eventify.app"
}

// Render builds a VCALENDAR with a single VEVENT for e. Attendees without an
// email are skipped. stamp is written as DTSTAMP.
func Render(e catalog.Event, attendees []catalog.Attendee, loc *time.Location, stamp time.Time) (string, error) {
	start, err := e.StartsAt(loc)
	if err != nil {
		return "", err
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	ev := cal.AddEvent(UID(e))
	ev.SetDtStampTime(stamp.UTC())
	ev.SetStartAt(start)
	ev.SetEndAt(start.Add(DefaultDuration))
	ev.SetSummary(e.Title)
	ev.SetLocation(e.Location)
	ev.SetDescription(fmt.Sprintf("Organized by %s. %d attendees.", e.Organizer.Name, e.Attendees))
	if e.Image != "" {
		ev.SetURL(e.Image)
	}
	ev.SetOrganizer("mailto:organizer@eventify.app", ical.WithCN(e.Organizer.Name))

	for _, a := range attendees {
		if a.Email == "" {
			continue
		}
		ev.AddAttendee("mailto:"+a.Email,
			ical.WithCN(a.Name),
			partStat(a.Status),
		)
	}

	return cal.Serialize(), nil
}

func partStat(s catalog.RSVPStatus) ical.ParticipationStatus {
	switch s {
	case catalog.RSVPAttending:
		return ical.ParticipationStatusAccepted
	case catalog.RSVPDeclined:
		return ical.ParticipationStatusDeclined
	default:
		return ical.ParticipationStatusNeedsAction
	}
}
