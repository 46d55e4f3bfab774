package ics

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	c := catalog.Default()
	event, err := c.Find("1")
	require.NoError(t, err)

	stamp := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	out, err := Render(event, c.Attendees(), time.UTC, stamp)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	require.Contains(t, out, "UID:1@eventify.app")
	require.Contains(t, out, "SUMMARY:"+event.Title)
	require.Contains(t, out, "ACCEPTED")
	require.Contains(t, out, "DECLINED")
	require.Contains(t, out, "NEEDS-ACTION")

	// Round trip through the parser to check the document is well formed.
	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 1)

	ve := cal.Events()[0]
	start, err := ve.GetStartAt()
	require.NoError(t, err)
	end, err := ve.GetEndAt()
	require.NoError(t, err)
	require.Equal(t, DefaultDuration, end.Sub(start))

	want, err := event.StartsAt(time.UTC)
	require.NoError(t, err)
	require.True(t, want.Equal(start))
}

func TestRender_SkipsAttendeesWithoutEmail(t *testing.T) {
	event, err := catalog.Default().Find("2")
	require.NoError(t, err)

	out, err := Render(event, []catalog.Attendee{{ID: "x", Name: "No Mail", Status: catalog.RSVPAttending}}, time.UTC, time.Now())
	require.NoError(t, err)
	require.NotContains(t, out, "ATTENDEE")
}

func TestRender_BadDate(t *testing.T) {
	_, err := Render(catalog.Event{ID: "9", Date: "soon", Time: "10:00 AM"}, nil, time.UTC, time.Now())
	require.Error(t, err)
}
