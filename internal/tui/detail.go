package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/logger"
	"github.com/mark3labs/eventify/internal/nats"
	"github.com/mark3labs/eventify/internal/tui/theme"
)

// Detail tabs
const (
	detailTabDetails = iota
	detailTabLocation
)

// detailHeaderHeight is the number of rows above the scrolling body.
const detailHeaderHeight = 9

// rsvpLoadedMsg carries the stored RSVP for an event.
type rsvpLoadedMsg struct {
	eventID string
	status  catalog.RSVPStatus
}

// DetailPage shows one event with RSVP and share actions.
type DetailPage struct {
	ctx       context.Context
	catalog   *catalog.Catalog
	recorder  Recorder
	clipboard func(string) error
	baseURL   string

	id        string
	event     catalog.Event
	found     bool
	rsvp      catalog.RSVPStatus
	touched   bool // RSVP changed here; a late stored value must not override it
	tab       int
	attendees []catalog.Attendee

	list   *ScrollList
	width  int
	height int
}

// NewDetailPage creates the detail page for an event id. recorder may be nil.
func NewDetailPage(ctx context.Context, c *catalog.Catalog, id string, recorder Recorder, clipboard func(string) error, baseURL string) *DetailPage {
	d := &DetailPage{
		ctx:       ctx,
		catalog:   c,
		recorder:  recorder,
		clipboard: clipboard,
		baseURL:   baseURL,
		id:        id,
		rsvp:      catalog.RSVPPending,
		attendees: c.Attendees(),
		list:      NewScrollList(0, 0),
	}

	e, err := c.Find(id)
	switch {
	case errors.Is(err, catalog.ErrEventNotFound):
		logger.Warn("Event detail requested for unknown event: %s", id)
	case err != nil:
		logger.Error("Failed to look up event %s: %v", id, err)
	default:
		d.event = e
		d.found = true
	}

	d.list.SetGap(1)
	d.rebuild()
	return d
}

// Init loads the stored RSVP for the event.
func (d *DetailPage) Init() tea.Cmd {
	if !d.found || d.recorder == nil {
		return nil
	}
	ctx, r, id := d.ctx, d.recorder, d.id
	return func() tea.Msg {
		feed, err := r.LoadKind(ctx, nats.KindRSVP)
		if err != nil {
			logger.Warn("Failed to load RSVPs: %v", err)
			return nil
		}
		status, ok := feed.RSVP[id]
		if !ok {
			return nil
		}
		return rsvpLoadedMsg{eventID: id, status: status}
	}
}

// Capturing implements Screen.
func (d *DetailPage) Capturing() bool { return false }

// Hints implements Screen.
func (d *DetailPage) Hints() string {
	if !d.found {
		return RenderHintBar(KeyEsc, "back to events")
	}
	return HintDetail()
}

// Found reports whether the event exists.
func (d *DetailPage) Found() bool { return d.found }

// Event returns the event shown.
func (d *DetailPage) Event() catalog.Event { return d.event }

// RSVP returns the current user's RSVP.
func (d *DetailPage) RSVP() catalog.RSVPStatus { return d.rsvp }

// SetRSVP changes the user's RSVP, shows the confirmation toast and stores it.
func (d *DetailPage) SetRSVP(status catalog.RSVPStatus) tea.Cmd {
	if !d.found {
		return nil
	}
	d.rsvp = status
	d.touched = true
	cmds := []tea.Cmd{toastCmd(status.Message())}
	if d.recorder != nil {
		ctx, r, id := d.ctx, d.recorder, d.id
		cmds = append(cmds, func() tea.Msg {
			if err := r.RSVP(ctx, id, status); err != nil {
				logger.Warn("Failed to record RSVP for %s: %v", id, err)
			}
			return nil
		})
	}
	return tea.Batch(cmds...)
}

// Share copies the event link to the clipboard. Without a clipboard the
// link is shown in the toast instead.
func (d *DetailPage) Share() tea.Cmd {
	if !d.found {
		return nil
	}
	url := catalog.ShareURL(d.baseURL, d.event)
	if err := d.clipboard(url); err != nil {
		logger.Warn("Clipboard unavailable: %v", err)
		return toastCmd("Event link: " + url)
	}
	cmds := []tea.Cmd{toastCmd("Event link copied to clipboard!")}
	if d.recorder != nil {
		ctx, r, id := d.ctx, d.recorder, d.id
		cmds = append(cmds, func() tea.Msg {
			if err := r.Shared(ctx, id, url); err != nil {
				logger.Warn("Failed to record share of %s: %v", id, err)
			}
			return nil
		})
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the detail page.
func (d *DetailPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case rsvpLoadedMsg:
		if msg.eventID == d.id && !d.touched {
			d.rsvp = msg.status
		}
		return nil

	case tea.KeyPressMsg:
		if !d.found {
			switch msg.String() {
			case "esc", "enter", "backspace":
				return Navigate(RouteEvents)
			}
			return nil
		}

		switch msg.String() {
		case "a":
			return d.SetRSVP(catalog.RSVPAttending)
		case "d":
			return d.SetRSVP(catalog.RSVPDeclined)
		case "r":
			return d.SetRSVP(catalog.RSVPPending)
		case "s":
			return d.Share()
		case "tab", "shift+tab":
			d.tab = 1 - d.tab
			d.rebuild()
			return nil
		case "esc", "backspace":
			return Navigate(RouteEvents)
		}
		return d.list.Update(msg)
	}
	return nil
}

// SetSize implements Screen.
func (d *DetailPage) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.list.SetSize(width, max(0, height-detailHeaderHeight))
}

func (d *DetailPage) rebuild() {
	if !d.found {
		d.list.SetItems(nil)
		return
	}
	items := []ScrollItem{}
	if d.tab == detailTabDetails {
		items = append(items,
			section{id: "about", render: d.renderAbout},
			section{id: "schedule", render: d.renderSchedule},
			section{id: "organizer", render: d.renderOrganizer},
		)
	} else {
		items = append(items, section{id: "location", render: d.renderLocation})
	}
	items = append(items, section{id: "attendees", render: d.renderAttendees})
	d.list.SetItems(items)
	d.list.GotoTop()
}

// View renders the detail page.
func (d *DetailPage) View() string {
	s := theme.Current().S()
	if !d.found {
		center := lipgloss.NewStyle().Width(d.width).Align(lipgloss.Center)
		return center.Render(lipgloss.JoinVertical(lipgloss.Center,
			"",
			s.PageTitle.Render("Event Not Found"),
			s.Muted.Render("The event you're looking for doesn't exist or has been removed."),
			"",
			renderButton("esc", "Back to Events", true),
		))
	}

	var b strings.Builder
	b.WriteString(s.PageTitle.Render(d.event.Title) + "\n")
	b.WriteString(s.Muted.Render(fmt.Sprintf("▦ %s   ◷ %s   ⌖ %s",
		catalog.FormatDate(d.event.Date), d.event.Time, d.event.Location)) + "\n")

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		renderButton("a", "Attending", d.rsvp == catalog.RSVPAttending), " ",
		renderButton("d", "Decline", d.rsvp == catalog.RSVPDeclined), " ",
		renderButton("s", "⇪ Share", false),
	)
	status := s.Muted.Render("Your RSVP: ") + d.rsvpBadge()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, buttons, "  ", status) + "\n\n")
	b.WriteString(renderTabs([]string{"Details", "Location"}, d.tab) + "\n\n")
	b.WriteString(d.list.View())
	return b.String()
}

func (d *DetailPage) rsvpBadge() string {
	s := theme.Current().S()
	switch d.rsvp {
	case catalog.RSVPAttending:
		return s.BadgeAttending.Render(d.rsvp.Label())
	case catalog.RSVPDeclined:
		return s.BadgeDeclined.Render(d.rsvp.Label())
	default:
		return s.BadgePending.Render(catalog.RSVPPending.Label())
	}
}

func (d *DetailPage) renderAbout(width int) string {
	s := theme.Current().S()
	return s.Bold.Render("About this event") + "\n" + renderMarkdown(d.catalog.About(d.event), width)
}

func (d *DetailPage) renderSchedule(width int) string {
	s := theme.Current().S()
	lines := []string{s.Bold.Render("Schedule")}
	for _, item := range d.catalog.Schedule(d.event) {
		lines = append(lines, s.Brand.Render(fmt.Sprintf("%-9s", item.Time))+" "+s.Text.Render(item.Title))
	}
	return strings.Join(lines, "\n")
}

func (d *DetailPage) renderOrganizer(width int) string {
	s := theme.Current().S()
	org := d.event.Organizer
	avatar := s.BadgePending.Render(org.Initials())
	return s.Bold.Render("Organizer") + "\n" +
		avatar + " " + s.Text.Render(org.Name) + "\n" +
		"   " + s.Muted.Render("Event Organizer")
}

func (d *DetailPage) renderLocation(width int) string {
	s := theme.Current().S()
	return s.Card.Width(width).Render(
		s.Bold.Render("Event Location") + "\n" +
			s.Text.Render(d.event.Location) + "\n" +
			s.Muted.Render(d.catalog.StreetAddress(d.event)) + "\n\n" +
			s.Muted.Render("⌖ Open in Maps"))
}

func (d *DetailPage) renderAttendees(width int) string {
	s := theme.Current().S()
	sum := catalog.Summarize(d.attendees)

	stat := func(n int, label string) string {
		return s.Card.Width(max(12, (width-2)/3)).Align(lipgloss.Center).Render(
			s.PageTitle.Render(fmt.Sprintf("%d", n)) + "\n" + s.Muted.Render(label))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat(sum.Attending, "Attending"), " ", stat(sum.Pending, "Pending"), " ", stat(sum.Declined, "Declined"))

	rows := []string{
		s.Bold.Render("☺ Attendees"),
		s.Muted.Render(fmt.Sprintf("%d people are attending this event", d.event.Attendees)),
		stats,
		s.Bold.Render("All Attendees"),
	}
	for _, a := range d.attendees {
		var badge string
		switch a.Status {
		case catalog.RSVPAttending:
			badge = s.BadgeAttending.Render(a.Status.Label())
		case catalog.RSVPDeclined:
			badge = s.BadgeDeclined.Render(a.Status.Label())
		default:
			badge = s.BadgePending.Render(a.Status.Label())
		}
		name := s.Text.Render(fmt.Sprintf("%-3s %-24s", a.Initials(), a.Name))
		rows = append(rows, name+" "+s.Muted.Render(fmt.Sprintf("%-28s", a.Email))+" "+badge)
	}
	return strings.Join(rows, "\n")
}

// toastCmd returns a command that shows a toast.
func toastCmd(text string) tea.Cmd {
	return func() tea.Msg { return ShowToastMsg{Text: text} }
}
