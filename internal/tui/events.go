package tui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/state"
	"github.com/mark3labs/eventify/internal/tui/theme"
)

// Events page tabs
const (
	eventsTabAll = iota
	eventsTabMine
)

// EventsView selects how the events page lays out events.
type EventsView int

const (
	ViewGrid EventsView = iota
	ViewTimeline
)

// String returns the view label.
func (v EventsView) String() string {
	if v == ViewTimeline {
		return "Timeline"
	}
	return "Grid"
}

// eventsHeaderHeight is the number of rows above the list.
const eventsHeaderHeight = 8

// eventRow is a row of event cards in the grid, or one timeline entry.
type eventRow struct {
	page   *EventsPage
	events []catalog.Event
	first  int // Index of events[0] in the page's visible list
}

func (r eventRow) ID() string { return r.events[0].ID }

func (r eventRow) Render(width int, selected bool) string {
	p := r.page
	if p.view == ViewTimeline {
		return renderTimelineEntry(r.events[0], width, p.timelineTab == 0, selected)
	}
	cols := len(r.events)
	if p.cols > 0 {
		cols = p.cols
	}
	cardWidth := (width - (cols - 1)) / cols
	cards := make([]string, 0, len(r.events))
	for i, e := range r.events {
		cards = append(cards, renderEventCard(e, cardWidth, selected && r.first+i == p.cursor))
	}
	return joinGrid(cards, cols)
}

// EventsPage lists events with search, an upcoming/past filter, an All/My
// Events tab and a grid or timeline layout.
type EventsPage struct {
	catalog *catalog.Catalog
	now     func() time.Time

	tab         int
	view        EventsView
	when        catalog.When
	timelineTab int // 0 upcoming, 1 past
	search      textinput.Model
	searching   bool

	visible []catalog.Event
	cursor  int // Index into visible
	cols    int
	list    *ScrollList
	width   int
	height  int
}

// NewEventsPage creates the events page.
func NewEventsPage(c *catalog.Catalog, now func() time.Time) *EventsPage {
	search := textinput.New()
	search.Placeholder = "Search events..."
	search.Prompt = "⌕ "

	p := &EventsPage{
		catalog: c,
		now:     now,
		when:    catalog.WhenAll,
		search:  search,
		cols:    1,
		list:    NewScrollList(0, 0),
	}
	p.list.SetSelectable(true)
	p.list.SetGap(1)
	p.refresh()
	return p
}

// Init implements Screen.
func (p *EventsPage) Init() tea.Cmd { return nil }

// Capturing implements Screen.
func (p *EventsPage) Capturing() bool { return p.searching }

// Hints implements Screen.
func (p *EventsPage) Hints() string {
	if p.searching {
		return HintSearch()
	}
	if p.view == ViewTimeline {
		return RenderHintBar(KeyUpDownJK, "move", KeyEnter, "open", "f", "upcoming/past", "v", "grid", KeyTab, "all/mine")
	}
	return HintEvents()
}

// source returns the events of the active tab.
func (p *EventsPage) source() []catalog.Event {
	if p.tab == eventsTabMine {
		return p.catalog.Mine()
	}
	return p.catalog.All()
}

// refresh recomputes the visible events and rebuilds the list rows.
func (p *EventsPage) refresh() {
	now := p.now()
	if p.view == ViewTimeline {
		tv := catalog.Timeline(p.source(), now)
		if p.timelineTab == 0 {
			p.visible = tv.Upcoming
		} else {
			p.visible = tv.Past
		}
	} else {
		p.visible = catalog.Filter(p.source(), catalog.Query{
			Search: p.search.Value(),
			When:   p.when,
		}, now)
	}
	if p.cursor >= len(p.visible) {
		p.cursor = max(0, len(p.visible)-1)
	}
	p.rebuild()
}

func (p *EventsPage) rowSize() int {
	if p.view == ViewTimeline {
		return 1
	}
	return p.cols
}

func (p *EventsPage) rebuild() {
	size := p.rowSize()
	var rows []ScrollItem
	for i := 0; i < len(p.visible); i += size {
		end := min(i+size, len(p.visible))
		rows = append(rows, eventRow{page: p, events: p.visible[i:end], first: i})
	}
	p.list.SetItems(rows)
	p.list.SetSelected(p.cursor / size)
}

func (p *EventsPage) moveCursor(delta int) {
	if len(p.visible) == 0 {
		return
	}
	p.cursor = max(0, min(p.cursor+delta, len(p.visible)-1))
	p.rebuild()
}

// Visible returns the events currently listed.
func (p *EventsPage) Visible() []catalog.Event {
	return p.visible
}

// Selected returns the event under the cursor.
func (p *EventsPage) Selected() (catalog.Event, bool) {
	if p.cursor < 0 || p.cursor >= len(p.visible) {
		return catalog.Event{}, false
	}
	return p.visible[p.cursor], true
}

// When returns the active date filter.
func (p *EventsPage) When() catalog.When { return p.when }

// View returns the active layout.
func (p *EventsPage) ViewMode() EventsView { return p.view }

// Mine reports whether the My Events tab is active.
func (p *EventsPage) Mine() bool { return p.tab == eventsTabMine }

// Prefs returns the page settings worth restoring on the next visit.
func (p *EventsPage) Prefs() state.EventsState {
	view := "grid"
	if p.view == ViewTimeline {
		view = "timeline"
	}
	return state.EventsState{View: view, Mine: p.Mine(), When: string(p.when)}
}

// Restore applies saved page settings. Invalid values are ignored.
func (p *EventsPage) Restore(prefs state.EventsState) {
	p.view = ViewGrid
	if prefs.View == "timeline" {
		p.view = ViewTimeline
	}
	p.tab = eventsTabAll
	if prefs.Mine {
		p.tab = eventsTabMine
	}
	if when, err := catalog.ParseWhen(prefs.When); err == nil {
		p.when = when
	}
	p.cursor = 0
	p.refresh()
}

// Update handles messages for the events page.
func (p *EventsPage) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if p.searching {
			var cmd tea.Cmd
			p.search, cmd = p.search.Update(msg)
			return cmd
		}
		return nil
	}

	if p.searching {
		switch key.String() {
		case "esc", "enter":
			p.searching = false
			p.search.Blur()
			return nil
		}
		before := p.search.Value()
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		if p.search.Value() != before {
			p.cursor = 0
			p.refresh()
		}
		return cmd
	}

	switch key.String() {
	case "/":
		if p.view == ViewGrid {
			p.searching = true
			return p.search.Focus()
		}
	case "f":
		if p.view == ViewTimeline {
			p.timelineTab = 1 - p.timelineTab
		} else {
			p.when = p.when.Next()
		}
		p.cursor = 0
		p.refresh()
	case "v":
		if p.view == ViewGrid {
			p.view = ViewTimeline
		} else {
			p.view = ViewGrid
		}
		p.cursor = 0
		p.refresh()
	case "tab", "shift+tab":
		p.tab = 1 - p.tab
		p.cursor = 0
		p.refresh()
	case "esc":
		if p.search.Value() != "" {
			p.search.SetValue("")
			p.refresh()
		}
	case "up", "k":
		p.moveCursor(-p.rowSize())
	case "down", "j":
		p.moveCursor(p.rowSize())
	case "left":
		p.moveCursor(-1)
	case "right":
		p.moveCursor(1)
	case "enter":
		if e, ok := p.Selected(); ok {
			return Navigate(RouteDetail(e.ID))
		}
	default:
		return p.list.Update(msg)
	}
	return nil
}

// SetSize implements Screen.
func (p *EventsPage) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.cols = 1
	if width >= CompactWidthBreakpoint {
		p.cols = 2
	}
	p.search.SetWidth(max(10, width/2-6))
	p.list.SetSize(width, max(0, height-eventsHeaderHeight))
	p.rebuild()
}

// View renders the events page.
func (p *EventsPage) View() string {
	s := theme.Current().S()

	var b strings.Builder
	b.WriteString(s.PageTitle.Render("Events") + "\n")
	b.WriteString(s.Muted.Render("Browse and discover upcoming events or check your event timeline.") + "\n\n")

	tabs := renderTabs([]string{"All Events", "My Events"}, p.tab)
	views := renderTabs([]string{"≡ Grid", "◷ Timeline"}, int(p.view))
	gap := p.width - lipgloss.Width(tabs) - lipgloss.Width(views)
	b.WriteString(tabs + strings.Repeat(" ", max(1, gap)) + views + "\n")

	if p.tab == eventsTabMine && p.view == ViewGrid {
		b.WriteString(s.Bold.Render("Events you're hosting or attending") + "\n")
	} else {
		b.WriteString("\n")
	}

	if p.view == ViewGrid {
		searchBox := s.Input
		if p.searching {
			searchBox = s.InputActive
		}
		half := max(10, p.width/2-1)
		filter := s.Input.Width(half).Render("Filter: " + p.when.Label() + "  " + s.Muted.Render("[f]"))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, searchBox.Width(half).Render(p.search.View()), " ", filter) + "\n")
	} else {
		timeline := renderTabs([]string{"◷ Upcoming", "✓ Past"}, p.timelineTab)
		b.WriteString("\n" + timeline + "\n\n")
	}

	if len(p.visible) == 0 {
		empty := "No events found. Try adjusting your search."
		if p.view == ViewTimeline {
			empty = "No upcoming events"
			if p.timelineTab == 1 {
				empty = "No past events"
			}
		}
		b.WriteString("\n" + lipgloss.NewStyle().Width(p.width).Align(lipgloss.Center).Render(s.Muted.Render(empty)))
		return b.String()
	}

	b.WriteString(p.list.View())
	return b.String()
}
