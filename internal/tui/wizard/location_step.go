package wizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/tui/theme"
)

// Location tabs
const (
	locationTabVenue = iota
	locationTabManual
)

var locationTabs = []string{"⌖ Find a Venue", "✎ Enter Manually"}

// Focus slots. Slot 0 is always the tab row; the rest depend on the tab.
const (
	locationFocusTabs = iota
	locationFocusFirst
	locationFocusSecond
	locationFocusCount
)

// VenueSearcher finds venues by name.
type VenueSearcher interface {
	SearchVenues(term string) []catalog.Venue
}

// LocationStep picks a venue from the catalog or takes one typed by hand.
// Both tabs write the same venue name and address.
type LocationStep struct {
	venues   VenueSearcher
	tab      int
	focus    int // -1 when blurred
	search   textinput.Model
	results  []catalog.Venue
	cursor   int
	selected string // Venue id picked from the list
	venue    textinput.Model
	address  textinput.Model
	width    int
	height   int
}

// NewLocationStep creates the location step over a venue source.
func NewLocationStep(venues VenueSearcher) *LocationStep {
	search := textinput.New()
	search.Placeholder = "Search for venues..."

	venue := textinput.New()
	venue.Placeholder = "Enter venue name"

	address := textinput.New()
	address.Placeholder = "Enter full address"

	l := &LocationStep{
		venues:  venues,
		focus:   -1,
		search:  search,
		venue:   venue,
		address: address,
	}
	l.refresh()
	l.SetSize(60, 20)
	return l
}

// Init focuses the first field.
func (l *LocationStep) Init() tea.Cmd {
	return l.FocusFirst()
}

// FocusFirst focuses the tab row.
func (l *LocationStep) FocusFirst() tea.Cmd {
	return l.focusSlot(locationFocusTabs)
}

// FocusLast focuses the last slot of the active tab.
func (l *LocationStep) FocusLast() tea.Cmd {
	return l.focusSlot(locationFocusCount - 1)
}

// Blur removes focus from every field.
func (l *LocationStep) Blur() {
	l.search.Blur()
	l.venue.Blur()
	l.address.Blur()
	l.focus = -1
}

func (l *LocationStep) focusSlot(slot int) tea.Cmd {
	l.Blur()
	l.focus = slot
	switch {
	case slot == locationFocusFirst && l.tab == locationTabVenue:
		return l.search.Focus()
	case slot == locationFocusFirst && l.tab == locationTabManual:
		return l.venue.Focus()
	case slot == locationFocusSecond && l.tab == locationTabManual:
		return l.address.Focus()
	}
	return nil
}

func (l *LocationStep) refresh() {
	l.results = l.venues.SearchVenues(l.search.Value())
	if l.cursor >= len(l.results) {
		l.cursor = max(0, len(l.results)-1)
	}
}

// Select picks a venue and copies its name and address into the location.
func (l *LocationStep) Select(v catalog.Venue) {
	l.selected = v.ID
	l.venue.SetValue(v.Name)
	l.address.SetValue(v.Address)
}

// Update handles messages for the location step.
func (l *LocationStep) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab":
			if l.focus < locationFocusCount-1 {
				return l.focusSlot(l.focus + 1)
			}
			return func() tea.Msg { return TabExitForwardMsg{} }
		case "shift+tab":
			if l.focus > 0 {
				return l.focusSlot(l.focus - 1)
			}
			return func() tea.Msg { return TabExitBackwardMsg{} }
		}

		switch {
		case l.focus == locationFocusTabs:
			switch key.String() {
			case "left", "h":
				l.tab = locationTabVenue
			case "right", "l":
				l.tab = locationTabManual
			}
			return nil

		case l.focus == locationFocusSecond && l.tab == locationTabVenue:
			switch key.String() {
			case "up", "k":
				if l.cursor > 0 {
					l.cursor--
				}
			case "down", "j":
				if l.cursor < len(l.results)-1 {
					l.cursor++
				}
			case "enter", "space", " ":
				if len(l.results) > 0 {
					l.Select(l.results[l.cursor])
				}
			}
			return nil
		}
	}

	var cmd tea.Cmd
	switch {
	case l.focus == locationFocusFirst && l.tab == locationTabVenue:
		before := l.search.Value()
		l.search, cmd = l.search.Update(msg)
		if l.search.Value() != before {
			l.refresh()
		}
	case l.focus == locationFocusFirst && l.tab == locationTabManual:
		before := l.venue.Value()
		l.venue, cmd = l.venue.Update(msg)
		if l.venue.Value() != before {
			l.selected = ""
		}
	case l.focus == locationFocusSecond && l.tab == locationTabManual:
		before := l.address.Value()
		l.address, cmd = l.address.Update(msg)
		if l.address.Value() != before {
			l.selected = ""
		}
	}
	return cmd
}

// View renders the location step.
func (l *LocationStep) View() string {
	s := theme.Current().S()
	w := l.width - 4

	var b strings.Builder
	b.WriteString(s.PageTitle.Render("Event Location") + "\n")
	b.WriteString(s.Muted.Render("Choose where your event will take place.") + "\n\n")

	tabs := renderTabs(locationTabs, l.tab)
	if l.focus == locationFocusTabs {
		tabs = s.CardFocused.Render(tabs)
	} else {
		tabs = s.Card.Render(tabs)
	}
	b.WriteString(tabs + "\n")

	if l.tab == locationTabVenue {
		b.WriteString(renderField("Search", l.search.View(), l.focus == locationFocusFirst, w) + "\n")
		b.WriteString(l.renderResults(w) + "\n")
	} else {
		b.WriteString(renderField("Venue Name", l.venue.View(), l.focus == locationFocusFirst, w) + "\n")
		b.WriteString(renderField("Address", l.address.View(), l.focus == locationFocusSecond, w) + "\n")
		b.WriteString(s.Muted.Render("⌖ Locate on Map (Coming Soon)") + "\n")
	}

	b.WriteString(l.renderSummary(w) + "\n\n")

	switch {
	case l.focus == locationFocusTabs:
		b.WriteString(renderHintBar("←/→", "switch tab", "tab", "next field", "esc", "buttons"))
	case l.focus == locationFocusSecond && l.tab == locationTabVenue:
		b.WriteString(renderHintBar("↑/↓", "move", "enter", "select venue", "tab", "buttons"))
	default:
		b.WriteString(renderHintBar("tab", "next field", "shift+tab", "previous", "esc", "buttons"))
	}
	return b.String()
}

func (l *LocationStep) renderResults(width int) string {
	s := theme.Current().S()
	box := s.Card
	if l.focus == locationFocusSecond {
		box = s.CardFocused
	}
	if width > 0 {
		box = box.Width(width)
	}

	if len(l.results) == 0 {
		return box.Render(s.Muted.Render("No venues found matching your search."))
	}

	rows := make([]string, 0, len(l.results))
	for i, v := range l.results {
		marker := "  "
		if l.focus == locationFocusSecond && i == l.cursor {
			marker = "▸ "
		}
		check := ""
		if v.ID == l.selected {
			check = " " + s.Success.Render("✓")
		}
		rows = append(rows,
			marker+s.Bold.Render(v.Name)+check+"\n"+
				"  "+s.Muted.Render(v.Address)+"\n"+
				"  "+s.Muted.Render(fmt.Sprintf("Capacity: %d people", v.Capacity)))
	}
	return box.Render(strings.Join(rows, "\n"))
}

func (l *LocationStep) renderSummary(width int) string {
	s := theme.Current().S()
	box := s.Card
	if width > 0 {
		box = box.Width(width)
	}

	venue := l.Venue()
	body := s.Bold.Render("Selected Location") + "\n"
	if venue == "" {
		body += s.Muted.Render("No location selected yet")
	} else {
		body += s.Text.Render(venue)
		if addr := l.Address(); addr != "" {
			body += "\n" + s.Muted.Render(addr)
		}
	}
	return box.Render(body)
}

// SetSize updates the size of the location step.
func (l *LocationStep) SetSize(width, height int) {
	l.width = width
	l.height = height

	inner := width - 8
	if inner < 20 {
		inner = 20
	}
	l.search.SetWidth(inner)
	l.venue.SetWidth(inner)
	l.address.SetWidth(inner)
}

// Venue returns the chosen venue name.
func (l *LocationStep) Venue() string {
	return strings.TrimSpace(l.venue.Value())
}

// Address returns the chosen address.
func (l *LocationStep) Address() string {
	return strings.TrimSpace(l.address.Value())
}

// Results returns the venues currently listed.
func (l *LocationStep) Results() []catalog.Venue {
	return l.results
}
