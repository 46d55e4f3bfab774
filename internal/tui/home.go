package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/tui/theme"
)

// section is a static block of a scrolling page.
type section struct {
	id     string
	render func(width int) string
}

func (s section) ID() string { return s.id }

func (s section) Render(width int, _ bool) string { return s.render(width) }

var homeFeatures = []struct{ icon, title, body string }{
	{"◷", "Intuitive Creation", "Design events with our step-by-step wizard that guides you through every detail."},
	{"☺", "Effortless RSVP", "Track attendees, send invitations, and manage responses in real-time."},
	{"▦", "Smart Timeline", "Organize your events chronologically and never miss important dates."},
}

// HomePage is the landing page: hero, features, featured events and a
// call to action.
type HomePage struct {
	featured []catalog.Event
	selected int
	list     *ScrollList
	width    int
	height   int
}

// NewHomePage creates the home page.
func NewHomePage(c *catalog.Catalog) *HomePage {
	h := &HomePage{
		featured: c.Featured(),
		list:     NewScrollList(0, 0),
	}
	h.list.SetGap(1)
	h.list.SetItems([]ScrollItem{
		section{id: "hero", render: h.renderHero},
		section{id: "features", render: h.renderFeatures},
		section{id: "upcoming", render: h.renderUpcoming},
		section{id: "cta", render: h.renderCTA},
	})
	return h
}

// Init implements Screen.
func (h *HomePage) Init() tea.Cmd { return nil }

// Capturing implements Screen.
func (h *HomePage) Capturing() bool { return false }

// Hints implements Screen.
func (h *HomePage) Hints() string {
	return RenderHintBar("←/→", "select event", KeyEnter, "open", KeyUpDownJK, "scroll")
}

// Selected returns the highlighted featured event.
func (h *HomePage) Selected() (catalog.Event, bool) {
	if h.selected < 0 || h.selected >= len(h.featured) {
		return catalog.Event{}, false
	}
	return h.featured[h.selected], true
}

// Update handles messages for the home page.
func (h *HomePage) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "right", "tab":
		if h.selected < len(h.featured)-1 {
			h.selected++
		}
		h.list.SetItems(h.list.Items())
	case "left", "shift+tab":
		if h.selected > 0 {
			h.selected--
		}
		h.list.SetItems(h.list.Items())
	case "enter":
		if e, ok := h.Selected(); ok {
			return Navigate(RouteDetail(e.ID))
		}
	default:
		return h.list.Update(msg)
	}
	return nil
}

// SetSize implements Screen.
func (h *HomePage) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.list.SetSize(width, height)
}

// View renders the visible part of the page.
func (h *HomePage) View() string {
	return h.list.View()
}

func (h *HomePage) renderHero(width int) string {
	t := theme.Current()
	s := t.S()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	title := theme.Gradient("Create Memorable Events, Effortlessly", t.Primary, t.Secondary, true)
	sub := s.PageSubtitle.Render("A beautiful platform to organize, manage, and share your events with the people who matter most.")
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		renderButton("c", "⊕ Create Event", true), " ", renderButton("e", "Browse Events", false))

	return center.Render(lipgloss.JoinVertical(lipgloss.Center, "", title, "", sub, "", buttons))
}

func (h *HomePage) renderFeatures(width int) string {
	s := theme.Current().S()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	head := center.Render(s.PageTitle.Render("Streamlined Event Management") + "\n" +
		s.Muted.Render("Everything you need to create and manage successful events in one beautiful platform."))

	cards := make([]string, 0, len(homeFeatures))
	cols := len(homeFeatures)
	if width < CompactWidthBreakpoint {
		cols = 1
	}
	cardWidth := (width - (cols - 1)) / cols
	for _, f := range homeFeatures {
		cards = append(cards, s.Card.Width(cardWidth).Render(
			s.Brand.Render(f.icon)+" "+s.Bold.Render(f.title)+"\n"+s.Muted.Render(f.body)))
	}
	return head + "\n\n" + joinGrid(cards, cols)
}

func (h *HomePage) renderUpcoming(width int) string {
	s := theme.Current().S()

	head := s.PageTitle.Render("Upcoming Events")
	link := s.Muted.Render("[e] View All →")
	gap := width - lipgloss.Width(head) - lipgloss.Width(link)
	if gap < 1 {
		gap = 1
	}
	header := head + strings.Repeat(" ", gap) + link

	cols := len(h.featured)
	if width < CompactWidthBreakpoint || cols == 0 {
		cols = 1
	}
	cardWidth := (width - (cols - 1)) / cols
	cards := make([]string, 0, len(h.featured))
	for i, e := range h.featured {
		cards = append(cards, renderEventCard(e, cardWidth, i == h.selected))
	}
	return header + "\n\n" + joinGrid(cards, cols)
}

func (h *HomePage) renderCTA(width int) string {
	s := theme.Current().S()
	body := lipgloss.JoinVertical(lipgloss.Center,
		s.PageTitle.Render("Ready to create your event?"),
		s.Muted.Render("Start planning your next gathering, conference, or celebration with our intuitive event management platform."),
		"",
		renderButton("c", "⊕ Create Event Now", true),
	)
	return s.Card.Width(width).Align(lipgloss.Center).Render(body)
}

// joinGrid lays out blocks in rows of cols.
func joinGrid(blocks []string, cols int) string {
	if cols < 1 {
		cols = 1
	}
	var rows []string
	for i := 0; i < len(blocks); i += cols {
		end := min(i+cols, len(blocks))
		row := make([]string, 0, 2*(end-i))
		for j := i; j < end; j++ {
			if j > i {
				row = append(row, " ")
			}
			row = append(row, blocks[j])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}
