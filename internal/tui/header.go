package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/eventify/internal/tui/theme"
)

// navLink is one entry of the navbar.
type navLink struct {
	key   string
	label string
	route Route
}

var navLinks = []navLink{
	{key: "h", label: "Home", route: RouteHome},
	{key: "e", label: "Events", route: RouteEvents},
}

var navCreate = navLink{key: "c", label: "⊕ Create Event", route: RouteCreate}

// navButton tracks the hit region for a clickable navbar link.
type navButton struct {
	route  Route
	startX int // inclusive
	endX   int // exclusive
}

// Header renders the navbar: brand, page links and the create button.
type Header struct {
	active  Page
	area    uv.Rectangle
	buttons []navButton
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{}
}

// SetActive marks the page whose link is highlighted.
func (h *Header) SetActive(p Page) {
	h.active = p
}

// Draw renders the navbar with a rule underneath.
func (h *Header) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	if area.Dy() < 1 {
		return nil
	}
	h.area = area
	DrawText(scr, uv.Rect(area.Min.X, area.Min.Y, area.Dx(), 1), h.build(area.Dx()))
	if area.Dy() > 1 {
		rule := theme.Current().S().HintSeparator.Render(strings.Repeat("─", area.Dx()))
		DrawText(scr, uv.Rect(area.Min.X, area.Min.Y+1, area.Dx(), 1), rule)
	}
	return nil
}

// build lays out the navbar row and records link hit regions.
func (h *Header) build(width int) string {
	s := theme.Current().S()
	h.buttons = h.buttons[:0]

	brand := " " + s.Brand.Render("▦ Eventify") + "  "
	x := lipgloss.Width(brand)

	var left strings.Builder
	left.WriteString(brand)
	for _, link := range navLinks {
		rendered := h.renderLink(link)
		w := lipgloss.Width(rendered)
		h.buttons = append(h.buttons, navButton{route: link.route, startX: x, endX: x + w})
		left.WriteString(rendered)
		x += w
	}

	create := h.renderLink(navCreate) + " "
	createWidth := lipgloss.Width(create)
	gap := width - x - createWidth
	if gap < 1 {
		return left.String()
	}
	h.buttons = append(h.buttons, navButton{route: navCreate.route, startX: x + gap, endX: x + gap + createWidth - 1})
	return left.String() + strings.Repeat(" ", gap) + create
}

func (h *Header) renderLink(link navLink) string {
	s := theme.Current().S()
	label := link.label + " " + s.HintKey.Render("["+link.key+"]")
	if link.route.Page == h.active {
		return s.NavActive.Render(link.label + " [" + link.key + "]")
	}
	return s.NavLink.Render(label)
}

// RouteAtPosition returns the route of the link at a screen position.
func (h *Header) RouteAtPosition(x, y int) (Route, bool) {
	if y != h.area.Min.Y {
		return Route{}, false
	}
	rel := x - h.area.Min.X
	for _, b := range h.buttons {
		if rel >= b.startX && rel < b.endX {
			return b.route, true
		}
	}
	return Route{}, false
}
