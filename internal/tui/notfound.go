package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/eventify/internal/logger"
	"github.com/mark3labs/eventify/internal/tui/theme"
)

// NotFoundPage is shown for unknown routes.
type NotFoundPage struct {
	path   string
	width  int
	height int
}

// NewNotFoundPage creates the 404 page and logs the missing route.
func NewNotFoundPage(path string) *NotFoundPage {
	logger.Error("404 Error: User attempted to access non-existent route: %s", path)
	return &NotFoundPage{path: path}
}

// Init implements Screen.
func (n *NotFoundPage) Init() tea.Cmd { return nil }

// Capturing implements Screen.
func (n *NotFoundPage) Capturing() bool { return false }

// Hints implements Screen.
func (n *NotFoundPage) Hints() string {
	return RenderHintBar("h", "back to home", "e", "browse events")
}

// Path returns the route that was not found.
func (n *NotFoundPage) Path() string { return n.path }

// Update handles messages for the not-found page.
func (n *NotFoundPage) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter", "esc":
			return Navigate(RouteHome)
		}
	}
	return nil
}

// SetSize implements Screen.
func (n *NotFoundPage) SetSize(width, height int) {
	n.width = width
	n.height = height
}

// View renders the not-found page centered in the content area.
func (n *NotFoundPage) View() string {
	s := theme.Current().S()
	body := lipgloss.JoinVertical(lipgloss.Center,
		s.Muted.Render("▦"),
		"",
		s.PageTitle.Render("404"),
		"",
		s.PageSubtitle.Render("Oops! The page you're looking for doesn't exist."),
		s.Muted.Render(n.path),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			renderButton("h", "⌂ Back to Home", true), " ", renderButton("e", "▦ Browse Events", false)),
	)
	return lipgloss.Place(n.width, n.height, lipgloss.Center, lipgloss.Center, body)
}
