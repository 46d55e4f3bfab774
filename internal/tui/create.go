package tui

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/tui/theme"
	"github.com/mark3labs/eventify/internal/tui/wizard"
)

// createHeaderHeight is the number of rows above the wizard.
const createHeaderHeight = 3

// CreatePage hosts the create-event wizard.
type CreatePage struct {
	wizard *wizard.Model
	width  int
	height int
}

// NewCreatePage mounts a fresh wizard.
func NewCreatePage(ctx context.Context, c *catalog.Catalog, opts wizard.Options) *CreatePage {
	return &CreatePage{wizard: wizard.New(ctx, c, opts)}
}

// Init implements Screen.
func (p *CreatePage) Init() tea.Cmd { return p.wizard.Init() }

// Capturing implements Screen.
func (p *CreatePage) Capturing() bool { return p.wizard.Capturing() }

// Hints implements Screen.
func (p *CreatePage) Hints() string {
	if p.wizard.Controller().Complete() {
		return RenderHint("h", "home")
	}
	return RenderHintBar("ctrl+n", "next step", "ctrl+b", "previous step", KeyEsc, "buttons")
}

// Wizard returns the hosted wizard.
func (p *CreatePage) Wizard() *wizard.Model { return p.wizard }

// Unmount tells the wizard the page is gone so a pending redirect is dropped.
func (p *CreatePage) Unmount() { p.wizard.Unmount() }

// Update forwards messages to the wizard.
func (p *CreatePage) Update(msg tea.Msg) tea.Cmd {
	return p.wizard.Update(msg)
}

// SetSize implements Screen.
func (p *CreatePage) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.wizard.Update(tea.WindowSizeMsg{Width: width, Height: max(0, height-createHeaderHeight)})
}

// View renders the page heading and the wizard.
func (p *CreatePage) View() string {
	s := theme.Current().S()
	var b strings.Builder
	b.WriteString(s.PageTitle.Render("Create a New Event") + "\n")
	b.WriteString(s.Muted.Render("Fill in the details below to create your event. You can edit these details anytime later.") + "\n\n")
	b.WriteString(p.wizard.View())
	return b.String()
}
