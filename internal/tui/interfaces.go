package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/eventify/internal/activity"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/tui/wizard"
)

// Recorder stores UI activity. *activity.Store satisfies it.
type Recorder interface {
	wizard.Recorder
	RSVP(ctx context.Context, eventID string, status catalog.RSVPStatus) error
	LoadKind(ctx context.Context, kind string) (*activity.Feed, error)
}

var _ Recorder = (*activity.Store)(nil)

// Updateable components handle messages
type Updateable interface {
	Update(tea.Msg) tea.Cmd
}

// Sizable components track their dimensions
type Sizable interface {
	SetSize(width, height int)
}

// Screen is a routed page rendered in the content area.
type Screen interface {
	Updateable
	Sizable
	Init() tea.Cmd
	View() string
	// Hints returns the key hints for the footer.
	Hints() string
	// Capturing reports whether keys go to a text field, which disables
	// the single-letter navigation hotkeys.
	Capturing() bool
}
