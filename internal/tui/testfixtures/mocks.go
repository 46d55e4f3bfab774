package testfixtures

import (
	"context"
	"sync"

	"github.com/mark3labs/eventify/internal/activity"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/nats"
)

// MockActivity is an in-memory activity recorder for TUI tests.
// It satisfies the recorder interfaces used by the app and the wizard.
type MockActivity struct {
	mu sync.Mutex

	// Everything recorded, in order
	Recorded []activity.Activity

	// Error to return from every call, if set
	Err error
}

// NewMockActivity creates an empty MockActivity.
func NewMockActivity() *MockActivity {
	return &MockActivity{}
}

func (m *MockActivity) record(a activity.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.Recorded = append(m.Recorded, a)
	return nil
}

// RSVP records an rsvp activity.
func (m *MockActivity) RSVP(ctx context.Context, eventID string, status catalog.RSVPStatus) error {
	return m.record(activity.Activity{Kind: nats.KindRSVP, Action: "set", Subject: eventID, Data: string(status)})
}

// InviteeAdded records an invitee add.
func (m *MockActivity) InviteeAdded(ctx context.Context, email, name string) error {
	return m.record(activity.Activity{Kind: nats.KindInvitee, Action: "add", Subject: email, Data: email})
}

// InviteeRemoved records an invitee removal.
func (m *MockActivity) InviteeRemoved(ctx context.Context, email string) error {
	return m.record(activity.Activity{Kind: nats.KindInvitee, Action: "remove", Subject: email, Data: email})
}

// WizardCompleted records a wizard completion.
func (m *MockActivity) WizardCompleted(ctx context.Context) error {
	return m.record(activity.Activity{Kind: nats.KindWizard, Action: "complete", Subject: "create-event"})
}

// Shared records a copied link.
func (m *MockActivity) Shared(ctx context.Context, subject, url string) error {
	return m.record(activity.Activity{Kind: nats.KindShare, Action: "copy", Subject: subject, Data: url})
}

// LoadKind folds the recorded activities of one kind into a feed.
func (m *MockActivity) LoadKind(ctx context.Context, kind string) (*activity.Feed, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	feed := &activity.Feed{RSVP: make(map[string]catalog.RSVPStatus)}
	for _, a := range m.Recorded {
		if a.Kind == kind {
			feed.Apply(a)
		}
	}
	return feed, nil
}

// Kinds returns the kinds recorded, in order.
func (m *MockActivity) Kinds() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	kinds := make([]string, 0, len(m.Recorded))
	for _, a := range m.Recorded {
		kinds = append(kinds, a.Kind)
	}
	return kinds
}

// MockClipboard captures clipboard writes.
type MockClipboard struct {
	mu     sync.Mutex
	Writes []string
	Err    error
}

// Write records text, or returns Err when set.
func (c *MockClipboard) Write(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Err != nil {
		return c.Err
	}
	c.Writes = append(c.Writes, text)
	return nil
}

// Last returns the most recent write.
func (c *MockClipboard) Last() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.Writes) == 0 {
		return ""
	}
	return c.Writes[len(c.Writes)-1]
}
