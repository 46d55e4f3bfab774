package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/eventify/internal/tui/theme"
)

// ToastDuration is how long a toast stays up.
const ToastDuration = 3 * time.Second

// ToastDismissMsg is sent when a toast should be dismissed. Seq ties it to
// the toast that scheduled it so an older timer cannot hide a newer toast.
type ToastDismissMsg struct {
	Seq int
}

// ShowToastMsg is sent to show a toast notification.
type ShowToastMsg struct {
	Text string
}

// Toast is a minimal toast notification shown in the bottom-right corner.
type Toast struct {
	message  string
	visible  bool
	seq      int
	duration time.Duration
}

// NewToast creates a new Toast component.
func NewToast() *Toast {
	return &Toast{duration: ToastDuration}
}

// Show displays a toast and schedules its dismissal.
func (t *Toast) Show(msg string) tea.Cmd {
	t.seq++
	t.message = msg
	t.visible = true

	seq := t.seq
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return ToastDismissMsg{Seq: seq}
	})
}

// Update handles messages for the toast component.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ShowToastMsg:
		return t.Show(msg.Text)
	case ToastDismissMsg:
		if msg.Seq == t.seq {
			t.visible = false
			t.message = ""
		}
	}
	return nil
}

// View renders the toast right-aligned within width.
// Returns empty string if the toast is not visible.
func (t *Toast) View(width int) string {
	if !t.visible || t.message == "" {
		return ""
	}

	style := theme.Current().S().Toast
	content := style.Render(t.message)
	if width > 2 && lipgloss.Width(content) > width-2 {
		content = style.Width(width - 2).Render(t.message)
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Right).
		PaddingRight(1).
		Render(content)
}

// IsVisible returns whether the toast is currently visible.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// Message returns the current toast message (empty if not visible).
func (t *Toast) Message() string {
	if !t.visible {
		return ""
	}
	return t.message
}

// Seq returns the sequence number of the latest toast.
func (t *Toast) Seq() int {
	return t.seq
}
