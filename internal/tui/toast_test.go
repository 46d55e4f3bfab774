package tui

import (
	"strings"
	"testing"
)

func TestToast_ShowDisplaysMessage(t *testing.T) {
	toast := NewToast()

	cmd := toast.Show("test message")

	if !toast.IsVisible() {
		t.Error("expected toast to be visible after Show()")
	}
	if toast.Message() != "test message" {
		t.Errorf("expected message 'test message', got %q", toast.Message())
	}
	// Verify command is returned (for dismissal)
	if cmd == nil {
		t.Error("expected Show() to return a command for dismissal")
	}
}

func TestToast_ViewReturnsEmptyWhenNotVisible(t *testing.T) {
	toast := NewToast()

	if view := toast.View(80); view != "" {
		t.Errorf("expected empty view when not visible, got %q", view)
	}
}

func TestToast_ViewRendersMessageWhenVisible(t *testing.T) {
	toast := NewToast()
	toast.Show("Event link copied to clipboard!")

	view := toast.View(80)
	if !strings.Contains(view, "Event link copied to clipboard!") {
		t.Errorf("expected view to contain message, got %q", view)
	}
}

func TestToast_DismissMsgHidesToast(t *testing.T) {
	toast := NewToast()
	toast.Show("test message")

	toast.Update(ToastDismissMsg{Seq: toast.Seq()})

	if toast.IsVisible() {
		t.Error("expected toast to be hidden after dismiss")
	}
	if toast.Message() != "" {
		t.Errorf("expected empty message after dismiss, got %q", toast.Message())
	}
}

func TestToast_StaleDismissKeepsNewerToast(t *testing.T) {
	toast := NewToast()
	toast.Show("first")
	first := toast.Seq()
	toast.Show("second")

	// The timer of the first toast fires after the second was shown
	toast.Update(ToastDismissMsg{Seq: first})

	if !toast.IsVisible() {
		t.Fatal("expected newer toast to survive a stale dismiss")
	}
	if toast.Message() != "second" {
		t.Errorf("expected message 'second', got %q", toast.Message())
	}
}

func TestToast_ShowToastMsg(t *testing.T) {
	toast := NewToast()

	cmd := toast.Update(ShowToastMsg{Text: "You're attending this event!"})

	if cmd == nil {
		t.Error("expected a dismissal command")
	}
	if toast.Message() != "You're attending this event!" {
		t.Errorf("unexpected message %q", toast.Message())
	}
}
