package wizard

// TabExitForwardMsg is sent by a step when tab moves past its last field.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent by a step when shift+tab moves before its first field.
type TabExitBackwardMsg struct{}

// ToastMsg asks the host to show a toast notification.
type ToastMsg struct {
	Text string
}

// CompletedMsg is sent once when the wizard reaches its final state.
type CompletedMsg struct{}

// RedirectMsg asks the host to navigate to the events list. It is only sent
// while the wizard that scheduled it is still mounted.
type RedirectMsg struct{}

// ExitMsg is sent when the user backs out of the first step.
type ExitMsg struct{}

// redirectTickMsg fires after the redirect delay. token ties it to the
// mount that scheduled it.
type redirectTickMsg struct {
	token uint64
}

// editorFinishedMsg carries the description back from $EDITOR.
type editorFinishedMsg struct {
	content string
	err     error
}
