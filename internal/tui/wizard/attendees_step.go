package wizard

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"github.com/mark3labs/eventify/internal/logger"
	"github.com/mark3labs/eventify/internal/tui/theme"
)

// Attendee tabs
const (
	attendeesTabInvite = iota
	attendeesTabPublic
)

var attendeesTabs = []string{"✉ Invite People", "☺ Make it Public"}

// Focus slots on the invite tab. The public tab only has tabs and toggle.
const (
	inviteFocusTabs = iota
	inviteFocusEmail
	inviteFocusName
	inviteFocusAdd
	inviteFocusList
	inviteFocusCopy
	inviteFocusCount
)

const (
	publicFocusTabs = iota
	publicFocusToggle
	publicFocusCount
)

// Invitee is a person added to the draft guest list. Name is optional.
type Invitee struct {
	ID    string
	Email string
	Name  string
}

// AttendeesStep manages the invite list, the invitation link and the
// public flag.
type AttendeesStep struct {
	ctx       context.Context
	recorder  Recorder
	clipboard func(string) error
	inviteURL string

	tab      int
	focus    int // -1 when blurred
	email    textinput.Model
	name     textinput.Model
	invitees []Invitee
	cursor   int
	public   bool
	width    int
	height   int
}

// NewAttendeesStep creates the attendees step. recorder may be nil.
func NewAttendeesStep(ctx context.Context, recorder Recorder, clipboard func(string) error, inviteURL string) *AttendeesStep {
	email := textinput.New()
	email.Placeholder = "Enter email address"

	name := textinput.New()
	name.Placeholder = "Enter name"

	a := &AttendeesStep{
		ctx:       ctx,
		recorder:  recorder,
		clipboard: clipboard,
		inviteURL: inviteURL,
		focus:     -1,
		email:     email,
		name:      name,
	}
	a.SetSize(60, 20)
	return a
}

// Init focuses the first field.
func (a *AttendeesStep) Init() tea.Cmd {
	return a.FocusFirst()
}

// FocusFirst focuses the tab row.
func (a *AttendeesStep) FocusFirst() tea.Cmd {
	return a.focusSlot(0)
}

// FocusLast focuses the last slot of the active tab.
func (a *AttendeesStep) FocusLast() tea.Cmd {
	return a.focusSlot(a.slotCount() - 1)
}

// Blur removes focus from every field.
func (a *AttendeesStep) Blur() {
	a.email.Blur()
	a.name.Blur()
	a.focus = -1
}

func (a *AttendeesStep) slotCount() int {
	if a.tab == attendeesTabPublic {
		return publicFocusCount
	}
	return inviteFocusCount
}

func (a *AttendeesStep) focusSlot(slot int) tea.Cmd {
	a.Blur()
	a.focus = slot
	if a.tab != attendeesTabInvite {
		return nil
	}
	switch slot {
	case inviteFocusEmail:
		return a.email.Focus()
	case inviteFocusName:
		return a.name.Focus()
	}
	return nil
}

// Add appends an invitee built from the email and name fields and clears
// them. Does nothing when the email is empty.
func (a *AttendeesStep) Add() tea.Cmd {
	email := strings.TrimSpace(a.email.Value())
	if email == "" {
		return nil
	}
	inv := Invitee{
		ID:    uuid.NewString(),
		Email: email,
		Name:  strings.TrimSpace(a.name.Value()),
	}
	a.invitees = append(a.invitees, inv)
	a.email.SetValue("")
	a.name.SetValue("")

	return tea.Batch(
		toast("Invitee added successfully"),
		a.record(func(ctx context.Context, r Recorder) error {
			return r.InviteeAdded(ctx, inv.Email, inv.Name)
		}),
	)
}

// Remove drops the invitee with the given id.
func (a *AttendeesStep) Remove(id string) tea.Cmd {
	for i, inv := range a.invitees {
		if inv.ID != id {
			continue
		}
		a.invitees = append(a.invitees[:i], a.invitees[i+1:]...)
		if a.cursor >= len(a.invitees) && a.cursor > 0 {
			a.cursor--
		}
		return tea.Batch(
			toast("Invitee removed"),
			a.record(func(ctx context.Context, r Recorder) error {
				return r.InviteeRemoved(ctx, inv.Email)
			}),
		)
	}
	return nil
}

// CopyLink copies the invitation link to the clipboard.
func (a *AttendeesStep) CopyLink() tea.Cmd {
	if err := a.clipboard(a.inviteURL); err != nil {
		logger.Warn("Clipboard unavailable: %v", err)
		return toast("Invitation link: " + a.inviteURL)
	}
	url := a.inviteURL
	return tea.Batch(
		toast("Invitation link copied to clipboard"),
		a.record(func(ctx context.Context, r Recorder) error {
			return r.Shared(ctx, "invite", url)
		}),
	)
}

// TogglePublic flips the public flag.
func (a *AttendeesStep) TogglePublic() {
	a.public = !a.public
}

func (a *AttendeesStep) record(fn func(context.Context, Recorder) error) tea.Cmd {
	if a.recorder == nil {
		return nil
	}
	ctx, r := a.ctx, a.recorder
	return func() tea.Msg {
		if err := fn(ctx, r); err != nil {
			logger.Warn("Failed to record attendee activity: %v", err)
		}
		return nil
	}
}

// Update handles messages for the attendees step.
func (a *AttendeesStep) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab":
			if a.focus < a.slotCount()-1 {
				return a.focusSlot(a.focus + 1)
			}
			return func() tea.Msg { return TabExitForwardMsg{} }
		case "shift+tab":
			if a.focus > 0 {
				return a.focusSlot(a.focus - 1)
			}
			return func() tea.Msg { return TabExitBackwardMsg{} }
		}

		if a.focus == 0 {
			switch key.String() {
			case "left", "h":
				a.tab = attendeesTabInvite
			case "right", "l":
				a.tab = attendeesTabPublic
			}
			return nil
		}

		if a.tab == attendeesTabPublic {
			switch key.String() {
			case "enter", "space", " ":
				a.TogglePublic()
			}
			return nil
		}

		switch a.focus {
		case inviteFocusEmail, inviteFocusName:
			if key.String() == "enter" {
				return a.Add()
			}
		case inviteFocusAdd:
			switch key.String() {
			case "enter", "space", " ":
				return a.Add()
			}
			return nil
		case inviteFocusList:
			switch key.String() {
			case "up", "k":
				if a.cursor > 0 {
					a.cursor--
				}
			case "down", "j":
				if a.cursor < len(a.invitees)-1 {
					a.cursor++
				}
			case "x", "d", "delete", "backspace":
				if len(a.invitees) > 0 {
					return a.Remove(a.invitees[a.cursor].ID)
				}
			}
			return nil
		case inviteFocusCopy:
			switch key.String() {
			case "enter", "space", " ":
				return a.CopyLink()
			}
			return nil
		}
	}

	var cmd tea.Cmd
	if a.tab == attendeesTabInvite {
		switch a.focus {
		case inviteFocusEmail:
			a.email, cmd = a.email.Update(msg)
		case inviteFocusName:
			a.name, cmd = a.name.Update(msg)
		}
	}
	return cmd
}

// View renders the attendees step.
func (a *AttendeesStep) View() string {
	s := theme.Current().S()
	w := a.width - 4

	var b strings.Builder
	b.WriteString(s.PageTitle.Render("Event Attendees") + "\n")
	b.WriteString(s.Muted.Render("Invite people to your event or make it public.") + "\n\n")

	tabs := renderTabs(attendeesTabs, a.tab)
	if a.focus == 0 {
		tabs = s.CardFocused.Render(tabs)
	} else {
		tabs = s.Card.Render(tabs)
	}
	b.WriteString(tabs + "\n")

	if a.tab == attendeesTabInvite {
		b.WriteString(a.viewInvite(w))
	} else {
		b.WriteString(a.viewPublic(w))
	}
	b.WriteString("\n")

	switch {
	case a.focus == 0:
		b.WriteString(renderHintBar("←/→", "switch tab", "tab", "next field", "esc", "buttons"))
	case a.tab == attendeesTabInvite && a.focus == inviteFocusList:
		b.WriteString(renderHintBar("↑/↓", "move", "x", "remove", "tab", "next"))
	case a.tab == attendeesTabPublic:
		b.WriteString(renderHintBar("space", "toggle", "tab", "buttons", "esc", "buttons"))
	default:
		b.WriteString(renderHintBar("enter", "add invitee", "tab", "next field", "esc", "buttons"))
	}
	return b.String()
}

func (a *AttendeesStep) viewInvite(width int) string {
	s := theme.Current().S()
	half := width/2 - 1

	var b strings.Builder
	email := renderField("Email Address", a.email.View(), a.focus == inviteFocusEmail, half)
	name := renderField("Name (Optional)", a.name.View(), a.focus == inviteFocusName, half)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, email, " ", name) + "\n")

	addState := ButtonNormal
	if strings.TrimSpace(a.email.Value()) == "" {
		addState = ButtonDisabled
	}
	addBar := NewButtonBar([]Button{{Label: "+ Add Invitee", State: addState}})
	addBar.SetWidth(width)
	if a.focus == inviteFocusAdd {
		addBar.FocusFirst()
	}
	b.WriteString(addBar.Render() + "\n")

	box := s.Card
	if a.focus == inviteFocusList {
		box = s.CardFocused
	}
	if width > 0 {
		box = box.Width(width)
	}
	if len(a.invitees) == 0 {
		b.WriteString(box.Render(s.Muted.Render("No invitees added yet.\nAdd someone to get started.")) + "\n")
	} else {
		rows := []string{s.Bold.Render("Email") + "  " + s.Bold.Render("Name")}
		for i, inv := range a.invitees {
			marker := "  "
			if a.focus == inviteFocusList && i == a.cursor {
				marker = "▸ "
			}
			name := inv.Name
			if name == "" {
				name = "—"
			}
			rows = append(rows, marker+s.Text.Render(inv.Email)+"  "+s.Muted.Render(name))
		}
		b.WriteString(box.Render(strings.Join(rows, "\n")) + "\n")
	}

	link := s.Card
	if a.focus == inviteFocusCopy {
		link = s.CardFocused
	}
	if width > 0 {
		link = link.Width(width)
	}
	b.WriteString(link.Render(
		s.Bold.Render("Invitation Link") + "  " + s.Muted.Render("[enter] Copy") + "\n" +
			s.Text.Render(a.inviteURL) + "\n" +
			s.Muted.Render("Anyone with this link can RSVP to your event."),
	))
	return b.String()
}

func (a *AttendeesStep) viewPublic(width int) string {
	s := theme.Current().S()

	box := s.Card
	if a.focus == publicFocusToggle {
		box = s.CardFocused
	}
	if width > 0 {
		box = box.Width(width)
	}

	icon, label, toggle := "⇪", "+ Make Public", "[ ]"
	if a.public {
		icon, label, toggle = s.Success.Render("✓"), "✓ Event is Public", "[x]"
	}

	body := icon + " " + s.Bold.Render("Make this event public") + "\n" +
		s.Muted.Render("Public events can be discovered by anyone on Eventify.") + "\n\n" +
		s.Text.Render(label) + "\n\n" +
		s.Bold.Render("Event Visibility Settings") + "\n" +
		toggle + " Show in event directory\n" +
		s.Muted.Render("    Let people discover your event in our public listings") + "\n" +
		s.Muted.Render("[ ] Allow guest registrations (Coming Soon)")
	return box.Render(body)
}

// SetSize updates the size of the attendees step.
func (a *AttendeesStep) SetSize(width, height int) {
	a.width = width
	a.height = height

	half := (width-8)/2 - 4
	if half < 16 {
		half = 16
	}
	a.email.SetWidth(half)
	a.name.SetWidth(half)
}

// Invitees returns a copy of the invite list.
func (a *AttendeesStep) Invitees() []Invitee {
	out := make([]Invitee, len(a.invitees))
	copy(out, a.invitees)
	return out
}

// Public reports whether the event is marked public.
func (a *AttendeesStep) Public() bool {
	return a.public
}

func toast(text string) tea.Cmd {
	return func() tea.Msg { return ToastMsg{Text: text} }
}
