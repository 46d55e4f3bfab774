package wizard

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/nats"
	"github.com/mark3labs/eventify/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// drain runs cmd and flattens batches into the messages they produce.
// Only use it on commands that do not block.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func toasts(msgs []tea.Msg) []string {
	var out []string
	for _, msg := range msgs {
		if t, ok := msg.(ToastMsg); ok {
			out = append(out, t.Text)
		}
	}
	return out
}

func newTestWizard(t *testing.T) (*Model, *testfixtures.MockActivity, *testfixtures.MockClipboard) {
	t.Helper()
	rec := testfixtures.NewMockActivity()
	clip := &testfixtures.MockClipboard{}
	m := New(context.Background(), catalog.Default(), Options{
		RedirectDelay: -1,
		Recorder:      rec,
		Clipboard:     clip.Write,
		Now:           testfixtures.Clock,
	})
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: testfixtures.TestTermWidth, Height: testfixtures.TestTermHeight})
	return m, rec, clip
}

func TestWizard_StartsOnDetails(t *testing.T) {
	m, _, _ := newTestWizard(t)

	require.Equal(t, 0, m.Controller().Index())
	require.False(t, m.Controller().Complete())
	require.True(t, m.Capturing())

	view := m.View()
	require.True(t, testfixtures.Contains(view, "Event Details"))
	require.True(t, testfixtures.Contains(view, "Next →"))
	require.Equal(t, "2024-08-01", m.Details().Date())
	require.Equal(t, "12:00", m.Details().Time())
}

func TestWizard_BackIsDisabledOnFirstStep(t *testing.T) {
	m, _, _ := newTestWizard(t)

	require.Nil(t, m.Back())
	require.Equal(t, 0, m.Controller().Index())

	buttons := m.buttons()
	require.Equal(t, ButtonDisabled, buttons[ButtonBack].State)
	require.Equal(t, ButtonNormal, buttons[ButtonNext].State)
}

func TestWizard_NextAndBackMoveBetweenSteps(t *testing.T) {
	m, _, _ := newTestWizard(t)

	m.Update(ctrlKey('n'))
	require.Equal(t, 1, m.Controller().Index())
	require.True(t, testfixtures.Contains(m.View(), "Event Location"))

	m.Update(ctrlKey('n'))
	require.Equal(t, 2, m.Controller().Index())
	view := m.View()
	require.True(t, testfixtures.Contains(view, "Event Attendees"))
	require.True(t, testfixtures.Contains(view, "Create Event"))

	m.Update(ctrlKey('b'))
	require.Equal(t, 1, m.Controller().Index())
	require.False(t, m.Controller().Complete())
}

func TestWizard_StepperMarksCompletedSteps(t *testing.T) {
	m, _, _ := newTestWizard(t)
	m.Next()

	stepper := testfixtures.Plain(m.renderStepper())
	require.Contains(t, stepper, "✓ Event Details")
	require.Contains(t, stepper, "Location")
	require.Contains(t, stepper, "Attendees")
}

func TestWizard_TabExitFocusesButtons(t *testing.T) {
	m, _, _ := newTestWizard(t)

	m.Update(TabExitForwardMsg{})
	require.True(t, m.ButtonsFocused())
	require.False(t, m.Capturing())
	// Back is disabled on the first step so focus lands on Next
	require.Equal(t, ButtonNext, m.buttonBar.FocusedButton())

	m.Update(key(tea.KeyEnter))
	require.Equal(t, 1, m.Controller().Index())
	require.False(t, m.ButtonsFocused())
}

func TestWizard_EscFromButtonsOnFirstStepExits(t *testing.T) {
	m, _, _ := newTestWizard(t)

	m.Update(key(tea.KeyEscape))
	require.True(t, m.ButtonsFocused())

	msgs := drain(m.Update(key(tea.KeyEscape)))
	require.Len(t, msgs, 1)
	require.IsType(t, ExitMsg{}, msgs[0])
}

func TestWizard_EscFromButtonsRetreats(t *testing.T) {
	m, _, _ := newTestWizard(t)
	m.Next()

	m.Update(key(tea.KeyEscape))
	require.True(t, m.ButtonsFocused())
	m.Update(key(tea.KeyEscape))
	require.Equal(t, 0, m.Controller().Index())
}

func TestWizard_CompletionShowsSuccessAndRedirects(t *testing.T) {
	m, rec, _ := newTestWizard(t)
	m.Next()
	m.Next()

	msgs := drain(m.Next())
	require.True(t, m.Controller().Complete())
	require.Equal(t, testfixtures.FixedNow, m.CompletedAt())
	require.Contains(t, toasts(msgs), "Event created successfully!")

	var sawCompleted bool
	var tick *redirectTickMsg
	for _, msg := range msgs {
		switch msg := msg.(type) {
		case CompletedMsg:
			sawCompleted = true
		case redirectTickMsg:
			tick = &msg
		}
	}
	require.True(t, sawCompleted)
	require.NotNil(t, tick)
	require.Equal(t, []string{nats.KindWizard}, rec.Kinds())

	view := m.View()
	require.True(t, testfixtures.Contains(view, "Event Created!"))
	require.True(t, testfixtures.Contains(view, "You will be redirected to the events page."))
	require.False(t, testfixtures.Contains(view, "Create Event ✓"))
	require.False(t, m.Capturing())

	redirect := drain(m.Update(*tick))
	require.Len(t, redirect, 1)
	require.IsType(t, RedirectMsg{}, redirect[0])
}

func TestWizard_NextAfterCompletionIsIgnored(t *testing.T) {
	m, rec, _ := newTestWizard(t)
	m.Next()
	m.Next()
	drain(m.Next())

	require.Nil(t, m.Next())
	require.Nil(t, m.Back())
	require.Len(t, rec.Kinds(), 1)
}

func TestWizard_RedirectDroppedAfterUnmount(t *testing.T) {
	m, _, _ := newTestWizard(t)
	m.Next()
	m.Next()
	drain(m.Next())

	m.Unmount()
	require.Nil(t, m.Update(redirectTickMsg{token: m.token}))
}

func TestWizard_RedirectFromOtherMountIgnored(t *testing.T) {
	first, _, _ := newTestWizard(t)
	second, _, _ := newTestWizard(t)
	require.NotEqual(t, first.token, second.token)

	require.Nil(t, second.Update(redirectTickMsg{token: first.token}))
}

func TestWizard_RecorderErrorDoesNotBlockCompletion(t *testing.T) {
	m, rec, _ := newTestWizard(t)
	rec.Err = errors.New("log closed")
	m.Next()
	m.Next()

	msgs := drain(m.Next())
	require.True(t, m.Controller().Complete())
	require.Contains(t, toasts(msgs), "Event created successfully!")
}

func TestWizard_AddAndRemoveInvitee(t *testing.T) {
	m, rec, _ := newTestWizard(t)
	m.Next()
	m.Next()

	// tab row -> email field
	m.Update(key(tea.KeyTab))
	typeText(m, "ada@example.com")
	m.Update(key(tea.KeyTab))
	typeText(m, "Ada")

	msgs := drain(m.Update(key(tea.KeyEnter)))
	require.Contains(t, toasts(msgs), "Invitee added successfully")

	invitees := m.Attendees().Invitees()
	require.Len(t, invitees, 1)
	require.Equal(t, "ada@example.com", invitees[0].Email)
	require.Equal(t, "Ada", invitees[0].Name)
	require.NotEmpty(t, invitees[0].ID)
	require.True(t, testfixtures.Contains(m.View(), "ada@example.com"))

	msgs = drain(m.Attendees().Remove(invitees[0].ID))
	require.Contains(t, toasts(msgs), "Invitee removed")
	require.Empty(t, m.Attendees().Invitees())
	require.Equal(t, []string{nats.KindInvitee, nats.KindInvitee}, rec.Kinds())
}

func TestWizard_AddWithoutEmailDoesNothing(t *testing.T) {
	m, rec, _ := newTestWizard(t)
	m.Next()
	m.Next()

	require.Nil(t, m.Attendees().Add())
	require.Empty(t, m.Attendees().Invitees())
	require.Empty(t, rec.Kinds())
}

func TestWizard_CopyInviteLink(t *testing.T) {
	m, rec, clip := newTestWizard(t)

	msgs := drain(m.Attendees().CopyLink())
	require.Equal(t, catalog.InviteURL(catalog.DefaultBaseURL), clip.Last())
	require.Contains(t, toasts(msgs), "Invitation link copied to clipboard")
	require.Equal(t, []string{nats.KindShare}, rec.Kinds())
}

func TestWizard_CopyInviteLinkFallsBackToToast(t *testing.T) {
	m, rec, clip := newTestWizard(t)
	clip.Err = errors.New("no clipboard")

	msgs := drain(m.Attendees().CopyLink())
	require.Equal(t, []string{"Invitation link: " + catalog.InviteURL(catalog.DefaultBaseURL)}, toasts(msgs))
	require.Empty(t, rec.Kinds())
}

func TestWizard_TogglePublic(t *testing.T) {
	m, _, _ := newTestWizard(t)
	m.Next()
	m.Next()

	// switch to the public tab, then move to the toggle
	m.Update(key(tea.KeyRight))
	m.Update(key(tea.KeyTab))
	m.Update(key(tea.KeySpace))

	require.True(t, m.Attendees().Public())
	require.True(t, testfixtures.Contains(m.View(), "Event is Public"))
}

func TestLocationStep_SearchAndSelect(t *testing.T) {
	l := NewLocationStep(catalog.Default())
	require.Len(t, l.Results(), 4)

	l.FocusFirst()
	l.Update(key(tea.KeyTab))
	for _, r := range "skyline" {
		l.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	require.Len(t, l.Results(), 1)

	l.Update(key(tea.KeyTab))
	l.Update(key(tea.KeyEnter))
	require.Equal(t, "Skyline Downtown Loft", l.Venue())
	require.Equal(t, "210 Main Street, Chicago, IL", l.Address())
	require.True(t, testfixtures.Contains(l.View(), "Selected Location"))
}

func TestLocationStep_NoResults(t *testing.T) {
	l := NewLocationStep(catalog.Default())
	l.FocusFirst()
	l.Update(key(tea.KeyTab))
	for _, r := range "zzz" {
		l.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}

	require.Empty(t, l.Results())
	view := l.View()
	require.True(t, testfixtures.Contains(view, "No venues found matching your search."))
	require.True(t, testfixtures.Contains(view, "No location selected yet"))
}

func TestDetailsStep_TimeCycles(t *testing.T) {
	d := NewDetailsStep(testfixtures.FixedNow)
	d.FocusLast()

	d.Update(key(tea.KeyRight))
	require.Equal(t, "12:15", d.Time())
	d.Update(key(tea.KeyLeft))
	d.Update(key(tea.KeyLeft))
	require.Equal(t, "11:45", d.Time())
}

func TestDetailsStep_TabExits(t *testing.T) {
	d := NewDetailsStep(testfixtures.FixedNow)
	d.FocusLast()

	msgs := drain(d.Update(key(tea.KeyTab)))
	require.Len(t, msgs, 1)
	require.IsType(t, TabExitForwardMsg{}, msgs[0])

	d.FocusFirst()
	msgs = drain(d.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}))
	require.Len(t, msgs, 1)
	require.IsType(t, TabExitBackwardMsg{}, msgs[0])
}

func TestDetailsStep_EditorResultReplacesDescription(t *testing.T) {
	d := NewDetailsStep(testfixtures.FixedNow)

	d.Update(editorFinishedMsg{content: "Bring snacks.\n"})
	require.Equal(t, "Bring snacks.", d.Description())

	d.Update(editorFinishedMsg{err: errors.New("exit status 1")})
	require.Equal(t, "Bring snacks.", d.Description())
	require.True(t, testfixtures.Contains(d.View(), "editor failed"))
}
