package wizard

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/logger"
	"github.com/mark3labs/eventify/internal/tui/theme"
	core "github.com/mark3labs/eventify/internal/wizard"
)

// DefaultRedirectDelay is how long the success screen stays up before the
// host is asked to show the events list.
const DefaultRedirectDelay = 2 * time.Second

// Recorder receives the activity produced while creating an event.
type Recorder interface {
	InviteeAdded(ctx context.Context, email, name string) error
	InviteeRemoved(ctx context.Context, email string) error
	WizardCompleted(ctx context.Context) error
	Shared(ctx context.Context, subject, url string) error
}

// Options configures a wizard mount.
type Options struct {
	RedirectDelay time.Duration      // Zero means DefaultRedirectDelay; negative means immediate
	BaseURL       string             // Used for the invitation link
	Recorder      Recorder           // Optional
	Clipboard     func(string) error // Defaults to the system clipboard
	Now           func() time.Time   // Defaults to time.Now
}

// panel is what every step component implements.
type panel interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	FocusFirst() tea.Cmd
	FocusLast() tea.Cmd
	Blur()
}

// mounts hands every wizard instance a distinct token so a redirect tick
// from an earlier mount can never fire in a later one.
var mounts atomic.Uint64

// Model is the create-event wizard. It renders the controller's progress,
// the active step panel and the Back/Next buttons.
type Model struct {
	ctx     context.Context
	opts    Options
	ctrl    *core.Controller
	token   uint64
	mounted bool

	details   *DetailsStep
	location  *LocationStep
	attendees *AttendeesStep

	buttonBar     *ButtonBar
	buttonFocused bool

	completedAt time.Time
	width       int
	height      int
}

// New mounts a wizard on the first step.
func New(ctx context.Context, venues VenueSearcher, opts Options) *Model {
	if opts.RedirectDelay == 0 {
		opts.RedirectDelay = DefaultRedirectDelay
	}
	if opts.BaseURL == "" {
		opts.BaseURL = catalog.DefaultBaseURL
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := &Model{
		ctx:     ctx,
		opts:    opts,
		token:   mounts.Add(1),
		mounted: true,
	}
	m.ctrl = core.NewController(core.DefaultSteps(), m.onComplete)
	m.details = NewDetailsStep(opts.Now())
	m.location = NewLocationStep(venues)
	m.attendees = NewAttendeesStep(ctx, opts.Recorder, opts.Clipboard, catalog.InviteURL(opts.BaseURL))
	m.buttonBar = NewButtonBar(m.buttons())
	return m
}

func (m *Model) onComplete() {
	m.completedAt = m.opts.Now()
	logger.Info("Event wizard completed: name=%q date=%s time=%s venue=%q invitees=%d public=%v",
		m.details.Name(), m.details.Date(), m.details.Time(),
		m.location.Venue(), len(m.attendees.Invitees()), m.attendees.Public())
}

// Init focuses the first step.
func (m *Model) Init() tea.Cmd {
	return m.panel(m.ctrl.Index()).Init()
}

// panel selects the step component for a position.
func (m *Model) panel(index int) panel {
	switch index {
	case 0:
		return m.details
	case 1:
		return m.location
	default:
		return m.attendees
	}
}

func (m *Model) current() panel {
	return m.panel(m.ctrl.Index())
}

func (m *Model) buttons() []Button {
	label := "Next →"
	if m.ctrl.IsLast() {
		label = "Create Event ✓"
	}
	return CreateBackNextButtons(!m.ctrl.IsFirst(), true, label)
}

// Unmount marks the wizard as gone. A pending redirect is dropped.
func (m *Model) Unmount() {
	m.mounted = false
}

// Capturing reports whether keys are going to a text field, so the host
// should not treat them as shortcuts.
func (m *Model) Capturing() bool {
	return m.mounted && !m.ctrl.Complete() && !m.buttonFocused
}

// Next advances the wizard. On the last step it completes it.
func (m *Model) Next() tea.Cmd {
	if m.ctrl.Complete() {
		return nil
	}
	if m.ctrl.Advance() {
		m.current().Blur()
		m.buttonFocused = false
		return tea.Batch(
			func() tea.Msg { return CompletedMsg{} },
			toast("Event created successfully!"),
			m.recordCompletion(),
			m.scheduleRedirect(),
		)
	}
	return m.enterStep()
}

// Back retreats one step.
func (m *Model) Back() tea.Cmd {
	if !m.ctrl.Retreat() {
		return nil
	}
	return m.enterStep()
}

func (m *Model) enterStep() tea.Cmd {
	m.buttonFocused = false
	m.buttonBar.Blur()
	m.buttonBar.SetButtons(m.buttons())
	m.buttonBar.Blur()
	m.updateSize()
	return m.current().FocusFirst()
}

func (m *Model) recordCompletion() tea.Cmd {
	if m.opts.Recorder == nil {
		return nil
	}
	ctx, r := m.ctx, m.opts.Recorder
	return func() tea.Msg {
		if err := r.WizardCompleted(ctx); err != nil {
			logger.Warn("Failed to record wizard completion: %v", err)
		}
		return nil
	}
}

func (m *Model) scheduleRedirect() tea.Cmd {
	token := m.token
	if m.opts.RedirectDelay < 0 {
		return func() tea.Msg { return redirectTickMsg{token: token} }
	}
	return tea.Tick(m.opts.RedirectDelay, func(time.Time) tea.Msg {
		return redirectTickMsg{token: token}
	})
}

func (m *Model) focusButtons(last bool) {
	m.current().Blur()
	m.buttonFocused = true
	m.buttonBar.SetButtons(m.buttons())
	if last {
		m.buttonBar.FocusLast()
	} else {
		m.buttonBar.FocusFirst()
	}
}

func (m *Model) activateButton(id ButtonID) tea.Cmd {
	switch id {
	case ButtonBack:
		return m.Back()
	case ButtonNext:
		return m.Next()
	}
	return nil
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case redirectTickMsg:
		if msg.token != m.token || !m.mounted {
			logger.Debug("Dropping redirect from an unmounted wizard")
			return nil
		}
		return func() tea.Msg { return RedirectMsg{} }

	case TabExitForwardMsg:
		m.focusButtons(false)
		return nil

	case TabExitBackwardMsg:
		m.focusButtons(true)
		return nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSize()
		return nil

	case tea.KeyPressMsg:
		if m.ctrl.Complete() {
			return nil
		}

		switch msg.String() {
		case "ctrl+n":
			return m.Next()
		case "ctrl+b":
			return m.Back()
		}

		if m.buttonFocused {
			switch msg.String() {
			case "tab", "right":
				if !m.buttonBar.FocusNext() {
					m.buttonFocused = false
					m.buttonBar.Blur()
					return m.current().FocusFirst()
				}
				return nil
			case "shift+tab", "left":
				if !m.buttonBar.FocusPrev() {
					m.buttonFocused = false
					m.buttonBar.Blur()
					return m.current().FocusLast()
				}
				return nil
			case "enter", "space", " ":
				return m.activateButton(m.buttonBar.FocusedButton())
			case "esc":
				if m.ctrl.IsFirst() {
					return func() tea.Msg { return ExitMsg{} }
				}
				return m.Back()
			}
			return nil
		}

		if msg.String() == "esc" {
			m.focusButtons(true)
			return nil
		}
	}

	if m.ctrl.Complete() {
		return nil
	}
	return m.current().Update(msg)
}

func (m *Model) updateSize() {
	w := m.width - 6
	if w > 96 {
		w = 96
	}
	if w < 40 {
		w = 40
	}
	h := m.height - 8
	if h < 10 {
		h = 10
	}
	m.buttonBar.SetWidth(w)
	for i := 0; i < m.ctrl.Len(); i++ {
		m.panel(i).SetSize(w, h)
	}
}

// View renders the stepper, the active panel and the buttons, or the
// success screen once complete.
func (m *Model) View() string {
	var sections []string
	sections = append(sections, m.renderStepper(), "")

	if m.ctrl.Complete() {
		sections = append(sections, m.renderSuccess())
	} else {
		sections = append(sections, m.current().View(), "")
		m.buttonBar.SetButtons(m.buttons())
		if !m.buttonFocused {
			m.buttonBar.Blur()
		}
		sections = append(sections, m.buttonBar.Render())
		if m.buttonFocused {
			sections = append(sections, renderHintBar("←/→", "choose", "enter", "press", "esc", "back", "ctrl+n", "next"))
		}
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderStepper() string {
	t := theme.Current()
	s := t.S()

	steps := m.ctrl.Steps()
	parts := make([]string, 0, len(steps)*2)
	for i, step := range steps {
		var label string
		switch m.ctrl.StateOf(i) {
		case core.StepCompleted:
			label = s.Success.Render("✓ " + step.Title)
		case core.StepActive:
			label = lipgloss.NewStyle().
				Foreground(lipgloss.Color(t.Primary)).
				Bold(true).
				Render(step.Icon + " " + step.Title)
		default:
			label = s.Muted.Render(step.Icon + " " + step.Title)
		}
		if i > 0 {
			parts = append(parts, s.Muted.Render(" ── "))
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "")
}

func (m *Model) renderSuccess() string {
	s := theme.Current().S()
	return lipgloss.JoinVertical(lipgloss.Center,
		s.Success.Render("✓"),
		"",
		s.PageTitle.Render("Event Created!"),
		s.Muted.Render("Your event has been created successfully. You will be redirected to the events page."),
	)
}

// Controller exposes the underlying step sequencer.
func (m *Model) Controller() *core.Controller {
	return m.ctrl
}

// Details returns the details step.
func (m *Model) Details() *DetailsStep {
	return m.details
}

// Location returns the location step.
func (m *Model) Location() *LocationStep {
	return m.location
}

// Attendees returns the attendees step.
func (m *Model) Attendees() *AttendeesStep {
	return m.attendees
}

// ButtonsFocused reports whether the button bar has focus.
func (m *Model) ButtonsFocused() bool {
	return m.buttonFocused
}

// CompletedAt returns when the wizard completed, or the zero time.
func (m *Model) CompletedAt() time.Time {
	return m.completedAt
}
