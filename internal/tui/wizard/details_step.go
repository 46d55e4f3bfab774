package wizard

import (
	"os"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/logger"
	"github.com/mark3labs/eventify/internal/tui/theme"
)

// Focusable fields of the details step, in tab order.
const (
	detailsName = iota
	detailsDescription
	detailsDate
	detailsTime
	detailsFieldCount
)

// defaultTime is preselected in the time picker.
const defaultTime = "12:00"

// DetailsStep collects the event name, description, date and time.
type DetailsStep struct {
	name        textinput.Model
	description textarea.Model
	date        textinput.Model
	times       []string
	timeIdx     int
	focus       int // -1 when the step is blurred
	width       int
	height      int
	tmpFile     string
	editorErr   string
}

// NewDetailsStep creates the details step with the date defaulted to today.
func NewDetailsStep(today time.Time) *DetailsStep {
	name := textinput.New()
	name.Placeholder = "Enter event name"
	name.CharLimit = 100

	desc := textarea.New()
	desc.Placeholder = "Describe your event"
	desc.ShowLineNumbers = false
	desc.CharLimit = 2000
	desc.SetHeight(4)

	date := textinput.New()
	date.Placeholder = catalog.DateLayout
	date.CharLimit = len(catalog.DateLayout)
	date.SetValue(today.Format(catalog.DateLayout))

	times := catalog.TimeOptions()
	timeIdx := 0
	for i, t := range times {
		if t == defaultTime {
			timeIdx = i
			break
		}
	}

	d := &DetailsStep{
		name:        name,
		description: desc,
		date:        date,
		times:       times,
		timeIdx:     timeIdx,
		focus:       -1,
	}
	d.SetSize(60, 20)
	return d
}

// Init focuses the first field.
func (d *DetailsStep) Init() tea.Cmd {
	return tea.Batch(d.FocusFirst(), textinput.Blink)
}

// FocusFirst focuses the name field.
func (d *DetailsStep) FocusFirst() tea.Cmd {
	return d.focusField(detailsName)
}

// FocusLast focuses the time picker.
func (d *DetailsStep) FocusLast() tea.Cmd {
	return d.focusField(detailsTime)
}

// Blur removes focus from every field.
func (d *DetailsStep) Blur() {
	d.name.Blur()
	d.description.Blur()
	d.date.Blur()
	d.focus = -1
}

func (d *DetailsStep) focusField(field int) tea.Cmd {
	d.Blur()
	d.focus = field
	switch field {
	case detailsName:
		return d.name.Focus()
	case detailsDescription:
		return d.description.Focus()
	case detailsDate:
		return d.date.Focus()
	}
	return nil
}

// Update handles messages for the details step.
func (d *DetailsStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case editorFinishedMsg:
		if d.tmpFile != "" {
			_ = os.Remove(d.tmpFile)
			d.tmpFile = ""
		}
		if msg.err != nil {
			logger.Warn("Editor failed: %v", msg.err)
			d.editorErr = "editor failed: " + msg.err.Error()
			return nil
		}
		d.editorErr = ""
		d.description.SetValue(strings.TrimRight(msg.content, "\n"))
		return nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab":
			if d.focus < detailsFieldCount-1 {
				return d.focusField(d.focus + 1)
			}
			return func() tea.Msg { return TabExitForwardMsg{} }
		case "shift+tab":
			if d.focus > 0 {
				return d.focusField(d.focus - 1)
			}
			return func() tea.Msg { return TabExitBackwardMsg{} }
		case "ctrl+e":
			if d.focus == detailsDescription {
				return d.openEditor()
			}
		}

		if d.focus == detailsTime {
			switch msg.String() {
			case "left", "down", "h", "j":
				d.timeIdx = (d.timeIdx - 1 + len(d.times)) % len(d.times)
			case "right", "up", "l", "k":
				d.timeIdx = (d.timeIdx + 1) % len(d.times)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	switch d.focus {
	case detailsName:
		d.name, cmd = d.name.Update(msg)
	case detailsDescription:
		d.description, cmd = d.description.Update(msg)
	case detailsDate:
		d.date, cmd = d.date.Update(msg)
	}
	return cmd
}

// openEditor launches $EDITOR on the current description.
func (d *DetailsStep) openEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "eventify_description_*.md")
	if err != nil {
		logger.Warn("Failed to create temp file for editor: %v", err)
		return nil
	}
	if _, err := tmpfile.WriteString(d.description.Value()); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()
	d.tmpFile = tmpfile.Name()

	cmd, err := editor.Command("eventify", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		d.tmpFile = ""
		d.editorErr = "no editor available"
		return nil
	}

	path := tmpfile.Name()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			return editorFinishedMsg{err: err}
		}
		content, err := os.ReadFile(path)
		return editorFinishedMsg{content: string(content), err: err}
	})
}

// View renders the details step.
func (d *DetailsStep) View() string {
	s := theme.Current().S()
	w := d.width - 4

	var b strings.Builder
	b.WriteString(s.PageTitle.Render("Event Details") + "\n")
	b.WriteString(s.Muted.Render("Let's start with the basic information about your event.") + "\n\n")

	b.WriteString(renderField("Event Name", d.name.View(), d.focus == detailsName, w) + "\n")
	b.WriteString(renderField("Description", d.description.View(), d.focus == detailsDescription, w) + "\n")
	if d.editorErr != "" {
		b.WriteString(s.Error.Render("✗ "+d.editorErr) + "\n")
	}

	half := w / 2
	date := renderField("Date", d.date.View(), d.focus == detailsDate, half)
	timeBody := "◂ " + d.Time() + " ▸"
	tm := renderField("Time", timeBody, d.focus == detailsTime, half)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, date, " ", tm) + "\n\n")

	switch d.focus {
	case detailsDescription:
		b.WriteString(renderHintBar("tab", "next field", "ctrl+e", "open $EDITOR", "esc", "buttons"))
	case detailsTime:
		b.WriteString(renderHintBar("←/→", "change time", "tab", "buttons", "shift+tab", "previous"))
	default:
		b.WriteString(renderHintBar("tab", "next field", "shift+tab", "previous", "esc", "buttons"))
	}
	return b.String()
}

// SetSize updates the size of the details step.
func (d *DetailsStep) SetSize(width, height int) {
	d.width = width
	d.height = height

	inner := width - 8
	if inner < 20 {
		inner = 20
	}
	d.name.SetWidth(inner)
	d.description.SetWidth(inner)
	d.date.SetWidth(inner/2 - 4)
}

// Name returns the trimmed event name.
func (d *DetailsStep) Name() string {
	return strings.TrimSpace(d.name.Value())
}

// Description returns the trimmed description.
func (d *DetailsStep) Description() string {
	return strings.TrimSpace(d.description.Value())
}

// Date returns the date as typed.
func (d *DetailsStep) Date() string {
	return strings.TrimSpace(d.date.Value())
}

// Time returns the selected "HH:MM" label.
func (d *DetailsStep) Time() string {
	return d.times[d.timeIdx]
}
