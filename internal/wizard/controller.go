// Package wizard implements the linear step sequencer behind the create-event flow.
//
// The controller only knows about ordering. Panel content, key handling and the
// post-completion redirect belong to the hosting page.
package wizard

// Direction is the last transition direction. It only drives presentation.
type Direction int

const (
	DirectionNone     Direction = iota // No transition yet
	DirectionForward                   // Last move was Advance
	DirectionBackward                  // Last move was Retreat
)

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "none"
	}
}

// Step is one page of the wizard.
type Step struct {
	ID       string // Stable identifier (e.g. "details")
	Title    string // Display title
	Icon     string // Single glyph shown in the progress indicator
	Position int    // Ordinal position, assigned by NewController
}

// DefaultSteps returns the create-event step sequence.
func DefaultSteps() []Step {
	return []Step{
		{ID: "details", Title: "Event Details", Icon: "◷"},
		{ID: "location", Title: "Location", Icon: "⌖"},
		{ID: "attendees", Title: "Attendees", Icon: "☺"},
	}
}

// Controller sequences a fixed, ordered list of steps.
// The zero value is not usable; create one with NewController.
type Controller struct {
	steps      []Step
	index      int
	complete   bool
	direction  Direction
	onComplete func()
}

// NewController creates a controller positioned on the first step.
// onComplete may be nil; when set it is invoked exactly once, when the
// controller advances past the final step.
// Panics if steps is empty since there is nothing to sequence.
func NewController(steps []Step, onComplete func()) *Controller {
	if len(steps) == 0 {
		panic("wizard: controller requires at least one step")
	}

	owned := make([]Step, len(steps))
	for i, s := range steps {
		s.Position = i
		owned[i] = s
	}

	return &Controller{
		steps:      owned,
		onComplete: onComplete,
	}
}

// Advance moves to the next step, or marks the wizard complete when called
// on the last step. It reports whether this call completed the wizard.
// Calling Advance once complete does nothing.
func (c *Controller) Advance() bool {
	if c.complete {
		return false
	}

	if c.index < len(c.steps)-1 {
		c.index++
		c.direction = DirectionForward
		return false
	}

	c.complete = true
	if c.onComplete != nil {
		c.onComplete()
	}
	return true
}

// Retreat moves to the previous step. It is a no-op on the first step and
// once the wizard is complete. It reports whether the index changed.
func (c *Controller) Retreat() bool {
	if c.complete || c.index == 0 {
		return false
	}
	c.index--
	c.direction = DirectionBackward
	return true
}

// CurrentStep returns the step at the current index.
func (c *Controller) CurrentStep() Step {
	return c.steps[c.index]
}

// Index returns the current step index.
func (c *Controller) Index() int {
	return c.index
}

// Len returns the number of steps.
func (c *Controller) Len() int {
	return len(c.steps)
}

// Steps returns a copy of the step sequence.
func (c *Controller) Steps() []Step {
	out := make([]Step, len(c.steps))
	copy(out, c.steps)
	return out
}

// Complete reports whether the wizard has advanced past its final step.
func (c *Controller) Complete() bool {
	return c.complete
}

// Direction returns the direction of the last transition.
func (c *Controller) Direction() Direction {
	return c.direction
}

// IsFirst reports whether the controller is on the first step.
func (c *Controller) IsFirst() bool {
	return c.index == 0
}

// IsLast reports whether the controller is on the final step.
func (c *Controller) IsLast() bool {
	return c.index == len(c.steps)-1
}

// StepState describes how a step should be drawn in a progress indicator.
type StepState int

const (
	StepPending StepState = iota
	StepActive
	StepCompleted
)

// StateOf returns the progress state of the step at position i.
// Once complete, every step reports StepCompleted.
func (c *Controller) StateOf(i int) StepState {
	switch {
	case c.complete || i < c.index:
		return StepCompleted
	case i == c.index:
		return StepActive
	default:
		return StepPending
	}
}
