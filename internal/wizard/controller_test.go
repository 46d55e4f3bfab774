package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewController_StartsOnFirstStep(t *testing.T) {
	c := NewController(DefaultSteps(), nil)

	require.Equal(t, 0, c.Index())
	require.False(t, c.Complete())
	require.Equal(t, DirectionNone, c.Direction())
	require.Equal(t, "details", c.CurrentStep().ID)
	require.Equal(t, 3, c.Len())
}

func TestNewController_AssignsPositions(t *testing.T) {
	c := NewController(DefaultSteps(), nil)
	for i, s := range c.Steps() {
		require.Equal(t, i, s.Position)
	}
}

func TestNewController_PanicsWithoutSteps(t *testing.T) {
	require.Panics(t, func() { NewController(nil, nil) })
}

func TestAdvance_ReachesLastStepWithoutCompleting(t *testing.T) {
	c := NewController(DefaultSteps(), nil)

	for i := 0; i < c.Len()-1; i++ {
		require.False(t, c.Advance())
	}

	require.Equal(t, c.Len()-1, c.Index())
	require.True(t, c.IsLast())
	require.False(t, c.Complete())
	require.Equal(t, DirectionForward, c.Direction())
}

func TestAdvance_PastLastStepCompletes(t *testing.T) {
	calls := 0
	c := NewController(DefaultSteps(), func() { calls++ })

	c.Advance()
	c.Advance()
	require.True(t, c.Advance())

	require.True(t, c.Complete())
	require.Equal(t, 2, c.Index())
	require.Equal(t, 1, calls)
}

func TestAdvance_AfterCompleteIsNoOp(t *testing.T) {
	calls := 0
	c := NewController(DefaultSteps(), func() { calls++ })
	for i := 0; i < 3; i++ {
		c.Advance()
	}

	require.False(t, c.Advance())
	require.False(t, c.Retreat())

	require.Equal(t, 2, c.Index())
	require.True(t, c.Complete())
	require.Equal(t, 1, calls, "completion sink must fire once")
}

func TestRetreat_AtFirstStepIsNoOp(t *testing.T) {
	c := NewController(DefaultSteps(), nil)

	require.False(t, c.Retreat())
	require.Equal(t, 0, c.Index())
	require.Equal(t, DirectionNone, c.Direction())
	require.False(t, c.Complete())
}

func TestRetreat_ThenAdvanceRestoresStep(t *testing.T) {
	c := NewController(DefaultSteps(), nil)

	for i := 1; i < c.Len(); i++ {
		c.Advance()
		want := c.CurrentStep()

		require.True(t, c.Retreat())
		require.Equal(t, i-1, c.Index())
		require.Equal(t, DirectionBackward, c.Direction())

		c.Advance()
		require.Equal(t, want, c.CurrentStep())
	}
}

func TestScenario_ThreeSteps(t *testing.T) {
	c := NewController(DefaultSteps(), nil)

	c.Advance()
	require.Equal(t, 1, c.Index())
	c.Advance()
	require.Equal(t, 2, c.Index())

	c.Retreat()
	require.Equal(t, 1, c.Index())

	c.Advance()
	c.Advance()
	require.True(t, c.Complete())
}

func TestStateOf(t *testing.T) {
	c := NewController(DefaultSteps(), nil)
	c.Advance()

	require.Equal(t, StepCompleted, c.StateOf(0))
	require.Equal(t, StepActive, c.StateOf(1))
	require.Equal(t, StepPending, c.StateOf(2))

	c.Advance()
	c.Advance()
	for i := 0; i < c.Len(); i++ {
		require.Equal(t, StepCompleted, c.StateOf(i))
	}
}

func TestSteps_ReturnsCopy(t *testing.T) {
	c := NewController(DefaultSteps(), nil)
	steps := c.Steps()
	steps[0].Title = "changed"

	require.Equal(t, "Event Details", c.CurrentStep().Title)
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "none", DirectionNone.String())
	require.Equal(t, "forward", DirectionForward.String())
	require.Equal(t, "backward", DirectionBackward.String())
}
