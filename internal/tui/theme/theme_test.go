package theme

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestInterpolateColor(t *testing.T) {
	require.Equal(t, "#000000", InterpolateColor("#000000", "#ffffff", 0))
	require.Equal(t, "#ffffff", InterpolateColor("#000000", "#ffffff", 1))
	require.Equal(t, "#7f7f7f", InterpolateColor("#000000", "#ffffff", 0.5))
}

func TestParseHexColor(t *testing.T) {
	r, g, b := ParseHexColor("#cba6f7")
	require.Equal(t, []uint8{0xcb, 0xa6, 0xf7}, []uint8{r, g, b})

	r, g, b = ParseHexColor("nope")
	require.Equal(t, []uint8{0, 0, 0}, []uint8{r, g, b})
}

func TestGradient_KeepsText(t *testing.T) {
	out := Gradient("Eventify", "#cba6f7", "#89b4fa", true)
	require.Equal(t, "Eventify", ansi.Strip(out))
	require.Empty(t, Gradient("", "#000000", "#ffffff", false))
}

func TestCurrent(t *testing.T) {
	require.Equal(t, "catppuccin-mocha", Current().Name)
	require.NotNil(t, Current().S())

	SetCurrent(nil)
	require.Equal(t, "catppuccin-mocha", Current().Name)
}
