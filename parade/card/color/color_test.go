package color_test

import (
	"testing"

	"github.com/ratel-online/parade/parade/card/color"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	require.Equal(t, []color.Color{
		color.Blue,
		color.Green,
		color.Grey,
		color.Orange,
		color.Purple,
		color.Red,
	}, color.All())
	require.Equal(t, 6, color.Count())
}

func TestAllReturnsCopy(t *testing.T) {
	colors := color.All()
	colors[0] = color.Red
	require.Equal(t, color.Blue, color.All()[0])
}

func TestPaintWithoutColor(t *testing.T) {
	color.SetEnabled(false)
	require.Equal(t, "Red", color.Red.String())
	require.Equal(t, "[Red 7]", color.Red.Paintf("[%s %d]", color.Red.Name(), 7))
}
