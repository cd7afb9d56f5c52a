package color

import (
	"io"

	"github.com/fatih/color"
)

type Color interface {
	Name() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction("%s", text)
}

func (c *colorStruct) Paintf(text string, args ...interface{}) string {
	return c.colorFunction(text, args...)
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Blue = &colorStruct{
	name:          "Blue",
	colorFunction: color.New(color.FgHiBlue).SprintfFunc(),
}

var Green = &colorStruct{
	name:          "Green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Grey = &colorStruct{
	name:          "Grey",
	colorFunction: color.New(color.FgWhite).SprintfFunc(),
}

var Orange = &colorStruct{
	name:          "Orange",
	colorFunction: color.New(color.FgYellow).SprintfFunc(),
}

var Purple = &colorStruct{
	name:          "Purple",
	colorFunction: color.New(color.FgHiMagenta).SprintfFunc(),
}

var Red = &colorStruct{
	name:          "Red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Stdout io.Writer = color.Output

// all is the fixed color order used for dealing, flipping and rendering.
var all = []Color{Blue, Green, Grey, Orange, Purple, Red}

func All() []Color {
	out := make([]Color, len(all))
	copy(out, all)
	return out
}

func Count() int {
	return len(all)
}

// SetEnabled toggles ANSI output for every painted string.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}
