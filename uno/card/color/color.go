package color

import (
	"fmt"
	"io"
	"strings"

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
	return c.colorFunction(text) + fmt.Sprintf("(%s)", c.name)
}

func (c *colorStruct) Paintf(text string, args ...interface{}) string {
	return c.colorFunction(text, args...) + fmt.Sprintf("(%s)", c.name)
}

func (c *colorStruct) String() string {
	return c.colorFunction(c.name)
}

// Black is the color of a wild card until a color is chosen for it.
var Black Color = &colorStruct{
	name:          "black",
	colorFunction: color.New(color.FgHiMagenta).SprintfFunc(),
}

var Red Color = &colorStruct{
	name:          "red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Yellow Color = &colorStruct{
	name:          "yellow",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

var Green Color = &colorStruct{
	name:          "green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Blue Color = &colorStruct{
	name:          "blue",
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

// Playable lists the colors a card can carry on the table, in tie-break order.
var Playable = []Color{Red, Yellow, Green, Blue}

var Stdout io.Writer = color.Output

var colors = map[string]Color{
	"red":    Red,
	"yellow": Yellow,
	"green":  Green,
	"blue":   Blue,
}

func ByName(name string) (Color, error) {
	c := colors[strings.ToLower(strings.TrimSpace(name))]
	if c == nil {
		return nil, fmt.Errorf("invalid color '%s'", name)
	}
	return c, nil
}

func IsPlayable(c Color) bool {
	for _, playable := range Playable {
		if c == playable {
			return true
		}
	}
	return false
}
