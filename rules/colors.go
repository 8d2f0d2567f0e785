package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// Color is the state of a single cell
type Color uint8

const (
	Empty Color = iota
	Red
	Green
	Blue
	White

	// NumColors is the number of valid cell states
	NumColors = 5
)

// Chromatic lists the producing colors in their fixed precedence order
var Chromatic = [3]Color{Red, Green, Blue}

var colorNames = [NumColors]string{"empty", "red", "green", "blue", "white"}

// Valid reports whether c is one of the five cell states
func (c Color) Valid() bool {
	return c < NumColors
}

func (c Color) String() string {
	if !c.Valid() {
		return "invalid"
	}
	return colorNames[c]
}

// ParseColor converts a color name into a Color
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return Empty, errors.Errorf("[ParseColor] unknown color: %q", name)
}

// Counts holds the number of neighbors of each color, indexed by Color
type Counts [NumColors]int

// Total returns the number of neighbors the counts were built from
func (c Counts) Total() (n int) {
	for _, v := range c {
		n += v
	}
	return
}

// CountColors tallies a neighbor sequence. Invalid colors are ignored.
func CountColors(neighbors []Color) (c Counts) {
	for _, n := range neighbors {
		if n.Valid() {
			c[n]++
		}
	}
	return
}
