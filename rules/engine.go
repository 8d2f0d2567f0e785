package rules

import (
	"slices"

	"github.com/pkg/errors"
)

const (
	// DefaultProductionThreshold is the neighbor count that spawns or spreads a color
	DefaultProductionThreshold = 3

	maxNeighbors = 8
)

// ErrInvalidParameter is returned when rule parameters are outside [0, 8]
var ErrInvalidParameter = errors.New("invalid rule parameter")

// DefaultSurvivalCounts is the survival set of a chromatic cell
func DefaultSurvivalCounts() []int {
	return []int{2, 3}
}

// Stepper computes the next color of a cell from its current color and neighbor counts
type Stepper interface {
	Step(current Color, counts Counts) Color
}

// Engine evaluates the Game of Colors transition table.
//
// Dispatch is keyed by the current color: Empty produces, White resolves
// chromatic pressure, and the three chromatic colors share one rule
// parameterized by the color itself and the other two chromatic colors.
type Engine struct {
	ProductionThreshold int
	SurvivalCounts      []int
}

// DefaultEngine returns the reference rule engine: production at 3, survival on {2, 3}
func DefaultEngine() *Engine {
	e, _ := NewEngine(DefaultProductionThreshold, DefaultSurvivalCounts())
	return e
}

// NewEngine validates the parameters and builds an Engine
func NewEngine(productionThreshold int, survivalCounts []int) (*Engine, error) {
	if productionThreshold < 0 || productionThreshold > maxNeighbors {
		return nil, errors.Wrapf(ErrInvalidParameter, "[NewEngine] production threshold %d", productionThreshold)
	}

	e := &Engine{
		ProductionThreshold: productionThreshold,
		SurvivalCounts:      slices.Clone(survivalCounts),
	}
	for _, n := range survivalCounts {
		if n < 0 || n > maxNeighbors {
			return nil, errors.Wrapf(ErrInvalidParameter, "[NewEngine] survival count %d", n)
		}
	}
	return e, nil
}

// others holds the scan order of the two non-self chromatic colors.
// The order matters: the last color meeting the production threshold spreads.
var others = [NumColors][2]Color{
	Red:   {Green, Blue},
	Green: {Red, Blue},
	Blue:  {Green, Red},
}

// Step returns the next color of a cell. It is total: any color and any counts
// yield a valid Color, and an invalid current color yields Empty.
func (e *Engine) Step(current Color, counts Counts) Color {
	switch current {
	case Empty:
		return e.stepEmpty(counts)
	case White:
		return stepWhite(counts)
	case Red, Green, Blue:
		return e.stepChromatic(current, counts)
	}
	return Empty
}

// stepEmpty spawns a color only when exactly one chromatic color hits the threshold
func (e *Engine) stepEmpty(counts Counts) Color {
	var (
		produced   = Empty
		candidates int
	)
	for _, c := range Chromatic {
		if counts[c] == e.ProductionThreshold {
			produced = c
			candidates++
		}
	}
	if candidates != 1 {
		return Empty
	}
	return produced
}

func stepWhite(counts Counts) Color {
	if counts[Red] > 0 && counts[Green] > 0 && counts[Blue] > 0 {
		return White
	}

	next, power := Empty, 0
	for _, c := range Chromatic {
		if counts[c] > power {
			next, power = c, counts[c]
		}
	}
	return next
}

func (e *Engine) stepChromatic(self Color, counts Counts) Color {
	o := others[self]
	if counts[o[0]] > 0 && counts[o[1]] > 0 {
		return White
	}

	spread := Empty
	for _, c := range o {
		if counts[c] == e.ProductionThreshold {
			spread = c
		}
	}

	if e.Survives(counts[self]) {
		return self
	}
	return spread
}

// Survives reports whether n same-colored neighbors keep a chromatic cell alive
func (e *Engine) Survives(n int) bool {
	return slices.Contains(e.SurvivalCounts, n)
}
