package model

import (
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/game-of-colors/rules"
)

// SeedStrategy selects how an initial generation is drawn
type SeedStrategy string

const (
	// SeedUniform draws every cell uniformly from the five colors
	SeedUniform SeedStrategy = "uniform"
	// SeedSparse fills each cell with probability density, else leaves it Empty
	SeedSparse SeedStrategy = "sparse"
	// SeedEmpty leaves every cell Empty
	SeedEmpty SeedStrategy = "empty"
)

var nonEmpty = [...]rules.Color{rules.Red, rules.Green, rules.Blue, rules.White}

// ParseSeedStrategy validates a strategy name
func ParseSeedStrategy(s string) (SeedStrategy, error) {
	switch strategy := SeedStrategy(strings.ToLower(strings.TrimSpace(s))); strategy {
	case SeedUniform, SeedSparse, SeedEmpty:
		return strategy, nil
	case "":
		return SeedUniform, nil
	}
	return SeedUniform, errors.Errorf("[ParseSeedStrategy] unknown seed strategy: %q", s)
}

// NewRNG returns a deterministic generator for the given seed
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// SeedColors draws a row-major initial generation for a width x height grid
func SeedColors(width, height int, strategy SeedStrategy, density float64, rng *rand.Rand) ([]rules.Color, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "[SeedColors]")
	}
	if density < 0 || density > 1 {
		return nil, errors.Errorf("[SeedColors] density %v outside [0,1]", density)
	}

	cells := make([]rules.Color, width*height)
	switch strategy {
	case SeedUniform:
		for i := range cells {
			cells[i] = rules.Color(rng.IntN(rules.NumColors))
		}
	case SeedSparse:
		for i := range cells {
			if rng.Float64() < density {
				cells[i] = nonEmpty[rng.IntN(len(nonEmpty))]
			}
		}
	case SeedEmpty:
	default:
		return nil, errors.Errorf("[SeedColors] unknown seed strategy: %q", strategy)
	}
	return cells, nil
}
