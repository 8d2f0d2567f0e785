package model

import "github.com/sheikhrachel/game-of-colors/rules"

// Snapshot is an immutable copy of one committed generation
type Snapshot struct {
	Width      int
	Height     int
	Generation int
	Wrap       WrapMode
	Cells      []rules.Color // row-major, len Width*Height
}

// At returns the color at (x, y), or Empty outside the grid
func (s Snapshot) At(x, y int) rules.Color {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return rules.Empty
	}
	return s.Cells[y*s.Width+x]
}

// Population tallies the cells of each color
func (s Snapshot) Population() rules.Counts {
	return rules.CountColors(s.Cells)
}
