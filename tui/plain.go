package tui

import (
	"fmt"
	"io"

	"github.com/sheikhrachel/game-of-colors/model"
)

const clearScreen = "\033[H\033[2J"

// TerminalRenderer implements basic line-based terminal rendering
type TerminalRenderer struct {
	Out     io.Writer
	Palette *Palette
}

// NewTerminalRenderer renders to out with the default palette
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{Out: out, Palette: NewPalette(nil)}
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(s model.Snapshot) {
	fmt.Fprintln(r.Out, r.Palette.Render(s))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.Out, clearScreen)
}
