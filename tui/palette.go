// Package tui draws Game of Colors generations in a terminal, locally through
// Bubble Tea or remotely over SSH.
package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sheikhrachel/game-of-colors/model"
	"github.com/sheikhrachel/game-of-colors/rules"
)

const cellBlock = "██"

// CellRGBA is the display color of each cell state
var CellRGBA = [rules.NumColors]color.RGBA{
	rules.Empty: {0x00, 0x00, 0x00, 0xff},
	rules.Red:   {0x9f, 0x00, 0x00, 0xff},
	rules.Green: {0x00, 0x9f, 0x00, 0xff},
	rules.Blue:  {0x00, 0x00, 0x9f, 0xff},
	rules.White: {0x9f, 0x9f, 0x9f, 0xff},
}

// BackgroundRGBA fills the space around the grid
var BackgroundRGBA = color.RGBA{0x30, 0x30, 0x30, 0xff}

var cellHex = [rules.NumColors]string{
	rules.Empty: "#000000",
	rules.Red:   "#9F0000",
	rules.Green: "#009F00",
	rules.Blue:  "#00009F",
	rules.White: "#9F9F9F",
}

// Palette maps cell colors to lipgloss styles for one output
type Palette struct {
	styles [rules.NumColors]lipgloss.Style
	status lipgloss.Style
}

// NewPalette builds styles bound to r. A nil renderer uses lipgloss' default.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Palette{
		status: r.NewStyle().Foreground(lipgloss.Color("245")),
	}
	for c, hex := range cellHex {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return p
}

// Render converts a snapshot to a styled string, two columns per cell.
// Adjacent cells with the same color share one escape sequence.
func (p *Palette) Render(s model.Snapshot) string {
	var sb strings.Builder
	sb.Grow(s.Width*s.Height*len(cellBlock) + s.Height)

	for y := range s.Height {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width {
			start := s.At(x, y)

			var run strings.Builder
			for x < s.Width && s.At(x, y) == start {
				run.WriteString(cellBlock)
				x++
			}
			sb.WriteString(p.styles[start].Render(run.String()))
		}
	}
	return sb.String()
}

// Status renders a dimmed status line
func (p *Palette) Status(text string) string {
	return p.status.Render(text)
}

// FitSize returns the largest grid that fits a terminal of cols x rows,
// leaving room for the status lines
func FitSize(cols, rows int) (width, height int) {
	return max(1, cols/len([]rune(cellBlock))), max(1, rows-statusLines)
}
