package tui

import "github.com/sheikhrachel/game-of-colors/rules"

// FillRGBA converts cells into RGBA pixels in buf, which must hold 4 bytes per cell.
// Invalid cells are drawn as Empty.
func FillRGBA(buf []byte, cells []rules.Color) {
	for i, c := range cells {
		if !c.Valid() {
			c = rules.Empty
		}
		col := CellRGBA[c]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
