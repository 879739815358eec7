package render

import (
	"image/color"

	"lifepaint/internal/core"
)

// Default cell colours.
var (
	AliveColor color.Color = color.Black
	DeadColor  color.Color = color.White
	LineColor  color.Color = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
)

// fillCellsRGBA converts cell states into RGBA pixels in buf, one pixel per
// cell. buf must hold 4*len(cells) bytes.
func fillCellsRGBA(buf []byte, cells []core.Cell, alive, dead color.Color) {
	rOn, gOn, bOn, aOn := alive.RGBA()
	rOff, gOff, bOff, aOff := dead.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == core.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Segment is a line from (X0, Y0) to (X1, Y1) in canvas pixels.
type Segment struct {
	X0, Y0, X1, Y1 float32
}

// GridLines returns the cell boundaries of a w x h board drawn at cellSize
// pixels per cell: w+1 vertical lines followed by h+1 horizontal ones.
func GridLines(w, h, cellSize int) []Segment {
	if w <= 0 || h <= 0 || cellSize <= 0 {
		return nil
	}
	width := float32(w * cellSize)
	height := float32(h * cellSize)
	lines := make([]Segment, 0, w+h+2)
	for col := 0; col <= w; col++ {
		x := float32(col * cellSize)
		lines = append(lines, Segment{X0: x, Y0: 0, X1: x, Y1: height})
	}
	for row := 0; row <= h; row++ {
		y := float32(row * cellSize)
		lines = append(lines, Segment{X0: 0, Y0: y, X1: width, Y1: y})
	}
	return lines
}
