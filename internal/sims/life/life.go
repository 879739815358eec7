package life

import "lifepaint/internal/core"

// Advance returns the next generation of g under Conway's rules (B3/S23) on a
// torus. g is not modified.
func Advance(g *core.Grid) *core.Grid {
	return AdvanceInto(core.NewGrid(g.W, g.H), g)
}

// AdvanceInto writes the next generation of src into dst and returns dst.
// Every neighbour count is read from src, so dst must not alias it. A dst of
// the wrong size (or nil) is replaced by a fresh grid.
func AdvanceInto(dst, src *core.Grid) *core.Grid {
	if dst == nil || dst == src || dst.W != src.W || dst.H != src.H {
		dst = core.NewGrid(src.W, src.H)
	}
	cur := src.Cells()
	nxt := dst.Cells()
	w, h := src.W, src.H
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			nxt[idx] = Rule(cur[idx], src.NeighborCount(row, col))
		}
	}
	return dst
}

// Rule maps a cell and its live neighbour count to the cell's next state.
func Rule(c core.Cell, neighbors int) core.Cell {
	switch {
	case c == core.Alive && neighbors < 2:
		return core.Dead
	case c == core.Alive && (neighbors == 2 || neighbors == 3):
		return core.Alive
	case c == core.Alive && neighbors > 3:
		return core.Dead
	case c == core.Dead && neighbors == 3:
		return core.Alive
	default:
		return c
	}
}
