package core

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// Flip returns the opposite state.
func (c Cell) Flip() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Grid stores a toroidal 2D field of cells in row-major order. The element at
// (row, col) lives at row*W + col and len(cells) is always W*H.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates an all-dead grid with the given dimensions. Non-positive
// dimensions are clamped to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for (row, col). Both values must
// already be reduced into range.
func (g *Grid) Index(row, col int) int { return row*g.W + col }

// InBounds reports whether (row, col) addresses a cell without wrapping.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

func (g *Grid) Get(row, col int) Cell { return g.cells[g.Index(row, col)] }

func (g *Grid) Set(row, col int, c Cell) { g.cells[g.Index(row, col)] = c }

// Toggle flips the cell at (row, col).
func (g *Grid) Toggle(row, col int) {
	idx := g.Index(row, col)
	g.cells[idx] = g.cells[idx].Flip()
}

// NeighborCount returns the number of alive cells among the eight wrapped
// neighbours of (row, col). On a 1-wide or 1-high grid some neighbours are
// the cell itself and are counted as such.
func (g *Grid) NeighborCount(row, col int) int {
	count := 0
	for dr := 0; dr < 3; dr++ {
		nr := (row + g.H - 1 + dr) % g.H
		for dc := 0; dc < 3; dc++ {
			if dr == 1 && dc == 1 {
				continue
			}
			nc := (col + g.W - 1 + dc) % g.W
			if g.cells[nr*g.W+nc] == Alive {
				count++
			}
		}
	}
	return count
}

// Population counts alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clear sets every cell to Dead.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.W != o.W || g.H != o.H {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}
