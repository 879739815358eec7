package life

import "lifepaint/internal/core"

// Names of the built-in seeding policies.
const (
	PatternDead   = "dead"
	PatternEven7  = "even7"
	PatternRandom = "random"
	PatternGlider = "glider"
)

// SeedDead leaves every cell dead.
func SeedDead(g *core.Grid, _ int64) {
	g.Clear()
}

// SeedEven7 marks a cell alive when its flat index is even or a multiple of 7.
func SeedEven7(g *core.Grid, _ int64) {
	cells := g.Cells()
	for i := range cells {
		cells[i] = core.Dead
		if i%2 == 0 || i%7 == 0 {
			cells[i] = core.Alive
		}
	}
}

// SeedRandom fills the grid with a deterministic coin flip per cell.
func SeedRandom(g *core.Grid, seed int64) {
	core.NewRNG(seed).FillCells(g.Cells())
}

// SeedGlider places a single south-east travelling glider near the origin.
func SeedGlider(g *core.Grid, _ int64) {
	g.Clear()
	for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}} {
		row, col := g.Wrap(p[0]+1, p[1]+1)
		g.Set(row, col, core.Alive)
	}
}

func init() {
	core.RegisterSeeder(PatternDead, SeedDead)
	core.RegisterSeeder(PatternEven7, SeedEven7)
	core.RegisterSeeder(PatternRandom, SeedRandom)
	core.RegisterSeeder(PatternGlider, SeedGlider)
}
