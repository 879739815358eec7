package life

import "lifepaint/internal/core"

// RunResult summarises a headless run of a seeded board.
type RunResult struct {
	Config         Config
	StepsSimulated int
	Population     []int // population before each step, then after the last
	PeakPopulation int
	// SettledAt is the first generation whose board repeats one of the two
	// boards before it, or -1 if the run never settled.
	SettledAt int
	Period    int
	ExtinctAt int // -1 while cells remain
}

// Settled reports whether the board reached a still life or a period-2
// oscillation within the run.
func (r RunResult) Settled() bool { return r.SettledAt >= 0 }

// Simulate seeds a board from cfg and advances it up to steps generations,
// stopping early once the board settles.
func Simulate(cfg Config, steps int) (RunResult, error) {
	grid, err := cfg.NewGrid()
	if err != nil {
		return RunResult{}, err
	}
	res := RunResult{Config: cfg, SettledAt: -1, ExtinctAt: -1}

	var prev, prev2 *core.Grid
	spare := core.NewGrid(grid.W, grid.H)
	record := func(gen int) {
		pop := grid.Population()
		res.Population = append(res.Population, pop)
		if pop > res.PeakPopulation {
			res.PeakPopulation = pop
		}
		if pop == 0 && res.ExtinctAt < 0 {
			res.ExtinctAt = gen
		}
	}
	record(0)

	for step := 1; step <= steps; step++ {
		prev2, prev = prev, grid.Clone()
		grid, spare = AdvanceInto(spare, grid), grid
		res.StepsSimulated = step
		record(step)

		switch {
		case grid.Equal(prev):
			res.SettledAt, res.Period = step, 1
		case prev2 != nil && grid.Equal(prev2):
			res.SettledAt, res.Period = step, 2
		default:
			continue
		}
		break
	}
	return res, nil
}
