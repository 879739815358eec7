package app

import (
	"flag"
	"fmt"

	"lifepaint/internal/core"
	"lifepaint/internal/interact"
	"lifepaint/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Life      life.Config
	CellSize  int
	TPS       int
	Throttle  int
	Mode      string
	Paused    bool
	GridLines bool
	HUDWidth  int
	Debug     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Life:      life.DefaultConfig(),
		CellSize:  8,
		TPS:       60,
		Throttle:  core.DefaultThrottle,
		Mode:      interact.ModePaint.String(),
		GridLines: true,
		HUDWidth:  220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Life.Width, "w", c.Life.Width, "board width in cells")
	fs.IntVar(&c.Life.Height, "h", c.Life.Height, "board height in cells")
	fs.StringVar(&c.Life.Pattern, "pattern", c.Life.Pattern, "initial pattern (dead, even7, glider, random)")
	fs.Int64Var(&c.Life.Seed, "seed", c.Life.Seed, "seed for the random pattern")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "display frames per second")
	fs.IntVar(&c.Throttle, "throttle", c.Throttle, "frames per generation (5 and 15 are the usual speeds)")
	fs.StringVar(&c.Mode, "mode", c.Mode, "pointer mode: paint or toggle")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.BoolVar(&c.GridLines, "grid", c.GridLines, "draw cell grid lines")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "show frame timing overlay")
}

// Validate reports configuration errors that must abort startup.
func (c *Config) Validate() error {
	if err := c.Life.Validate(); err != nil {
		return err
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("app: cell size must be positive, got %d", c.CellSize)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("app: tps must be positive, got %d", c.TPS)
	}
	if c.Throttle <= 0 {
		return fmt.Errorf("app: throttle must be positive, got %d", c.Throttle)
	}
	if _, ok := interact.ParseMode(c.Mode); !ok {
		return fmt.Errorf("app: unknown pointer mode %q", c.Mode)
	}
	if c.HUDWidth < 0 {
		c.HUDWidth = 0
	}
	return nil
}

// PointerMode returns the parsed pointer mode.
func (c *Config) PointerMode() interact.Mode {
	m, _ := interact.ParseMode(c.Mode)
	return m
}

// CanvasSize returns the board size in pixels.
func (c *Config) CanvasSize() (int, int) {
	return c.Life.Width * c.CellSize, c.Life.Height * c.CellSize
}
