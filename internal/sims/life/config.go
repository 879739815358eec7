package life

import (
	"fmt"
	"strconv"
	"strings"

	"lifepaint/internal/core"
)

// Config describes the board a session starts with.
type Config struct {
	Width   int
	Height  int
	Pattern string
	Seed    int64
}

// DefaultConfig returns the standard 150x150 empty board.
func DefaultConfig() Config {
	return Config{Width: 150, Height: 150, Pattern: PatternDead, Seed: 42}
}

// FromMap populates a Config from a string map (key=value overrides).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Validate rejects sizes below 1x1 and unregistered patterns.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("life: invalid board size %dx%d", c.Width, c.Height)
	}
	if _, ok := core.Seeders()[c.Pattern]; !ok {
		return fmt.Errorf("life: unknown pattern %q (have %s)", c.Pattern, strings.Join(core.SeederNames(), ", "))
	}
	return nil
}

// NewGrid allocates a board of the configured size and seeds it.
func (c Config) NewGrid() (*core.Grid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	g := core.NewGrid(c.Width, c.Height)
	c.Reseed(g)
	return g, nil
}

// Reseed applies the configured pattern to g. Unknown patterns leave g dead.
func (c Config) Reseed(g *core.Grid) {
	seed, ok := core.Seeders()[c.Pattern]
	if !ok {
		g.Clear()
		return
	}
	seed(g, c.Seed)
}
