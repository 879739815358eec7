//go:build ebiten

package ui

import (
	"fmt"

	"lifepaint/internal/core"
	"lifepaint/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional visuals on top of the board: cell grid lines and a
// frame timing readout.
type Overlay struct {
	size      core.Size
	cellSize  int
	showGrid  bool
	showDebug bool
	lines     []render.Segment
}

// NewOverlay constructs an overlay for a board of the given size.
func NewOverlay(size core.Size, cellSize int, showGrid, showDebug bool) *Overlay {
	return &Overlay{
		size:      size,
		cellSize:  cellSize,
		showGrid:  showGrid,
		showDebug: showDebug,
		lines:     render.GridLines(size.W, size.H, cellSize),
	}
}

// Update toggles the layers: G for grid lines, F3 for timing.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		o.showDebug = !o.showDebug
	}
}

// Draw renders the enabled layers onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image, generation uint64) {
	if o.showGrid && o.cellSize > 2 {
		for _, l := range o.lines {
			vector.StrokeLine(screen, l.X0, l.Y0, l.X1, l.Y1, 1, render.LineColor, false)
		}
	}
	if o.showDebug {
		msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nGen: %d", ebiten.ActualFPS(), ebiten.ActualTPS(), generation)
		ebitenutil.DebugPrint(screen, msg)
	}
}
