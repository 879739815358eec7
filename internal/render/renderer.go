//go:build ebiten

package render

import (
	"image/color"

	"lifepaint/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a one-pixel-per-cell image of the board. Render uploads
// the cells; Draw scales the image onto the screen.
type GridPainter struct {
	w, h     int
	cellSize int
	img      *ebiten.Image
	buf      []byte

	alive color.Color
	dead  color.Color
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), alive: AliveColor, dead: DeadColor, cellSize: 1}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Render uploads the provided grid into the painter image.
func (gp *GridPainter) Render(g *core.Grid, cellSize int) {
	if g.W != gp.w || g.H != gp.h {
		return
	}
	if cellSize > 0 {
		gp.cellSize = cellSize
	}
	fillCellsRGBA(gp.buf, g.Cells(), gp.alive, gp.dead)
	gp.img.WritePixels(gp.buf)
}

// Draw clears dst and draws the last rendered board at its cell scale.
func (gp *GridPainter) Draw(dst *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.cellSize), float64(gp.cellSize))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
