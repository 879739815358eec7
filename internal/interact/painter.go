package interact

import "lifepaint/internal/core"

// Mode selects how pointer input edits the grid.
type Mode int

const (
	// ModePaint sets every cell under a held pointer to the brush value.
	ModePaint Mode = iota
	// ModeToggle flips the single cell under a pointer press.
	ModeToggle
)

func (m Mode) String() string {
	if m == ModeToggle {
		return "toggle"
	}
	return "paint"
}

// ParseMode maps a flag value to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "paint", "":
		return ModePaint, true
	case "toggle":
		return ModeToggle, true
	}
	return ModePaint, false
}

// Painter is the pointer state machine. It is Idle until a pointer goes down
// and Painting(value) until that pointer is released or leaves the surface.
// The grid is passed on every call and never retained.
type Painter struct {
	surface  Surface
	cellSize float64
	mode     Mode

	active    bool
	brush     core.Cell
	pointerID int
}

// NewPainter constructs an idle Painter for the given surface.
func NewPainter(surface Surface, cellSize float64, mode Mode) *Painter {
	return &Painter{surface: surface, cellSize: cellSize, mode: mode}
}

// Mode reports the interaction mode.
func (p *Painter) Mode() Mode { return p.mode }

// Painting reports the active brush value, if any.
func (p *Painter) Painting() (core.Cell, bool) { return p.brush, p.active }

// Down starts a stroke. The secondary button paints Dead, any other button
// paints Alive. The pointer is captured so the stroke keeps receiving moves
// when it slides off the surface. In toggle mode the cell under the pointer
// is flipped instead and no stroke starts.
func (p *Painter) Down(g *core.Grid, ev PointerEvent) {
	if p.mode == ModeToggle {
		if row, col, ok := p.cellAt(g, ev); ok {
			g.Toggle(row, col)
		}
		return
	}
	if p.active && p.pointerID != ev.PointerID {
		_ = p.surface.ReleasePointerCapture(p.pointerID)
	}
	p.brush = core.Alive
	if ev.Button == ButtonSecondary {
		p.brush = core.Dead
	}
	p.active = true
	p.pointerID = ev.PointerID
	_ = p.surface.SetPointerCapture(ev.PointerID)
	p.paint(g, ev)
}

// Move paints the cell under the pointer while a stroke is active.
func (p *Painter) Move(g *core.Grid, ev PointerEvent) {
	if !p.active {
		return
	}
	p.paint(g, ev)
}

// Up ends the stroke.
func (p *Painter) Up(ev PointerEvent) { p.end(ev) }

// Leave ends the stroke when the pointer leaves the surface uncaptured.
func (p *Painter) Leave(ev PointerEvent) { p.end(ev) }

// end only reacts to the pointer that owns the stroke.
func (p *Painter) end(ev PointerEvent) {
	if !p.active || ev.PointerID != p.pointerID {
		return
	}
	p.active = false
	_ = p.surface.ReleasePointerCapture(p.pointerID)
}

func (p *Painter) paint(g *core.Grid, ev PointerEvent) {
	if row, col, ok := p.cellAt(g, ev); ok {
		g.Set(row, col, p.brush)
	}
}

func (p *Painter) cellAt(g *core.Grid, ev PointerEvent) (int, int, bool) {
	row, col, ok := CellAt(p.surface, p.cellSize, ev.ClientX, ev.ClientY)
	if !ok || !g.InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}
