package interact

import (
	"testing"

	"lifepaint/internal/core"
)

const cellSize = 8

// newSurface shows a w x h board of 8px cells at its native size.
func newSurface(w, h int) *FixedSurface {
	return NewFixedSurface(Rect{Width: float64(w * cellSize), Height: float64(h * cellSize)}, w*cellSize, h*cellSize)
}

func TestCellAtOrigin(t *testing.T) {
	s := newSurface(10, 10)
	row, col, ok := CellAt(s, cellSize, 0, 0)
	if !ok || row != 0 || col != 0 {
		t.Fatalf("CellAt(0,0) = (%d,%d,%v), want (0,0,true)", row, col, ok)
	}
	row, col, _ = CellAt(s, cellSize, 17.9, 8)
	if row != 1 || col != 2 {
		t.Fatalf("CellAt(17.9,8) = (%d,%d), want (1,2)", row, col)
	}
}

func TestCellAtAppliesScaleAndOffset(t *testing.T) {
	// 80x80 backing pixels shown at 40x40 display pixels, offset by (100, 50).
	s := NewFixedSurface(Rect{Left: 100, Top: 50, Width: 40, Height: 40}, 80, 80)
	row, col, ok := CellAt(s, cellSize, 100+12, 50+4)
	if !ok || row != 1 || col != 3 {
		t.Fatalf("scaled CellAt = (%d,%d,%v), want (1,3,true)", row, col, ok)
	}
	row, col, _ = CellAt(s, cellSize, 99, 49)
	if row >= 0 || col >= 0 {
		t.Fatalf("point left of the surface mapped to (%d,%d)", row, col)
	}
}

func TestCellAtDegenerateRect(t *testing.T) {
	s := NewFixedSurface(Rect{}, 80, 80)
	if _, _, ok := CellAt(s, cellSize, 1, 1); ok {
		t.Fatal("zero-size rect should not map")
	}
}

func TestDownPaintsAliveAndCaptures(t *testing.T) {
	g := core.NewGrid(10, 10)
	s := newSurface(10, 10)
	p := NewPainter(s, cellSize, ModePaint)

	p.Down(g, PointerEvent{ClientX: 0, ClientY: 0, Button: ButtonPrimary, PointerID: 3})

	if g.Get(0, 0) != core.Alive {
		t.Fatal("pointer-down at origin should paint (0,0)")
	}
	if brush, ok := p.Painting(); !ok || brush != core.Alive {
		t.Fatalf("painter state = (%v,%v), want painting alive", brush, ok)
	}
	if !s.Captured(3) {
		t.Fatal("pointer should be captured on down")
	}
}

func TestDragPaintsAndUpReleases(t *testing.T) {
	g := core.NewGrid(10, 10)
	s := newSurface(10, 10)
	p := NewPainter(s, cellSize, ModePaint)

	p.Down(g, PointerEvent{ClientX: 4, ClientY: 4, PointerID: 1})
	for x := 12.0; x < 40; x += 8 {
		p.Move(g, PointerEvent{ClientX: x, ClientY: 4, PointerID: 1})
	}
	for col := 0; col < 5; col++ {
		if g.Get(0, col) != core.Alive {
			t.Fatalf("cell (0,%d) not painted", col)
		}
	}

	p.Up(PointerEvent{ClientX: 40, ClientY: 4, PointerID: 1})
	if _, ok := p.Painting(); ok {
		t.Fatal("painter should be idle after up")
	}
	if s.Captured(1) {
		t.Fatal("capture should be released on up")
	}

	before := g.Clone()
	p.Move(g, PointerEvent{ClientX: 60, ClientY: 60, PointerID: 1})
	if !g.Equal(before) {
		t.Fatal("move while idle must not paint")
	}
}

func TestSecondaryButtonErases(t *testing.T) {
	g := core.NewGrid(4, 4)
	for i := range g.Cells() {
		g.Cells()[i] = core.Alive
	}
	s := newSurface(4, 4)
	p := NewPainter(s, cellSize, ModePaint)

	p.Down(g, PointerEvent{ClientX: 9, ClientY: 9, Button: ButtonSecondary})
	p.Move(g, PointerEvent{ClientX: 17, ClientY: 9, Button: ButtonSecondary})

	if g.Get(1, 1) != core.Dead || g.Get(1, 2) != core.Dead {
		t.Fatal("secondary drag should paint dead")
	}
	if g.Population() != 14 {
		t.Fatalf("population = %d, want 14", g.Population())
	}
}

func TestOutOfBoundsIgnored(t *testing.T) {
	g := core.NewGrid(5, 5)
	s := newSurface(5, 5)
	p := NewPainter(s, cellSize, ModePaint)

	p.Down(g, PointerEvent{ClientX: 5*cellSize + 1, ClientY: 3})
	if g.Population() != 0 {
		t.Fatal("pointer-down past the last column must not paint")
	}
	if _, ok := p.Painting(); !ok {
		t.Fatal("stroke should still start outside the grid")
	}

	p.Move(g, PointerEvent{ClientX: -3, ClientY: -3})
	p.Move(g, PointerEvent{ClientX: 3, ClientY: 5*cellSize + 2})
	if g.Population() != 0 {
		t.Fatal("moves outside the grid must not paint")
	}

	p.Move(g, PointerEvent{ClientX: 3, ClientY: 3})
	if g.Get(0, 0) != core.Alive {
		t.Fatal("stroke should resume painting once back on the grid")
	}
}

func TestLeaveEndsStroke(t *testing.T) {
	g := core.NewGrid(5, 5)
	s := newSurface(5, 5)
	p := NewPainter(s, cellSize, ModePaint)

	p.Down(g, PointerEvent{ClientX: 1, ClientY: 1, PointerID: 2})
	p.Leave(PointerEvent{ClientX: 100, ClientY: 100, PointerID: 2})
	if _, ok := p.Painting(); ok {
		t.Fatal("leave should end the stroke")
	}
	if s.Captured(2) {
		t.Fatal("leave should release capture")
	}
	p.Leave(PointerEvent{PointerID: 2})
	if g.Population() != 1 {
		t.Fatalf("population = %d, want 1", g.Population())
	}
}

func TestDownWhilePaintingRestartsStroke(t *testing.T) {
	g := core.NewGrid(5, 5)
	s := newSurface(5, 5)
	p := NewPainter(s, cellSize, ModePaint)

	p.Down(g, PointerEvent{ClientX: 1, ClientY: 1, PointerID: 1})
	p.Down(g, PointerEvent{ClientX: 1, ClientY: 1, Button: ButtonSecondary, PointerID: 2})

	if g.Get(0, 0) != core.Dead {
		t.Fatal("second press should repaint with its own brush")
	}
	if s.Captured(1) || !s.Captured(2) {
		t.Fatal("capture should move to the new pointer")
	}
}

func TestUpFromOtherPointerKeepsStroke(t *testing.T) {
	g := core.NewGrid(5, 5)
	s := newSurface(5, 5)
	p := NewPainter(s, cellSize, ModePaint)

	p.Down(g, PointerEvent{ClientX: 1, ClientY: 1, PointerID: 100})
	p.Down(g, PointerEvent{ClientX: 1, ClientY: 1, PointerID: 1})
	p.Up(PointerEvent{PointerID: 100})
	if _, ok := p.Painting(); !ok {
		t.Fatal("up from a pointer that no longer owns the stroke should be ignored")
	}
	if !s.Captured(1) {
		t.Fatal("stroke pointer should stay captured")
	}

	p.Move(g, PointerEvent{ClientX: 17, ClientY: 1, PointerID: 1})
	if g.Get(0, 2) != core.Alive {
		t.Fatal("stroke pointer should keep painting")
	}

	p.Up(PointerEvent{PointerID: 1})
	if _, ok := p.Painting(); ok {
		t.Fatal("up from the stroke pointer should end the stroke")
	}
	if s.Captured(1) || s.Captured(100) {
		t.Fatal("no pointer should remain captured")
	}
}

func TestLeaveFromOtherPointerIgnored(t *testing.T) {
	g := core.NewGrid(5, 5)
	s := newSurface(5, 5)
	p := NewPainter(s, cellSize, ModePaint)

	p.Down(g, PointerEvent{ClientX: 1, ClientY: 1, PointerID: 1})
	p.Leave(PointerEvent{PointerID: 7})
	if _, ok := p.Painting(); !ok || !s.Captured(1) {
		t.Fatal("leave from another pointer should not end the stroke")
	}
}

func TestToggleMode(t *testing.T) {
	g := core.NewGrid(5, 5)
	s := newSurface(5, 5)
	p := NewPainter(s, cellSize, ModeToggle)

	ev := PointerEvent{ClientX: 10, ClientY: 2}
	p.Down(g, ev)
	if g.Get(0, 1) != core.Alive {
		t.Fatal("toggle on dead cell should yield alive")
	}
	p.Move(g, PointerEvent{ClientX: 20, ClientY: 2})
	p.Up(ev)
	if g.Population() != 1 {
		t.Fatal("toggle mode must not paint on move")
	}
	p.Down(g, ev)
	if g.Get(0, 1) != core.Dead {
		t.Fatal("second toggle should yield dead")
	}
	if _, ok := p.Painting(); ok {
		t.Fatal("toggle mode never enters painting")
	}
}

func TestParseMode(t *testing.T) {
	if m, ok := ParseMode("toggle"); !ok || m != ModeToggle {
		t.Fatal("toggle not parsed")
	}
	if m, ok := ParseMode("paint"); !ok || m != ModePaint {
		t.Fatal("paint not parsed")
	}
	if _, ok := ParseMode("spray"); ok {
		t.Fatal("unknown mode accepted")
	}
}
