package term

import (
	"bytes"
	"log"
	"testing"

	"lifepaint/internal/app"
	"lifepaint/internal/core"
	"lifepaint/internal/session"

	"github.com/gdamore/tcell/v2"
)

func newTestHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(40, 12)
	t.Cleanup(screen.Fini)

	cfg := app.NewConfig()
	cfg.Life.Width = 10
	cfg.Life.Height = 10
	host, err := New(screen, cfg, log.New(&bytes.Buffer{}, "", 0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return host, screen
}

func mouse(x, y int, b tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, b, tcell.ModNone)
}

func TestMouseStrokePaintsAcrossColumns(t *testing.T) {
	host, _ := newTestHost(t)
	g := host.Session().Grid()

	host.handleEvent(mouse(1, 2, tcell.Button1))
	if g.Get(2, 0) != core.Alive {
		t.Fatal("press on column 1 should paint cell (2,0)")
	}
	host.handleEvent(mouse(6, 2, tcell.Button1))
	if g.Get(2, 3) != core.Alive {
		t.Fatal("drag to column 6 should paint cell (2,3)")
	}
	host.handleEvent(mouse(6, 2, tcell.ButtonNone))
	if _, ok := host.Session().Painting(); ok {
		t.Fatal("release should end the stroke")
	}
	host.handleEvent(mouse(8, 2, tcell.ButtonNone))
	if g.Get(2, 4) != core.Dead {
		t.Fatal("hover after release should not paint")
	}
}

func TestRightButtonErases(t *testing.T) {
	host, _ := newTestHost(t)
	g := host.Session().Grid()
	g.Set(4, 4, core.Alive)

	host.handleEvent(mouse(8, 4, tcell.Button2))
	if g.Get(4, 4) != core.Dead {
		t.Fatal("right button should paint dead cells")
	}
}

func TestLeavingBoardEndsStroke(t *testing.T) {
	host, _ := newTestHost(t)

	host.handleEvent(mouse(0, 0, tcell.ButtonNone))
	host.handleEvent(mouse(30, 0, tcell.ButtonNone))
	if host.wasInside {
		t.Fatal("pointer should be tracked as outside the board")
	}

	host.handleEvent(mouse(2, 1, tcell.Button1))
	host.handleEvent(mouse(30, 1, tcell.Button1))
	if _, ok := host.Session().Painting(); !ok {
		t.Fatal("captured stroke should survive leaving the board")
	}
}

func TestStatusButtonTogglesRun(t *testing.T) {
	host, screen := newTestHost(t)
	if err := host.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if got := host.button.text; got != session.LabelPause {
		t.Fatalf("label = %q, want %q", got, session.LabelPause)
	}

	host.handleEvent(mouse(1, 10, tcell.Button1))
	host.handleEvent(mouse(1, 10, tcell.ButtonNone))
	if host.Session().Running() {
		t.Fatal("clicking the status button should pause")
	}
	if got := host.button.text; got != session.LabelPlay {
		t.Fatalf("label = %q, want %q", got, session.LabelPlay)
	}
	host.show()
	if r, _, _, _ := screen.GetContent(2, 10); r != 'P' {
		t.Fatalf("status line starts with %q, want the button caption", r)
	}
}

func TestKeysDriveCommands(t *testing.T) {
	host, _ := newTestHost(t)
	s := host.Session()
	s.Grid().Set(1, 1, core.Alive)
	s.Grid().Set(1, 2, core.Alive)
	s.Grid().Set(1, 3, core.Alive)

	host.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if s.Generation() != 1 {
		t.Fatalf("generation = %d after step, want 1", s.Generation())
	}
	host.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if s.Running() {
		t.Fatal("space should pause")
	}
	host.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	if s.Grid().Population() != 0 {
		t.Fatal("c should clear the board")
	}
	host.handleEvent(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
	if s.Throttle() != core.DefaultThrottle+1 {
		t.Fatalf("throttle = %d after +, want %d", s.Throttle(), core.DefaultThrottle+1)
	}
	host.handleEvent(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
	host.handleEvent(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
	if s.Throttle() != core.DefaultThrottle-1 {
		t.Fatalf("throttle = %d after -, want %d", s.Throttle(), core.DefaultThrottle-1)
	}
	for i := 0; i < core.DefaultThrottle+2; i++ {
		host.handleEvent(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
	}
	if s.Throttle() != session.MinThrottle {
		t.Fatalf("throttle = %d, want it clamped at %d", s.Throttle(), session.MinThrottle)
	}
	if !host.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if !host.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestFrameRendersCells(t *testing.T) {
	host, screen := newTestHost(t)
	host.Session().OnToggleRunPause()
	host.Session().Grid().Set(0, 1, core.Alive)

	if err := host.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	_, _, alive, _ := screen.GetContent(2, 0)
	if _, bg, _ := alive.Decompose(); bg != tcell.ColorBlack {
		t.Fatalf("alive cell background = %v, want black", bg)
	}
	_, _, dead, _ := screen.GetContent(0, 0)
	if _, bg, _ := dead.Decompose(); bg != tcell.ColorWhite {
		t.Fatalf("dead cell background = %v, want white", bg)
	}
}

func TestFrameAfterCloseStops(t *testing.T) {
	host, _ := newTestHost(t)
	host.frames.Close()
	if err := host.Frame(); err == nil {
		t.Fatal("expected an error once the frame queue is closed")
	}
}
