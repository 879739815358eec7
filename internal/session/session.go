package session

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"lifepaint/internal/core"
	"lifepaint/internal/interact"
	"lifepaint/internal/sims/life"
)

// Labels shown on the run/pause control.
const (
	LabelPause = "Pause"
	LabelPlay  = "Play"
)

// Throttle bounds accepted from the HUD.
const (
	MinThrottle = 1
	MaxThrottle = 120
)

// Renderer draws a grid. It is called once per animation frame, after any
// generation advance for that frame.
type Renderer interface {
	Render(g *core.Grid, cellSize int)
}

// Label is a text control whose caption tracks the run flag.
type Label interface {
	SetText(text string)
}

// Options configures a Session.
type Options struct {
	Life     life.Config
	CellSize int
	Throttle int
	Mode     interact.Mode
	Paused   bool

	Renderer  Renderer
	Scheduler Scheduler
	Surface   interact.Surface
	Label     Label
	Logger    *log.Logger
}

// Session owns the grid, the pointer state machine and the run flag, and
// exposes one method per host event. Hosts must call these from a single
// goroutine; nothing here is synchronised.
type Session struct {
	cfg      life.Config
	cellSize int

	grid  *core.Grid
	spare *core.Grid

	painter  *interact.Painter
	throttle *core.FrameThrottle
	running  bool

	generation uint64
	halted     error

	renderer Renderer
	sched    Scheduler
	label    Label
	logger   *log.Logger
}

// New validates the collaborators and seeds the board. Missing collaborators
// or an invalid board are setup failures.
func New(opts Options) (*Session, error) {
	switch {
	case opts.Renderer == nil:
		return nil, errors.New("session: renderer is required")
	case opts.Scheduler == nil:
		return nil, errors.New("session: scheduler is required")
	case opts.Surface == nil:
		return nil, errors.New("session: surface is required")
	case opts.Label == nil:
		return nil, errors.New("session: run/pause label is required")
	case opts.CellSize <= 0:
		return nil, fmt.Errorf("session: invalid cell size %d", opts.CellSize)
	}
	grid, err := opts.Life.NewGrid()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{
		cfg:      opts.Life,
		cellSize: opts.CellSize,
		grid:     grid,
		spare:    core.NewGrid(grid.W, grid.H),
		painter:  interact.NewPainter(opts.Surface, float64(opts.CellSize), opts.Mode),
		throttle: core.NewFrameThrottle(clampThrottle(opts.Throttle)),
		running:  !opts.Paused,
		renderer: opts.Renderer,
		sched:    opts.Scheduler,
		label:    opts.Label,
		logger:   logger,
	}
	s.updateLabel()
	return s, nil
}

// Start arms the animation loop for its first frame.
func (s *Session) Start() error {
	if err := s.sched.RequestFrame(s.OnAnimationFrame); err != nil {
		s.halt(err)
		return s.halted
	}
	return nil
}

// OnAnimationFrame is the animation driver: count the frame, advance when
// running on every Nth frame, render, and re-arm. A failed re-arm halts the
// session for good.
func (s *Session) OnAnimationFrame() {
	if s.halted != nil {
		return
	}
	if s.throttle.Tick() && s.running {
		s.advance()
	}
	s.renderer.Render(s.grid, s.cellSize)
	if err := s.sched.RequestFrame(s.OnAnimationFrame); err != nil {
		s.halt(err)
	}
}

func (s *Session) halt(err error) {
	if s.halted != nil {
		return
	}
	s.halted = fmt.Errorf("session: animation loop stopped: %w", err)
	s.logger.Printf("%v", s.halted)
}

func (s *Session) advance() {
	next := life.AdvanceInto(s.spare, s.grid)
	s.grid, s.spare = next, s.grid
	s.generation++
}

// OnToggleRunPause flips the run flag and relabels the control.
func (s *Session) OnToggleRunPause() {
	s.running = !s.running
	s.updateLabel()
}

func (s *Session) updateLabel() {
	if s.running {
		s.label.SetText(LabelPause)
		return
	}
	s.label.SetText(LabelPlay)
}

func (s *Session) OnPointerDown(ev interact.PointerEvent) { s.painter.Down(s.grid, ev) }

func (s *Session) OnPointerMove(ev interact.PointerEvent) { s.painter.Move(s.grid, ev) }

func (s *Session) OnPointerUp(ev interact.PointerEvent) { s.painter.Up(ev) }

func (s *Session) OnPointerLeave(ev interact.PointerEvent) { s.painter.Leave(ev) }

// StepOnce advances a single generation regardless of the run flag.
func (s *Session) StepOnce() {
	if s.halted != nil {
		return
	}
	s.advance()
}

// Reset reseeds the board with the configured pattern.
func (s *Session) Reset() {
	s.cfg.Reseed(s.grid)
	s.generation = 0
}

// Clear kills every cell.
func (s *Session) Clear() {
	s.grid.Clear()
	s.generation = 0
}

// Grid returns the live grid handle. It changes identity on every advance,
// so callers must not keep it across events.
func (s *Session) Grid() *core.Grid { return s.grid }

func (s *Session) Running() bool { return s.running }

func (s *Session) Generation() uint64 { return s.generation }

func (s *Session) CellSize() int { return s.cellSize }

func (s *Session) Throttle() int { return s.throttle.Every() }

// Painting reports the active brush, if a stroke is in progress.
func (s *Session) Painting() (core.Cell, bool) { return s.painter.Painting() }

// Err returns the error that halted the animation loop, if any.
func (s *Session) Err() error { return s.halted }

// Parameters exposes session state to the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	state := "Paused"
	if s.running {
		state = "Running"
	}
	brush := "-"
	if c, ok := s.painter.Painting(); ok {
		brush = c.String()
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				textParam("size", "Size", fmt.Sprintf("%dx%d", s.grid.W, s.grid.H)),
				textParam("pattern", "Pattern", s.cfg.Pattern),
				textParam("mode", "Mode", s.painter.Mode().String()),
			},
		},
		{
			Name: "Simulation",
			Params: []core.Parameter{
				textParam("state", "State", state),
				uintParam("generation", "Generation", s.generation),
				intParam("population", "Population", s.grid.Population()),
				uintParam("frame", "Frame", s.throttle.Frames()),
				intParam("throttle", "Frames/gen", s.throttle.Every()),
				textParam("brush", "Brush", brush),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "throttle", Label: "Frames/gen", Step: 1, Min: MinThrottle, Max: MaxThrottle},
	}
}

// SetIntParameter applies a HUD adjustment.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "throttle":
		s.throttle.SetEvery(clampThrottle(value))
		return true
	}
	return false
}

func clampThrottle(n int) int {
	if n <= 0 {
		return core.DefaultThrottle
	}
	if n > MaxThrottle {
		return MaxThrottle
	}
	return n
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func uintParam(key, label string, value uint64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatUint(value, 10)}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}
