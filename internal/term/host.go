package term

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"lifepaint/internal/app"
	"lifepaint/internal/core"
	"lifepaint/internal/interact"
	"lifepaint/internal/session"

	"github.com/gdamore/tcell/v2"
)

// ErrLoopStopped is returned by Run when no animation frame is armed.
var ErrLoopStopped = errors.New("term: animation loop stopped")

const (
	mousePointerID = 1
	cellColumns    = 2
	helpText       = "space play/pause  n step  +/- frames/gen  r reset  c clear  q quit"
)

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	buttonStyle = tcell.StyleDefault.Reverse(true).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Host runs a Session inside a terminal. Every board cell is drawn as two
// character columns so cells look roughly square; the status line below the
// board carries the run/pause button.
type Host struct {
	screen   tcell.Screen
	session  *session.Session
	frames   *session.FrameQueue
	surface  *interact.FixedSurface
	button   *textLabel
	interval time.Duration

	boardW, boardH int

	buttons   tcell.ButtonMask
	wasInside bool
}

// textLabel is the terminal run/pause control.
type textLabel struct {
	text string
}

func (l *textLabel) SetText(text string) { l.text = text }

// screenRenderer draws the board into the terminal cell buffer.
type screenRenderer struct {
	screen tcell.Screen
}

func (r screenRenderer) Render(g *core.Grid, _ int) {
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			style := deadStyle
			if g.Get(row, col) == core.Alive {
				style = aliveStyle
			}
			x := col * cellColumns
			r.screen.SetContent(x, row, ' ', nil, style)
			r.screen.SetContent(x+1, row, ' ', nil, style)
		}
	}
}

// New wires a session to an initialised screen and arms its first frame.
func New(screen tcell.Screen, cfg *app.Config, logger *log.Logger) (*Host, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h := cfg.Life.Width, cfg.Life.Height
	host := &Host{
		screen:   screen,
		frames:   &session.FrameQueue{},
		button:   &textLabel{},
		interval: time.Second / time.Duration(cfg.TPS),
		boardW:   w,
		boardH:   h,
		// One terminal column is half a cell; the surface maps client
		// coordinates back onto the pixel-sized backing board.
		surface: interact.NewFixedSurface(
			interact.Rect{Width: float64(w * cellColumns), Height: float64(h)},
			w*cfg.CellSize, h*cfg.CellSize,
		),
	}
	s, err := session.New(session.Options{
		Life:      cfg.Life,
		CellSize:  cfg.CellSize,
		Throttle:  cfg.Throttle,
		Mode:      cfg.PointerMode(),
		Paused:    cfg.Paused,
		Renderer:  screenRenderer{screen: screen},
		Scheduler: host.frames,
		Surface:   host.surface,
		Label:     host.button,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	host.session = s
	screen.EnableMouse()
	screen.Clear()
	if err := s.Start(); err != nil {
		return nil, err
	}
	return host, nil
}

// Session exposes the underlying session.
func (h *Host) Session() *session.Session { return h.session }

// Run polls terminal events and drives animation frames until ctx is done,
// the user quits or the loop halts. Session methods are only ever called from
// this goroutine.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if h.handleEvent(ev) {
				h.frames.Close()
				return nil
			}
			h.show()
		case <-ticker.C:
			if err := h.Frame(); err != nil {
				return err
			}
		}
	}
}

// Frame runs the armed animation frame and flushes the screen.
func (h *Host) Frame() error {
	if !h.frames.RunFrame() {
		if err := h.session.Err(); err != nil {
			return err
		}
		return ErrLoopStopped
	}
	h.show()
	return h.session.Err()
}

func (h *Host) show() {
	h.drawStatus()
	h.screen.Show()
}

func (h *Host) buttonText() string {
	return "[ " + h.button.text + " ]"
}

func (h *Host) drawStatus() {
	y := h.boardH
	x := drawString(h.screen, 0, y, h.buttonText(), buttonStyle)
	status := fmt.Sprintf(" gen %d  pop %d  %d frames/gen  %s", h.session.Generation(), h.session.Grid().Population(), h.session.Throttle(), helpText)
	x = drawString(h.screen, x, y, status, statusStyle)
	w, _ := h.screen.Size()
	for ; x < w; x++ {
		h.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

func drawString(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// handleEvent translates one terminal event into session calls and reports
// whether the user asked to quit.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		h.session.OnToggleRunPause()
	case 'n':
		h.session.StepOnce()
	case 'r':
		h.session.Reset()
	case 'c':
		h.session.Clear()
	case '+':
		if h.session.Throttle() < session.MaxThrottle {
			h.session.SetIntParameter("throttle", h.session.Throttle()+1)
		}
	case '-':
		if h.session.Throttle() > session.MinThrottle {
			h.session.SetIntParameter("throttle", h.session.Throttle()-1)
		}
	}
	return false
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	fx, fy := float64(x), float64(y)
	pressed := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	prev := h.buttons
	h.buttons = pressed

	inside := h.surface.Contains(fx, fy)
	captured := h.surface.Captured(mousePointerID)
	pe := interact.PointerEvent{ClientX: fx, ClientY: fy, PointerID: mousePointerID}

	switch {
	case prev == tcell.ButtonNone && pressed != tcell.ButtonNone:
		if y == h.boardH && x < len(h.buttonText()) && pressed&tcell.Button1 != 0 {
			h.session.OnToggleRunPause()
			break
		}
		if inside {
			pe.Button = pointerButton(pressed)
			h.session.OnPointerDown(pe)
		}
	case prev != tcell.ButtonNone && pressed == tcell.ButtonNone:
		if captured {
			h.session.OnPointerUp(pe)
		}
	default:
		if captured || inside {
			h.session.OnPointerMove(pe)
		}
		if h.wasInside && !inside && !captured {
			h.session.OnPointerLeave(pe)
		}
	}
	h.wasInside = inside
}

func pointerButton(mask tcell.ButtonMask) interact.Button {
	switch {
	case mask&tcell.Button1 != 0:
		return interact.ButtonPrimary
	case mask&tcell.Button2 != 0:
		return interact.ButtonSecondary
	default:
		return interact.ButtonAuxiliary
	}
}
