//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"log"

	"lifepaint/internal/interact"
	"lifepaint/internal/render"
	"lifepaint/internal/session"
	"lifepaint/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrLoopStopped is returned from Update when the animation loop is no longer
// armed.
var ErrLoopStopped = errors.New("app: animation loop stopped")

const (
	mousePointerID   = 1
	touchPointerBase = 100
	minHUDHeight     = 360
)

var mouseButtons = []struct {
	button ebiten.MouseButton
	id     interact.Button
}{
	{ebiten.MouseButtonLeft, interact.ButtonPrimary},
	{ebiten.MouseButtonMiddle, interact.ButtonAuxiliary},
	{ebiten.MouseButtonRight, interact.ButtonSecondary},
}

// Game adapts a Session to the ebiten.Game interface. ebiten's Update is the
// single dispatcher: input is translated into session events first, then the
// armed animation frame runs.
type Game struct {
	cfg     *Config
	session *session.Session
	frames  *session.FrameQueue
	surface *interact.FixedSurface
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	canvasW, canvasH int

	strokeButton ebiten.MouseButton
	lastX, lastY int
	wasInside    bool
	touches      map[ebiten.TouchID]bool
	touchBuf     []ebiten.TouchID
}

// New constructs a Game from a validated configuration.
func New(cfg *Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	canvasW, canvasH := cfg.CanvasSize()
	g := &Game{
		cfg:     cfg,
		frames:  &session.FrameQueue{},
		surface: interact.NewFixedSurface(interact.Rect{Width: float64(canvasW), Height: float64(canvasH)}, canvasW, canvasH),
		painter: render.NewGridPainter(cfg.Life.Width, cfg.Life.Height),
		canvasW: canvasW,
		canvasH: canvasH,
		touches: map[ebiten.TouchID]bool{},
	}
	play := ui.NewButton(ui.PlayButtonRect(cfg.HUDWidth), session.LabelPause)

	s, err := session.New(session.Options{
		Life:      cfg.Life,
		CellSize:  cfg.CellSize,
		Throttle:  cfg.Throttle,
		Mode:      cfg.PointerMode(),
		Paused:    cfg.Paused,
		Renderer:  g.painter,
		Scheduler: g.frames,
		Surface:   g.surface,
		Label:     play,
		Logger:    log.Default(),
	})
	if err != nil {
		return nil, err
	}
	g.session = s
	play.OnClick(s.OnToggleRunPause)
	g.hud = ui.NewHUD(s, play, cfg.HUDWidth)
	g.overlay = ui.NewOverlay(s.Grid().Size(), cfg.CellSize, cfg.GridLines, cfg.Debug)

	if err := s.Start(); err != nil {
		return nil, err
	}
	return g, nil
}

// Session exposes the underlying session.
func (g *Game) Session() *session.Session { return g.session }

// Update handles per-frame input and runs the armed animation frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.frames.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.OnToggleRunPause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}

	consumed := g.hud.Update(g.canvasW)
	g.overlay.Update()
	if !consumed {
		g.updateMouse()
	}
	g.updateTouches()

	if err := g.session.Err(); err != nil {
		return err
	}
	if !g.frames.RunFrame() {
		return ErrLoopStopped
	}
	return g.session.Err()
}

func (g *Game) updateMouse() {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	inside := g.surface.Contains(fx, fy)
	captured := g.surface.Captured(mousePointerID)

	if captured && inpututil.IsMouseButtonJustReleased(g.strokeButton) {
		g.session.OnPointerUp(interact.PointerEvent{ClientX: fx, ClientY: fy, PointerID: mousePointerID})
		captured = false
	}

	if !captured && inside {
		for _, mb := range mouseButtons {
			if !inpututil.IsMouseButtonJustPressed(mb.button) {
				continue
			}
			g.strokeButton = mb.button
			g.session.OnPointerDown(interact.PointerEvent{ClientX: fx, ClientY: fy, Button: mb.id, PointerID: mousePointerID})
			captured = true
			break
		}
	}

	if x != g.lastX || y != g.lastY {
		if captured || inside {
			g.session.OnPointerMove(interact.PointerEvent{ClientX: fx, ClientY: fy, PointerID: mousePointerID})
		}
		if g.wasInside && !inside && !captured {
			g.session.OnPointerLeave(interact.PointerEvent{ClientX: fx, ClientY: fy, PointerID: mousePointerID})
		}
	}
	g.lastX, g.lastY = x, y
	g.wasInside = inside
}

func (g *Game) updateTouches() {
	g.touchBuf = inpututil.AppendJustPressedTouchIDs(g.touchBuf[:0])
	for _, id := range g.touchBuf {
		x, y := ebiten.TouchPosition(id)
		if !g.surface.Contains(float64(x), float64(y)) {
			continue
		}
		g.touches[id] = true
		g.session.OnPointerDown(touchEvent(id, x, y))
	}
	for id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		if inpututil.IsTouchJustReleased(id) {
			g.session.OnPointerUp(touchEvent(id, x, y))
			delete(g.touches, id)
			continue
		}
		g.session.OnPointerMove(touchEvent(id, x, y))
	}
}

func touchEvent(id ebiten.TouchID, x, y int) interact.PointerEvent {
	return interact.PointerEvent{
		ClientX:   float64(x),
		ClientY:   float64(y),
		Button:    interact.ButtonPrimary,
		PointerID: touchPointerBase + int(id),
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen)
	g.overlay.Draw(screen, g.session.Generation())
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.canvasW, h)
}

// Layout returns the logical screen size: the board plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.canvasW + g.hud.Width()
	h := g.canvasH
	if g.hud.Width() > 0 && h < minHUDHeight {
		h = minHUDHeight
	}
	return w, h
}

// Title is the window caption.
func (g *Game) Title() string {
	return fmt.Sprintf("lifepaint %dx%d (%s)", g.cfg.Life.Width, g.cfg.Life.Height, g.cfg.Life.Pattern)
}
