package interact

import "math"

// Rect is an on-screen rectangle in display units.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Surface is the drawable the pointer events target. BoundingRect is where it
// currently sits on screen and BackingSize is the resolution it is drawn at;
// the two differ when the host scales the canvas.
type Surface interface {
	BoundingRect() Rect
	BackingSize() (w, h int)
	SetPointerCapture(pointerID int) error
	ReleasePointerCapture(pointerID int) error
}

// Button identifies which pointer button triggered an event, using the DOM
// numbering.
type Button int

const (
	ButtonPrimary   Button = 0
	ButtonAuxiliary Button = 1
	ButtonSecondary Button = 2
)

// PointerEvent is a pointer sample in client coordinates.
type PointerEvent struct {
	ClientX, ClientY float64
	Button           Button
	PointerID        int
}

// CellAt maps a client-space point onto grid coordinates for cells of
// cellSize backing pixels. ok is false when the surface has no usable
// on-screen size.
func CellAt(s Surface, cellSize float64, x, y float64) (row, col int, ok bool) {
	rect := s.BoundingRect()
	bw, bh := s.BackingSize()
	if rect.Width <= 0 || rect.Height <= 0 || cellSize <= 0 {
		return 0, 0, false
	}
	sx := float64(bw) / rect.Width
	sy := float64(bh) / rect.Height
	cx := (x - rect.Left) * sx
	cy := (y - rect.Top) * sy
	fc := math.Floor(cx / cellSize)
	fr := math.Floor(cy / cellSize)
	if math.IsNaN(fc) || math.IsNaN(fr) || math.IsInf(fc, 0) || math.IsInf(fr, 0) {
		return 0, 0, false
	}
	if fc < math.MinInt32 || fc > math.MaxInt32 || fr < math.MinInt32 || fr > math.MaxInt32 {
		return 0, 0, false
	}
	return int(fr), int(fc), true
}
