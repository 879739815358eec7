package interact

// FixedSurface is a Surface whose placement is set by the host. It records
// which pointers are captured so the host can keep routing their moves after
// they leave the surface.
type FixedSurface struct {
	Rect   Rect
	Width  int
	Height int

	captured map[int]bool
}

// NewFixedSurface returns a surface drawn at w x h backing pixels and shown
// at rect.
func NewFixedSurface(rect Rect, w, h int) *FixedSurface {
	return &FixedSurface{Rect: rect, Width: w, Height: h, captured: map[int]bool{}}
}

func (s *FixedSurface) BoundingRect() Rect { return s.Rect }

func (s *FixedSurface) BackingSize() (int, int) { return s.Width, s.Height }

func (s *FixedSurface) SetPointerCapture(id int) error {
	if s.captured == nil {
		s.captured = map[int]bool{}
	}
	s.captured[id] = true
	return nil
}

func (s *FixedSurface) ReleasePointerCapture(id int) error {
	delete(s.captured, id)
	return nil
}

// Captured reports whether pointer id is currently captured.
func (s *FixedSurface) Captured(id int) bool { return s.captured[id] }

// Contains reports whether a client-space point lies on the surface.
func (s *FixedSurface) Contains(x, y float64) bool {
	r := s.Rect
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height
}
