package core

// DefaultThrottle is the number of display frames per generation when none is
// configured.
const DefaultThrottle = 5

// FrameThrottle decouples simulation speed from the display refresh rate: it
// counts frames and reports a due generation on every Nth one.
type FrameThrottle struct {
	every  int
	frames uint64
}

// NewFrameThrottle constructs a throttle that fires every n frames.
func NewFrameThrottle(n int) *FrameThrottle {
	f := &FrameThrottle{}
	f.SetEvery(n)
	return f
}

// SetEvery changes the divisor. Non-positive values fall back to the default.
// The frame counter is kept so speed changes take effect on the next multiple.
func (f *FrameThrottle) SetEvery(n int) {
	if n <= 0 {
		n = DefaultThrottle
	}
	f.every = n
}

// Every returns the current divisor.
func (f *FrameThrottle) Every() int { return f.every }

// Frames returns how many frames have been counted.
func (f *FrameThrottle) Frames() uint64 { return f.frames }

// Tick counts one frame and reports whether a generation is due on it.
func (f *FrameThrottle) Tick() bool {
	f.frames++
	return f.frames%uint64(f.every) == 0
}
