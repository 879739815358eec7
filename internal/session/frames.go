package session

import "errors"

var (
	// ErrSchedulerClosed is returned when a frame is requested after the
	// host stopped accepting them.
	ErrSchedulerClosed = errors.New("session: frame scheduler closed")
	// ErrFrameAlreadyRequested is returned when a second callback is
	// registered before the pending one ran.
	ErrFrameAlreadyRequested = errors.New("session: frame already requested")
)

// Scheduler accepts a one-shot callback to run on the next display frame.
type Scheduler interface {
	RequestFrame(cb func()) error
}

// FrameQueue is a one-slot Scheduler for hosts that own the display loop.
// The host calls Take once per frame and runs what it gets.
type FrameQueue struct {
	pending func()
	closed  bool
}

// RequestFrame registers cb for the next frame.
func (q *FrameQueue) RequestFrame(cb func()) error {
	if q.closed {
		return ErrSchedulerClosed
	}
	if q.pending != nil {
		return ErrFrameAlreadyRequested
	}
	q.pending = cb
	return nil
}

// Take removes and returns the pending callback, or nil when none is armed.
func (q *FrameQueue) Take() func() {
	cb := q.pending
	q.pending = nil
	return cb
}

// RunFrame runs the pending callback and reports whether there was one.
func (q *FrameQueue) RunFrame() bool {
	cb := q.Take()
	if cb == nil {
		return false
	}
	cb()
	return true
}

// Close drops any pending callback and refuses further requests.
func (q *FrameQueue) Close() {
	q.closed = true
	q.pending = nil
}
