//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// Button is a caption holder in headless builds.
type Button struct{ caption string }

// SetText replaces the caption.
func (b *Button) SetText(s string) { b.caption = s }

// Text returns the caption.
func (b *Button) Text() string { return b.caption }

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
