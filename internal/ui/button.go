//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Button is a clickable HUD control with a settable caption. It serves as
// the session's run/pause label.
type Button struct {
	rect    image.Rectangle
	caption string
	onClick func()
}

// NewButton constructs a button occupying rect in panel coordinates.
func NewButton(rect image.Rectangle, caption string) *Button {
	return &Button{rect: rect, caption: caption}
}

// SetText replaces the caption.
func (b *Button) SetText(s string) { b.caption = s }

// Text returns the caption.
func (b *Button) Text() string { return b.caption }

// OnClick registers the click handler.
func (b *Button) OnClick(fn func()) { b.onClick = fn }

// Click invokes the handler if the panel-space point hits the button.
func (b *Button) Click(x, y int) bool {
	if !pointInRect(x, y, b.rect) {
		return false
	}
	if b.onClick != nil {
		b.onClick()
	}
	return true
}

func (b *Button) draw(dst *ebiten.Image, pixel *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.rect.Dx()), float64(b.rect.Dy()))
	op.GeoM.Translate(float64(b.rect.Min.X), float64(b.rect.Min.Y))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 54, G: 56, B: 64, A: 255})
	dst.DrawImage(pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, b.caption)
	x := b.rect.Min.X + (b.rect.Dx()-bounds.Dx())/2
	y := b.rect.Min.Y + (b.rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, b.caption, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}
