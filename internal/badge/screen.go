//go:build ebiten

package badge

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen is the emulated 320×240 badge panel: an offscreen image the
// window blits up by an integer scale every frame. It implements the
// renderer's Surface contract; Present marks a finished frame, the
// actual blit happens in Draw.
type Screen struct {
	panel *ebiten.Image
}

// NewScreen allocates the panel, cleared to black.
func NewScreen() *Screen {
	s := &Screen{panel: ebiten.NewImage(PanelW, PanelH)}
	s.panel.Fill(color.Black)
	return s
}

// FillRect paints a rectangle on the panel in device pixels, clipped to
// the panel bounds.
func (s *Screen) FillRect(x, y, w, h int, c color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.panel.Bounds())
	if r.Empty() {
		return
	}
	s.panel.SubImage(r).(*ebiten.Image).Fill(c)
}

// Present marks the frame complete. The panel always holds the latest
// pixels, so there is nothing left to flush.
func (s *Screen) Present() {}

// ShowImage replaces the panel contents with a decoded slide.
func (s *Screen) ShowImage(img image.Image) {
	s.panel.DrawImage(ebiten.NewImageFromImage(img), nil)
}

// Image exposes the panel for text drawing.
func (s *Screen) Image() *ebiten.Image { return s.panel }

// Blit draws the panel to the window at the given integer scale.
func (s *Screen) Blit(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(s.panel, op)
}
