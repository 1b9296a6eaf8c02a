//go:build ebiten

package badge

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// drawNameBadge paints the drawn badge card: white header band, large
// name on a white field, red footer. Used when the pictures directory
// has no dedicated badge image.
func drawNameBadge(s *Screen, name string) {
	blue := color.RGBA{R: 20, G: 40, B: 100, A: 255}
	red := color.RGBA{R: 200, G: 50, B: 50, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}

	s.FillRect(0, 0, PanelW, PanelH, blue)

	s.FillRect(0, 0, PanelW, 60, white)
	drawTextCentered(s.Image(), "HELLO", 6, 2, blue)
	drawTextCentered(s.Image(), "my name is", 38, 1, blue)

	s.FillRect(10, 70, PanelW-20, 120, white)
	drawTextCentered(s.Image(), name, 104, 4, black)

	s.FillRect(0, 195, PanelW, 45, red)
	drawTextCentered(s.Image(), "Tufty 2040 Badge", 207, 1.5, white)
}

// drawTextCentered renders s horizontally centered with its top edge at
// top, scaled up from the 7x13 bitmap face.
func drawTextCentered(dst *ebiten.Image, s string, top int, scale float64, clr color.RGBA) {
	face := basicfont.Face7x13
	b := text.BoundString(face, s)
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return
	}
	img := ebiten.NewImage(b.Dx()+2, b.Dy()+2)
	text.Draw(img, s, face, 1-b.Min.X, 1-b.Min.Y, clr)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((PanelW-float64(b.Dx()+2)*scale)/2, float64(top))
	dst.DrawImage(img, op)
}
