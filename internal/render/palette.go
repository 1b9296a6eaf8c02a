package render

import (
	"image/color"

	"badge-life/internal/life"
)

// Palette maps every cell state to a fill color. Dying is the transient
// highlight a cell shows for the one generation after it dies.
type Palette struct {
	Alive color.RGBA
	Dying color.RGBA
	Dead  color.RGBA
}

// DefaultPalette returns the badge's pens: white live cells, a red
// death flash, black background.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Dying: color.RGBA{R: 255, A: 255},
		Dead:  color.RGBA{A: 255},
	}
}

// For returns the color for a cell state. Unknown values render as Dead
// so the mapping is total.
func (p Palette) For(c life.Cell) color.RGBA {
	switch c {
	case life.Alive:
		return p.Alive
	case life.JustDied:
		return p.Dying
	default:
		return p.Dead
	}
}
