package render

import (
	"errors"
	"fmt"

	"badge-life/internal/life"
)

// Painter translates cell buffers into rectangle fills on a Surface.
// Each cell covers a cell×cell pixel block at (x·cell, y·cell). Both
// draw modes finish with exactly one Present.
type Painter struct {
	w, h, cell int
	pal        Palette
	dst        Surface
}

// NewPainter constructs a painter for a w×h cell grid with the given
// block size. A zero palette falls back to the default pens.
func NewPainter(w, h, cell int, pal Palette, dst Surface) (*Painter, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render: %dx%d cell area is empty", w, h)
	}
	if cell <= 0 {
		return nil, fmt.Errorf("render: cell size %d must be positive", cell)
	}
	if dst == nil {
		return nil, errors.New("render: nil surface")
	}
	if pal == (Palette{}) {
		pal = DefaultPalette()
	}
	return &Painter{w: w, h: h, cell: cell, pal: pal, dst: dst}, nil
}

// DrawFull clears the board to the dead color, paints every cell that is
// not Dead and presents. Used once when a run starts.
func (p *Painter) DrawFull(cells []life.Cell) {
	s := p.cell
	p.dst.FillRect(0, 0, p.w*s, p.h*s, p.pal.Dead)
	i := 0
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			if c := cells[i]; c != life.Dead {
				p.dst.FillRect(x*s, y*s, s, s, p.pal.For(c))
			}
			i++
		}
	}
	p.dst.Present()
}

// DrawChanges repaints only the cells the mask marks changed, in their
// new color, and presents. Unmarked cells keep their previous pixels.
func (p *Painter) DrawChanges(mask []life.Cell) {
	s := p.cell
	i := 0
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			if c := mask[i]; c != life.Unchanged {
				p.dst.FillRect(x*s, y*s, s, s, p.pal.For(c))
			}
			i++
		}
	}
	p.dst.Present()
}
