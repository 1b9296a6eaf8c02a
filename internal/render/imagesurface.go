package render

import (
	"image"
	"image/color"
)

// ImageSurface is a software Surface backed by an RGBA image. It serves
// headless tests and the lifebench tool; Present only counts flushes
// since the pixels are already in place.
type ImageSurface struct {
	img      *image.RGBA
	presents int
}

// NewImageSurface allocates a surface of the given pixel dimensions.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// FillRect paints the rectangle, clipped to the surface bounds.
func (s *ImageSurface) FillRect(x, y, w, h int, c color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	for py := r.Min.Y; py < r.Max.Y; py++ {
		base := s.img.PixOffset(r.Min.X, py)
		for px := r.Min.X; px < r.Max.X; px++ {
			s.img.Pix[base+0] = c.R
			s.img.Pix[base+1] = c.G
			s.img.Pix[base+2] = c.B
			s.img.Pix[base+3] = c.A
			base += 4
		}
	}
}

// Present records one frame flush.
func (s *ImageSurface) Present() { s.presents++ }

// Presents returns how many frames have been flushed.
func (s *ImageSurface) Presents() int { return s.presents }

// Image exposes the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }
