package render

import "image/color"

// Surface is the drawing capability the renderer needs from a display:
// rectangle fills in device pixels and a frame flush. Fills issued after
// a Present must not disturb the frame being shown for it.
type Surface interface {
	// FillRect paints an axis-aligned rectangle in device coordinates.
	FillRect(x, y, w, h int, c color.RGBA)
	// Present makes all fills issued so far visible.
	Present()
}
