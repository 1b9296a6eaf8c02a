package badge

import (
	"image/color"
	"math"

	"badge-life/internal/render"
)

// patternChoices is how many pattern numbers the fallback rolls over.
const patternChoices = 72

// DrawPattern paints one of six full-screen procedural patterns. The
// styles and their color arithmetic follow the badge's fallback screens;
// filled circles are drawn as horizontal spans so a rectangle-fill
// surface is all that is needed.
func DrawPattern(dst render.Surface, n int) {
	switch n % 6 {
	case 0:
		drawGradient(dst, n)
	case 1:
		drawCircles(dst, n)
	case 2:
		drawTiles(dst, n)
	case 3:
		drawStripes(dst, n)
	case 4:
		drawRings(dst, n)
	case 5:
		drawChecker(dst, n)
	}
}

func pen(r, g, b int) color.RGBA {
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

func drawGradient(dst render.Surface, n int) {
	for y := 0; y < PanelH; y++ {
		r := y * 255 / PanelH
		dst.FillRect(0, y, PanelW, 1, pen(r, (n*37+y)%255, 255-r))
	}
}

func drawCircles(dst render.Surface, n int) {
	dst.FillRect(0, 0, PanelW, PanelH, pen(20, 20, 60))
	for i := 0; i < 8; i++ {
		x := 40 + (i%4)*80
		y := 60 + (i/4)*120
		c := pen((i*30+n*20)%255, (100+i*20)%255, (200-i*15)%255)
		fillCircle(dst, x, y, 30+i*5, c)
	}
}

func drawTiles(dst render.Surface, n int) {
	for x := 0; x < PanelW; x += 20 {
		for y := 0; y < PanelH; y += 20 {
			c := pen((x*y/100+n*10)%255, (x+n*5)%255, (y+n*7)%255)
			dst.FillRect(x+2, y+2, 16, 16, c)
		}
	}
}

func drawStripes(dst render.Surface, n int) {
	for x := 0; x < PanelW; x += 8 {
		c := pen(((x/8)*17+n*30)%255, (128+n*5)%255, (200-(x/8)*5)%255)
		dst.FillRect(x, 0, 8, PanelH, c)
	}
}

func drawRings(dst render.Surface, n int) {
	for ring := 120; ring > 0; ring -= 8 {
		c := pen((ring*2+n*20)%255, (255-ring*2+n*10)%255, (128+n*15)%255)
		fillCircle(dst, PanelW/2, PanelH/2, ring, c)
	}
}

func drawChecker(dst render.Surface, n int) {
	for x := 0; x < PanelW; x += 32 {
		for y := 0; y < PanelH; y += 32 {
			var c color.RGBA
			if ((x/32)+(y/32))%2 == 0 {
				c = pen((200+n*3)%255, (180+n*7)%255, (160+n*11)%255)
			} else {
				c = pen((50+n*5)%255, (30+n*9)%255, (80+n*13)%255)
			}
			dst.FillRect(x, y, 32, 32, c)
		}
	}
}

func fillCircle(dst render.Surface, cx, cy, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		span := int(math.Sqrt(float64(r*r - dy*dy)))
		dst.FillRect(cx-span, cy+dy, 2*span+1, 1, c)
	}
}
