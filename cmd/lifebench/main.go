package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"badge-life/internal/life"
	"badge-life/internal/render"
)

// cellSize matches the on-badge display, so -png frames look like the
// real panel.
const cellSize = 3

// kernel weights live neighbours 2 and the centre 1. A cell is alive
// next generation iff the weighted sum lands in [5, 7]: that interval
// covers exactly survival on 2-3 neighbours and birth on 3.
var kernel = [3][3]int{
	{2, 2, 2},
	{2, 1, 2},
	{2, 2, 2},
}

// convChecker recomputes each generation by integer-kernel convolution
// and counts where it disagrees with the engine.
type convChecker struct {
	w, h int
	cur  []life.Cell
	nxt  []life.Cell
}

func newConvChecker(w, h int) *convChecker {
	return &convChecker{
		w:   w,
		h:   h,
		cur: make([]life.Cell, w*h),
		nxt: make([]life.Cell, w*h),
	}
}

// prime copies the seeded generation so both computations start from
// the same cells.
func (c *convChecker) prime(cells []life.Cell) {
	copy(c.cur, cells)
}

// compare advances the checker one generation over the interior and
// returns how many cells differ from got. Border cells stay Dead on
// both sides.
func (c *convChecker) compare(got []life.Cell) int {
	for y := 1; y < c.h-1; y++ {
		for x := 1; x < c.w-1; x++ {
			i := y*c.w + x
			sum := 0
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					if c.cur[i+ky*c.w+kx] == life.Alive {
						sum += kernel[ky+1][kx+1]
					}
				}
			}
			switch {
			case sum >= 5 && sum <= 7:
				c.nxt[i] = life.Alive
			case c.cur[i] == life.Alive:
				c.nxt[i] = life.JustDied
			default:
				c.nxt[i] = life.Dead
			}
		}
	}
	bad := 0
	for i := range c.nxt {
		if c.nxt[i] != got[i] {
			bad++
		}
	}
	c.cur, c.nxt = c.nxt, c.cur
	return bad
}

func main() {
	ticks := flag.Int("ticks", 500, "generations to run")
	seed := flag.Uint("seed", 1, "seeder state for cell placement")
	verify := flag.Bool("verify", false, "cross-check every generation against an integer-kernel convolution")
	pngPath := flag.String("png", "", "write the final frame to this file as PNG")
	flag.Parse()

	cfg := life.DefaultConfig()
	cfg.MaxTicks = *ticks

	surface := render.NewImageSurface(cfg.Width*cellSize, cfg.Height*cellSize)
	painter, err := render.NewPainter(cfg.Width, cfg.Height, cellSize, render.DefaultPalette(), surface)
	if err != nil {
		log.Fatalf("lifebench: %v", err)
	}

	eng, err := life.New(cfg, painter, nil)
	if err != nil {
		log.Fatalf("lifebench: %v", err)
	}
	eng.OnReport = func(r life.Report) {
		fmt.Printf("tick %4d: rule %s, draw %s, %d cells repainted (%.0f ticks/s)\n",
			r.Tick, r.Rule.Round(time.Microsecond), r.Draw.Round(time.Microsecond),
			r.Changed, float64(r.Ticks)/r.Elapsed.Seconds())
	}

	eng.Start(uint32(*seed))
	fmt.Printf("Seeded %dx%d grid with %d live cells (seed %d)\n",
		cfg.Width, cfg.Height, eng.Population(), *seed)

	var check *convChecker
	if *verify {
		check = newConvChecker(cfg.Width, cfg.Height)
		check.prime(eng.Cells())
	}

	start := time.Now()
	mismatches := 0
	firstBad := 0
	for {
		running := eng.Tick()
		if check != nil {
			if bad := check.compare(eng.Cells()); bad > 0 {
				if mismatches == 0 {
					firstBad = eng.Ticks()
				}
				mismatches += bad
			}
		}
		if !running {
			break
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("Ran %d ticks in %s (%.0f ticks/s)\n",
		eng.Ticks(), elapsed.Round(time.Millisecond), float64(eng.Ticks())/elapsed.Seconds())
	fmt.Printf("Final population %d, %d frames presented\n", eng.Population(), surface.Presents())

	if check != nil {
		if mismatches == 0 {
			fmt.Printf("Convolution cross-check: all %d generations match\n", eng.Ticks())
		} else {
			fmt.Printf("Convolution cross-check: %d cell mismatches, first at tick %d\n", mismatches, firstBad)
			os.Exit(1)
		}
	}

	if *pngPath != "" {
		if err := writePNG(*pngPath, surface.Image()); err != nil {
			log.Fatalf("lifebench: %v", err)
		}
		fmt.Printf("Wrote final frame to %s\n", *pngPath)
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
