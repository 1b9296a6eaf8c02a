//go:build ebiten

package badge

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"badge-life/internal/life"
	"badge-life/internal/render"
)

// cellSize is the pixel block each life cell covers on the panel.
const cellSize = 3

// Dwell times, as on the badge.
const (
	slideDwell = 15 * time.Second
	badgeDwell = 60 * time.Second
)

type mode int

const (
	modeSlideshow mode = iota
	modeNameBadge
	modeLife
)

// App is the badge application: a PNG slideshow interrupted by the name
// badge screen and the Game of Life screensaver. A=next image, B=name
// badge, C=enter/leave life; 1 toggles the debug overlay, Q/Escape quit.
// It implements ebiten.Game.
type App struct {
	cfg    Config
	screen *Screen
	show   *Slideshow

	engine     *life.Engine
	pacer      *Pacer
	cancelLife bool

	mode         mode
	deadline     time.Time
	patternShown bool

	overlay    bool
	lastReport life.Report
}

// NewApp wires the badge together and queues the first slide.
func NewApp(cfg Config) (*App, error) {
	if cfg.Scale <= 0 {
		return nil, fmt.Errorf("badge: window scale %d must be positive", cfg.Scale)
	}
	a := &App{
		cfg:    cfg,
		screen: NewScreen(),
		show:   NewSlideshow(cfg.Pics, life.NewLCG(seedFromClock())),
	}

	lifeCfg := life.DefaultConfig()
	painter, err := render.NewPainter(lifeCfg.Width, lifeCfg.Height, cellSize, render.DefaultPalette(), a.screen)
	if err != nil {
		return nil, err
	}
	engine, err := life.New(lifeCfg, painter, func() bool { return a.cancelLife })
	if err != nil {
		return nil, err
	}
	engine.OnReport = func(r life.Report) {
		a.lastReport = r
		log.Printf("life: tick %d rule=%v draw=%v changed=%d tps=%.1f",
			r.Tick, r.Rule.Round(time.Microsecond), r.Draw.Round(time.Microsecond), r.Changed, reportTPS(r))
	}
	a.engine = engine

	a.showSlide()
	return a, nil
}

// seedFromClock derives a 32-bit seed from the millisecond clock, as
// the badge seeded from its uptime counter.
func seedFromClock() uint32 {
	return uint32(time.Now().UnixMilli())
}

func reportTPS(r life.Report) float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ticks) / r.Elapsed.Seconds()
}

// Update runs the badge mode machine once per display frame.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		a.overlay = !a.overlay
	}

	switch a.mode {
	case modeSlideshow:
		switch {
		case ButtonC.Pressed():
			a.startLife()
		case ButtonB.Pressed():
			a.showNameBadge()
		case ButtonA.Pressed() || time.Now().After(a.deadline):
			a.nextSlide()
		}
	case modeNameBadge:
		if ButtonA.Pressed() || ButtonB.Pressed() || ButtonC.Pressed() || time.Now().After(a.deadline) {
			a.nextSlide()
		}
	case modeLife:
		if ButtonC.Pressed() {
			a.cancelLife = true
		}
		if a.pacer.ShouldTick() && !a.engine.Tick() {
			a.cancelLife = false
			a.nextSlide()
		}
	}
	return nil
}

// Draw blits the panel and any debug text on top of it.
func (a *App) Draw(dst *ebiten.Image) {
	a.screen.Blit(dst, a.cfg.Scale)
	if a.patternShown {
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Pattern %d", a.show.PatternIndex()), 8, a.cfg.Scale*PanelH-20)
	}
	if a.overlay {
		ebitenutil.DebugPrintAt(dst, a.overlayText(), 8, 8)
	}
}

// Layout returns the scaled panel size.
func (a *App) Layout(int, int) (int, int) {
	return PanelW * a.cfg.Scale, PanelH * a.cfg.Scale
}

// startLife begins a run seeded from the clock. The C press that
// entered is an edge, so it cannot cancel the run it just started.
func (a *App) startLife() {
	a.mode = modeLife
	a.cancelLife = false
	a.pacer = NewPacer(a.cfg.TPS)
	a.patternShown = false
	// The cell area is 318 px wide; clear the whole panel so the slack
	// column shows the background for the run.
	a.screen.FillRect(0, 0, PanelW, PanelH, render.DefaultPalette().Dead)
	a.engine.Start(seedFromClock())
}

// showNameBadge paints the badge screen and waits for dismissal.
func (a *App) showNameBadge() {
	a.mode = modeNameBadge
	a.deadline = time.Now().Add(badgeDwell)
	a.patternShown = false
	if img, err := a.show.LoadNameBadge(); err == nil {
		a.screen.ShowImage(img)
	} else {
		drawNameBadge(a.screen, a.cfg.Name)
	}
	a.screen.Present()
}

// nextSlide advances the slideshow and paints the new slide.
func (a *App) nextSlide() {
	a.show.Advance()
	a.showSlide()
}

// showSlide paints the current image, falling back to a procedural
// pattern when there is nothing to load.
func (a *App) showSlide() {
	a.mode = modeSlideshow
	a.deadline = time.Now().Add(slideDwell)
	img, err := a.show.Load()
	if err == nil {
		a.screen.ShowImage(img)
		a.patternShown = false
	} else {
		if a.show.Count() > 0 {
			log.Printf("slideshow: %v", err)
		}
		DrawPattern(a.screen, a.show.PatternIndex())
		a.patternShown = true
	}
	a.screen.Present()
}

func (a *App) overlayText() string {
	switch a.mode {
	case modeLife:
		r := a.lastReport
		return fmt.Sprintf("life tick %d  pop %d\nlast window: rule %v draw %v changed %d tps %.1f",
			a.engine.Ticks(), a.engine.Population(),
			r.Rule.Round(time.Microsecond), r.Draw.Round(time.Microsecond), r.Changed, reportTPS(r))
	case modeNameBadge:
		return "name badge"
	default:
		if a.patternShown {
			return fmt.Sprintf("pattern %d of %d", a.show.PatternIndex(), patternChoices)
		}
		return fmt.Sprintf("slide %s (%d images)", a.show.Current(), a.show.Count())
	}
}
