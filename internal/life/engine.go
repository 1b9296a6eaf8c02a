package life

import (
	"errors"
	"fmt"
	"time"
)

// reportInterval is how many ticks feed into one Report.
const reportInterval = 50

// Config holds the construction parameters of a simulation run.
type Config struct {
	Width     int // cells per row, border included
	Height    int // rows, border included
	SeedCells int // placement draws when a run starts
	MaxTicks  int // generations before a run stops on its own
}

// DefaultConfig returns the badge's stock grid dimensions and run length.
func DefaultConfig() Config {
	return Config{Width: 106, Height: 80, SeedCells: 2000, MaxTicks: 500}
}

// Renderer paints generations onto a display. Implementations present
// the frame exactly once per call.
type Renderer interface {
	// DrawFull repaints the whole board from the given cells.
	DrawFull(cells []Cell)
	// DrawChanges repaints only cells whose mask entry is not Unchanged.
	DrawChanges(mask []Cell)
}

// Report carries timings accumulated over one reporting window.
type Report struct {
	Tick    int           // total ticks completed when the window closed
	Ticks   int           // ticks covered by the window
	Rule    time.Duration // time spent computing next generations
	Draw    time.Duration // time spent diffing, painting and presenting
	Changed int           // cells repainted over the window
	Elapsed time.Duration // wall time of the window
}

type window struct {
	start   time.Time
	ticks   int
	rule    time.Duration
	draw    time.Duration
	changed int
}

// Engine owns the generation pair, change mask and seeder of one
// simulation run and drives a Renderer through it. It is not safe for
// concurrent use; a single host loop calls Start and Tick.
type Engine struct {
	// OnReport, when set, receives a timing summary every
	// reportInterval ticks while a run is going.
	OnReport func(Report)

	cfg    Config
	r      Renderer
	cancel func() bool

	grids [2]*Grid
	cur   int
	mask  []Cell
	rng   *LCG

	running bool
	ticks   int
	win     window
}

// New constructs an engine. The renderer is required; cancel may be nil
// when the host has no early-exit control.
func New(cfg Config, r Renderer, cancel func() bool) (*Engine, error) {
	if cfg.Width < 3 || cfg.Height < 3 {
		return nil, fmt.Errorf("life: %dx%d grid has no interior cells", cfg.Width, cfg.Height)
	}
	if cfg.SeedCells < 0 {
		return nil, fmt.Errorf("life: negative seed count %d", cfg.SeedCells)
	}
	if cfg.MaxTicks <= 0 {
		return nil, fmt.Errorf("life: run length %d must be positive", cfg.MaxTicks)
	}
	if r == nil {
		return nil, errors.New("life: nil renderer")
	}
	if cancel == nil {
		cancel = func() bool { return false }
	}
	return &Engine{
		cfg:    cfg,
		r:      r,
		cancel: cancel,
		grids:  [2]*Grid{NewGrid(cfg.Width, cfg.Height), NewGrid(cfg.Width, cfg.Height)},
		mask:   make([]Cell, cfg.Width*cfg.Height),
		rng:    NewLCG(1),
	}, nil
}

// Start begins a run: the seeder is reset, both grids cleared, the
// initial cells scattered over the interior and the first frame drawn
// in full. Collisions between placement draws overwrite, so the live
// population may come out below SeedCells.
func (e *Engine) Start(seed uint32) {
	e.rng.Seed(seed)
	e.grids[0].Clear()
	e.grids[1].Clear()
	e.cur = 0
	cur := e.grids[0]
	for i := 0; i < e.cfg.SeedCells; i++ {
		x := 1 + int(e.rng.Next())%(e.cfg.Width-2)
		y := 1 + int(e.rng.Next())%(e.cfg.Height-2)
		cur.Set(x, y, Alive)
	}
	e.ticks = 0
	e.running = true
	e.r.DrawFull(cur.Cells())
	e.win = window{start: time.Now()}
}

// Tick advances one generation and repaints what changed, reporting
// whether the run is still going. The cancel sampler is consulted once,
// before any work, so a cancel observed at tick K stops the run by tick
// K at the latest.
func (e *Engine) Tick() bool {
	if !e.running {
		return false
	}
	if e.cancel() {
		e.running = false
		return false
	}
	cur, nxt := e.grids[e.cur], e.grids[e.cur^1]

	t0 := time.Now()
	NextGeneration(cur, nxt)
	t1 := time.Now()
	changed := MarkChanges(cur, nxt, e.mask)
	e.r.DrawChanges(e.mask)
	t2 := time.Now()

	e.cur ^= 1
	e.ticks++

	e.win.ticks++
	e.win.rule += t1.Sub(t0)
	e.win.draw += t2.Sub(t1)
	e.win.changed += changed
	if e.win.ticks == reportInterval {
		if e.OnReport != nil {
			e.OnReport(Report{
				Tick:    e.ticks,
				Ticks:   e.win.ticks,
				Rule:    e.win.rule,
				Draw:    e.win.draw,
				Changed: e.win.changed,
				Elapsed: time.Since(e.win.start),
			})
		}
		e.win = window{start: time.Now()}
	}

	if e.ticks >= e.cfg.MaxTicks {
		e.running = false
	}
	return e.running
}

// Running reports whether a run is in progress.
func (e *Engine) Running() bool { return e.running }

// Ticks returns the generations completed in the current run.
func (e *Engine) Ticks() int { return e.ticks }

// Cells exposes the generation currently on screen.
func (e *Engine) Cells() []Cell { return e.grids[e.cur].Cells() }

// Population counts the live cells in the current generation.
func (e *Engine) Population() int {
	n := 0
	for _, c := range e.grids[e.cur].Cells() {
		if c == Alive {
			n++
		}
	}
	return n
}
