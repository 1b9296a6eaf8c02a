package badge

import "time"

// Pacer throttles life ticks to a steady ticks-per-second rate,
// independent of the render frame rate. It only affects animation
// speed; the engine never sees it.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer targeting the given TPS. The first call
// to ShouldTick fires immediately.
func NewPacer(tps int) *Pacer {
	if tps <= 0 {
		tps = 30
	}
	step := time.Second / time.Duration(tps)
	return &Pacer{step: step, accumulator: step}
}

// ShouldTick reports whether the simulation should advance by one tick.
// At most one tick is granted per call.
func (p *Pacer) ShouldTick() bool {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		// Never bank more than one tick of debt after a stall.
		if p.accumulator > p.step {
			p.accumulator = p.step
		}
		return true
	}
	return false
}
