package life

// LCG is the 32-bit linear congruential generator used to scatter the
// initial live cells. The recurrence is the classic ANSI C rand, so a
// given seed always reproduces the same board.
type LCG struct {
	state uint32
}

// NewLCG returns a generator with the given starting state.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Seed resets the generator state.
func (r *LCG) Seed(seed uint32) { r.state = seed }

// Next advances the generator and returns a 15-bit value in [0, 32768).
func (r *LCG) Next() uint32 {
	r.state = r.state*1103515245 + 12345
	return (r.state >> 16) & 0x7fff
}
