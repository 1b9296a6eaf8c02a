package life

// Cell is the state of one grid position.
type Cell uint8

// Cell values. Only Alive counts when neighbors are summed; JustDied
// marks a cell that died in the most recent generation so it can render
// in a transitional color before fading to Dead.
const (
	Dead     Cell = 0
	Alive    Cell = 1
	JustDied Cell = 2
)

// Unchanged is the change-mask sentinel for cells whose value survived
// the last generation untouched. It is never a valid cell state.
const Unchanged Cell = 255
