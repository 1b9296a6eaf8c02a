package life

// Grid stores one generation of cells in row-major order.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates a grid of the given dimensions with every cell Dead.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) Cell { return g.cells[y*g.W+x] }

// Set writes the cell at (x, y).
func (g *Grid) Set(x, y int, c Cell) { g.cells[y*g.W+x] = c }

// Clear resets every cell to Dead.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}
