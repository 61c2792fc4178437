package life

// Store owns the current grid and the generation counter.
// It performs no scheduling and no I/O; the Engine serializes access to it.
type Store struct {
	rows       int
	cols       int
	grid       *Grid
	generation int
}

// NewStore creates a store holding an all-dead grid at generation 0.
func NewStore(rows, cols int) *Store {
	s := &Store{rows: rows, cols: cols}
	s.Initialize()
	return s
}

// Initialize replaces the grid with an all-dead one and resets the generation.
func (s *Store) Initialize() {
	s.grid = NewGrid(s.rows, s.cols)
	s.generation = 0
}

// SetCell replaces a single cell's state.
// Out-of-bounds coordinates are ignored and reported as false.
func (s *Store) SetCell(row, col int, alive bool) bool {
	return s.grid.Set(row, col, alive)
}

// ReplaceGrid swaps in the next generation and advances the counter by one
// in the same step. A grid with different dimensions is refused.
func (s *Store) ReplaceGrid(next *Grid) bool {
	if !s.grid.SameSize(next) {
		return false
	}
	s.grid = next
	s.generation++
	return true
}

// Grid returns a copy of the current grid.
func (s *Store) Grid() *Grid {
	return s.grid.Clone()
}

// Generation returns the number of steps since the last reset.
func (s *Store) Generation() int {
	return s.generation
}

// current exposes the stored grid without copying, for the stepper.
func (s *Store) current() *Grid {
	return s.grid
}
