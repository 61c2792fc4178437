package life

// neighborOffsets lists the eight (row, col) deltas around a cell.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Rule applies Conway's rules to a cell with the given live neighbor count.
//
// A live cell survives with 2 or 3 neighbors; a dead cell is born with
// exactly 3. Every other cell is dead in the next generation.
func Rule(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// LiveNeighbors counts the live cells adjacent to (row, col), diagonals
// included. Edges are hard: coordinates outside the grid count as dead.
func LiveNeighbors(g *Grid, row, col int) int {
	count := 0
	for _, d := range neighborOffsets {
		if g.Alive(row+d[0], col+d[1]) {
			count++
		}
	}
	return count
}

// NextState returns whether (row, col) is alive in the generation after g.
// It only reads g, so cells may be evaluated in any order.
func NextState(g *Grid, row, col int) bool {
	return Rule(g.Alive(row, col), LiveNeighbors(g, row, col))
}
