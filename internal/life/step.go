package life

import (
	"golang.org/x/sync/errgroup"
)

// Next computes the generation following g into a newly allocated grid.
// g is never modified. With workers > 1 the rows are split into bands that
// are evaluated concurrently; the output is identical either way.
func Next(g *Grid, workers int) *Grid {
	next := NewGrid(g.rows, g.cols)

	if workers <= 1 || g.rows < 2 {
		fillRows(g, next, 0, g.rows)
		return next
	}

	workers = min(workers, g.rows)
	rowsPerWorker := (g.rows + workers - 1) / workers // ceiling division

	var eg errgroup.Group
	for i := range workers {
		startRow := i * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, g.rows)
		if startRow >= g.rows {
			break
		}
		eg.Go(func() error {
			fillRows(g, next, startRow, endRow)
			return nil
		})
	}
	//nolint:errcheck // workers never return an error
	eg.Wait()

	return next
}

// fillRows writes the next state of rows [startRow, endRow) into next.
// Each band owns distinct rows of next, so bands never write the same slice.
func fillRows(cur, next *Grid, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := 0; col < cur.cols; col++ {
			next.cells[row][col] = NextState(cur, row, col)
		}
	}
}
