// Package life implements the Game of Life simulation engine: a fixed-size
// grid store, the rule evaluator, the generation stepper and a scheduler that
// drives automatic stepping through an injected Clock.
// It has no Bubble Tea dependency so the engine can be tested without a UI.
package life

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// Grid is a fixed-size matrix of cell states, indexed by (row, col).
// Dimensions never change after construction.
type Grid struct {
	rows  int
	cols  int
	cells [][]bool
}

// NewGrid creates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) addresses a cell of this grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Alive returns the state of a cell.
// Out-of-bounds coordinates are reported as dead.
func (g *Grid) Alive(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[row][col]
}

// Set replaces the state of a cell.
// Returns false and leaves the grid untouched for out-of-bounds coordinates.
func (g *Grid) Set(row, col int, alive bool) bool {
	if !g.InBounds(row, col) {
		return false
	}
	g.cells[row][col] = alive
	return true
}

// SameSize reports whether other has the same dimensions.
func (g *Grid) SameSize(other *Grid) bool {
	return other != nil && g.rows == other.rows && g.cols == other.cols
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.rows, g.cols)
	for row := range g.cells {
		copy(clone.cells[row], g.cells[row])
	}
	return clone
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if !g.SameSize(other) {
		return false
	}
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Population returns the number of live cells.
func (g *Grid) Population() (count int) {
	for row := range g.cells {
		for _, alive := range g.cells[row] {
			if alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the cell states, used for cycle detection.
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, g.cols)
	for row := range g.cells {
		for col, alive := range g.cells[row] {
			buf[col] = 0
			if alive {
				buf[col] = 1
			}
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the grid with '#' for live and '.' for dead cells,
// one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)

	for row := range g.cells {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, alive := range g.cells[row] {
			if alive {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
