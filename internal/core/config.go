package core

// RuntimeConfig describes the terminal a board session is drawn on.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	Source  string // Where the session runs: "play" or "ssh"
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Source:  "play",
	}
}

// CellWidth is the number of terminal columns used per board cell.
// Two columns keep cells roughly square in most fonts.
const CellWidth = 2

// BoardRect returns the screen rectangle, border included, that a board of
// rows x cols cells occupies when placed at (x, y).
func BoardRect(x, y, rows, cols int) Rect {
	return NewRect(x, y, cols*CellWidth+2, rows+2)
}

// CellAt converts a screen position to a cell coordinate on a board drawn in
// r. ok is false when the position is on the border or outside the board.
func CellAt(r Rect, x, y int) (row, col int, ok bool) {
	inner := NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
	if !inner.Contains(x, y) {
		return 0, 0, false
	}
	return y - inner.Y, (x - inner.X) / CellWidth, true
}
