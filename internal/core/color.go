package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the TUI renderer.
type Color uint8

// Palette used by the board view.
const (
	ColorDefault Color = iota
	ColorLive          // live cell
	ColorDead          // dead cell grid dot
	ColorCursor        // edit cursor
	ColorBorder        // board frame
	ColorAccent        // generation counter, speed
	ColorRunning       // running indicator
	ColorPaused        // idle indicator
	ColorMuted         // hints and secondary text
)

// String returns the palette name, used in test failure messages.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorLive:
		return "live"
	case ColorDead:
		return "dead"
	case ColorCursor:
		return "cursor"
	case ColorBorder:
		return "border"
	case ColorAccent:
		return "accent"
	case ColorRunning:
		return "running"
	case ColorPaused:
		return "paused"
	case ColorMuted:
		return "muted"
	default:
		return "unknown"
	}
}
