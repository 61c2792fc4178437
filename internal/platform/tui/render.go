package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorLive:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorDead:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorCursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBorder:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorRunning: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	core.ColorPaused:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Cell glyphs, CellWidth columns each.
const (
	liveGlyph   = "██"
	deadGlyph   = " ·"
	cursorLive  = "▓▓"
	cursorEmpty = "[]"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawBoard draws g framed inside r, which should come from core.BoardRect.
// A cursor at (cursorRow, cursorCol) is drawn when showCursor is set.
func DrawBoard(s *core.Screen, r core.Rect, g *life.Grid, cursorRow, cursorCol int, showCursor bool) {
	s.DrawBox(r, core.ColorBorder)

	for row := range g.Rows() {
		y := r.Y + 1 + row
		for col := range g.Cols() {
			x := r.X + 1 + col*core.CellWidth
			alive := g.Alive(row, col)

			glyph, color := deadGlyph, core.ColorDead
			if alive {
				glyph, color = liveGlyph, core.ColorLive
			}
			if showCursor && row == cursorRow && col == cursorCol {
				glyph, color = cursorEmpty, core.ColorCursor
				if alive {
					glyph = cursorLive
				}
			}
			s.DrawTextColored(x, y, glyph, color)
		}
	}
}
