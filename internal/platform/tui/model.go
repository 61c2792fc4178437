package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// Rows above and below the board frame.
const (
	titleRows  = 1
	statusRows = 1
)

// Model is the Bubble Tea model for one interactive board.
type Model struct {
	board     *Board
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	speedStep int
	cursorRow int
	cursorCol int
	quitting  bool
}

// NewModel creates a model for the given board. speedStep is the change in
// milliseconds applied by the faster/slower keys.
func NewModel(board *Board, cfg core.RuntimeConfig, speedStep int) Model {
	if speedStep <= 0 {
		speedStep = 50
	}
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		board:     board,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		speedStep: speedStep,
	}
	m.screen = core.NewScreen(m.screenSize())
	m.keys.SetRunning(board.Engine.Running())
	return m
}

// screenSize returns the buffer size needed for the board and status line.
func (m Model) screenSize() (int, int) {
	frame := m.boardRect()
	return max(m.config.ScreenW, frame.Right()), frame.Bottom() + statusRows
}

// boardRect places the board frame centered below the title.
func (m Model) boardRect() core.Rect {
	cfg := m.board.Engine.Config()
	r := core.BoardRect(0, titleRows, cfg.Rows, cfg.Cols)
	r.X = max(0, (m.config.ScreenW-r.W)/2)
	return r
}

// Init starts with an idle board; nothing is scheduled until the user starts it.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m = m.apply(m.keys.Action(msg))

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(m.screenSize())

	case clockTickMsg:
		m.board.clock.fire(msg)
	}

	m.keys.SetRunning(m.board.Engine.Running())

	if m.quitting {
		return m, tea.Quit
	}
	return m, m.board.clock.drain()
}

// apply performs a board action. Actions the engine rejects in the current
// state are no-ops.
func (m Model) apply(action core.Action) Model {
	eng := m.board.Engine
	if action.Editing() && eng.Running() {
		return m
	}

	switch action {
	case core.ActionQuit:
		eng.Close()
		m.quitting = true

	case core.ActionStartStop:
		if !eng.Start() {
			eng.Stop()
		}

	case core.ActionStep:
		eng.Step()

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dr, dc := action.Delta()
		cfg := eng.Config()
		m.cursorRow = core.Clamp(m.cursorRow+dr, 0, cfg.Rows-1)
		m.cursorCol = core.Clamp(m.cursorCol+dc, 0, cfg.Cols-1)

	case core.ActionToggle:
		if eng.ToggleCell(m.cursorRow, m.cursorCol) {
			m.board.edited()
		}

	case core.ActionClear:
		if eng.Clear() {
			m.board.edited()
		}

	case core.ActionRandom:
		if eng.Randomize() {
			m.board.edited()
		}

	case core.ActionFaster:
		eng.SetSpeed(eng.Speed() - m.speedStep)

	case core.ActionSlower:
		eng.SetSpeed(eng.Speed() + m.speedStep)

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m
}

// handleMouse toggles the clicked cell and moves the cursor there.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}
	row, col, ok := core.CellAt(m.boardRect(), msg.X, msg.Y)
	if !ok {
		return m
	}
	m.cursorRow, m.cursorCol = row, col
	return m.apply(core.ActionToggle)
}

// View renders the board, the status line and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.board.Engine.Snapshot()
	frame := m.boardRect()

	m.screen.Clear()
	m.screen.DrawTextCentered(0, "CONWAY'S GAME OF LIFE", core.ColorAccent)
	DrawBoard(m.screen, frame, snap.Grid, m.cursorRow, m.cursorCol, !snap.Running)
	m.drawStatus(frame.X, frame.Bottom(), snap)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// drawStatus writes the state indicator and counters on one line.
func (m Model) drawStatus(x, y int, snap life.Snapshot) {
	state, color := "● IDLE", core.ColorPaused
	if snap.Running {
		state, color = "▶ RUNNING", core.ColorRunning
	}
	m.screen.DrawTextColored(x, y, state, color)
	x += len([]rune(state)) + 2

	fields := []string{
		fmt.Sprintf("gen %d", snap.Generation),
		fmt.Sprintf("pop %d", snap.Population),
		fmt.Sprintf("%dms", snap.Speed),
	}
	if snap.Generation > 0 {
		fields = append(fields, string(m.board.Status()))
	}
	m.screen.DrawTextColored(x, y, strings.Join(fields, "  "), core.ColorMuted)
}

// Cursor returns the edit cursor position.
func (m Model) Cursor() (row, col int) {
	return m.cursorRow, m.cursorCol
}

// IsQuitting returns true once the user asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts a Bubble Tea program for the board and blocks until the user
// quits. The board is stopped on return; recording it is up to the caller.
func Run(board *Board, cfg core.RuntimeConfig, speedStep int) error {
	model := NewModel(board, cfg, speedStep)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to toggle cells
	)

	_, err := p.Run()
	board.Engine.Close()
	return err
}
