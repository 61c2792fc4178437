package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

func testEngineConfig() life.Config {
	return life.Config{
		Rows:     3,
		Cols:     4,
		Speed:    200,
		MinSpeed: 50,
		MaxSpeed: 1000,
		Density:  0.3,
		Seed:     1,
		Workers:  1,
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	board := NewBoard(testEngineConfig(), storage.SourcePlay)
	t.Cleanup(board.Engine.Close)
	return NewModel(board, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Source: storage.SourcePlay}, 50)
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T, expected Model", next)
		}
	}
	return m, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = send(t, m, keyMsg(k))
	}
	return m
}

func TestModelStartsIdle(t *testing.T) {
	m := newTestModel(t)

	if m.Init() != nil {
		t.Error("Init should not schedule anything")
	}
	if m.board.Engine.Running() {
		t.Error("Board should start idle")
	}
	if m.board.Engine.Snapshot().Population != 0 {
		t.Error("Board should start all dead")
	}
}

func TestModelCursorAndToggle(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "right", "l", "down", "enter")
	if row, col := m.Cursor(); row != 1 || col != 2 {
		t.Fatalf("Cursor = (%d, %d), expected (1, 2)", row, col)
	}
	if !m.board.Engine.Alive(1, 2) {
		t.Error("Expected toggled cell to be alive")
	}

	m = press(t, m, "x")
	if m.board.Engine.Alive(1, 2) {
		t.Error("Expected second toggle to kill the cell")
	}
}

func TestModelCursorStaysOnBoard(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "up", "left", "left")
	if row, col := m.Cursor(); row != 0 || col != 0 {
		t.Errorf("Cursor moved off the top-left: (%d, %d)", row, col)
	}

	m = press(t, m, "down", "down", "down", "down", "right", "right", "right", "right", "right")
	if row, col := m.Cursor(); row != 2 || col != 3 {
		t.Errorf("Cursor moved off the bottom-right: (%d, %d)", row, col)
	}
}

func TestModelStartStepStop(t *testing.T) {
	m := newTestModel(t)

	// Horizontal blinker in the middle row.
	m = press(t, m, "down", "enter", "right", "enter", "right", "enter")

	m, cmd := send(t, m, keyMsg(" "))
	if !m.board.Engine.Running() {
		t.Fatal("Space should start the board")
	}
	if cmd == nil {
		t.Fatal("Starting should return the first clock tick")
	}
	if m.board.clock.Active() != 1 {
		t.Fatalf("Expected exactly one armed timer, got %d", m.board.clock.Active())
	}

	m, _ = send(t, m, clockTickMsg{id: 1})
	if gen := m.board.Engine.Generation(); gen != 1 {
		t.Errorf("Expected generation 1 after a tick, got %d", gen)
	}

	m = press(t, m, " ")
	if m.board.Engine.Running() {
		t.Fatal("Space should stop a running board")
	}

	// The in-flight tick of the stopped timer is discarded.
	m, _ = send(t, m, clockTickMsg{id: 1})
	if gen := m.board.Engine.Generation(); gen != 1 {
		t.Errorf("Stale tick advanced the board to generation %d", gen)
	}

	m = press(t, m, "n")
	if gen := m.board.Engine.Generation(); gen != 2 {
		t.Errorf("Expected manual step to reach generation 2, got %d", gen)
	}

	// Generation 3 repeats generation 1.
	m = press(t, m, "n")
	if m.board.Status() != life.StatusOscillating {
		t.Errorf("Expected blinker to be classified oscillating, got %q", m.board.Status())
	}
}

func TestModelEditingDisabledWhileRunning(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "enter", " ")

	if !m.board.Engine.Running() {
		t.Fatal("Expected board to be running")
	}

	m = press(t, m, "right", "enter", "c", "r")
	snap := m.board.Engine.Snapshot()
	if snap.Population != 1 || !snap.Grid.Alive(0, 0) {
		t.Errorf("Editing while running changed the board:\n%s", snap.Grid)
	}
}

func TestModelSpeedKeys(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "+")
	if got := m.board.Engine.Speed(); got != 150 {
		t.Errorf("Expected 150ms after faster, got %d", got)
	}

	m = press(t, m, "-", "-")
	if got := m.board.Engine.Speed(); got != 250 {
		t.Errorf("Expected 250ms after two slower, got %d", got)
	}

	m = press(t, m, "+", "+", "+", "+", "+", "+")
	if got := m.board.Engine.Speed(); got != 50 {
		t.Errorf("Expected speed clamped at 50ms, got %d", got)
	}
}

func TestModelSpeedChangeRearmsWhileRunning(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, " ", "-")

	if m.board.clock.Active() != 1 {
		t.Fatalf("Expected exactly one armed timer after rearm, got %d", m.board.clock.Active())
	}

	// The first timer was replaced; only the new one steps.
	m, _ = send(t, m, clockTickMsg{id: 1})
	if gen := m.board.Engine.Generation(); gen != 0 {
		t.Errorf("Tick from the replaced timer stepped the board to %d", gen)
	}
	m, _ = send(t, m, clockTickMsg{id: 2})
	if gen := m.board.Engine.Generation(); gen != 1 {
		t.Errorf("Expected the new timer to step, got generation %d", gen)
	}
}

func TestModelClearAndRandom(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "r")
	if m.board.Engine.Snapshot().Population == 0 {
		t.Fatal("Expected random board to have live cells (seed 1)")
	}

	m = press(t, m, "n", "c")
	snap := m.board.Engine.Snapshot()
	if snap.Population != 0 || snap.Generation != 0 {
		t.Errorf("Expected cleared board at generation 0, got pop=%d gen=%d", snap.Population, snap.Generation)
	}
}

func TestModelMouseToggle(t *testing.T) {
	m := newTestModel(t)

	// 4 columns -> frame 10 wide, centered in 80 columns at x=35.
	click := tea.MouseMsg{X: 40, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = send(t, m, click)

	if !m.board.Engine.Alive(1, 2) {
		t.Error("Expected click to toggle cell (1, 2)")
	}
	if row, col := m.Cursor(); row != 1 || col != 2 {
		t.Errorf("Expected cursor at the clicked cell, got (%d, %d)", row, col)
	}

	// Clicks on the frame and releases are ignored.
	m, _ = send(t, m,
		tea.MouseMsg{X: 35, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 40, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	)
	if m.board.Engine.Snapshot().Population != 1 {
		t.Error("Frame clicks or releases should not toggle cells")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, " ")

	m, cmd := send(t, m, keyMsg("q"))
	if !m.IsQuitting() {
		t.Fatal("Expected model to be quitting")
	}
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if m.board.Engine.Running() {
		t.Error("Quitting should stop the board")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "enter")

	view := m.View()
	for _, want := range []string{"GAME OF LIFE", "IDLE", "gen 0", "pop 1", "200ms"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q:\n%s", want, view)
		}
	}

	m = press(t, m, " ")
	if !strings.Contains(m.View(), "RUNNING") {
		t.Error("Expected running indicator in view")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 {
		t.Errorf("Expected screen width 120, got %d", m.screen.Width())
	}

	// Narrower than the board: the buffer still fits the frame.
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 4, Height: 4})
	if m.screen.Width() != 10 {
		t.Errorf("Expected screen width to fit the 10-column frame, got %d", m.screen.Width())
	}
}
