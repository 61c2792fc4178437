package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/storage"
)

func seededStore(t *testing.T, generations ...int) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, g := range generations {
		if _, err := store.SaveRun(storage.Run{Source: storage.SourceRun, Generations: g, SpeedMS: 200, Status: "still"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func TestHistoryModelViews(t *testing.T) {
	store := seededStore(t, 10, 300, 20)
	m := NewHistoryModel(store, 100, 30)

	if len(m.runs) != 3 || m.runs[0].Generations != 20 {
		t.Fatalf("Expected recent runs newest first, got %+v", m.runs)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.view != viewLongest || m.runs[0].Generations != 300 {
		t.Errorf("Expected longest view with 300 first, got view=%d runs=%+v", m.view, m.runs)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	if m.view != viewRecent {
		t.Errorf("Expected to return to recent view, got %d", m.view)
	}

	if !strings.Contains(m.View(), "RUN HISTORY") {
		t.Error("View missing title")
	}
}

func TestHistoryModelEmptyAndUnavailable(t *testing.T) {
	empty := NewHistoryModel(seededStore(t), 80, 24)
	if !strings.Contains(empty.View(), "No runs recorded yet") {
		t.Error("Expected empty message")
	}

	none := NewHistoryModel(nil, 80, 24)
	if !strings.Contains(none.View(), "unavailable") {
		t.Error("Expected unavailable message without a store")
	}
}

func TestHistoryModelQuit(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if next.(HistoryModel).View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestRunRows(t *testing.T) {
	rows := RunRows([]storage.Run{{ID: 7, Source: "play", Generations: 42, Population: 3, PeakPopulation: 9, SpeedMS: 150, Status: "still"}})
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	want := []string{"7", "play", "42", "3", "9", "150ms", "still"}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("Column %d = %q, expected %q", i, rows[0][i], w)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, expected %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText should not truncate, got %q", got)
	}
}
