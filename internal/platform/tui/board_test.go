package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

func TestBoardSummary(t *testing.T) {
	board := NewBoard(testEngineConfig(), storage.SourcePlay)
	defer board.Engine.Close()

	board.Engine.ToggleCell(1, 0)
	board.Engine.ToggleCell(1, 1)
	board.Engine.ToggleCell(1, 2)
	board.Engine.SetSpeed(300)
	for range 3 {
		board.Engine.Step()
	}

	run := board.Summary()
	if run.Source != storage.SourcePlay {
		t.Errorf("Expected source %q, got %q", storage.SourcePlay, run.Source)
	}
	if run.Seed != 1 {
		t.Errorf("Expected seed 1, got %d", run.Seed)
	}
	if run.Generations != 3 || run.Population != 3 || run.PeakPopulation != 3 {
		t.Errorf("Unexpected counters: %+v", run)
	}
	if run.SpeedMS != 300 {
		t.Errorf("Expected speed 300, got %d", run.SpeedMS)
	}
	if run.Status != string(life.StatusOscillating) {
		t.Errorf("Expected oscillating, got %q", run.Status)
	}
}

func TestBoardStepsSurviveClear(t *testing.T) {
	board := NewBoard(testEngineConfig(), storage.SourceRun)
	defer board.Engine.Close()

	board.Engine.Step()
	board.Engine.Step()
	board.Engine.Clear()
	board.Engine.Step()

	if board.Steps() != 3 {
		t.Errorf("Expected 3 steps across a clear, got %d", board.Steps())
	}
	if board.Engine.Generation() != 1 {
		t.Errorf("Expected generation 1 after clear and step, got %d", board.Engine.Generation())
	}
}

func TestBoardRecord(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	board := NewBoard(testEngineConfig(), storage.SourceSSH)
	board.Engine.Randomize()
	board.Engine.Start()
	board.Engine.Step()

	id, err := board.Record(store)
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if id == 0 {
		t.Fatal("Expected a run to be recorded")
	}
	if board.Engine.Running() {
		t.Error("Record should stop the board")
	}

	// A second call is a no-op.
	if id2, err := board.Record(store); err != nil || id2 != 0 {
		t.Errorf("Second Record() = (%d, %v), expected (0, nil)", id2, err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Source != storage.SourceSSH || runs[0].Generations != 1 {
		t.Errorf("Unexpected stored runs: %+v", runs)
	}
}

func TestBoardRecordSkipsIdleSessions(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	board := NewBoard(testEngineConfig(), storage.SourcePlay)
	board.Engine.ToggleCell(0, 0)

	if id, err := board.Record(store); err != nil || id != 0 {
		t.Errorf("Record() = (%d, %v), expected nothing recorded", id, err)
	}

	// Without a store nothing is written either.
	other := NewBoard(testEngineConfig(), storage.SourcePlay)
	other.Engine.Step()
	if id, err := other.Record(nil); err != nil || id != 0 {
		t.Errorf("Record(nil) = (%d, %v), expected (0, nil)", id, err)
	}
}
