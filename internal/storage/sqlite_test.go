package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := Run{
		Source:         SourcePlay,
		Seed:           42,
		Generations:    137,
		Population:     55,
		PeakPopulation: 361,
		SpeedMS:        200,
		Status:         "oscillating",
	}
	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	want.ID = id
	got.CreatedAt = want.CreatedAt
	if got != want {
		t.Errorf("Round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestStoreRecentRunsOrder(t *testing.T) {
	store := openTestStore(t)

	for _, gens := range []int{10, 30, 20} {
		if _, err := store.SaveRun(Run{Source: SourceRun, Generations: gens, SpeedMS: 200}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	// Same-second inserts fall back to insertion order, newest first.
	if runs[0].Generations != 20 || runs[1].Generations != 30 {
		t.Errorf("Expected newest first [20 30], got [%d %d]", runs[0].Generations, runs[1].Generations)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, gens := range []int{100, 50, 200, 75} {
		if _, err := store.SaveRun(Run{Source: SourceSSH, Generations: gens, SpeedMS: 100}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	expected := []int{200, 100, 75}
	for i, r := range runs {
		if r.Generations != expected[i] {
			t.Errorf("Run %d: expected %d generations, got %d", i, expected[i], r.Generations)
		}
	}
}

func TestStoreDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 25 {
		if _, err := store.SaveRun(Run{Source: SourceRun, Generations: i + 1, SpeedMS: 50}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 20 {
		t.Errorf("Expected default limit of 20, got %d", len(recent))
	}

	top, err := store.TopRuns(-1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(top))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if stats.Runs != 0 || stats.MaxGenerations != 0 || !stats.LastRun.IsZero() {
		t.Errorf("Expected zero stats, got %+v", stats)
	}

	runs := []Run{
		{Source: SourcePlay, Generations: 10, PeakPopulation: 40, SpeedMS: 200},
		{Source: SourceRun, Generations: 30, PeakPopulation: 90, SpeedMS: 50},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.Runs)
	}
	if stats.TotalGenerations != 40 || stats.MaxGenerations != 30 {
		t.Errorf("Expected total 40 / max 30, got %d / %d", stats.TotalGenerations, stats.MaxGenerations)
	}
	if stats.AvgGenerations != 20 {
		t.Errorf("Expected average 20, got %f", stats.AvgGenerations)
	}
	if stats.PeakPopulation != 90 {
		t.Errorf("Expected peak population 90, got %d", stats.PeakPopulation)
	}
	if stats.LastRun.IsZero() {
		t.Error("Expected last run time to be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Source: SourcePlay, Generations: 5, SpeedMS: 200}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/data/runs.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, "data", "runs.db")); err != nil {
		t.Errorf("Expected database under HOME: %v", err)
	}
}
