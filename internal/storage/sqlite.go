// Package storage provides SQLite-based persistence for run summaries.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Sources a run can be recorded from.
const (
	SourcePlay = "play"
	SourceSSH  = "ssh"
	SourceRun  = "run"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is the summary of one session with a board. Grid contents are never
// stored.
type Run struct {
	ID             int64
	Source         string // SourcePlay, SourceSSH or SourceRun
	Seed           int64
	Generations    int
	Population     int // Live cells when the run ended
	PeakPopulation int
	SpeedMS        int
	Status         string // Pattern status when the run ended
	CreatedAt      time.Time
}

// Stats contains aggregated statistics over recorded runs.
type Stats struct {
	Runs             int
	TotalGenerations int64
	MaxGenerations   int
	AvgGenerations   float64
	PeakPopulation   int
	LastRun          time.Time
}

// DefaultPath is where the CLI keeps its database unless told otherwise.
const DefaultPath = "~/.life/history.db"

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			generations INTEGER NOT NULL,
			population INTEGER NOT NULL DEFAULT 0,
			peak_population INTEGER NOT NULL DEFAULT 0,
			speed_ms INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_generations ON runs(generations DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run summary and returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (source, seed, generations, population, peak_population, speed_ms, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Source, r.Seed, r.Generations, r.Population, r.PeakPopulation, r.SpeedMS, r.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, source, seed, generations, population, peak_population, speed_ms, status, created_at`

// RecentRuns returns the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
}

// TopRuns returns the longest runs, ordered by generation count descending.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY generations DESC, id ASC LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.Source, &r.Seed, &r.Generations, &r.Population,
			&r.PeakPopulation, &r.SpeedMS, &r.Status, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats returns aggregated statistics over all recorded runs.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var lastRun any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(generations), 0), COALESCE(MAX(generations), 0),
		        COALESCE(AVG(generations), 0), COALESCE(MAX(peak_population), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.TotalGenerations, &stats.MaxGenerations,
		&stats.AvgGenerations, &stats.PeakPopulation, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastRun = parseTime(lastRun)

	return stats, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
