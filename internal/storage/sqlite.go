// Package storage persists scores: the best score as a plain text file and
// the history of finished runs in SQLite. The pure-Go modernc.org/sqlite
// driver keeps the build free of CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database of finished runs.
type Store struct {
	db *sql.DB
}

// Run is one finished run of a variant.
type Run struct {
	ID        int64
	Variant   string
	Score     int
	Ticks     int  // Simulated ticks the run lasted
	NewHigh   bool // The run set a new best score
	CreatedAt time.Time
}

// VariantStats aggregates the runs of one variant.
type VariantStats struct {
	Variant    string
	Runs       int
	BestScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// expandPath replaces a leading ~ with the home directory.
func expandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Open creates or opens the database at dbPath, creating parent
// directories and the schema as needed.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandPath(dbPath)
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

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			new_high INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_variant ON runs(variant);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(variant, score DESC);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (variant, score, ticks, new_high) VALUES (?, ?, ?, ?)",
		r.Variant, r.Score, r.Ticks, r.NewHigh,
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

// TopRuns returns the best runs of a variant, highest score first.
// A non-positive limit defaults to 10.
func (s *Store) TopRuns(variant string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant, score, ticks, new_high, created_at
		 FROM runs
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RecentRuns returns the latest runs across all variants, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, variant, score, ticks, new_high, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Variant, &r.Score, &r.Ticks, &r.NewHigh, &createdAt); err != nil {
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

// parseTime handles both driver representations of DATETIME.
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

// BestScore returns the highest recorded score of a variant, 0 if none.
func (s *Store) BestScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE variant = ?",
		variant,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearRuns deletes all runs of a variant.
func (s *Store) ClearRuns(variant string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE variant = ?", variant); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats aggregates the runs of one variant.
func (s *Store) Stats(variant string) (*VariantStats, error) {
	stats := &VariantStats{Variant: variant}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM runs WHERE variant = ?`,
		variant,
	).Scan(&stats.Runs, &stats.BestScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE variant = ? ORDER BY id DESC LIMIT 1`,
		variant,
	).Scan(&lastPlayed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	default:
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
