package webseo

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// runTimeLayout is fixed width so stored timestamps sort lexically.
const runTimeLayout = "2006-01-02T15:04:05.000000000Z"

// Run is one recorded processing run.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Input      string
	Output     string
	Stats      Stats
	Warning    string // minifier error text when the run fell back to unminified output
}

// Store wraps a SQLite database holding the run history.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A build step and a preview server may share the file.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(1)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    started_at TEXT NOT NULL,
    finished_at TEXT NOT NULL,
    input TEXT NOT NULL,
    output TEXT NOT NULL,
    original_bytes INTEGER NOT NULL,
    final_bytes INTEGER NOT NULL,
    minified INTEGER NOT NULL DEFAULT 0,
    warning TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);
`)
	return err
}

// RecordRun inserts r into the history.
func (s *Store) RecordRun(r Run) error {
	_, err := s.db.Exec(`
INSERT INTO runs (id, started_at, finished_at, input, output, original_bytes, final_bytes, minified, warning)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.StartedAt.UTC().Format(runTimeLayout),
		r.FinishedAt.UTC().Format(runTimeLayout),
		r.Input,
		r.Output,
		r.Stats.OriginalBytes,
		r.Stats.FinalBytes,
		boolToInt(r.Stats.Minified),
		r.Warning,
	)
	return err
}

// ListRuns returns up to limit runs, most recent first. A limit <= 0 returns
// all runs.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(`
SELECT id, started_at, finished_at, input, output, original_bytes, final_bytes, minified, warning
FROM runs
ORDER BY started_at DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r                 Run
			started, finished string
			minified          int
		)
		if err := rows.Scan(&r.ID, &started, &finished, &r.Input, &r.Output,
			&r.Stats.OriginalBytes, &r.Stats.FinalBytes, &minified, &r.Warning); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(runTimeLayout, started)
		r.FinishedAt, _ = time.Parse(runTimeLayout, finished)
		r.Stats.Minified = minified != 0
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
