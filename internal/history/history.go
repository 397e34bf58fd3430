// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists batch-run reports in a SQLite database so past
// throughput and failures can be inspected after the fact.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/docpdf/internal/pool"
	"github.com/pdiddy/docpdf/pkg/types"
)

const (
	dbFile           = "history.db"
	defaultListLimit = 20
)

// Store manages the run history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at dir/history.db,
// creating the schema when absent.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("history directory not configured")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started TEXT NOT NULL,
			finished TEXT NOT NULL,
			workers INTEGER NOT NULL,
			discovered INTEGER NOT NULL,
			converted INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			failed INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_files (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			input TEXT NOT NULL,
			output TEXT,
			status TEXT NOT NULL,
			error TEXT,
			duration_ms INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_files_run_id ON run_files(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record persists one batch report with its per-file rows and returns the
// new run ID.
func (s *Store) Record(ctx context.Context, report *pool.Report) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started, finished, workers, discovered, converted, skipped, failed, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		report.Started.UTC().Format(time.RFC3339Nano),
		report.Finished.UTC().Format(time.RFC3339Nano),
		report.Workers,
		report.Discovered,
		report.Converted,
		report.Skipped,
		report.Failed,
		report.Duration().Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, fr := range report.Results {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_files (run_id, input, output, status, error, duration_ms)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			runID, fr.Input, fr.Output, string(fr.Status), fr.Error, fr.Duration.Milliseconds(),
		); err != nil {
			return 0, fmt.Errorf("inserting file row for %s: %w", fr.Input, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// RunSummary is one row of the run history.
type RunSummary struct {
	ID         int64     `json:"id" yaml:"id"`
	Started    time.Time `json:"started" yaml:"started"`
	Workers    int       `json:"workers" yaml:"workers"`
	Discovered int       `json:"discovered" yaml:"discovered"`
	Converted  int       `json:"converted" yaml:"converted"`
	Skipped    int       `json:"skipped" yaml:"skipped"`
	Failed     int       `json:"failed" yaml:"failed"`
	Duration   float64   `json:"duration_seconds" yaml:"duration_seconds"`
}

// List returns the most recent runs, newest first. A non-positive limit
// uses the default.
func (s *Store) List(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started, workers, discovered, converted, skipped, failed, duration_ms
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var started string
		var durationMS int64
		if err := rows.Scan(&r.ID, &started, &r.Workers, &r.Discovered,
			&r.Converted, &r.Skipped, &r.Failed, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, perr := time.Parse(time.RFC3339Nano, started); perr == nil {
			r.Started = t
		}
		r.Duration = float64(durationMS) / 1000
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Files returns the per-file rows of one run in completion order.
func (s *Store) Files(ctx context.Context, runID int64) ([]types.FileResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT input, output, status, error, duration_ms
		 FROM run_files WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run %d: %w", runID, err)
	}
	defer rows.Close()

	var files []types.FileResult
	for rows.Next() {
		var fr types.FileResult
		var status string
		var durationMS int64
		if err := rows.Scan(&fr.Input, &fr.Output, &status, &fr.Error, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning file row: %w", err)
		}
		fr.Status = types.FileStatus(status)
		fr.Duration = time.Duration(durationMS) * time.Millisecond
		files = append(files, fr)
	}
	return files, rows.Err()
}
