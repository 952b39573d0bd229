package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dtnitsch/sarif-tally/pkg/report"
)

// Run is one recorded aggregation run.
type Run struct {
	RunID           int64
	CreatedAt       time.Time
	ManifestSource  string
	InputDir        string
	OutputPath      string
	NumberProcessed int
	SkippedMissing  int
	Histogram       report.Histogram
}

// InsertRun records a completed run and returns its ID.
func (db *DB) InsertRun(run Run) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (
			manifest_source, input_dir, output_path,
			number_processed, skipped_missing,
			num_success, num_zero_results, num_input_missing,
			num_load_error, num_input_extra, num_unknown_shape, num_unknown
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ManifestSource, run.InputDir, run.OutputPath,
		run.NumberProcessed, run.SkippedMissing,
		run.Histogram[0], run.Histogram[1], run.Histogram[2],
		run.Histogram[3], run.Histogram[4], run.Histogram[5], run.Histogram[6],
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	return runID, nil
}

const runColumns = `
	run_id, created_at, manifest_source, input_dir, output_path,
	number_processed, skipped_missing,
	num_success, num_zero_results, num_input_missing,
	num_load_error, num_input_extra, num_unknown_shape, num_unknown`

func scanRun(scan func(dest ...interface{}) error) (Run, error) {
	var run Run
	err := scan(
		&run.RunID, &run.CreatedAt, &run.ManifestSource, &run.InputDir, &run.OutputPath,
		&run.NumberProcessed, &run.SkippedMissing,
		&run.Histogram[0], &run.Histogram[1], &run.Histogram[2],
		&run.Histogram[3], &run.Histogram[4], &run.Histogram[5], &run.Histogram[6],
	)
	return run, err
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means
// no limit.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := "SELECT" + runColumns + " FROM runs ORDER BY run_id DESC"
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// GetRunByID returns one recorded run.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	row := db.QueryRow("SELECT"+runColumns+" FROM runs WHERE run_id = ?", runID)
	run, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// LatestRunID returns the ID of the most recent run.
func (db *DB) LatestRunID() (int64, error) {
	var runID int64
	err := db.QueryRow("SELECT run_id FROM runs ORDER BY run_id DESC LIMIT 1").Scan(&runID)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("no runs recorded yet")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest run: %w", err)
	}
	return runID, nil
}
