// Package summary serializes an aggregation result into the two-row
// summary CSV and an optional per-report YAML sidecar.
package summary

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/dtnitsch/sarif-tally/pkg/report"
)

// Columns returns the summary header: number_processed followed by the
// seven status columns in code order. Consumers read this file
// positionally, so the order never changes.
func Columns() []string {
	cols := make([]string, 0, report.NumStatusCodes+1)
	cols = append(cols, "number_processed")
	cols = append(cols, report.ColumnLabels[:]...)
	return cols
}

// DataRow returns the single data row for a summary, aligned with
// Columns().
func DataRow(s *report.Summary) []string {
	row := make([]string, 0, report.NumStatusCodes+1)
	row = append(row, strconv.Itoa(s.NumberProcessed))
	for _, n := range s.Histogram {
		row = append(row, strconv.Itoa(n))
	}
	return row
}

// Write emits the header row and the data row to path, replacing any
// existing file. overwrote reports whether the target already existed,
// so the caller can surface the advisory warning.
func Write(path string, s *report.Summary) (overwrote bool, err error) {
	if _, statErr := os.Stat(path); statErr == nil {
		overwrote = true
	}

	f, err := os.Create(path)
	if err != nil {
		return overwrote, fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write(Columns())
	_ = w.Write(DataRow(s))
	w.Flush()
	if err := w.Error(); err != nil {
		return overwrote, fmt.Errorf("failed to write summary file: %w", err)
	}
	return overwrote, nil
}
