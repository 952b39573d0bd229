// Package report loads per-component scan-status CSV files and tallies
// their levelcode column into a fixed-size status histogram.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LevelCodeColumn is the one column every report must carry.
const LevelCodeColumn = "levelcode"

// Table is one loaded report file. All columns are retained, not just
// levelcode, so callers that concatenate tables lose nothing.
type Table struct {
	Header   []string
	Rows     [][]string
	levelIdx int
}

// Load reads a report CSV. The file must have a header row including a
// levelcode column and rectangular rows; anything else is a load error.
// Load is only called on files that exist, so any failure here means a
// present-but-broken report, which callers treat as fatal.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("report %s has no header row", path)
	}

	header := records[0]
	levelIdx := -1
	for i, col := range header {
		if strings.TrimSpace(col) == LevelCodeColumn {
			levelIdx = i
			break
		}
	}
	if levelIdx < 0 {
		return nil, fmt.Errorf("report %s has no %s column", path, LevelCodeColumn)
	}

	return &Table{
		Header:   header,
		Rows:     records[1:],
		levelIdx: levelIdx,
	}, nil
}

// LevelCode returns the status code of one row. ok is false when the
// value does not parse as an integer; such rows are still rows, they
// just never land in a histogram bucket.
func (t *Table) LevelCode(row int) (code int, ok bool) {
	fields := t.Rows[row]
	if t.levelIdx >= len(fields) {
		return 0, false
	}
	code, err := strconv.Atoi(strings.TrimSpace(fields[t.levelIdx]))
	if err != nil {
		return 0, false
	}
	return code, true
}

// Tally scans every row once and returns the per-table histogram.
// Out-of-domain and non-integer codes contribute to no counter.
func (t *Table) Tally() Histogram {
	var h Histogram
	for i := range t.Rows {
		if code, ok := t.LevelCode(i); ok {
			h.Add(code)
		}
	}
	return h
}
