package report

import (
	"github.com/dtnitsch/sarif-tally/pkg/manifest"
)

// ReportStats is the per-entry breakdown retained for the details
// sidecar. Skipped marks entries whose report file was absent; those
// contribute to no counter.
type ReportStats struct {
	Entry   manifest.Entry
	Path    string
	Skipped bool
	Rows    int
	Counts  Histogram
}

// Summary is the end result of one aggregation run, built once after
// every report is loaded and never mutated afterward.
type Summary struct {
	NumberProcessed int
	Histogram       Histogram
	Reports         []ReportStats
}

// Aggregate loads each resolved report in manifest order and merges the
// per-table tallies into one histogram. Entries whose file is absent are
// skipped silently. A file that exists but fails to load aborts the
// whole run; NumberProcessed counts presence, so it is incremented
// before the load is attempted.
func Aggregate(resolved []manifest.Resolved) (*Summary, error) {
	summary := &Summary{
		Reports: make([]ReportStats, 0, len(resolved)),
	}

	for _, r := range resolved {
		stats := ReportStats{Entry: r.Entry, Path: r.Path}

		if !r.Exists {
			stats.Skipped = true
			summary.Reports = append(summary.Reports, stats)
			continue
		}

		summary.NumberProcessed++
		table, err := Load(r.Path)
		if err != nil {
			return nil, err
		}

		stats.Rows = len(table.Rows)
		stats.Counts = table.Tally()
		summary.Histogram.Merge(stats.Counts)
		summary.Reports = append(summary.Reports, stats)
	}

	return summary, nil
}
