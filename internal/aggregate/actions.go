// Package aggregate wires the aggregation pipeline behind the CLI:
// manifest -> resolver -> aggregator -> summary writer.
package aggregate

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/sarif-tally/models"
	"github.com/dtnitsch/sarif-tally/pkg/db"
	"github.com/dtnitsch/sarif-tally/pkg/manifest"
	"github.com/dtnitsch/sarif-tally/pkg/report"
	"github.com/dtnitsch/sarif-tally/pkg/summary"
)

// StdinSentinel selects standard input as the manifest source.
const StdinSentinel = "-"

func AggregateAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config := &models.AggregateConfig{
		ManifestPath:  c.String("manifest"),
		InputDir:      c.String("input-dir"),
		OutputPath:    c.String("output"),
		DetailsPath:   c.String("details"),
		RecordHistory: !c.Bool("no-history"),
	}

	result, err := Run(logger, config)
	if err != nil {
		return err
	}

	if !config.RecordHistory {
		return nil
	}

	// History is best-effort: a recording failure never fails a run
	// whose summary is already on disk.
	database, err := db.Open()
	if err != nil {
		logger.Warn("failed to open history database", "error", err)
		return nil
	}
	defer database.Close()

	runID, err := database.InsertRun(db.Run{
		ManifestSource:  config.ManifestPath,
		InputDir:        config.InputDir,
		OutputPath:      config.OutputPath,
		NumberProcessed: result.NumberProcessed,
		SkippedMissing:  countSkipped(result),
		Histogram:       result.Histogram,
	})
	if err != nil {
		logger.Warn("failed to record run in history", "error", err)
		return nil
	}
	logger.Info("run recorded", "run_id", runID)

	return nil
}

// Run executes the pipeline: parse the manifest, resolve report paths,
// aggregate, and write the summary (plus the optional details sidecar).
// No output file is written if any stage fails.
func Run(logger *slog.Logger, config *models.AggregateConfig) (*report.Summary, error) {
	entries, err := readManifest(config.ManifestPath)
	if err != nil {
		return nil, err
	}
	logger.Info("manifest parsed", "entries", len(entries), "source", config.ManifestPath)

	resolved := manifest.Resolve(config.InputDir, entries)
	for _, r := range resolved {
		if !r.Exists {
			logger.Debug("report absent, skipping", "entry", r.Entry.String(), "path", r.Path)
		}
	}

	result, err := report.Aggregate(resolved)
	if err != nil {
		return nil, err
	}
	logger.Info("reports aggregated",
		"processed", result.NumberProcessed,
		"skipped", countSkipped(result),
		"rows_counted", result.Histogram.Total(),
	)

	overwrote, err := summary.Write(config.OutputPath, result)
	if overwrote {
		logger.Warn("overwrote existing summary file", "path", config.OutputPath)
	}
	if err != nil {
		return nil, err
	}

	if config.DetailsPath != "" {
		if err := summary.WriteDetails(config.DetailsPath, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// readManifest parses entries from the manifest file, or stdin when the
// path is the "-" sentinel.
func readManifest(path string) ([]manifest.Entry, error) {
	var r io.Reader
	if path == StdinSentinel {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open manifest: %w", err)
		}
		defer f.Close()
		r = f
	}
	return manifest.ParseEntries(r)
}

func countSkipped(s *report.Summary) int {
	skipped := 0
	for _, r := range s.Reports {
		if r.Skipped {
			skipped++
		}
	}
	return skipped
}

// CodesAction prints the status-code legend.
func CodesAction(c *cli.Context) error {
	fmt.Printf("%-6s %-36s %s\n", "Code", "Column", "Meaning")
	for code := 0; code <= report.StatusMax; code++ {
		fmt.Printf("%-6d %-36s %s\n", code, report.ColumnLabels[code], report.Meanings[code])
	}
	return nil
}
