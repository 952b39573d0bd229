// Package runs exposes the recorded run history behind the CLI.
package runs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/dtnitsch/sarif-tally/pkg/db"
	"github.com/dtnitsch/sarif-tally/pkg/report"
)

func RunsAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	limit := c.Int("limit")
	runs, err := database.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-10s %-8s %-8s %-30s\n",
		"ID", "Created", "Processed", "Skipped", "Rows", "Output")
	fmt.Println(strings.Repeat("-", 90))

	// Print each run
	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-10d %-8d %-8d %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.NumberProcessed,
			r.SkippedMissing,
			r.Histogram.Total(),
			r.OutputPath,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'sarif-tally run <id>' to see details\n")

	return nil
}

// RunAction shows details for a specific run
func RunAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := getRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	// Print run details
	fmt.Printf("Run %d\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:     %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Manifest:    %s\n", run.ManifestSource)
	if run.InputDir != "" {
		fmt.Printf("Input Dir:   %s\n", run.InputDir)
	}
	fmt.Printf("Output:      %s\n", run.OutputPath)
	fmt.Printf("Processed:   %d reports (%d skipped as missing)\n",
		run.NumberProcessed, run.SkippedMissing)

	// Print histogram
	fmt.Printf("\nStatus counts (%d rows):\n", run.Histogram.Total())
	fmt.Println(strings.Repeat("-", 60))
	for code := 0; code <= report.StatusMax; code++ {
		fmt.Printf("  %d  %-28s %d\n", code, report.Meanings[code], run.Histogram[code])
	}

	return nil
}

// getRunIDOrLatest resolves the run ID argument, defaulting to the most
// recent run when no argument is given.
func getRunIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.Args().Len() == 0 {
		return database.LatestRunID()
	}

	runID, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid run ID %q: %w", c.Args().First(), err)
	}
	return runID, nil
}
