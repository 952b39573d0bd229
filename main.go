package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/sarif-tally/internal/aggregate"
	"github.com/dtnitsch/sarif-tally/internal/runs"
)

func main() {
	app := &cli.App{
		Name:  "sarif-tally",
		Usage: "Aggregate per-component scan-status CSV reports into one summary",
		Commands: []*cli.Command{
			{
				Name:  "aggregate",
				Usage: "Tally the status codes of every report named in a manifest",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "manifest",
						Aliases: []string{"m"},
						Value:   aggregate.StdinSentinel,
						Usage:   "manifest file of project/component entries, or '-' for stdin",
					},
					&cli.StringFlag{
						Name:    "input-dir",
						Aliases: []string{"i"},
						Usage:   "directory prefix for per-component report files",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Value:   "summary-report.csv",
						Usage:   "summary CSV destination (overwritten if present)",
					},
					&cli.StringFlag{
						Name:  "details",
						Usage: "also write a per-report YAML breakdown to this path",
					},
					&cli.BoolFlag{
						Name:  "no-history",
						Usage: "do not record this run in the history database",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "only log errors",
					},
				},
				Action: aggregate.AggregateAction,
			},
			{
				Name:  "runs",
				Usage: "List recorded aggregation runs",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum number of runs to list",
					},
				},
				Action: runs.RunsAction,
			},
			{
				Name:      "run",
				Usage:     "Show one recorded run (defaults to the latest)",
				ArgsUsage: "[run-id]",
				Action:    runs.RunAction,
			},
			{
				Name:   "codes",
				Usage:  "Print the status-code legend",
				Action: aggregate.CodesAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
