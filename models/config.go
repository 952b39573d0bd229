// Package models defines data structures for runtime configuration.
package models

// AggregateConfig holds runtime configuration for an aggregation run.
// All values come from CLI flags, not external config files.
type AggregateConfig struct {
	ManifestPath  string // path to manifest file, or "-" for stdin
	InputDir      string // directory prefix for per-component report files
	OutputPath    string // summary CSV destination
	DetailsPath   string // optional per-report YAML sidecar, empty to skip
	RecordHistory bool   // insert the run into the local history database
}
