package summary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/sarif-tally/pkg/report"
)

// ReportDetail is the per-entry breakdown written to the details
// sidecar. Skipped entries keep their expected path so an operator can
// see which reports were never produced upstream.
type ReportDetail struct {
	Project   string `yaml:"project"`
	Component string `yaml:"component"`
	Path      string `yaml:"path"`
	Status    string `yaml:"status"` // "loaded" or "skipped"
	Rows      int    `yaml:"rows"`

	SuccessfullyCreated int `yaml:"successfully_created"`
	ZeroResults         int `yaml:"zero_results"`
	InputMissing        int `yaml:"input_missing"`
	FileLoadError       int `yaml:"file_load_error"`
	InputExtra          int `yaml:"input_extra"`
	UnknownParsingShape int `yaml:"unknown_parsing_shape"`
	Unknown             int `yaml:"unknown"`
}

// Details is the top-level structure of the sidecar file.
type Details struct {
	NumberProcessed int            `yaml:"number_processed"`
	SkippedMissing  int            `yaml:"skipped_missing"`
	Reports         []ReportDetail `yaml:"reports"`
}

// BuildDetails flattens a summary into the sidecar structure.
func BuildDetails(s *report.Summary) Details {
	details := Details{
		NumberProcessed: s.NumberProcessed,
		Reports:         make([]ReportDetail, 0, len(s.Reports)),
	}

	for _, r := range s.Reports {
		entry := ReportDetail{
			Project:   r.Entry.Project,
			Component: r.Entry.Component,
			Path:      r.Path,
			Rows:      r.Rows,
		}
		if r.Skipped {
			entry.Status = "skipped"
			details.SkippedMissing++
		} else {
			entry.Status = "loaded"
			entry.SuccessfullyCreated = r.Counts[report.StatusSuccess]
			entry.ZeroResults = r.Counts[report.StatusZeroResults]
			entry.InputMissing = r.Counts[report.StatusInputMissing]
			entry.FileLoadError = r.Counts[report.StatusLoadError]
			entry.InputExtra = r.Counts[report.StatusInputExtra]
			entry.UnknownParsingShape = r.Counts[report.StatusUnknownShape]
			entry.Unknown = r.Counts[report.StatusUnknown]
		}
		details.Reports = append(details.Reports, entry)
	}

	return details
}

// WriteDetails writes the per-report breakdown to path as YAML.
func WriteDetails(path string, s *report.Summary) error {
	details := BuildDetails(s)

	yamlBytes, err := yaml.Marshal(&details)
	if err != nil {
		return fmt.Errorf("failed to marshal details to YAML: %w", err)
	}

	if err := os.WriteFile(path, yamlBytes, 0600); err != nil {
		return fmt.Errorf("failed to write details file: %w", err)
	}

	return nil
}
