package summary

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/sarif-tally/pkg/manifest"
	"github.com/dtnitsch/sarif-tally/pkg/report"
)

func sampleSummary() *report.Summary {
	return &report.Summary{
		NumberProcessed: 2,
		Histogram:       report.Histogram{1, 1, 0, 0, 0, 0, 3},
		Reports: []report.ReportStats{
			{
				Entry:  manifest.Entry{Project: "alpha", Component: "compA"},
				Path:   "scans/alpha/compA.csv",
				Rows:   2,
				Counts: report.Histogram{1, 1, 0, 0, 0, 0, 0},
			},
			{
				Entry:   manifest.Entry{Project: "alpha", Component: "compB"},
				Path:    "scans/alpha/compB.csv",
				Skipped: true,
			},
			{
				Entry:  manifest.Entry{Project: "beta", Component: "compC"},
				Path:   "scans/beta/compC.csv",
				Rows:   3,
				Counts: report.Histogram{0, 0, 0, 0, 0, 0, 3},
			},
		},
	}
}

func TestColumns(t *testing.T) {
	want := []string{
		"number_processed",
		"number_successfully_created",
		"number_zero_results",
		"number_input_sarif_missing",
		"number_file_load_error",
		"number_input_sarif_extra",
		"number_unknown_sarif_parsing_shape",
		"number_unknown",
	}

	got := Columns()
	if len(got) != len(want) {
		t.Fatalf("Columns() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Columns()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary-report.csv")

	overwrote, err := Write(path, sampleSummary())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if overwrote {
		t.Error("Write() overwrote = true, want false for new file")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read summary: %v", err)
	}

	want := "number_processed,number_successfully_created,number_zero_results," +
		"number_input_sarif_missing,number_file_load_error,number_input_sarif_extra," +
		"number_unknown_sarif_parsing_shape,number_unknown\n" +
		"2,1,1,0,0,0,0,3\n"
	if string(content) != want {
		t.Errorf("summary content = %q, want %q", content, want)
	}
}

func TestWrite_OverwriteAdvisory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary-report.csv")
	if err := os.WriteFile(path, []byte("stale\n"), 0o644); err != nil {
		t.Fatalf("failed to seed existing file: %v", err)
	}

	overwrote, err := Write(path, sampleSummary())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !overwrote {
		t.Error("Write() overwrote = false, want true for pre-existing target")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read summary: %v", err)
	}
	if bytes.Contains(content, []byte("stale")) {
		t.Error("old content survived the overwrite")
	}
}

func TestWrite_Idempotent(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")

	if _, err := Write(first, sampleSummary()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := Write(second, sampleSummary()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if !bytes.Equal(a, b) {
		t.Errorf("repeated writes differ: %q vs %q", a, b)
	}
}

func TestWriteDetails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "details.yaml")

	if err := WriteDetails(path, sampleSummary()); err != nil {
		t.Fatalf("WriteDetails() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read details: %v", err)
	}

	var details Details
	if err := yaml.Unmarshal(content, &details); err != nil {
		t.Fatalf("details file is not valid YAML: %v", err)
	}

	if details.NumberProcessed != 2 {
		t.Errorf("NumberProcessed = %d, want 2", details.NumberProcessed)
	}
	if details.SkippedMissing != 1 {
		t.Errorf("SkippedMissing = %d, want 1", details.SkippedMissing)
	}
	if len(details.Reports) != 3 {
		t.Fatalf("len(Reports) = %d, want 3", len(details.Reports))
	}

	if details.Reports[0].Status != "loaded" {
		t.Errorf("Reports[0].Status = %q, want %q", details.Reports[0].Status, "loaded")
	}
	if details.Reports[0].SuccessfullyCreated != 1 || details.Reports[0].ZeroResults != 1 {
		t.Errorf("Reports[0] counters = %+v, want one success and one zero-results", details.Reports[0])
	}
	if details.Reports[1].Status != "skipped" {
		t.Errorf("Reports[1].Status = %q, want %q", details.Reports[1].Status, "skipped")
	}
	if details.Reports[2].Unknown != 3 {
		t.Errorf("Reports[2].Unknown = %d, want 3", details.Reports[2].Unknown)
	}
}
