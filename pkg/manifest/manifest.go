// Package manifest reads the input list of project/component identifiers
// and resolves each one to its expected on-disk report file.
package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one well-formed manifest line, split into its two segments.
type Entry struct {
	Project   string
	Component string
}

func (e Entry) String() string {
	return e.Project + "/" + e.Component
}

// Resolved pairs a manifest entry with its expected report path and
// whether that file is actually present.
type Resolved struct {
	Entry  Entry
	Path   string
	Exists bool
}

// ParseEntries reads newline-delimited project/component entries.
// Lines are whitespace-trimmed; blank lines are skipped. A line that does
// not split into exactly two non-empty segments on "/" is malformed, and
// any malformed line makes the whole manifest invalid. All malformed
// lines are collected and reported in a single error.
func ParseEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	var malformed []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			malformed = append(malformed, line)
			continue
		}

		entries = append(entries, Entry{Project: parts[0], Component: parts[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	if len(malformed) > 0 {
		return nil, fmt.Errorf("manifest contains %d malformed entries (want project/component): %s",
			len(malformed), strings.Join(malformed, ", "))
	}

	return entries, nil
}

// ReportPath returns the expected report file for an entry:
// <inputDir>/<project>/<component>.csv.
func ReportPath(inputDir string, e Entry) string {
	return filepath.Join(inputDir, e.Project, e.Component+".csv")
}

// Resolve maps each entry to its expected report path and checks whether
// the file is present. It only stats paths; no file is opened. Absent
// reports are not an error here, downstream stages skip them.
func Resolve(inputDir string, entries []Entry) []Resolved {
	resolved := make([]Resolved, len(entries))
	for i, e := range entries {
		path := ReportPath(inputDir, e)
		_, err := os.Stat(path)
		resolved[i] = Resolved{
			Entry:  e,
			Path:   path,
			Exists: err == nil,
		}
	}
	return resolved
}
