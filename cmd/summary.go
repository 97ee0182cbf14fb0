package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"groupgen/constants"
)

// summaryRollPattern accepts either a full roll number ("2023CS01") or
// an already reduced bare branch code ("CS"), both exactly.
var summaryRollPattern = regexp.MustCompile(`^(?:[0-9]{4}([A-Za-z]{2})[0-9]{2}|([A-Za-z]{2}))$`)

// fileNumberPattern extracts the numeric suffix used to order group files
var fileNumberPattern = regexp.MustCompile(`[0-9]+`)

// groupStats holds the per-branch tallies recomputed from one group file.
// Total is the file's row count, so a roll number matching neither
// pattern still counts toward Total while contributing to no branch.
type groupStats struct {
	Label  string
	Counts map[string]int
	Total  int
}

// SummaryTable is the combined report: one row per group per section,
// one column per observed branch code plus a total column
type SummaryTable struct {
	Columns []string
	Rows    [][]string
}

// BuildSummary re-reads the written uniform and mixed group files and
// assembles the combined summary table. Working from the files rather
// than the in-memory groups keeps the reporter usable against any
// externally produced set of group files.
func BuildSummary(uniformDir, mixedDir, rollColumn string) (*SummaryTable, error) {
	uniform, err := readGroupStats(uniformDir, rollColumn)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize uniform groups: %w", err)
	}
	mixed, err := readGroupStats(mixedDir, rollColumn)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize mixed groups: %w", err)
	}

	// Column set is the superset of branches seen in either section,
	// sorted alphabetically, framed by the group label and total.
	branchSet := make(map[string]bool)
	for _, stats := range uniform {
		for code := range stats.Counts {
			branchSet[code] = true
		}
	}
	for _, stats := range mixed {
		for code := range stats.Counts {
			branchSet[code] = true
		}
	}
	branches := make([]string, 0, len(branchSet))
	for code := range branchSet {
		branches = append(branches, code)
	}
	sort.Strings(branches)

	columns := append([]string{constants.SummaryGroupColumn}, branches...)
	columns = append(columns, constants.SummaryTotalColumn)

	table := &SummaryTable{Columns: columns}
	table.appendSection(constants.SummaryUniformHeader, uniform, branches)
	table.Rows = append(table.Rows, make([]string, len(columns)))
	table.appendSection(constants.SummaryMixedHeader, mixed, branches)
	return table, nil
}

// appendSection adds a section header row followed by one row per group
func (t *SummaryTable) appendSection(header string, stats []groupStats, branches []string) {
	headerRow := make([]string, len(t.Columns))
	headerRow[0] = header
	t.Rows = append(t.Rows, headerRow)

	for _, s := range stats {
		row := make([]string, 0, len(t.Columns))
		row = append(row, s.Label)
		for _, code := range branches {
			row = append(row, strconv.Itoa(s.Counts[code]))
		}
		row = append(row, strconv.Itoa(s.Total))
		t.Rows = append(t.Rows, row)
	}
}

// WriteCSV persists the summary table to path
func (t *SummaryTable) WriteCSV(path string) error {
	rows := make([]Record, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = Record(row)
	}
	return WriteCSV(path, t.Columns, rows)
}

// readGroupStats tallies branch codes per group file in dir. Files are
// ordered by the number embedded in their name; a file without one
// sorts first.
func readGroupStats(dir, rollColumn string) ([]groupStats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), constants.CSVExtension) {
			files = append(files, entry.Name())
		}
	}
	sort.SliceStable(files, func(i, j int) bool {
		return fileNumber(files[i]) < fileNumber(files[j])
	})

	var stats []groupStats
	for idx, name := range files {
		table, err := ReadCSV(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		rollIndex, err := table.ColumnIndex(rollColumn)
		if err != nil {
			return nil, fmt.Errorf("group file %s: %w", name, err)
		}

		s := groupStats{
			Label:  fmt.Sprintf("%s%d", constants.SummaryGroupPrefix, idx+1),
			Counts: make(map[string]int),
			Total:  len(table.Rows),
		}
		for _, rec := range table.Rows {
			if rollIndex >= len(rec) {
				continue
			}
			if code := extractBranchCode(rec[rollIndex]); code != "" {
				s.Counts[code]++
			}
		}
		stats = append(stats, s)
	}
	return stats, nil
}

// extractBranchCode returns the upper-cased branch code from either
// pattern alternative, or "" when the roll matches neither
func extractBranchCode(roll string) string {
	m := summaryRollPattern.FindStringSubmatch(roll)
	if m == nil {
		return ""
	}
	code := m[1]
	if code == "" {
		code = m[2]
	}
	return strings.ToUpper(code)
}

// fileNumber parses the first run of digits in a filename, 0 if absent
func fileNumber(name string) int {
	digits := fileNumberPattern.FindString(name)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
