package cmd

import (
	"regexp"
	"strings"
)

// rollPattern matches roll numbers that start with 4 digits, 2 branch
// letters, and 2 digits, e.g. "2023CS01". Anything after that prefix is
// ignored.
var rollPattern = regexp.MustCompile(`^[0-9]{4}([A-Za-z]{2})[0-9]{2}`)

// Buckets partitions records by branch code, remembering the order in
// which branch codes were first seen so iteration stays deterministic.
type Buckets struct {
	codes   []string
	records map[string][]Record
}

// NewBuckets creates an empty bucket collection
func NewBuckets() *Buckets {
	return &Buckets{records: make(map[string][]Record)}
}

// Add appends a record to the bucket for code, creating it if needed
func (b *Buckets) Add(code string, rec Record) {
	if _, ok := b.records[code]; !ok {
		b.codes = append(b.codes, code)
	}
	b.records[code] = append(b.records[code], rec)
}

// Codes returns the branch codes in first-seen order
func (b *Buckets) Codes() []string {
	return b.codes
}

// Records returns the records bucketed under code, in input row order
func (b *Buckets) Records(code string) []Record {
	return b.records[code]
}

// Total returns the number of records across all buckets
func (b *Buckets) Total() int {
	total := 0
	for _, recs := range b.records {
		total += len(recs)
	}
	return total
}

// ClassifyByBranch partitions the table's records by the branch code
// extracted from the roll column. Records whose roll number does not
// match the expected pattern are returned separately and belong to no
// bucket.
func ClassifyByBranch(table *Table, rollIndex int) (*Buckets, []Record) {
	buckets := NewBuckets()
	var unmatched []Record

	for _, rec := range table.Rows {
		roll := ""
		if rollIndex < len(rec) {
			roll = rec[rollIndex]
		}
		m := rollPattern.FindStringSubmatch(roll)
		if m == nil {
			unmatched = append(unmatched, rec)
			continue
		}
		buckets.Add(strings.ToUpper(m[1]), rec)
	}

	return buckets, unmatched
}
