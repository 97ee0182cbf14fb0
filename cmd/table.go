package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Record is one row of the roster, aligned to the table's column order.
// Records are never mutated after being read.
type Record []string

// Table is a two-dimensional roster: named columns plus ordered rows
type Table struct {
	Columns []string
	Rows    []Record
}

// ColumnIndex returns the position of the named column, or an error if
// the table has no such column
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, col := range t.Columns {
		if col == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found in input (have %v)", name, t.Columns)
}

// WriteCSV writes a header row followed by the given records to path
func WriteCSV(path string, columns []string, rows []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

// ReadCSV reads a CSV file written by WriteCSV back into a Table
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	table := &Table{Columns: records[0]}
	for _, row := range records[1:] {
		table.Rows = append(table.Rows, Record(row))
	}
	return table, nil
}
