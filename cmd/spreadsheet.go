package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadRoster loads the roster table from an .xlsx workbook or a .csv file.
// The first row supplies the column names; remaining rows become records.
func ReadRoster(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readWorkbook(path)
	case ".csv":
		return ReadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported input format %q (supported: .xlsx, .xlsm, .csv)", filepath.Ext(path))
	}
}

// readWorkbook reads the first sheet of an Excel workbook
func readWorkbook(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	table := &Table{Columns: rows[0]}
	for _, row := range rows[1:] {
		// Trailing empty cells are omitted by excelize; pad so every
		// record has one field per column.
		rec := make(Record, len(table.Columns))
		copy(rec, row)
		table.Rows = append(table.Rows, rec)
	}
	return table, nil
}
