package cmd

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadRosterCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	rows := []Record{
		{"2023CS01", "Alice"},
		{"2023EC01", "Bob"},
	}
	if err := WriteCSV(path, []string{"Roll", "Name"}, rows); err != nil {
		t.Fatalf("Failed to write roster: %v", err)
	}

	table, err := ReadRoster(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(table.Columns) != 2 || table.Columns[0] != "Roll" {
		t.Fatalf("Unexpected columns: %v", table.Columns)
	}
	if len(table.Rows) != 2 || table.Rows[1][1] != "Bob" {
		t.Errorf("Unexpected rows: %v", table.Rows)
	}
}

func TestReadRosterWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := [][]interface{}{
		{"Roll", "Name", "Email"},
		{"2023CS01", "Alice", "alice@example.edu"},
		{"2023EC01", "Bob", nil}, // trailing empty cell
	}
	for i, row := range cells {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("Failed to build cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("Failed to set row %d: %v", i+1, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Failed to close workbook: %v", err)
	}

	table, err := ReadRoster(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(table.Columns) != 3 {
		t.Fatalf("Expected 3 columns, got %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}
	// Records are padded to the full column width.
	if len(table.Rows[1]) != 3 || table.Rows[1][2] != "" {
		t.Errorf("Expected padded record, got %v", table.Rows[1])
	}
	if table.Rows[0][2] != "alice@example.edu" {
		t.Errorf("Unexpected cell value: %v", table.Rows[0])
	}
}

func TestReadRosterUnsupportedFormat(t *testing.T) {
	_, err := ReadRoster("roster.ods")
	if err == nil {
		t.Fatal("Expected an error for unsupported format")
	}
}
