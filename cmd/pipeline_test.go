package cmd

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeRoster writes the 10-student CS/EC roster plus one bad roll
func writeRoster(t *testing.T, path string) {
	t.Helper()
	rows := []Record{
		{"2023CS01", "Asha"}, {"2023CS02", "Bina"}, {"2023CS03", "Chet"},
		{"2023CS04", "Dev"}, {"2023CS05", "Esha"}, {"2023CS06", "Faiz"},
		{"2023EC01", "Gita"}, {"2023EC02", "Hari"}, {"2023EC03", "Ira"},
		{"2023EC04", "Jai"},
		{"badroll", "Kiran"},
	}
	if err := WriteCSV(path, []string{"Roll", "Name"}, rows); err != nil {
		t.Fatalf("Failed to write roster: %v", err)
	}
}

// snapshotTree reads every file under dir into a map keyed by relative path
func snapshotTree(t *testing.T, dir string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to snapshot %s: %v", dir, err)
	}
	return files
}

func pipelineConfig(t *testing.T) (CommandConfig, string) {
	t.Helper()
	base := t.TempDir()
	rosterPath := filepath.Join(base, "roster.csv")
	writeRoster(t, rosterPath)
	config := CommandConfig{
		InputPath:  rosterPath,
		OutputDir:  filepath.Join(base, "results"),
		RollColumn: "Roll",
		GroupCount: 3,
	}
	return config, base
}

func TestPipelineRun(t *testing.T) {
	config, _ := pipelineConfig(t)

	out := &bytes.Buffer{}
	if err := NewPipeline(config, out).Run(); err != nil {
		t.Fatalf("Pipeline failed: %v", err)
	}

	// Full output tree: branch files, both group sets, summary.
	for _, rel := range []string{
		filepath.Join("branchwise_split", "CS.csv"),
		filepath.Join("branchwise_split", "EC.csv"),
		filepath.Join("uniform_groups", "group_1.csv"),
		filepath.Join("uniform_groups", "group_3.csv"),
		filepath.Join("mixed_groups", "group_1.csv"),
		filepath.Join("mixed_groups", "group_3.csv"),
		"summary.csv",
	} {
		if _, err := os.Stat(filepath.Join(config.OutputDir, rel)); err != nil {
			t.Errorf("Expected output file %s: %v", rel, err)
		}
	}

	// The bad roll is reported but does not fail the run.
	if !strings.Contains(out.String(), "badroll") {
		t.Errorf("Expected log to mention the skipped roll, got: %s", out.String())
	}

	// Uniform group 1 holds the first contiguous slice: CS01..CS04.
	group1, err := ReadCSV(filepath.Join(config.OutputDir, "uniform_groups", "group_1.csv"))
	if err != nil {
		t.Fatalf("Failed to read group file: %v", err)
	}
	if len(group1.Rows) != 4 || group1.Rows[0][0] != "2023CS01" || group1.Rows[3][0] != "2023CS04" {
		t.Errorf("Unexpected uniform group 1 contents: %v", group1.Rows)
	}
}

func TestPipelineIdempotence(t *testing.T) {
	config, _ := pipelineConfig(t)

	if err := NewPipeline(config, &bytes.Buffer{}).Run(); err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	first := snapshotTree(t, config.OutputDir)

	if err := NewPipeline(config, &bytes.Buffer{}).Run(); err != nil {
		t.Fatalf("Second run failed: %v", err)
	}
	second := snapshotTree(t, config.OutputDir)

	if len(first) != len(second) {
		t.Fatalf("Run produced %d files, rerun produced %d", len(first), len(second))
	}
	for rel, data := range first {
		if second[rel] != data {
			t.Errorf("File %s differs between runs", rel)
		}
	}
}

func TestPipelineZip(t *testing.T) {
	config, _ := pipelineConfig(t)
	config.Zip = true

	if err := NewPipeline(config, &bytes.Buffer{}).Run(); err != nil {
		t.Fatalf("Pipeline failed: %v", err)
	}
	if _, err := os.Stat(config.OutputDir + ".zip"); err != nil {
		t.Errorf("Expected zip archive next to output dir: %v", err)
	}
}

func TestPipelineMissingRollColumn(t *testing.T) {
	config, _ := pipelineConfig(t)
	config.RollColumn = "Registration"

	err := NewPipeline(config, &bytes.Buffer{}).Run()
	if err == nil {
		t.Fatal("Expected an error for a missing roll column")
	}
	if !strings.Contains(err.Error(), "Registration") {
		t.Errorf("Expected error to name the missing column, got: %v", err)
	}
}

func TestPipelineMissingInput(t *testing.T) {
	config, base := pipelineConfig(t)
	config.InputPath = filepath.Join(base, "nope.csv")

	if err := NewPipeline(config, &bytes.Buffer{}).Run(); err == nil {
		t.Fatal("Expected an error for a missing input file")
	}
}
