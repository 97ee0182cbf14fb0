package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"groupgen/constants"
	"groupgen/logger"
)

// Pipeline runs the full generation sequence: read roster, classify by
// branch, distribute uniformly and mixed, summarize, optionally zip.
// Each run regenerates the output directory from scratch, so repeating
// a run with the same input produces identical files.
type Pipeline struct {
	config CommandConfig
	output io.Writer
	log    logger.Logger
}

// NewPipeline creates a pipeline for one generation run
func NewPipeline(config CommandConfig, output io.Writer) *Pipeline {
	return &Pipeline{
		config: config,
		output: output,
		log: logger.NewLoggerWithOutput(output).WithFields(
			logger.String("run", uuid.NewString())),
	}
}

// Run executes every stage in order and stops at the first failure
func (p *Pipeline) Run() error {
	table, err := ReadRoster(p.config.InputPath)
	if err != nil {
		return err
	}
	rollIndex, err := table.ColumnIndex(p.config.RollColumn)
	if err != nil {
		return err
	}
	p.log.Info("Roster loaded",
		logger.String("input", p.config.InputPath),
		logger.Int("records", len(table.Rows)))

	dirs, err := p.setupDirectories()
	if err != nil {
		return err
	}

	buckets, unmatched := ClassifyByBranch(table, rollIndex)
	for _, rec := range unmatched {
		roll := ""
		if rollIndex < len(rec) {
			roll = rec[rollIndex]
		}
		p.log.Warn("Invalid roll number, record skipped", logger.String("roll", roll))
	}
	if err := p.writeBranchFiles(buckets, table.Columns, dirs[constants.DirBranchwise]); err != nil {
		return err
	}
	p.log.Info("Branchwise files created",
		logger.Int("branches", len(buckets.Codes())),
		logger.Int("classified", buckets.Total()),
		logger.Int("skipped", len(unmatched)))

	uniform := UniformDistribution(buckets, p.config.GroupCount)
	if err := p.writeGroupFiles(uniform, table.Columns, dirs[constants.DirUniform]); err != nil {
		return err
	}
	p.log.Info("Uniform groups saved", logger.Int("groups", len(uniform)))

	mixed, err := MixedDistribution(buckets, p.config.GroupCount)
	if err != nil {
		return err
	}
	if err := p.writeGroupFiles(mixed, table.Columns, dirs[constants.DirMixed]); err != nil {
		return err
	}
	p.log.Info("Mixed groups saved", logger.Int("groups", len(mixed)))

	summary, err := BuildSummary(dirs[constants.DirUniform], dirs[constants.DirMixed], p.config.RollColumn)
	if err != nil {
		return err
	}
	summaryPath := filepath.Join(p.config.OutputDir, constants.SummaryFileName)
	if err := summary.WriteCSV(summaryPath); err != nil {
		return err
	}
	p.log.Info("Summary saved", logger.String("path", summaryPath))

	if p.config.Zip {
		zipPath := p.config.OutputDir + constants.ZipExtension
		if err := CreateArchive(p.config.OutputDir, zipPath); err != nil {
			return err
		}
		p.log.Info("Archive created", logger.String("path", zipPath))
	}

	return nil
}

// setupDirectories recreates the output tree, wiping any previous run
func (p *Pipeline) setupDirectories() (map[string]string, error) {
	if err := os.RemoveAll(p.config.OutputDir); err != nil {
		return nil, fmt.Errorf("failed to clear output directory: %w", err)
	}

	dirs := map[string]string{
		constants.DirBranchwise: filepath.Join(p.config.OutputDir, constants.DirBranchwise),
		constants.DirUniform:    filepath.Join(p.config.OutputDir, constants.DirUniform),
		constants.DirMixed:      filepath.Join(p.config.OutputDir, constants.DirMixed),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return dirs, nil
}

// writeBranchFiles writes one CSV per branch bucket
func (p *Pipeline) writeBranchFiles(buckets *Buckets, columns []string, dir string) error {
	for _, code := range buckets.Codes() {
		path := filepath.Join(dir, code+constants.CSVExtension)
		if err := WriteCSV(path, columns, buckets.Records(code)); err != nil {
			return err
		}
	}
	return nil
}

// writeGroupFiles writes group_1.csv .. group_N.csv into dir
func (p *Pipeline) writeGroupFiles(groups [][]Record, columns []string, dir string) error {
	for i, group := range groups {
		name := fmt.Sprintf("%s%d%s", constants.GroupFilePrefix, i+1, constants.CSVExtension)
		if err := WriteCSV(filepath.Join(dir, name), columns, group); err != nil {
			return err
		}
	}
	return nil
}
