package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"groupgen/constants"
)

// CommandConfig holds the configuration for the group generation command
type CommandConfig struct {
	InputPath  string
	OutputDir  string
	RollColumn string
	GroupCount int
	Zip        bool
}

// ParseCommandConfig extracts and validates command configuration from cobra command
func ParseCommandConfig(cmd *cobra.Command) (*CommandConfig, error) {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	rollColumn, _ := cmd.Flags().GetString("roll-column")
	groupCount, _ := cmd.Flags().GetInt("groups")
	zip, _ := cmd.Flags().GetBool("zip")

	if input == "" {
		return nil, fmt.Errorf("no input file provided")
	}
	if groupCount < constants.MinGroupCount {
		return nil, fmt.Errorf("group count must be at least %d, got %d", constants.MinGroupCount, groupCount)
	}
	if output == "" {
		output = constants.DefaultOutputDir
	}
	if rollColumn == "" {
		rollColumn = constants.DefaultRollColumn
	}

	return &CommandConfig{
		InputPath:  input,
		OutputDir:  output,
		RollColumn: rollColumn,
		GroupCount: groupCount,
		Zip:        zip,
	}, nil
}

// AddGenerateFlags adds the flags shared by group generation commands
func AddGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().String("input", "", "Path to the roster spreadsheet (.xlsx or .csv)")
	cmd.Flags().String("output", constants.DefaultOutputDir, "Directory to write results into")
	cmd.Flags().String("roll-column", constants.DefaultRollColumn, "Name of the roll number column")
	cmd.Flags().Int("groups", constants.MinGroupCount, "Number of groups to generate")
	cmd.Flags().Bool("zip", false, "Bundle the output directory into a zip archive")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("groups")
}
