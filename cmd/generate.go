/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate branch, uniform group, and mixed group files from a roster",
	Long: `Generate reads a roster spreadsheet, splits students into branch files
by the branch code in their roll numbers, distributes them into N groups both
uniformly and with proportional branch mixing, and writes a combined summary.
With --zip the whole output directory is also bundled into an archive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := ParseCommandConfig(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("Generating %d groups from %s\n", config.GroupCount, config.InputPath)

		pipeline := NewPipeline(*config, os.Stdout)
		if err := pipeline.Run(); err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		fmt.Printf("Done. Results written to %s\n", config.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	AddGenerateFlags(generateCmd)
}
