/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "groupgen",
	Short: "Split a student roster into branch and group files",
	Long: `groupgen reads a student roster spreadsheet, splits students into
branch buckets using the branch code embedded in their roll numbers, and
redistributes them into a fixed number of groups under two policies:
uniform (ignoring branch) and mixed (proportionally interleaving branches).
A combined summary of per-branch counts per group is generated from the
written group files.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for use by external tools
func GetRootCmd() *cobra.Command {
	return rootCmd
}
