/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// generateDocsCmd represents the generateDocs command
var generateDocsCmd = &cobra.Command{
	Use:   "generateDocs",
	Short: "Generate and write markdown docs for the groupgen CLI",
	Long:  `Generate and write markdown docs for the groupgen CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := doc.GenMarkdownTree(rootCmd, "./docs/")
		if err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateDocsCmd)
}
