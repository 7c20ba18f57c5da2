// Package main provides the resume importer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_importer",
	Short: "Import resumes into structured JSON",
	Long:  "Resume Importer converts resume files (text, PDF, Word, HTML) and LinkedIn data exports into structured JSON Resume records using pattern-based extraction.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
