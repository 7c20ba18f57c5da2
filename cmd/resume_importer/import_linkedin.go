package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DDH2004/Resume-Importer/internal/importer"
	"github.com/DDH2004/Resume-Importer/internal/observability"
)

var importLinkedInCmd = &cobra.Command{
	Use:   "import-linkedin",
	Short: "Import a LinkedIn data-export directory",
	Long:  "Import the CSV files of a LinkedIn data export (Profile.csv, Positions.csv, Education.csv, Skills.csv, Languages.csv, Projects.csv, Certifications.csv) into a structured JSON record.",
	RunE:  runImportLinkedIn,
}

var (
	linkedinDir     string
	linkedinOut     string
	linkedinVerbose bool
)

func init() {
	importLinkedInCmd.Flags().StringVarP(&linkedinDir, "dir", "d", "", "Path to the unzipped LinkedIn export directory (required)")
	importLinkedInCmd.Flags().StringVarP(&linkedinOut, "out", "o", "resume.json", "Output JSON path")
	importLinkedInCmd.Flags().BoolVarP(&linkedinVerbose, "verbose", "v", false, "Print an import summary")

	importLinkedInCmd.MarkFlagRequired("dir")

	rootCmd.AddCommand(importLinkedInCmd)
}

func runImportLinkedIn(cmd *cobra.Command, args []string) error {
	imp := importer.New()

	rec, err := imp.ImportLinkedIn(linkedinDir)
	if err != nil {
		return err
	}

	if err := importer.SaveRecord(linkedinOut, rec); err != nil {
		return err
	}

	if linkedinVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintImportSummary(rec)
		printer.PrintImportMeta(rec.Meta)
	}

	fmt.Fprintf(os.Stdout, "Imported LinkedIn export %s (confidence %.1f%%)\n", linkedinDir, rec.Meta.Confidence)
	fmt.Fprintf(os.Stdout, "Record: %s\n", linkedinOut)

	return nil
}
