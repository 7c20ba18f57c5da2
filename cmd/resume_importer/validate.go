package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DDH2004/Resume-Importer/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume JSON file against the schema",
	RunE:  runValidate,
}

var (
	validateFile   string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to the resume JSON file (required)")
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to the JSON schema (default: bundled resume schema)")

	validateCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	schemaPath := resolveSchema(validateSchema)
	if schemaPath == "" {
		return fmt.Errorf("resume schema not found; pass --schema")
	}

	if err := schemas.ValidateJSON(schemaPath, validateFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s is valid\n", validateFile)
	return nil
}
