package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DDH2004/Resume-Importer/internal/config"
	"github.com/DDH2004/Resume-Importer/internal/extract"
	"github.com/DDH2004/Resume-Importer/internal/importer"
	"github.com/DDH2004/Resume-Importer/internal/observability"
	"github.com/DDH2004/Resume-Importer/internal/oracle"
	"github.com/DDH2004/Resume-Importer/internal/schemas"
	"github.com/DDH2004/Resume-Importer/internal/types"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a resume file into a structured JSON record",
	Long:  "Import a resume from a text, PDF, Word or HTML file, a JSON Resume file, or a LinkedIn data-export directory, and write the structured record as JSON.",
	RunE:  runImport,
}

var (
	importInput   string
	importOut     string
	importFormat  string
	importConfig  string
	importOracle  bool
	importAPIKey  string
	importModel   string
	importVerbose bool
)

func init() {
	importCmd.Flags().StringVarP(&importInput, "input", "i", "", "Path to resume file or LinkedIn export directory (required)")
	importCmd.Flags().StringVarP(&importOut, "out", "o", "", "Output JSON path (default: input name with .json)")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format: text, pdf, docx, html, json, linkedin (default: detect)")
	importCmd.Flags().StringVarP(&importConfig, "config", "c", "", "Path to JSON config file")
	importCmd.Flags().BoolVar(&importOracle, "oracle", false, "Use the model-assisted classifier before pattern extraction")
	importCmd.Flags().StringVar(&importAPIKey, "api-key", "", "Gemini API key (default: GEMINI_API_KEY)")
	importCmd.Flags().StringVar(&importModel, "model", "", "Override the classifier model name")
	importCmd.Flags().BoolVarP(&importVerbose, "verbose", "v", false, "Print an import summary")

	importCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := config.Config{
		Input:       importInput,
		Output:      importOut,
		Format:      importFormat,
		APIKey:      importAPIKey,
		UseOracle:   importOracle,
		OracleModel: importModel,
		Verbose:     importVerbose,
	}

	if importConfig != "" {
		fileCfg, err := config.LoadConfig(importConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		cfg.UseOracle = cfg.UseOracle || fileCfg.UseOracle
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	imp, cleanup, err := buildImporter(cmd.Context(), &cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	rec, err := importOne(cmd.Context(), imp, cfg.Input, cfg.Format)
	if err != nil {
		return err
	}

	// Schema validation is advisory: a failing record is still written.
	if schemaPath := resolveSchema(cfg.Schema); schemaPath != "" {
		if err := schemas.ValidateRecord(schemaPath, rec); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: schema validation: %v\n", err)
		}
	}
	if err := rec.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: field validation: %v\n", err)
	}

	outPath := cfg.Output
	if outPath == "" {
		outPath = defaultOutPath(cfg.Input)
	}
	if err := importer.SaveRecord(outPath, rec); err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintImportSummary(rec)
		printer.PrintSkillGroups(rec)
		printer.PrintImportMeta(rec.Meta)
	}

	fmt.Fprintf(os.Stdout, "Imported %s (confidence %.1f%%)\n", cfg.Input, rec.Meta.Confidence)
	fmt.Fprintf(os.Stdout, "Record: %s\n", outPath)

	return nil
}

// buildImporter assembles the importer, wiring the optional classifier.
// The returned cleanup closes the classifier connection.
func buildImporter(ctx context.Context, cfg *config.Config) (*importer.Importer, func(), error) {
	opts := []importer.Option{}
	cleanup := func() {}

	if cfg.UseOracle {
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}

		oracleCfg := oracle.DefaultConfig()
		if cfg.OracleModel != "" {
			oracleCfg.Models[oracle.TierStandard] = cfg.OracleModel
		}

		client, err := oracle.NewGeminiClient(ctx, oracleCfg, apiKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create classifier client: %w", err)
		}
		opts = append(opts, importer.WithOracle(client))
		cleanup = func() { _ = client.Close() }
	}

	return importer.New(opts...), cleanup, nil
}

// importOne runs one import with the detected or forced format.
func importOne(ctx context.Context, imp *importer.Importer, input, format string) (*types.ResumeRecord, error) {
	if format == "" {
		format = detectFormat(input)
	}

	switch format {
	case "linkedin":
		return imp.ImportLinkedIn(input)
	case "json":
		return imp.ImportJSON(input)
	default:
		src, err := sourceFor(format, input)
		if err != nil {
			return nil, err
		}
		text, err := src.Extract(input)
		if err != nil {
			return nil, err
		}
		return imp.ImportText(ctx, text), nil
	}
}

// sourceFor honors a forced format and otherwise detects by extension.
func sourceFor(format, input string) (extract.Source, error) {
	switch format {
	case "text":
		return &extract.TextSource{}, nil
	case "pdf":
		return &extract.PDFSource{}, nil
	case "docx":
		return &extract.DocxSource{}, nil
	case "html":
		return &extract.HTMLSource{}, nil
	default:
		return extract.ForPath(input)
	}
}

// detectFormat picks a format from the path: directories are LinkedIn
// exports, .json files are structured records. Everything else stays
// empty and is resolved by file extension at extraction time.
func detectFormat(input string) string {
	if info, err := os.Stat(input); err == nil && info.IsDir() {
		return "linkedin"
	}
	if strings.EqualFold(filepath.Ext(input), ".json") {
		return "json"
	}
	return ""
}

func resolveSchema(override string) string {
	if override != "" {
		return override
	}
	return schemas.ResolveSchemaPath(schemas.ResumeSchemaPath)
}

func defaultOutPath(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	if base == "" {
		base = "resume"
	}
	return base + ".json"
}
