package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/DDH2004/Resume-Importer/internal/importer"
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Import several resume files concurrently",
	Long:  "Import multiple resume files in parallel, writing one JSON record per input into the output directory.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

var (
	batchOutDir      string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "", "Directory for the JSON records (required)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Number of files imported in parallel")

	batchCmd.MarkFlagRequired("out-dir")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1")
	}

	if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(batchConcurrency)

	for _, input := range args {
		input := input
		group.Go(func() error {
			// Each goroutine gets its own importer; records are never shared.
			imp := importer.New()

			rec, err := importOne(ctx, imp, input, "")
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}

			outPath := filepath.Join(batchOutDir, batchOutName(input))
			if err := importer.SaveRecord(outPath, rec); err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}

			fmt.Fprintf(os.Stdout, "Imported %s (confidence %.1f%%) -> %s\n", input, rec.Meta.Confidence, outPath)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Imported %d files into %s\n", len(args), batchOutDir)
	return nil
}

func batchOutName(input string) string {
	base := filepath.Base(strings.TrimSuffix(input, string(filepath.Separator)))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = "resume"
	}
	return base + ".json"
}
