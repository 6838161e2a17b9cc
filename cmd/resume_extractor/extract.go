package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/experience"
	"github.com/jonathan/resume-extractor/internal/export"
	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/observability"
	"github.com/jonathan/resume-extractor/internal/parsing"
	"github.com/jonathan/resume-extractor/internal/pipeline"
	"github.com/jonathan/resume-extractor/internal/schemas"
	"github.com/jonathan/resume-extractor/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract résumé fields from a document",
	Long: `Extract the résumé fields from a PDF (or plain text) document and print them as JSON.

Configuration can be loaded from a JSON file using --config. Command-line flags override config file values.`,
	RunE: runExtract,
}

var (
	extractInput      string
	extractOutput     string
	extractXLSXOutput string
	extractConfigPath string
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInput, "in", "i", "", "Path to résumé file (required)")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	extractCmd.Flags().StringVar(&extractXLSXOutput, "xlsx", "", "Also write the result to this XLSX file")
	extractCmd.Flags().StringVar(&extractConfigPath, "config", "", "Path to config.json file")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := extractCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(extractConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = extractVerbose
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	var onProgress pipeline.ProgressCallback
	if cfg.Verbose {
		onProgress = verboseProgress(observability.NewPrinter(stderr))
	}

	extractor, err := pipeline.New(pipeline.Options{
		Lexicon:    cfg.Lexicon(),
		TopN:       cfg.FuzzyTopN,
		Threshold:  cfg.FuzzyThreshold,
		Logger:     newLogger(stderr, cfg.Verbose),
		OnProgress: onProgress,
	})
	if err != nil {
		return err
	}

	result, err := extractor.Extract(context.Background(), extractInput)
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", extractInput, err)
	}

	if err := schemas.ValidateResult(result); err != nil {
		_, _ = fmt.Fprintf(stderr, "Warning: result does not validate against schema: %v\n", err)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if extractOutput == "" {
		_, _ = fmt.Fprintln(stdout, string(jsonBytes))
	} else {
		if err := writeFile(extractOutput, jsonBytes); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(stdout, "Wrote %s\n", extractOutput)
	}

	if extractXLSXOutput != "" {
		data, err := export.NewService(newLogger(stderr, cfg.Verbose)).ResultXLSX(extractInput, result)
		if err != nil {
			return fmt.Errorf("failed to export XLSX: %w", err)
		}
		if err := writeFile(extractXLSXOutput, data); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(stdout, "Wrote %s\n", extractXLSXOutput)
	}

	return nil
}

// verboseProgress prints the intermediate diagnostics of an extraction
func verboseProgress(printer *observability.Printer) pipeline.ProgressCallback {
	return func(event pipeline.ProgressEvent) {
		switch content := event.Content.(type) {
		case *ingestion.Metadata:
			_ = printer.PrintDocumentMetadata(content)
		case []parsing.Match:
			printer.PrintFuzzyMatches(parsing.DocumentID(event.Path), content)
		case experience.Summary:
			printer.PrintExperienceSummary(content)
		case *types.ExtractionResult:
			printer.PrintExtractionResult(content)
		}
	}
}

func writeFile(path string, data []byte) error {
	// Ensure output directory exists
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
