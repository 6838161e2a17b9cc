package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a stored extraction result",
	Long:  "Validates an extraction result JSON file against the built-in extraction result schema.",
	RunE:  runValidate,
}

var validateInput string

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to extraction result JSON file (required)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	err := schemas.ValidateResultFile(validateInput)
	if err == nil {
		_, _ = fmt.Fprintf(out, "Validation passed: %s\n", validateInput)
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(out, "Validation failed: %s\n", validateInput)
		for i, fe := range validationErr.Errors {
			_, _ = fmt.Fprintf(out, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
		}
		// Return error to indicate validation failed (exit code 1)
		return fmt.Errorf("validation found %d error(s)", len(validationErr.Errors))
	}

	return fmt.Errorf("failed to validate %s: %w", validateInput, err)
}
