// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-extractor/internal/experience"
	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/parsing"
	"github.com/jonathan/resume-extractor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// writeList writes up to maxItemsToShow items under a heading
func writeList(sb *strings.Builder, heading string, items []string) {
	sb.WriteString(heading + ":\n")
	if len(items) == 0 {
		sb.WriteString("  (none)\n")
		return
	}
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func orMissing(value string) string {
	if value == "" {
		return "(not found)"
	}
	return value
}

// PrintDocumentMetadata outputs the metadata of the extracted text as JSON.
func (p *Printer) PrintDocumentMetadata(meta *ingestion.Metadata) error {
	data, err := meta.ToJSON()
	if err != nil {
		return err
	}
	p.printBox("DOCUMENT", string(data))
	return nil
}

// PrintExtractionResult outputs a human-readable summary of the extracted fields.
func (p *Printer) PrintExtractionResult(result *types.ExtractionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", orMissing(result.Name)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orMissing(parsing.DisplayContactNumber(result.ContactNumber))))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orMissing(result.Email)))
	if result.HasYearsOfExperience() {
		sb.WriteString(fmt.Sprintf("Exp:      %.2f years\n", result.YearsOfExperience()))
	} else {
		sb.WriteString("Exp:      (not computed)\n")
	}
	sb.WriteString("\n")

	writeList(&sb, "Skills", result.ExtractedSkills)
	sb.WriteString("\n")
	writeList(&sb, "Education", result.Education)
	sb.WriteString("\n")
	writeList(&sb, "LinkedIn", result.LinkedIn)

	p.printBox("EXTRACTED FIELDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFuzzyMatches outputs the document words that resemble the file name.
func (p *Printer) PrintFuzzyMatches(docID string, matches []parsing.Match) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Document: %s\n\n", docID))
	if len(matches) == 0 {
		sb.WriteString("No word above threshold")
	}
	for i, m := range matches {
		sb.WriteString(fmt.Sprintf("#%d  %-30s %3d", i+1, m.Word, m.Score))
		if i < len(matches)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FILENAME CROSS-CHECK", sb.String())
}

// PrintExperienceSummary outputs the ranges counted and any that were skipped.
func (p *Printer) PrintExperienceSummary(summary experience.Summary) {
	var sb strings.Builder
	if !summary.SectionFound {
		sb.WriteString("No experience section header found\n")
	}
	sb.WriteString(fmt.Sprintf("Total: %d months (%d years %d months)\n",
		summary.TotalMonths, summary.TotalMonths/12, summary.RemainderMonths))

	if len(summary.Ranges) > 0 {
		sb.WriteString("\nRanges:\n")
		count := min(len(summary.Ranges), maxItemsToShow)
		for i := 0; i < count; i++ {
			r := summary.Ranges[i]
			sb.WriteString(fmt.Sprintf("  • %02d/%d - %02d/%d  (%d months)\n",
				r.StartMonth, r.StartYear, r.EndMonth, r.EndYear, r.Months()))
		}
		if len(summary.Ranges) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.Ranges)-maxItemsToShow))
		}
	}

	if len(summary.Skipped) > 0 {
		sb.WriteString("\nSkipped:\n")
		for _, s := range summary.Skipped {
			sb.WriteString(fmt.Sprintf("⚠ line %d: %s\n", s.Line, s.Text))
			sb.WriteString(fmt.Sprintf("  %s\n", s.Message))
		}
	}

	p.printBox("EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}
