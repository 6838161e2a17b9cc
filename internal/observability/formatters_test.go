package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-extractor/internal/experience"
	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/parsing"
	"github.com/jonathan/resume-extractor/internal/types"
)

func TestPrintExtractionResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	yrs := 2.5
	result := &types.ExtractionResult{
		Name:            "Jane Doe",
		ContactNumber:   "06 12\n34 56 78",
		Email:           "jane@example.com",
		ExtractedSkills: []string{"Python", "SQL"},
		Education:       []string{"Master Data Science"},
		YrsExp:          &yrs,
		LinkedIn:        []string{"linkedin.com/in/jane-doe"},
	}

	p.PrintExtractionResult(result)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED FIELDS")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "06 1234 56 78")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "2.50 years")
	assert.Contains(t, output, "• Python")
	assert.Contains(t, output, "• Master Data Science")
	assert.Contains(t, output, "linkedin.com/in/jane-doe")
}

func TestPrintExtractionResult_MissingFields(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtractionResult(&types.ExtractionResult{})
	output := buf.String()

	assert.Contains(t, output, "(not found)")
	assert.Contains(t, output, "(not computed)")
	assert.Contains(t, output, "(none)")
}

func TestPrintExtractionResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtractionResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintExtractionResult_TruncatesList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtractionResult(&types.ExtractionResult{
		ExtractedSkills: []string{"A", "B", "C", "D", "E", "F", "G"},
	})

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintFuzzyMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFuzzyMatches("Jane_Doe_CV", []parsing.Match{{Word: "Jane", Score: 100}, {Word: "Janet", Score: 89}})
	output := buf.String()

	assert.Contains(t, output, "FILENAME CROSS-CHECK")
	assert.Contains(t, output, "Jane_Doe_CV")
	assert.Contains(t, output, "Janet")
	assert.Contains(t, output, "100")
}

func TestPrintFuzzyMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFuzzyMatches("cv", nil)

	assert.Contains(t, buf.String(), "No word above threshold")
}

func TestPrintExperienceSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	summary := experience.NewCalculator().Scan("EXPÉRIENCES PROFESSIONNELLES\n01-2020 - 12-2021\n13-2022 - 01-2023\n")
	p.PrintExperienceSummary(summary)
	output := buf.String()

	assert.Contains(t, output, "EXPERIENCE")
	assert.Contains(t, output, "Total: 24 months (2 years 0 months)")
	assert.Contains(t, output, "01/2020 - 12/2021")
	assert.Contains(t, output, "line 3")
}

func TestPrintExperienceSummary_NoSection(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExperienceSummary(experience.Summary{})

	assert.Contains(t, buf.String(), "No experience section header found")
}

func TestPrintBox_TruncatesByRune(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("T", strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)))
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrintDocumentMetadata(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	err := p.PrintDocumentMetadata(ingestion.NewMetadata("cv/Jane_Doe_CV.pdf", "Jane Doe\nPython"))
	assert.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "DOCUMENT")
	assert.Contains(t, output, `"path": "cv/Jane_Doe_CV.pdf"`)
	assert.Contains(t, output, `"lines": 2`)
}
