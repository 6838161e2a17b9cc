// Package export writes extraction results to spreadsheet formats.
package export

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-extractor/internal/parsing"
	"github.com/jonathan/resume-extractor/internal/types"
)

// SheetName is the worksheet that holds the extracted record
const SheetName = "Extraction"

// listSeparator joins multi-valued fields inside one cell
const listSeparator = "; "

// Headers are the column titles, in record order after the source column
var Headers = []string{
	"Source",
	"Name",
	"Contact Number",
	"Email",
	"Skills",
	"Education",
	"Years of Experience",
	"LinkedIn",
}

// Service produces XLSX bytes for extraction results
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ResultXLSX returns a workbook with a header row and one row for result.
// source is written to the first column, typically the document path.
func (s *Service) ResultXLSX(source string, result *types.ExtractionResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("result is nil")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// rename the default sheet so the workbook has exactly one
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}

	for i, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(SheetName, cell, h)
	}

	write := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, 2)
		_ = f.SetCellValue(SheetName, cell, v)
	}

	write(1, source)
	write(2, result.Name)
	write(3, parsing.DisplayContactNumber(result.ContactNumber))
	write(4, result.Email)
	write(5, strings.Join(result.ExtractedSkills, listSeparator))
	write(6, strings.Join(result.Education, listSeparator))
	if result.HasYearsOfExperience() {
		write(7, result.YearsOfExperience())
	}
	write(8, strings.Join(result.LinkedIn, listSeparator))

	_ = f.SetColWidth(SheetName, "A", "A", 40) // source
	_ = f.SetColWidth(SheetName, "B", "D", 24)
	_ = f.SetColWidth(SheetName, "E", "F", 48)
	_ = f.SetColWidth(SheetName, "G", "G", 18)
	_ = f.SetColWidth(SheetName, "H", "H", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok", "source", source, "fields", len(result.FoundFields()))
	return buf.Bytes(), nil
}
