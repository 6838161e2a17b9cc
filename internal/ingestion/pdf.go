package ingestion

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor reads the text layer of a PDF, one output line per text row
type PDFExtractor struct {
	// GapRatio is the horizontal gap, relative to the font size, above which two
	// runs of text on a row are separated by a space
	GapRatio float64
}

// NewPDFExtractor creates a PDFExtractor with the default word gap
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{GapRatio: 0.15}
}

// ExtractText implements TextExtractor
func (p *PDFExtractor) ExtractText(ctx context.Context, path string) (text string, err error) {
	// the PDF parser panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &UnreadableDocumentError{Path: path, Message: "malformed PDF", Cause: fmt.Errorf("%v", r)}
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &UnreadableDocumentError{Path: path, Message: "failed to open PDF", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			// fall back to the unstructured text stream of the page
			plain, perr := page.GetPlainText(nil)
			if perr != nil {
				return "", &UnreadableDocumentError{Path: path, Message: fmt.Sprintf("failed to read page %d", i), Cause: perr}
			}
			sb.WriteString(plain)
			sb.WriteString("\n")
			continue
		}

		for _, row := range rows {
			sb.WriteString(p.joinRow(row.Content))
			sb.WriteString("\n")
		}
	}

	out := NormalizeLineEndings(sb.String())
	if strings.TrimSpace(out) == "" {
		// the rows held only whitespace; try the document-wide stream once
		if plain, perr := reader.GetPlainText(); perr == nil {
			if b, rerr := io.ReadAll(plain); rerr == nil {
				out = NormalizeLineEndings(string(b))
			}
		}
	}
	return out, nil
}

// joinRow concatenates the text runs of a row, inserting a space where the runs
// are visibly apart
func (p *PDFExtractor) joinRow(runs pdf.TextHorizontal) string {
	var sb strings.Builder
	for i, run := range runs {
		if i > 0 {
			prev := runs[i-1]
			gap := run.X - (prev.X + prev.W)
			if gap > p.GapRatio*run.FontSize && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(run.S, " ") {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(run.S)
	}
	return sb.String()
}
