package ingestion

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// TextExtractor obtains the plain text of a document. Implementations must keep
// line breaks as '\n'; the experience scanner works line by line.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// FileTextExtractor reads .txt files as they are and parses everything else as PDF
type FileTextExtractor struct {
	PDF *PDFExtractor
}

// NewFileTextExtractor creates the default extractor
func NewFileTextExtractor() *FileTextExtractor {
	return &FileTextExtractor{PDF: NewPDFExtractor()}
}

// ExtractText implements TextExtractor
func (f *FileTextExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", &UnreadableDocumentError{Path: path, Message: "failed to read file", Cause: err}
		}
		return NormalizeText(string(content)), nil
	default:
		pdfExtractor := f.PDF
		if pdfExtractor == nil {
			pdfExtractor = NewPDFExtractor()
		}
		text, err := pdfExtractor.ExtractText(ctx, path)
		if err != nil {
			return "", err
		}
		return NormalizeText(text), nil
	}
}

// NormalizeText converts line endings to LF and composes accents to NFC, so that
// an "é" stored as "e" plus a combining mark matches the lexicons
func NormalizeText(content string) string {
	return norm.NFC.String(NormalizeLineEndings(content))
}

// NormalizeLineEndings converts CRLF and lone CR line endings to LF
func NormalizeLineEndings(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}
