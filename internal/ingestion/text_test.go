package ingestion

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLineEndings(t *testing.T) {
	result := NormalizeLineEndings("Line 1\r\nLine 2\rLine 3\nLine 4")

	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestFileTextExtractor_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jane_doe_cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\r\nEXPÉRIENCES PROFESSIONNELLES\r\n"), 0644))

	text, err := NewFileTextExtractor().ExtractText(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\nEXPÉRIENCES PROFESSIONNELLES\n", text)
}

func TestFileTextExtractor_MissingFile(t *testing.T) {
	_, err := NewFileTextExtractor().ExtractText(context.Background(), "/nonexistent/resume.txt")
	require.Error(t, err)

	var unreadable *UnreadableDocumentError
	require.ErrorAs(t, err, &unreadable)
	assert.Equal(t, "/nonexistent/resume.txt", unreadable.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileTextExtractor_CorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0644))

	text, err := NewFileTextExtractor().ExtractText(context.Background(), path)
	require.Error(t, err)
	assert.Empty(t, text)

	var unreadable *UnreadableDocumentError
	assert.ErrorAs(t, err, &unreadable)
	assert.Contains(t, err.Error(), "unreadable document")
}

func TestFileTextExtractor_UnknownExtensionIsParsedAsPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(path, []byte("PK\x03\x04"), 0644))

	_, err := NewFileTextExtractor().ExtractText(context.Background(), path)

	var unreadable *UnreadableDocumentError
	assert.ErrorAs(t, err, &unreadable)
}

func TestFileTextExtractor_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileTextExtractor().ExtractText(ctx, "resume.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUnreadableDocumentError_Message(t *testing.T) {
	err := &UnreadableDocumentError{Path: "a.pdf", Message: "failed to open PDF"}
	assert.Equal(t, "unreadable document a.pdf: failed to open PDF", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewMetadata(t *testing.T) {
	m1 := NewMetadata("a.txt", "line one\nline two")
	m2 := NewMetadata("b.txt", "line one\nline two")
	m3 := NewMetadata("c.txt", "")

	assert.Len(t, m1.Hash, 64)
	assert.Equal(t, m1.Hash, m2.Hash)
	assert.Equal(t, 2, m1.Lines)
	assert.Equal(t, 17, m1.Runes)
	assert.Equal(t, 0, m3.Lines)
	assert.NotEmpty(t, m1.Timestamp)

	data, err := m1.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"path": "a.txt"`)
}

func TestNormalizeText_ComposesAccents(t *testing.T) {
	decomposed := "e\u0301cole\r\nUniversite\u0301"

	assert.Equal(t, "\u00e9cole\nUniversit\u00e9", NormalizeText(decomposed))
}

func TestFileTextExtractor_PlainTextIsComposed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("Faculte\u0301 des Sciences"), 0644))

	text, err := NewFileTextExtractor().ExtractText(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Facult\u00e9 des Sciences", text)
}
