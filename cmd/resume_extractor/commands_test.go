package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/experience"
	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/observability"
	"github.com/jonathan/resume-extractor/internal/parsing"
	"github.com/jonathan/resume-extractor/internal/pipeline"
	"github.com/jonathan/resume-extractor/internal/types"
)

const sampleResume = `Jane Doe
jane.doe@example.com
Python, SQL
EXPÉRIENCES PROFESSIONNELLES
01-2020 - 12-2021
`

// captureOutput redirects the command's stdout and stderr for the duration of the test
func captureOutput(t *testing.T, cmd *cobra.Command) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	t.Cleanup(func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
	})
	return &stdout, &stderr
}

// setExtractFlags sets the extract flag variables and restores them afterwards
func setExtractFlags(t *testing.T, in, out, xlsx string) {
	t.Helper()
	t.Setenv("RESUME_PORT", "")
	t.Setenv("RESUME_UPLOAD_DIR", "")
	t.Setenv("RESUME_MAX_UPLOAD_MB", "")

	extractInput, extractOutput, extractXLSXOutput, extractConfigPath = in, out, xlsx, ""
	t.Cleanup(func() {
		extractInput, extractOutput, extractXLSXOutput, extractConfigPath = "", "", "", ""
	})
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Jane_Doe_CV.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleResume), 0644))
	return path
}

func TestRunExtract_WritesJSONFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out", "result.json")
	setExtractFlags(t, writeSample(t), outPath, "")
	stdout, _ := captureOutput(t, extractCmd)

	require.NoError(t, runExtract(extractCmd, nil))
	assert.Contains(t, stdout.String(), "Wrote "+outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var result types.ExtractionResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "Jane Doe", result.Name)
	assert.Equal(t, "jane.doe@example.com", result.Email)
	assert.Equal(t, []string{"Python", "SQL"}, result.ExtractedSkills)
	assert.InDelta(t, 2.0, result.YearsOfExperience(), 1e-9)

	// the stored result must pass the validate command
	validateInput = outPath
	t.Cleanup(func() { validateInput = "" })
	validateOut, _ := captureOutput(t, validateCmd)
	require.NoError(t, runValidate(validateCmd, nil))
	assert.Contains(t, validateOut.String(), "Validation passed")
}

func TestRunExtract_PrintsToStdout(t *testing.T) {
	setExtractFlags(t, writeSample(t), "", "")
	stdout, _ := captureOutput(t, extractCmd)

	require.NoError(t, runExtract(extractCmd, nil))

	var result types.ExtractionResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	assert.Equal(t, "Jane Doe", result.Name)
}

func TestRunExtract_WritesXLSX(t *testing.T) {
	xlsxPath := filepath.Join(t.TempDir(), "result.xlsx")
	setExtractFlags(t, writeSample(t), "", xlsxPath)
	stdout, _ := captureOutput(t, extractCmd)

	require.NoError(t, runExtract(extractCmd, nil))
	assert.Contains(t, stdout.String(), "Wrote "+xlsxPath)

	info, err := os.Stat(xlsxPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunExtract_UnreadableDocument(t *testing.T) {
	setExtractFlags(t, filepath.Join(t.TempDir(), "missing.pdf"), "", "")
	captureOutput(t, extractCmd)

	err := runExtract(extractCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to extract")
}

func TestRunExtract_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"fuzzy_threshold": 150}`), 0644))

	setExtractFlags(t, writeSample(t), "", "")
	extractConfigPath = cfgPath
	captureOutput(t, extractCmd)

	err := runExtract(extractCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRunExtract_ConfigLexicon(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"skills": ["SQL"]}`), 0644))

	setExtractFlags(t, writeSample(t), "", "")
	extractConfigPath = cfgPath
	stdout, _ := captureOutput(t, extractCmd)

	require.NoError(t, runExtract(extractCmd, nil))

	var result types.ExtractionResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	assert.Equal(t, []string{"SQL"}, result.ExtractedSkills)
}

func TestRunValidate_Failure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"yrs_exp": -1}`), 0644))

	validateInput = path
	t.Cleanup(func() { validateInput = "" })
	stdout, _ := captureOutput(t, validateCmd)

	err := runValidate(validateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Validation failed")
	assert.Contains(t, stdout.String(), "yrs_exp")
}

func TestRunValidate_MissingFile(t *testing.T) {
	validateInput = filepath.Join(t.TempDir(), "missing.json")
	t.Cleanup(func() { validateInput = "" })
	captureOutput(t, validateCmd)

	err := runValidate(validateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestNewServer_ServesHello(t *testing.T) {
	cfg := (&config.Config{UploadDir: t.TempDir()}).MergeWithDefaults(config.Config{})
	captureOutput(t, serveCmd)

	srv, err := newServer(serveCmd, cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/hello", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello, World!", w.Body.String())
}

func TestVerboseProgress(t *testing.T) {
	var buf bytes.Buffer
	progress := verboseProgress(observability.NewPrinter(&buf))

	progress(pipeline.ProgressEvent{Step: "filename", Path: "cv/Jane_Doe_CV.pdf", Content: []parsing.Match{{Word: "Jane", Score: 100}}})
	progress(pipeline.ProgressEvent{Step: "experience", Content: experience.Summary{TotalMonths: 14, RemainderMonths: 2, SectionFound: true}})
	progress(pipeline.ProgressEvent{Step: "done", Content: &types.ExtractionResult{Name: "Jane Doe"}})
	progress(pipeline.ProgressEvent{Step: "text", Content: ingestion.NewMetadata("cv/Jane_Doe_CV.pdf", "Jane Doe")})
	progress(pipeline.ProgressEvent{Step: "unknown", Content: 120})

	output := buf.String()
	assert.Contains(t, output, "FILENAME CROSS-CHECK")
	assert.Contains(t, output, "Jane_Doe_CV")
	assert.Contains(t, output, "Total: 14 months (1 years 2 months)")
	assert.Contains(t, output, "EXTRACTED FIELDS")
	assert.Contains(t, output, `"runes": 8`)
}
