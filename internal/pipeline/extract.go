// Package pipeline orchestrates the extraction of résumé fields from a document.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-extractor/internal/experience"
	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/parsing"
	"github.com/jonathan/resume-extractor/internal/types"
)

// ProgressEvent represents a progress update during extraction
type ProgressEvent struct {
	Step    string `json:"step"`
	Path    string `json:"path"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when extraction progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds the collaborators and tuning for an Extractor.
// Zero values are replaced with the built-in defaults by New.
type Options struct {
	Text       ingestion.TextExtractor
	Names      *parsing.NameExtractor
	Lexicon    types.Lexicon
	Experience *experience.Calculator
	Scorer     parsing.Scorer
	TopN       int
	Threshold  int
	Logger     *slog.Logger
	OnProgress ProgressCallback
}

// Extractor runs every field recognizer over one document
type Extractor struct {
	text       ingestion.TextExtractor
	names      *parsing.NameExtractor
	fields     *parsing.FieldExtractors
	experience *experience.Calculator
	scorer     parsing.Scorer
	topN       int
	threshold  int
	logger     *slog.Logger
	onProgress ProgressCallback
}

// New builds an Extractor. It fails only when a lexicon entry cannot be compiled.
func New(opts Options) (*Extractor, error) {
	lex := opts.Lexicon
	if len(lex.Skills) == 0 && len(lex.InstitutionKeywords) == 0 {
		lex = types.DefaultLexicon()
	}
	if err := lex.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lexicon: %w", err)
	}
	fields, err := parsing.NewFieldExtractors(lex)
	if err != nil {
		return nil, fmt.Errorf("failed to build field extractors: %w", err)
	}

	e := &Extractor{
		text:       opts.Text,
		names:      opts.Names,
		fields:     fields,
		experience: opts.Experience,
		scorer:     opts.Scorer,
		topN:       opts.TopN,
		threshold:  opts.Threshold,
		logger:     opts.Logger,
		onProgress: opts.OnProgress,
	}
	if e.text == nil {
		e.text = ingestion.NewFileTextExtractor()
	}
	if e.names == nil {
		e.names = parsing.NewNameExtractor(nil)
	}
	if e.experience == nil {
		e.experience = experience.NewCalculator()
	}
	if e.scorer == nil {
		e.scorer = parsing.NewTokenSetScorer()
	}
	if e.topN <= 0 {
		e.topN = parsing.DefaultTopN
	}
	if e.threshold <= 0 {
		e.threshold = parsing.DefaultThreshold
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e, nil
}

// Extract reads the document at path and returns the fields found in it.
// A document that cannot be read yields *ingestion.UnreadableDocumentError.
func (e *Extractor) Extract(ctx context.Context, path string) (*types.ExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := e.text.ExtractText(ctx, path)
	if err != nil {
		e.logger.Warn("extract.text.failed", "path", path, "err", err)
		return nil, err
	}
	meta := ingestion.NewMetadata(path, text)
	e.logger.Debug("extract.text.ok", "path", path, "hash", meta.Hash, "lines", meta.Lines, "runes", meta.Runes)
	e.emit("text", path, "text extracted", meta)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docID := parsing.DocumentID(path)
	matches := parsing.FindSimilar(text, docID, e.topN, e.threshold, e.scorer)
	e.logger.Debug("extract.filename.matches", "path", path, "doc_id", docID, "matches", matches)
	e.emit("filename", path, "filename cross-check done", matches)

	result, summary, err := e.fromText(ctx, text)
	if err != nil {
		return nil, err
	}
	e.emit("experience", path, "experience scanned", summary)
	for _, skipped := range summary.Skipped {
		e.logger.Warn("extract.experience.skipped",
			"path", path,
			"line", skipped.Line,
			"notation", skipped.Notation,
			"text", skipped.Text,
			"reason", skipped.Message,
		)
	}

	e.logger.Info("extract.ok", "path", path, "found", result.FoundFields())
	e.emit("done", path, "extraction complete", result)
	return result, nil
}

// ExtractText runs the field recognizers over already extracted text
func (e *Extractor) ExtractText(text string) *types.ExtractionResult {
	result, _, _ := e.fromText(context.Background(), text)
	return result
}

// fromText runs the recognizers concurrently. Each one owns a distinct field of
// the result, so no locking is needed.
func (e *Extractor) fromText(ctx context.Context, text string) (*types.ExtractionResult, experience.Summary, error) {
	result := &types.ExtractionResult{}
	var summary experience.Summary

	g, gCtx := errgroup.WithContext(ctx)
	run := func(fn func()) {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			fn()
			return nil
		})
	}

	run(func() {
		if name, ok := e.names.Extract(text); ok {
			result.Name = name
		}
	})
	run(func() {
		if number, ok := parsing.ExtractContactNumber(text); ok {
			result.ContactNumber = number
		}
	})
	run(func() {
		if email, ok := parsing.ExtractEmail(text); ok {
			result.Email = email
		}
	})
	run(func() { result.ExtractedSkills = e.fields.ExtractSkills(text) })
	run(func() { result.Education = e.fields.ExtractEducation(text) })
	run(func() { result.LinkedIn = parsing.ExtractLinkedIn(text) })
	run(func() {
		// yrs_exp is reported whenever the calculator ran, including a zero total
		summary = e.experience.Scan(text)
		years := summary.Years
		result.YrsExp = &years
	})

	if err := g.Wait(); err != nil {
		return nil, experience.Summary{}, err
	}
	return result, summary, nil
}

func (e *Extractor) emit(step, path, message string, content any) {
	if e.onProgress != nil {
		e.onProgress(ProgressEvent{
			Step:    step,
			Path:    path,
			Message: message,
			Content: content,
		})
	}
}
