package parsing

import (
	"github.com/jonathan/resume-extractor/internal/nlp"
)

// nameLabel is the matcher label name patterns are registered under
const nameLabel = "NAME"

// NamePatterns are the candidate name shapes: first and last name, optionally with
// one or two middle names, each an alphabetic token
func NamePatterns() []nlp.Pattern {
	return []nlp.Pattern{
		nlp.Repeat(nlp.IsAlpha, 2),
		nlp.Repeat(nlp.IsAlpha, 3),
		nlp.Repeat(nlp.IsAlpha, 4),
	}
}

// NameExtractor finds the candidate name with a token-pattern matcher.
// Build it once and reuse it; it is safe for concurrent Extract calls as long as
// the matcher's Find is.
type NameExtractor struct {
	matcher nlp.Matcher
}

// NewNameExtractor registers the name patterns on m. A nil m uses a fresh
// nlp.TokenMatcher.
func NewNameExtractor(m nlp.Matcher) *NameExtractor {
	if m == nil {
		m = nlp.NewTokenMatcher()
	}
	m.Add(nameLabel, NamePatterns()...)
	return &NameExtractor{matcher: m}
}

// Extract returns the text of the first name match, exactly as it appears in text
func (e *NameExtractor) Extract(text string) (string, bool) {
	doc := nlp.Tokenize(text)
	for _, m := range e.matcher.Find(doc) {
		if m.Label != nameLabel {
			continue
		}
		if span := doc.Span(m.Start, m.End); span != "" {
			return span, true
		}
	}
	return "", false
}
