package parsing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-extractor/internal/types"
)

var (
	// moroccanPhonePattern accepts an optional +212 or leading 0 followed by digit
	// blocks with optional separators
	moroccanPhonePattern = regexp.MustCompile(`(\+?(?:212\s*|0)\s*(?:(?:[.-]?\d{3}[.-]?\s*)|(?:\(\d{3}\)\s*)|(?:\d{3}\s*))?(?:[.-]?\d{3}[.-]?\s*){2}\d{3})`)
	// pairedPhonePattern accepts five two-digit groups such as "06 34 34 85 50"
	pairedPhonePattern = regexp.MustCompile(`\b\d{2}\s*\d{2}\s*\d{2}\s*\d{2}\s*\d{2}\b`)

	// ASCII \b: differs from a Unicode boundary only for an address glued to a non-ASCII letter
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	linkedInPattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?linkedin\.com/(?:[\p{L}\p{M}\p{N}_]+/)?(?:in|pub|profile)/[\p{L}\p{M}\p{N}_-]+/?`)
)

// ExtractContactNumber returns the first phone number found in text, verbatim
func ExtractContactNumber(text string) (string, bool) {
	if m := moroccanPhonePattern.FindString(text); m != "" {
		return m, true
	}
	if m := pairedPhonePattern.FindString(text); m != "" {
		return m, true
	}
	return "", false
}

// DisplayContactNumber removes the line breaks a PDF extractor may leave inside a number
func DisplayContactNumber(number string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(number)
}

// ExtractEmail returns the first email address found in text
func ExtractEmail(text string) (string, bool) {
	m := emailPattern.FindString(text)
	return m, m != ""
}

// ExtractLinkedIn returns every LinkedIn profile URL in text, in document order
func ExtractLinkedIn(text string) []string {
	return linkedInPattern.FindAllString(text, -1)
}

// FieldExtractors holds the lexicon-driven recognizers compiled from a Lexicon
type FieldExtractors struct {
	skills    []skillPattern
	education *regexp.Regexp
}

type skillPattern struct {
	name string
	re   *regexp.Regexp
}

// NewFieldExtractors compiles the lexicon. Empty entries are rejected.
func NewFieldExtractors(lex types.Lexicon) (*FieldExtractors, error) {
	fe := &FieldExtractors{skills: make([]skillPattern, 0, len(lex.Skills))}

	for _, skill := range lex.Skills {
		if strings.TrimSpace(skill) == "" {
			return nil, &PatternError{Lexicon: "skills", Entry: skill}
		}
		re, err := regexp.Compile(`(?i)` + wordBefore(skill) + regexp.QuoteMeta(skill) + wordAfter(skill))
		if err != nil {
			return nil, &PatternError{Lexicon: "skills", Entry: skill, Cause: err}
		}
		fe.skills = append(fe.skills, skillPattern{name: skill, re: re})
	}

	if len(lex.InstitutionKeywords) > 0 {
		alternatives := make([]string, 0, len(lex.InstitutionKeywords))
		for _, kw := range lex.InstitutionKeywords {
			if strings.TrimSpace(kw) == "" {
				return nil, &PatternError{Lexicon: "institution_keywords", Entry: kw}
			}
			// one group per keyword; the boundary rune after it is matched but not captured
			alternatives = append(alternatives, `(`+regexp.QuoteMeta(kw)+`)`+wordAfter(kw))
		}
		re, err := regexp.Compile(`(?i)(?:` + strings.Join(alternatives, "|") + `)`)
		if err != nil {
			return nil, &PatternError{Lexicon: "institution_keywords", Entry: strings.Join(lex.InstitutionKeywords, ","), Cause: err}
		}
		fe.education = re
	}

	return fe, nil
}

// ExtractSkills returns the lexicon skills mentioned in text, in lexicon order and
// with lexicon casing
func (fe *FieldExtractors) ExtractSkills(text string) []string {
	var found []string
	for _, s := range fe.skills {
		if s.re.MatchString(text) {
			found = append(found, s.name)
		}
	}
	return found
}

// ExtractEducation returns one entry per institution keyword occurrence: the keyword
// as written, a space, and the rest of the clause up to the next '.', ',', ';',
// newline or end of text
func (fe *FieldExtractors) ExtractEducation(text string) []string {
	if fe.education == nil {
		return nil
	}

	var entries []string
	for pos := 0; pos < len(text); {
		loc := fe.education.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		kwStart, kwEnd := keywordSpan(loc)
		kwStart, kwEnd = pos+kwStart, pos+kwEnd

		tailStart := skipSpace(text, kwEnd)
		tailEnd := tailStart
		if i := strings.IndexAny(text[tailStart:], ".\n;,"); i >= 0 {
			tailEnd += i
		} else {
			tailEnd = len(text)
		}

		entries = append(entries, text[kwStart:kwEnd]+" "+strings.TrimSpace(text[tailStart:tailEnd]))
		pos = tailEnd
	}
	return entries
}

// keywordSpan returns the bounds of the keyword group that took part in the match
func keywordSpan(loc []int) (int, int) {
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] >= 0 {
			return loc[i], loc[i+1]
		}
	}
	return loc[0], loc[1]
}

const wordRunes = `\p{L}\p{M}\p{N}_`

// wordBefore and wordAfter build the Unicode counterpart of \b around entry: an edge
// that is a word rune needs a non-word rune or the end of the text next to it, an
// edge that is punctuation needs a word rune next to it.
func wordBefore(entry string) string {
	r, _ := utf8.DecodeRuneInString(entry)
	if isWordRune(r) {
		return `(?:^|[^` + wordRunes + `])`
	}
	return `[` + wordRunes + `]`
}

func wordAfter(entry string) string {
	r, _ := utf8.DecodeLastRuneInString(entry)
	if isWordRune(r) {
		return `(?:[^` + wordRunes + `]|$)`
	}
	return `[` + wordRunes + `]`
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r)
}

// skipSpace returns the offset of the first non-space rune at or after i
func skipSpace(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}
