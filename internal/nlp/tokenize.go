// Package nlp provides a small rule-based tokenizer and token-pattern matcher.
package nlp

import (
	"unicode"
	"unicode/utf8"
)

// Token is one unit of a tokenized document. Start and End are byte offsets
// into the original text.
type Token struct {
	Text    string
	Start   int
	End     int
	IsAlpha bool
	IsSpace bool
}

// Doc is a tokenized text
type Doc struct {
	Text   string
	Tokens []Token
}

// Span returns the original text covered by tokens [start, end)
func (d *Doc) Span(start, end int) string {
	if start < 0 || end > len(d.Tokens) || start >= end {
		return ""
	}
	return d.Text[d.Tokens[start].Start:d.Tokens[end-1].End]
}

// Tokenize splits text into word, punctuation and whitespace tokens.
//
// A run of letters, marks, digits and underscores is one token; it is alphabetic
// when it holds only letters and marks. Every other non-space rune is a token of its
// own. A single space after a token is absorbed, while any other whitespace run
// (newlines, tabs, repeated spaces) becomes a whitespace token, so names never
// span a line break.
func Tokenize(text string) *Doc {
	doc := &Doc{Text: text}

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case unicode.IsSpace(r):
			end := i
			for end < len(text) {
				r2, s2 := utf8.DecodeRuneInString(text[end:])
				if !unicode.IsSpace(r2) {
					break
				}
				end += s2
			}
			if !(text[i:end] == " " && i > 0) {
				doc.Tokens = append(doc.Tokens, Token{Text: text[i:end], Start: i, End: end, IsSpace: true})
			}
			i = end
		case isWordRune(r):
			end := i
			alpha := true
			for end < len(text) {
				r2, s2 := utf8.DecodeRuneInString(text[end:])
				if !isWordRune(r2) {
					break
				}
				if !unicode.IsLetter(r2) && !unicode.IsMark(r2) {
					alpha = false
				}
				end += s2
			}
			doc.Tokens = append(doc.Tokens, Token{Text: text[i:end], Start: i, End: end, IsAlpha: alpha})
			i = end
		default:
			doc.Tokens = append(doc.Tokens, Token{Text: text[i : i+size], Start: i, End: i + size})
			i += size
		}
	}

	return doc
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) || r == '_'
}
