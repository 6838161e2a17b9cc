package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTexts(doc *Doc) []string {
	texts := make([]string, len(doc.Tokens))
	for i, tok := range doc.Tokens {
		texts[i] = tok.Text
	}
	return texts
}

func TestTokenize_WordsAndPunctuation(t *testing.T) {
	doc := Tokenize("Jane Doe, dev42!")

	assert.Equal(t, []string{"Jane", "Doe", ",", "dev42", "!"}, tokenTexts(doc))
	assert.True(t, doc.Tokens[0].IsAlpha)
	assert.False(t, doc.Tokens[2].IsAlpha)
	assert.False(t, doc.Tokens[3].IsAlpha)
}

func TestTokenize_NewlinesAndRepeatedSpacesAreTokens(t *testing.T) {
	doc := Tokenize("Jane\nDoe  Smith")

	assert.Equal(t, []string{"Jane", "\n", "Doe", "  ", "Smith"}, tokenTexts(doc))
	assert.True(t, doc.Tokens[1].IsSpace)
	assert.True(t, doc.Tokens[3].IsSpace)
}

func TestTokenize_AccentedLetters(t *testing.T) {
	doc := Tokenize("Aïcha Benaïssa")

	require.Len(t, doc.Tokens, 2)
	assert.True(t, doc.Tokens[0].IsAlpha)
	assert.True(t, doc.Tokens[1].IsAlpha)
	assert.Equal(t, "Benaïssa", doc.Tokens[1].Text)
}

func TestTokenize_LeadingSpaceIsToken(t *testing.T) {
	doc := Tokenize(" Jane")

	assert.Equal(t, []string{" ", "Jane"}, tokenTexts(doc))
}

func TestDoc_Span(t *testing.T) {
	doc := Tokenize("Hello Jane Doe")

	assert.Equal(t, "Jane Doe", doc.Span(1, 3))
	assert.Equal(t, "", doc.Span(2, 2))
	assert.Equal(t, "", doc.Span(0, 10))
}

func TestTokenMatcher_OrdersLeftmostThenRegistration(t *testing.T) {
	m := NewTokenMatcher()
	m.Add("NAME", Repeat(IsAlpha, 2), Repeat(IsAlpha, 3))

	doc := Tokenize("42 Jane Ann Doe")
	matches := m.Find(doc)

	require.Len(t, matches, 3)
	assert.Equal(t, Match{Label: "NAME", Start: 1, End: 3}, matches[0])
	assert.Equal(t, Match{Label: "NAME", Start: 1, End: 4}, matches[1])
	assert.Equal(t, Match{Label: "NAME", Start: 2, End: 4}, matches[2])
}

func TestTokenMatcher_NoMatch(t *testing.T) {
	m := NewTokenMatcher()
	m.Add("NAME", Repeat(IsAlpha, 2))

	assert.Empty(t, m.Find(Tokenize("Jane\n42 Doe")))
	assert.Nil(t, m.Find(nil))
}

func TestTokenMatcher_IgnoresEmptyPattern(t *testing.T) {
	m := NewTokenMatcher()
	m.Add("EMPTY", Pattern{})

	assert.Empty(t, m.Find(Tokenize("Jane Doe")))
}
