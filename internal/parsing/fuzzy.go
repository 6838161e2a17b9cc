package parsing

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
)

const (
	// DefaultTopN is the number of candidates FindSimilar keeps before filtering
	DefaultTopN = 5
	// DefaultThreshold is the minimum score FindSimilar reports
	DefaultThreshold = 80
)

// wordPattern is a Unicode-aware \b\w+\b
var wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

// Scorer rates how similar two strings are on a 0..100 scale
type Scorer interface {
	Score(a, b string) int
}

// ScorerFunc adapts a function to the Scorer interface
type ScorerFunc func(a, b string) int

// Score calls f(a, b)
func (f ScorerFunc) Score(a, b string) int {
	return f(a, b)
}

// TokenSetScorer compares the sets of words in two strings, so word order and
// repeated words do not lower the score. Pairwise ratios use normalized
// Levenshtein similarity.
type TokenSetScorer struct {
	params *levenshtein.Params
}

// NewTokenSetScorer creates a scorer with default edit costs
func NewTokenSetScorer() *TokenSetScorer {
	return &TokenSetScorer{params: levenshtein.NewParams()}
}

// Score returns the token-set ratio of a and b
func (s *TokenSetScorer) Score(a, b string) int {
	a, b = fullProcess(a), fullProcess(b)
	if a == "" || b == "" {
		return 0
	}

	tokensA, tokensB := tokenSet(a), tokenSet(b)

	var intersection, onlyA, onlyB []string
	for tok := range tokensA {
		if _, ok := tokensB[tok]; ok {
			intersection = append(intersection, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range tokensB {
		if _, ok := tokensA[tok]; !ok {
			onlyB = append(onlyB, tok)
		}
	}

	sorted := joinSorted(intersection)
	combinedA := strings.TrimSpace(sorted + " " + joinSorted(onlyA))
	combinedB := strings.TrimSpace(sorted + " " + joinSorted(onlyB))

	return max(s.ratio(sorted, combinedA), s.ratio(sorted, combinedB), s.ratio(combinedA, combinedB))
}

func (s *TokenSetScorer) ratio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	return int(math.Round(100 * levenshtein.Similarity(a, b, s.params)))
}

// fullProcess lowercases s and replaces every non-alphanumeric rune with a space
func fullProcess(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.TrimSpace(mapped)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

func joinSorted(tokens []string) string {
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// Match is a document word scored against the file name hint
type Match struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// UniqueWords returns the distinct words of text, sorted
func UniqueWords(text string) []string {
	seen := make(map[string]struct{})
	for _, w := range wordPattern.FindAllString(text, -1) {
		seen[w] = struct{}{}
	}
	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// FindSimilar scores every distinct word of text against the cleaned filename hint,
// keeps the topN best and returns those scoring at least threshold.
// A nil scorer uses TokenSetScorer.
func FindSimilar(text, filenameHint string, topN, threshold int, scorer Scorer) []Match {
	if scorer == nil {
		scorer = NewTokenSetScorer()
	}
	if topN <= 0 {
		return nil
	}

	hint := CleanHint(filenameHint)
	words := UniqueWords(text)

	scored := make([]Match, 0, len(words))
	for _, w := range words {
		scored = append(scored, Match{Word: w, Score: scorer.Score(hint, w)})
	}

	// words are already sorted, so a stable sort breaks ties alphabetically
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}

	filtered := make([]Match, 0, len(scored))
	for _, m := range scored {
		if m.Score >= threshold {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
