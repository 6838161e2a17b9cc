package nlp

import "sort"

// Predicate tests a single token
type Predicate func(Token) bool

// IsAlpha matches alphabetic word tokens
func IsAlpha(t Token) bool {
	return t.IsAlpha
}

// Pattern is a sequence of per-token predicates that must hold on consecutive tokens
type Pattern []Predicate

// Repeat builds a pattern of n copies of p
func Repeat(p Predicate, n int) Pattern {
	pattern := make(Pattern, n)
	for i := range pattern {
		pattern[i] = p
	}
	return pattern
}

// Match is a matched token span [Start, End) with the label it was registered under
type Match struct {
	Label string
	Start int
	End   int
}

// Matcher finds token spans satisfying registered patterns
type Matcher interface {
	Add(label string, patterns ...Pattern)
	Find(doc *Doc) []Match
}

type rule struct {
	label   string
	pattern Pattern
}

// TokenMatcher is the default Matcher. Matches are returned leftmost first; matches
// starting at the same token follow pattern registration order.
// Add must not be called concurrently with Find.
type TokenMatcher struct {
	rules []rule
}

// NewTokenMatcher creates an empty matcher
func NewTokenMatcher() *TokenMatcher {
	return &TokenMatcher{}
}

// Add registers patterns under label
func (m *TokenMatcher) Add(label string, patterns ...Pattern) {
	for _, p := range patterns {
		if len(p) == 0 {
			continue
		}
		m.rules = append(m.rules, rule{label: label, pattern: p})
	}
}

// Find returns every match in doc
func (m *TokenMatcher) Find(doc *Doc) []Match {
	if doc == nil {
		return nil
	}

	type ranked struct {
		Match
		order int
	}
	var found []ranked

	for order, r := range m.rules {
		n := len(r.pattern)
		for start := 0; start+n <= len(doc.Tokens); start++ {
			if matchesAt(doc.Tokens[start:start+n], r.pattern) {
				found = append(found, ranked{Match: Match{Label: r.label, Start: start, End: start + n}, order: order})
			}
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].Start != found[j].Start {
			return found[i].Start < found[j].Start
		}
		return found[i].order < found[j].order
	})

	matches := make([]Match, len(found))
	for i, f := range found {
		matches[i] = f.Match
	}
	return matches
}

func matchesAt(tokens []Token, pattern Pattern) bool {
	for i, pred := range pattern {
		if !pred(tokens[i]) {
			return false
		}
	}
	return true
}
