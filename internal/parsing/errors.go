// Package parsing extracts individual résumé fields from plain document text.
package parsing

import "fmt"

// PatternError represents a lexicon entry that could not be turned into a pattern
type PatternError struct {
	Lexicon string
	Entry   string
	Cause   error
}

func (e *PatternError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid %s entry %q: %v", e.Lexicon, e.Entry, e.Cause)
	}
	return fmt.Sprintf("invalid %s entry %q", e.Lexicon, e.Entry)
}

func (e *PatternError) Unwrap() error {
	return e.Cause
}
