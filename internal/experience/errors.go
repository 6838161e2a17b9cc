// Package experience computes the total work-experience duration stated in a résumé.
package experience

import "fmt"

// MalformedDateRangeError describes a date range that looked valid but could not be
// resolved, such as an unknown month name or a month outside 1..12.
// The calculator records these and keeps scanning.
type MalformedDateRangeError struct {
	Line     int
	Notation string
	Text     string
	Message  string
}

func (e *MalformedDateRangeError) Error() string {
	return fmt.Sprintf("malformed date range on line %d (%s): %q: %s", e.Line, e.Notation, e.Text, e.Message)
}
