package experience

import (
	"regexp"
	"strings"
)

// State is the position of the scanner relative to the experience section
type State int

const (
	// Outside means no experience header has been seen yet
	Outside State = iota
	// Inside means a header was seen. There is no transition back: lines of any
	// later section are still scanned for date ranges.
	Inside
)

func (s State) String() string {
	if s == Inside {
		return "inside"
	}
	return "outside"
}

// headerPattern recognizes the experience section title in its usual spellings,
// including the broken spacing some PDF extractors produce
var headerPattern = regexp.MustCompile(`(?i)(?:EXPÉRIENCES PROFESSIONNELLES?|EXPÉRIENCE PROFESSIONNELLE|Professional Experiences & Projects|Exp[ée]riences\s+Professionnelles?|Exp[ée]rienc\s+es\s+pr\s+ofessionnelles?|EXPÉRIENCES?:)`)

// Summary is the outcome of one scan
type Summary struct {
	TotalMonths int
	// Years is TotalMonths / 12, unrounded
	Years float64
	// RemainderMonths is TotalMonths % 12
	RemainderMonths int
	// Ranges holds every range that contributed, in document order
	Ranges []DateRange
	// Skipped holds ranges that matched a notation but could not be resolved
	Skipped []*MalformedDateRangeError
	// SectionFound reports whether an experience header was seen
	SectionFound bool
}

// Calculator scans résumé text for the experience section and sums the months
// covered by the date ranges it finds. It only holds compiled patterns, so a single
// Calculator can be shared between goroutines.
type Calculator struct {
	notations []notation
}

// NewCalculator creates a calculator with the built-in notations
func NewCalculator() *Calculator {
	return &Calculator{notations: notations()}
}

// Scan processes text line by line and returns the accumulated duration
func (c *Calculator) Scan(text string) Summary {
	return c.ScanLines(strings.Split(text, "\n"))
}

// ScanLines processes an already split document
func (c *Calculator) ScanLines(lines []string) Summary {
	var summary Summary
	state := Outside

	for i, line := range lines {
		if headerPattern.MatchString(line) {
			state = Inside
			summary.SectionFound = true
			continue
		}
		if state != Inside {
			continue
		}
		c.scanLine(i+1, line, &summary)
	}

	summary.Years = float64(summary.TotalMonths) / 12
	summary.RemainderMonths = summary.TotalMonths % 12
	return summary
}

// scanLine applies the first notation that matches the line; each of its matches counts
func (c *Calculator) scanLine(lineNo int, line string, summary *Summary) {
	for _, n := range c.notations {
		matches := n.re.FindAllStringSubmatch(line, -1)
		if len(matches) == 0 {
			continue
		}
		for _, m := range matches {
			r, err := n.parse(m[1:])
			if err != nil {
				summary.Skipped = append(summary.Skipped, &MalformedDateRangeError{
					Line:     lineNo,
					Notation: n.name,
					Text:     m[0],
					Message:  err.Error(),
				})
				continue
			}
			summary.Ranges = append(summary.Ranges, r)
			summary.TotalMonths += r.Months()
		}
		return
	}
}
