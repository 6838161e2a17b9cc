package experience

import (
	"fmt"
	"regexp"
	"strconv"
)

// DateRange is a start/end month pair read from one match
type DateRange struct {
	StartMonth int
	StartYear  int
	EndMonth   int
	EndYear    int
}

// Months returns the number of months covered, counting both endpoints
func (r DateRange) Months() int {
	return (r.EndYear-r.StartYear)*12 + (r.EndMonth - r.StartMonth) + 1
}

// notation pairs a date-range pattern with the parser for its submatches
type notation struct {
	name  string
	re    *regexp.Regexp
	parse func(groups []string) (DateRange, error)
}

// word matches one Unicode word, so accented month names like "août" are captured whole
const word = `([\p{L}\p{M}\p{N}_]+)`

// notations are tried in order; the first one with a match on a line owns that line
func notations() []notation {
	return []notation{
		{
			name:  "french_textual",
			re:    regexp.MustCompile(`(?:De|du) ` + word + ` ([0-9]{4}) (?:à|au) ` + word + ` ([0-9]{4})`),
			parse: parseNamedMonths(0, 1, 2, 3),
		},
		{
			name:  "numeric_dashed",
			re:    regexp.MustCompile(`([0-9]{2})-([0-9]{4}) - ([0-9]{2})-([0-9]{4})`),
			parse: parseNumeric,
		},
		{
			name:  "numeric_slashed",
			re:    regexp.MustCompile(`([0-9]{1,2})[/-]([0-9]{4})\s*-\s*([0-9]{1,2})[/-]([0-9]{4})`),
			parse: parseNumeric,
		},
		{
			// day groups 0 and 3 are matched but not used
			name:  "day_month_name",
			re:    regexp.MustCompile(`([0-9]{1,2}) ` + word + ` ([0-9]{4}) - ([0-9]{1,2}) ` + word + ` ([0-9]{4})`),
			parse: parseNamedMonths(1, 2, 4, 5),
		},
	}
}

// parseNamedMonths builds a parser for notations that spell the month out.
// The arguments are submatch indexes of start month, start year, end month, end year.
func parseNamedMonths(sm, sy, em, ey int) func([]string) (DateRange, error) {
	return func(g []string) (DateRange, error) {
		start, ok := MonthNumber(g[sm])
		if !ok {
			return DateRange{}, fmt.Errorf("unknown month %q", g[sm])
		}
		end, ok := MonthNumber(g[em])
		if !ok {
			return DateRange{}, fmt.Errorf("unknown month %q", g[em])
		}
		startYear, _ := strconv.Atoi(g[sy])
		endYear, _ := strconv.Atoi(g[ey])
		return DateRange{StartMonth: start, StartYear: startYear, EndMonth: end, EndYear: endYear}, nil
	}
}

func parseNumeric(g []string) (DateRange, error) {
	values := make([]int, 4)
	for i, s := range g {
		// the patterns only admit ASCII digits, so Atoi cannot fail
		values[i], _ = strconv.Atoi(s)
	}
	r := DateRange{StartMonth: values[0], StartYear: values[1], EndMonth: values[2], EndYear: values[3]}
	if !validMonth(r.StartMonth) || !validMonth(r.EndMonth) {
		return DateRange{}, fmt.Errorf("month out of range in %02d/%d - %02d/%d", r.StartMonth, r.StartYear, r.EndMonth, r.EndYear)
	}
	return r, nil
}

func validMonth(m int) bool {
	return m >= 1 && m <= 12
}
