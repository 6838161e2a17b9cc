package experience

import "strings"

// frenchMonths maps lowercase French month names to their number
var frenchMonths = map[string]int{
	"janvier":   1,
	"février":   2,
	"mars":      3,
	"avril":     4,
	"mai":       5,
	"juin":      6,
	"juillet":   7,
	"août":      8,
	"septembre": 9,
	"octobre":   10,
	"novembre":  11,
	"décembre":  12,
}

// MonthNumber resolves a French month name, ignoring case
func MonthNumber(name string) (int, bool) {
	n, ok := frenchMonths[strings.ToLower(name)]
	return n, ok
}
