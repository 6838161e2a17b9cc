package parsing

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	bracketPattern    = regexp.MustCompile(`[()\[\]]`)
	digitPattern      = regexp.MustCompile(`\p{Nd}`)
	whitespacePattern = regexp.MustCompile(`[\s\p{Z}]+`)
)

// DocumentID returns the file name of path without its directory or extension
func DocumentID(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CleanHint turns a document identifier such as "CV_jane-doe (2)" into a
// candidate name hint ("jane doe")
func CleanHint(text string) string {
	text = strings.ReplaceAll(text, "CV", "")
	text = strings.ReplaceAll(text, "cv", "")

	text = strings.ReplaceAll(text, "-", " ")
	text = strings.ReplaceAll(text, "_", " ")

	text = bracketPattern.ReplaceAllString(text, "")
	text = digitPattern.ReplaceAllString(text, "")

	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
