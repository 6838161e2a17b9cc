// Package ingestion turns résumé files into plain text for the extractors.
package ingestion

import "fmt"

// UnreadableDocumentError is returned when no text could be obtained from a file:
// it is missing, corrupt, or in a format the extractor does not understand
type UnreadableDocumentError struct {
	Path    string
	Message string
	Cause   error
}

func (e *UnreadableDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unreadable document %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("unreadable document %s: %s", e.Path, e.Message)
}

func (e *UnreadableDocumentError) Unwrap() error {
	return e.Cause
}
