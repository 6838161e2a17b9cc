package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-extractor/internal/ingestion"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var unreadableErr *ingestion.UnreadableDocumentError
	var tooLargeErr *http.MaxBytesError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &unreadableErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
