package errs

import (
	"net/http"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// This is the conflict outcome: natural-key collisions and references
// to a missing owner both surface through it.
func NewBadRequestError(detail string) *HTTPError {
	return &HTTPError{
		Code:   MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Detail: detail,
		Status: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError with an
// entity-specific message such as "Book not found".
func NewNotFoundError(detail string) *HTTPError {
	return &HTTPError{
		Code:   MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Detail: detail,
		Status: http.StatusNotFound,
	}
}

// NewUnprocessableEntityError creates a 422 HTTPError for malformed or
// incomplete request payloads, carrying per-field errors when known.
func NewUnprocessableEntityError(detail string, fieldErrors []FieldError) *HTTPError {
	return &HTTPError{
		Code:   MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnprocessableEntity)),
		Detail: detail,
		Status: http.StatusUnprocessableEntity,
		Errors: fieldErrors,
	}
}

// NewInternalServerError creates a 500 HTTPError.
//
// The detail is the generic status text, never the underlying error:
// clients do not need driver messages or stack traces.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:   MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Detail: http.StatusText(http.StatusInternalServerError),
		Status: http.StatusInternalServerError,
	}
}
