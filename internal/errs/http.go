package errs

import "strings"

// FieldError represents a single field-level validation error.
// Example:
//
//	{ "field": "email", "error": "must be a valid email address" }
type FieldError struct {
	// Field is the field name the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type serialized in every failure response.
//
// It implements the error interface via Error(), so services can return
// it through plain `error` values and the global error handler can
// recover the full shape with errors.As.
type HTTPError struct {
	// Code is a machine-friendly error code (e.g. "BAD_REQUEST").
	Code string `json:"code"`

	// Detail is the human-readable message shown to the client.
	Detail string `json:"detail"`

	// Status is the HTTP status code.
	Status int `json:"status"`

	// Errors holds field-level validation errors, when present.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Detail
}

// Is reports whether target is also an *HTTPError. It matches on type
// only, not on code or status, which is enough for errors.Is checks
// that ask "has this error already been classified?".
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores converts a string into
// UPPER_CASE_WITH_UNDERSCORES form, e.g. "Bad Request" -> "BAD_REQUEST".
// Used to derive stable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
