// Package handler is the entry point for business logic after the
// router.
//
// It binds and validates request payloads through the validation
// package, calls the appropriate service, and writes the JSON response.
// The generic Handle wrapper centralizes that pipeline so each endpoint
// is a one-line registration plus a thin typed method.
package handler
