// Package errs defines the error types returned to API clients.
//
// Every failure the service reports is shaped as an HTTPError carrying
// a machine-readable code, a human-readable detail message, the HTTP
// status, and (for validation failures) field-level errors. Handlers
// and services return these; the global error handler serializes them.
package errs
