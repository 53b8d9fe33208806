// Package validation contains the logic for validating request data.
//
// It uses the go-playground validator to enforce rules (required
// fields, lengths, email format) defined in struct tags and extracts
// validation failures into field-level errors the client can act on.
// Malformed or incomplete payloads surface as 422 before any handler
// logic runs.
package validation
