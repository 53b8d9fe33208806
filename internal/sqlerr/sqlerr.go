// Package sqlerr handles database driver errors.
//
// It converts Postgres SQLSTATE errors from pgx into the application's
// HTTP error taxonomy. This is the correctness backstop behind the
// handler-level pre-checks: two concurrent creates of the same natural
// key can both pass the pre-check, in which case one insert fails with
// a unique violation that must surface as the same Conflict response
// the pre-check would have produced.
package sqlerr
