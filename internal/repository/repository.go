// Package repository handles all interactions with the database.
//
// It contains the raw SQL for each entity and methods to fetch,
// persist, update, and delete rows, keeping SQL out of the service
// layer. Every repository speaks through the Querier interface, which
// both *pgxpool.Pool and pgx.Tx satisfy.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx a repository needs. Using the interface
// instead of *pgxpool.Pool keeps repositories testable and lets the
// same methods run inside a transaction if one is ever introduced.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
