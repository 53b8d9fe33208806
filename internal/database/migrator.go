package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"collection-catalog/internal/config"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// The SQL files under migrations/ are embedded at compile time, so the
// binary carries its own schema history and never depends on the
// filesystem at runtime.
//
// Each file is one reversible step: the statements above the
// "---- create above / drop below ----" marker apply the change, the
// statements below revert it. tern orders steps by their numeric
// filename prefix and rejects a duplicate sequence number at load time,
// which keeps the chain strictly linear - an accidental fork fails at
// startup instead of being silently resolved.
//
//go:embed migrations/*.sql
var migrations embed.FS

// Migrate brings the database schema to the latest version.
//
// It opens a single direct connection (no pool needed for a one-time
// action), loads the embedded migration chain, and applies any steps
// past the version recorded in the schema_version table.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	conn, err := pgx.Connect(ctx, buildDSN(cfg))
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}
