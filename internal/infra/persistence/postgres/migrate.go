package postgres

import (
	"context"
	"database/sql"

	"prepai/internal/errors"
	"prepai/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded goose migrations that are not yet recorded in the database.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	return nil
}
