// Package snapshot persists small client-side state blobs (the session
// snapshot) in a local sqlite database, keyed by name. It is the durable
// storage the session store reads at startup and writes on login.
package snapshot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akulinin/campusmarket/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

// Repository is a tiny key/value store over the local database.
// Get returns (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Open opens (creating if needed) the local database at dsn and applies
// pending migrations. The sqlite driver must be registered by the caller
// (blank import of modernc.org/sqlite).
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening local db: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating local db: %w", err)
	}
	return db, nil
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}
