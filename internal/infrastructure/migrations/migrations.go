// Package migrations manages the order journal schema.
//
// golang-migrate's bundled sqlite3 driver imports mattn/go-sqlite3, which registers
// itself under the same "sqlite3" name as the CGO-free ncruces driver kera uses. The
// driver in this package speaks golang-migrate's database.Driver contract over any
// *sql.DB opened with ncruces instead.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var embeddedMigrationsFS embed.FS

// NewMigrator builds a golang-migrate instance over db using the embedded migrations.
func NewMigrator(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(embeddedMigrationsFS, ".")
	if err != nil {
		return nil, fmt.Errorf("loading embedded migrations: %w", err)
	}

	driver, err := WithInstance(db, &Config{})
	if err != nil {
		return nil, fmt.Errorf("creating migration driver: %w", err)
	}

	return migrate.NewWithInstance("iofs", source, "sqlite3", driver)
}

// RunMigrations applies all pending migrations to db. Running it against an
// up-to-date database is a no-op.
func RunMigrations(db *sql.DB) error {
	m, err := NewMigrator(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
