package sqlite

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/microblog/internal/microblog/store/drivers/sqlite/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ApplyMigrations brings the schema up to date using the migration files
// embedded in the binary.
func (s *Store) ApplyMigrations() error {
	// 1. Wrap the open handle in a migrate database driver
	driver, err := migratesqlite.WithInstance(s.db.DB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("creating migration driver: %w", err)
	}

	// 2. Read migrations from the embedded filesystem
	source, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return fmt.Errorf("creating migration source: %w", err)
	}

	instance, err := migrate.NewWithInstance("iofs", source, DriverName, driver)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}

	// 3. Apply everything pending
	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}

	return nil
}
