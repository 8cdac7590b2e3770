package database

import (
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/gorm"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate applies pending migrations and returns how many ran. Every
// migration is written to be a no-op on an already initialized database, so
// it is safe to call on each start.
func Migrate(db *gorm.DB, driver string) (int, error) {
	return exec(db, driver, migrate.Up)
}

// Rollback reverts every applied migration.
func Rollback(db *gorm.DB, driver string) (int, error) {
	return exec(db, driver, migrate.Down)
}

func exec(db *gorm.DB, driver string, dir migrate.MigrationDirection) (int, error) {
	dialect, root, err := migrationDialect(driver)
	if err != nil {
		return 0, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("get db instance: %w", err)
	}

	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       root,
	}

	n, err := migrate.Exec(sqlDB, dialect, source, dir)
	if err != nil {
		return n, fmt.Errorf("execute migrations: %w", err)
	}
	return n, nil
}

func migrationDialect(driver string) (dialect, root string, err error) {
	switch driver {
	case "", DriverSQLite:
		return "sqlite3", "migrations/sqlite", nil
	case DriverPostgres:
		return "postgres", "migrations/postgres", nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", driver)
	}
}
