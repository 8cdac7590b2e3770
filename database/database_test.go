package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"contactbook/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewConnection_SQLite(t *testing.T) {
	db := CreateSQLiteConnection(t)

	var version string
	err := db.Raw("SELECT sqlite_version()").Scan(&version).Error
	require.NoError(t, err)
	assert.NotEmpty(t, version)
}

func TestNewConnection_BusyTimeout(t *testing.T) {
	db, err := database.NewConnection(database.Options{
		Path: filepath.Join(t.TempDir(), "busy.db"),
	})
	require.NoError(t, err)

	var timeout int
	err = db.Raw("PRAGMA busy_timeout").Scan(&timeout).Error
	require.NoError(t, err)
	assert.Equal(t, int(database.DefaultBusyTimeout.Milliseconds()), timeout)
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	_, err := database.NewConnection(database.Options{Driver: "oracle"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestMigrate(t *testing.T) {
	t.Run("creates the contacts table", func(t *testing.T) {
		db := CreateSQLiteConnection(t)

		n, err := database.Migrate(db, database.DriverSQLite)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.True(t, db.Migrator().HasTable("contacts"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		db := CreateSQLiteConnection(t)
		MigrateTestDatabase(t, db)

		n, err := database.Migrate(db, database.DriverSQLite)

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("keeps a table created outside of migrations", func(t *testing.T) {
		db := CreateSQLiteConnection(t)
		require.NoError(t, db.Exec(`CREATE TABLE contacts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			phone TEXT NOT NULL
		)`).Error)
		require.NoError(t, db.Exec("INSERT INTO contacts (name, phone) VALUES ('Old', '1')").Error)

		_, err := database.Migrate(db, database.DriverSQLite)
		require.NoError(t, err)

		total, err := database.NewContactRepository(db).CountContacts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("rollback drops the table", func(t *testing.T) {
		db := CreateSQLiteConnection(t)
		MigrateTestDatabase(t, db)

		n, err := database.Rollback(db, database.DriverSQLite)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.False(t, db.Migrator().HasTable("contacts"))
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		db := CreateSQLiteConnection(t)

		_, err := database.Migrate(db, "oracle")

		assert.Error(t, err)
	})
}

func CreateSQLiteConnection(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewConnection(database.Options{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "contacts.db"),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func MigrateTestDatabase(t testing.TB, db *gorm.DB) {
	t.Helper()

	_, err := database.Migrate(db, db.Dialector.Name())
	require.NoError(t, err)
}
