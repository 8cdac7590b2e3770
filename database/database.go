package database

import (
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	DefaultBusyTimeout = 3 * time.Second
)

type Options struct {
	Driver string

	// SQLite
	Path        string
	BusyTimeout time.Duration

	// PostgreSQL
	DBName   string
	DBUser   string
	Password string
	Host     string
	Port     string
	SSLMode  bool
}

// NewConnection opens the store selected by opts.Driver. An empty driver
// means SQLite.
func NewConnection(opts Options) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	switch opts.Driver {
	case "", DriverSQLite:
		return gorm.Open(sqlite.Open(sqliteDSN(opts)), cfg)
	case DriverPostgres:
		return gorm.Open(postgres.New(postgres.Config{
			DriverName: "postgres",
			DSN:        postgresDSN(opts),
		}), cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}

// sqliteDSN makes writers wait on a locked database file instead of failing
// with SQLITE_BUSY right away. The file may live on network storage.
// Write transactions take the write lock at BEGIN so that waiting goes
// through the busy handler.
func sqliteDSN(opts Options) string {
	timeout := opts.BusyTimeout
	if timeout <= 0 {
		timeout = DefaultBusyTimeout
	}
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_txlock=immediate", opts.Path, timeout.Milliseconds())
}

func postgresDSN(opts Options) string {
	sslmode := "disable"
	if opts.SSLMode {
		sslmode = "require"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		opts.Host, opts.Port, opts.DBUser, opts.Password, opts.DBName, sslmode,
	)
}
