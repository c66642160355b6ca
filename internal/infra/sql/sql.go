package sql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Target describes where a pool connects to.
type Target struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// OpenOptions tune a single Dialect.Open call. WithDatabase=false connects to the
// server without selecting the target database, which is how provisioning creates it.
type OpenOptions struct {
	WithDatabase bool
	MaxConns     int
}

// Dialect isolates everything that differs between the supported stores.
type Dialect interface {
	Name() string
	Open(ctx context.Context, target Target, opts OpenOptions) (*Handle, error)
	// EnsureDatabase creates target.Database when it does not exist. db is a
	// handle opened with WithDatabase=false.
	EnsureDatabase(ctx context.Context, db *Handle, target Target) error
	ListTablesQuery() string
	IsNotProvisioned(err error) bool
	// InsertReturning reports whether inserts must use RETURNING to learn the
	// generated id because the driver has no LastInsertId.
	InsertReturning() bool
	ResetSessionQuery() string
	GormDialector(conn *sql.DB) gorm.Dialector
}

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverPostgres, "postgresql", "pgx":
		return PostgresDialect{}, nil
	case DriverMySQL, "mariadb":
		return MySQLDialect{}, nil
	case DriverSQLite, "sqlite3":
		return SQLiteDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
