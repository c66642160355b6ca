package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	_sqliteDriver = "sqlite3"
	_sqliteParams = "_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=1"
)

// SQLiteDialect treats Target.Database as a file path. Host, port and
// credentials are ignored.
type SQLiteDialect struct{}

var _ Dialect = SQLiteDialect{}

func (SQLiteDialect) Name() string {
	return DriverSQLite
}

// Open never creates the database file when WithDatabase is set, so a missing
// file surfaces as "not provisioned" instead of an empty database.
func (SQLiteDialect) Open(_ context.Context, target Target, opts OpenOptions) (*Handle, error) {
	dsn := "file::memory:"
	if opts.WithDatabase {
		dsn = sqliteDSN(target.Database, "rw")
	}

	db, err := sqlx.Open(_sqliteDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if opts.MaxConns > 0 {
		db.SetMaxOpenConns(opts.MaxConns)
		db.SetMaxIdleConns(opts.MaxConns)
	}

	return newHandle(db, nil), nil
}

func (SQLiteDialect) EnsureDatabase(ctx context.Context, _ *Handle, target Target) error {
	if strings.TrimSpace(target.Database) == "" {
		return fmt.Errorf("%w: sqlite database path is empty", ErrInvalidArgument)
	}

	db, err := sql.Open(_sqliteDriver, sqliteDSN(target.Database, "rwc"))
	if err != nil {
		return fmt.Errorf("opening sqlite database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("creating sqlite database: %w", err)
	}

	return nil
}

func (SQLiteDialect) ListTablesQuery() string {
	return "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name"
}

func (SQLiteDialect) IsNotProvisioned(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrCantOpen {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "unable to open database file")
}

func (SQLiteDialect) InsertReturning() bool {
	return false
}

func (SQLiteDialect) ResetSessionQuery() string {
	return ""
}

func (SQLiteDialect) GormDialector(conn *sql.DB) gorm.Dialector {
	return sqlite.Dialector{DriverName: _sqliteDriver, Conn: conn}
}

func sqliteDSN(path, mode string) string {
	return fmt.Sprintf("file:%s?mode=%s&%s", path, mode, _sqliteParams)
}
