package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	_mysqlDefaultPort = 3306

	_mysqlUnknownDatabase = 1049
)

type MySQLDialect struct{}

var _ Dialect = MySQLDialect{}

func (MySQLDialect) Name() string {
	return DriverMySQL
}

func (MySQLDialect) Open(_ context.Context, target Target, opts OpenOptions) (*Handle, error) {
	port := target.Port
	if port == 0 {
		port = _mysqlDefaultPort
	}

	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(target.Host, strconv.Itoa(port))
	cfg.User = target.User
	cfg.Passwd = target.Password
	cfg.ParseTime = true
	cfg.Collation = "utf8mb4_unicode_ci"
	if opts.WithDatabase {
		cfg.DBName = target.Database
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating mysql connector: %w", err)
	}

	db := sql.OpenDB(connector)
	if opts.MaxConns > 0 {
		db.SetMaxOpenConns(opts.MaxConns)
		db.SetMaxIdleConns(opts.MaxConns)
	}

	return newHandle(sqlx.NewDb(db, "mysql"), nil), nil
}

func (MySQLDialect) EnsureDatabase(ctx context.Context, db *Handle, target Target) error {
	if err := ValidateIdentifier(target.Database); err != nil {
		return err
	}

	_, err := db.ExecContext(ctx, "CREATE DATABASE IF NOT EXISTS "+target.Database+
		" CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci")
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}

	return nil
}

func (MySQLDialect) ListTablesQuery() string {
	return "SHOW TABLES"
}

func (MySQLDialect) IsNotProvisioned(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == _mysqlUnknownDatabase
}

func (MySQLDialect) InsertReturning() bool {
	return false
}

// ResetSessionQuery is empty: MySQL has no SQL-level equivalent of
// COM_RESET_CONNECTION.
func (MySQLDialect) ResetSessionQuery() string {
	return ""
}

func (MySQLDialect) GormDialector(conn *sql.DB) gorm.Dialector {
	return gormmysql.New(gormmysql.Config{Conn: conn, SkipInitializeWithVersion: true})
}
