package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	_postgresDefaultPort   = 5432
	_postgresMaintenanceDB = "postgres"

	_pgInvalidCatalogName = "3D000"
	_pgDuplicateDatabase  = "42P04"
)

type PostgresDialect struct{}

var _ Dialect = PostgresDialect{}

func (PostgresDialect) Name() string {
	return DriverPostgres
}

// Open builds a bounded pgxpool and exposes it through database/sql so the rest of
// the layer stays driver agnostic.
func (PostgresDialect) Open(ctx context.Context, target Target, opts OpenOptions) (*Handle, error) {
	database := _postgresMaintenanceDB
	if opts.WithDatabase {
		database = target.Database
	}

	cfg, err := pgxpool.ParseConfig(postgresURL(target, database))
	if err != nil {
		return nil, fmt.Errorf("parsing postgres config: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = int32(opts.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	if opts.MaxConns > 0 {
		db.SetMaxOpenConns(opts.MaxConns)
	}

	return newHandle(sqlx.NewDb(db, "pgx"), pool.Close), nil
}

func (PostgresDialect) EnsureDatabase(ctx context.Context, db *Handle, target Target) error {
	if err := ValidateIdentifier(target.Database); err != nil {
		return err
	}

	var exists int
	err := db.QueryRowxContext(ctx, "SELECT 1 FROM pg_database WHERE datname = $1", target.Database).Scan(&exists)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("looking up database: %w", err)
	}

	_, err = db.ExecContext(ctx, "CREATE DATABASE "+target.Database)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == _pgDuplicateDatabase {
		return nil
	}
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}

	return nil
}

func (PostgresDialect) ListTablesQuery() string {
	return "SELECT table_name FROM information_schema.tables " +
		"WHERE table_schema = current_schema() AND table_type = 'BASE TABLE' ORDER BY table_name"
}

func (PostgresDialect) IsNotProvisioned(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == _pgInvalidCatalogName
}

func (PostgresDialect) InsertReturning() bool {
	return true
}

// ResetSessionQuery uses RESET ALL rather than DISCARD ALL so the statement cache
// pgx keeps per connection stays valid.
func (PostgresDialect) ResetSessionQuery() string {
	return "RESET ALL"
}

func (PostgresDialect) GormDialector(conn *sql.DB) gorm.Dialector {
	return postgres.New(postgres.Config{Conn: conn})
}

func postgresURL(target Target, database string) string {
	port := target.Port
	if port == 0 {
		port = _postgresDefaultPort
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(target.Host, strconv.Itoa(port)),
		Path:   "/" + database,
	}
	if target.User != "" {
		u.User = url.UserPassword(target.User, target.Password)
	}

	return u.String()
}
