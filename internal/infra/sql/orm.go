package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

type ORM interface {
	AutoMigrate(dst ...any) error
	Count(count *int64) ORM
	Create(value any) ORM
	Find(dest any, conds ...any) ORM
	First(dest any, conds ...any) ORM
	Model(value any) ORM
	Order(value any) ORM
	Updates(values any) ORM
	Transaction(fc func(tx ORM) error, opts ...*sql.TxOptions) error
	Where(query any, args ...any) ORM
	WithContext(ctx context.Context) ORM
	WithTimeout(ctx context.Context, timeout time.Duration) ORM

	Error() error
}

type DB struct {
	*gorm.DB
	dialect Dialect
	timeout time.Duration
}

var _ ORM = (*DB)(nil)

func (d DB) Error() error {
	switch {
	case d.DB.Error == nil:
		return nil
	case errors.Is(d.DB.Error, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case d.dialect != nil && d.dialect.IsNotProvisioned(d.DB.Error):
		return fmt.Errorf("%w: %s: %w", ErrStoreNotProvisioned, SetupHint, d.DB.Error)
	default:
		return fmt.Errorf("%w: %w", ErrQueryFailed, d.DB.Error)
	}
}

func (d DB) AutoMigrate(dst ...any) error {
	return d.DB.AutoMigrate(dst...)
}

func (d DB) Count(value *int64) ORM {
	d.DB = d.DB.Count(value)
	return &d
}

func (d DB) Create(value any) ORM {
	d.setSpanAttributes("create")
	d.DB = d.DB.Create(value)
	return &d
}

func (d DB) Find(value any, conds ...any) ORM {
	d.setSpanAttributes("find")
	d.DB = d.DB.Find(value, conds...)
	return &d
}

func (d DB) First(value any, conds ...any) ORM {
	d.setSpanAttributes("first")
	d.DB = d.DB.First(value, conds...)
	return &d
}

func (d DB) Model(value any) ORM {
	d.DB = d.DB.Model(value)
	return &d
}

func (d DB) Order(value any) ORM {
	d.DB = d.DB.Order(value)
	return &d
}

func (d DB) Updates(values any) ORM {
	d.setSpanAttributes("update")
	d.DB = d.DB.Updates(values)
	return &d
}

func (d DB) Where(value any, conds ...any) ORM {
	d.DB = d.DB.Where(value, conds...)
	return &d
}

// WithContext binds ctx to the session, bounded by the configured query timeout.
func (d DB) WithContext(value context.Context) ORM {
	if d.timeout > 0 {
		return d.WithTimeout(value, d.timeout)
	}

	d.DB = d.DB.WithContext(value)
	return &d
}

func (d DB) WithTimeout(ctx context.Context, timeout time.Duration) ORM {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	// cancel once the deadline passes or the parent is done
	go func() {
		<-timeoutCtx.Done()
		cancel()
	}()
	d.DB = d.DB.WithContext(timeoutCtx)
	return &d
}

func (d DB) Transaction(f func(ORM) error, opts ...*sql.TxOptions) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		return f(&DB{DB: tx, dialect: d.dialect, timeout: d.timeout})
	}, opts...)
}

func (d DB) setSpanAttributes(operation string) {
	ctx := d.DB.Statement.Context
	if ctx == nil {
		return
	}
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		system := "unknown"
		if d.dialect != nil {
			system = d.dialect.Name()
		}
		span.SetAttributes(
			attribute.String("component", "database"),
			attribute.String("db.system", system),
			attribute.String("db.operation", operation),
		)
	}
}
