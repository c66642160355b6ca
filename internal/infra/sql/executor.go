package sql

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Result struct {
	Rows         []Record
	AffectedRows int64
	LastInsertID int64
}

// First returns the first row, if any.
func (r Result) First() (Record, bool) {
	if len(r.Rows) == 0 {
		return nil, false
	}
	return r.Rows[0], true
}

// Executor runs single statements on leased connections. Every call leases its own
// connection and returns it before returning.
type Executor struct {
	pool   *Pool
	tracer trace.Tracer
}

func NewExecutor(pool *Pool) *Executor {
	return &Executor{
		pool:   pool,
		tracer: otel.Tracer("edudb-server"),
	}
}

func (e *Executor) Pool() *Pool {
	return e.pool
}

func (e *Executor) Execute(ctx context.Context, stmt Statement, mode FetchMode) (result Result, err error) {
	ctx, span := e.startSpan(ctx, stmt.Verb())
	defer span.End()

	lease, err := e.pool.Acquire(ctx)
	if err != nil {
		recordSpanError(span, err)
		return Result{}, err
	}
	defer lease.Release()
	defer func() {
		if r := recover(); r != nil {
			result = Result{}
			err = fmt.Errorf("%w: %v", ErrQueryFailed, r)
		}
		if err != nil {
			recordSpanError(span, err)
		}
	}()

	if stmt.IsRead() {
		return e.query(ctx, lease.Conn(), stmt, mode)
	}
	return e.write(ctx, lease.Conn(), stmt, mode)
}

// ExecuteBatch applies text once per argument tuple inside one transaction. Any
// failure rolls back the whole batch.
func (e *Executor) ExecuteBatch(ctx context.Context, text string, argsList [][]any) (result Result, err error) {
	ctx, span := e.startSpan(ctx, leadingVerb(text))
	defer span.End()

	lease, err := e.pool.Acquire(ctx)
	if err != nil {
		recordSpanError(span, err)
		return Result{}, err
	}
	defer lease.Release()
	defer func() {
		if r := recover(); r != nil {
			result = Result{}
			err = fmt.Errorf("%w: %v", ErrQueryFailed, r)
		}
		if err != nil {
			recordSpanError(span, err)
		}
	}()

	conn := lease.Conn()
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return Result{}, classifyError(e.pool.Dialect(), err)
	}

	fail := func(err error) (Result, error) {
		_ = tx.Rollback()
		return Result{}, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	prepared, err := tx.PreparexContext(ctx, conn.Rebind(text))
	if err != nil {
		return fail(err)
	}
	defer prepared.Close()

	for _, args := range argsList {
		res, err := prepared.ExecContext(ctx, args...)
		if err != nil {
			return fail(err)
		}
		if affected, err := res.RowsAffected(); err == nil {
			result.AffectedRows += affected
		}
	}

	if err := tx.Commit(); err != nil {
		return fail(err)
	}

	return result, nil
}

func (e *Executor) query(ctx context.Context, conn *sqlx.Conn, stmt Statement, mode FetchMode) (Result, error) {
	rows, err := conn.QueryxContext(ctx, conn.Rebind(stmt.Text), stmt.Args...)
	if err != nil {
		return Result{}, classifyError(e.pool.Dialect(), err)
	}

	records, err := scanRecords(rows, mode)
	if err != nil {
		return Result{}, classifyError(e.pool.Dialect(), err)
	}

	return Result{Rows: records}, nil
}

func (e *Executor) write(ctx context.Context, conn *sqlx.Conn, stmt Statement, mode FetchMode) (Result, error) {
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return Result{}, classifyError(e.pool.Dialect(), err)
	}

	fail := func(err error) (Result, error) {
		_ = tx.Rollback()
		return Result{}, classifyError(e.pool.Dialect(), err)
	}

	var result Result
	if stmt.ReturningColumn != "" {
		rows, err := tx.QueryxContext(ctx, conn.Rebind(stmt.Text), stmt.Args...)
		if err != nil {
			return fail(err)
		}
		records, err := scanRecords(rows, FetchAll)
		if err != nil {
			return fail(err)
		}

		result.AffectedRows = int64(len(records))
		if len(records) > 0 {
			if id, ok := records[0].Get(stmt.ReturningColumn); ok {
				result.LastInsertID, _ = toInt64(id)
			}
		}
		if mode != FetchNone {
			result.Rows = records
		}
	} else {
		res, err := tx.ExecContext(ctx, conn.Rebind(stmt.Text), stmt.Args...)
		if err != nil {
			return fail(err)
		}
		// not every driver reports both values
		result.AffectedRows, _ = res.RowsAffected()
		result.LastInsertID, _ = res.LastInsertId()
	}

	if err := tx.Commit(); err != nil {
		return fail(err)
	}

	return result, nil
}

func scanRecords(rows *sqlx.Rows, mode FetchMode) ([]Record, error) {
	defer rows.Close()

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	records := []Record{}
	for rows.Next() {
		if mode == FetchNone {
			continue
		}
		if mode == FetchOne && len(records) == 1 {
			continue
		}

		values, err := rows.SliceScan()
		if err != nil {
			return nil, err
		}

		record := make(Record, len(values))
		for i, value := range values {
			record[i] = Field{
				Column: columnTypes[i].Name(),
				Value:  normalizeValue(value, columnTypes[i].DatabaseTypeName()),
			}
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (e *Executor) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	return e.tracer.Start(ctx, "sql.execute",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", e.pool.Dialect().Name()),
			attribute.String("db.operation", operation),
		),
	)
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
