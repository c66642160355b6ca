package sql

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

var _identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidateIdentifier is the gate every table or column name passes before it is
// written into SQL text.
func ValidateIdentifier(name string) error {
	if !_identifierPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return nil
}

type Page struct {
	Limit  int
	Offset int
}

var DefaultPage = Page{Limit: 100, Offset: 0}

func (p Page) Validate() error {
	if p.Limit < 0 || p.Offset < 0 {
		return fmt.Errorf("%w: limit and offset must not be negative", ErrInvalidArgument)
	}
	return nil
}

// ParsePage parses raw limit/offset values. Empty values fall back to DefaultPage.
func ParsePage(limit, offset string) (Page, error) {
	page := DefaultPage

	if strings.TrimSpace(limit) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(limit))
		if err != nil {
			return Page{}, fmt.Errorf("%w: limit %q is not a number", ErrInvalidArgument, limit)
		}
		page.Limit = n
	}
	if strings.TrimSpace(offset) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(offset))
		if err != nil {
			return Page{}, fmt.Errorf("%w: offset %q is not a number", ErrInvalidArgument, offset)
		}
		page.Offset = n
	}

	if err := page.Validate(); err != nil {
		return Page{}, err
	}

	return page, nil
}

type TablePage struct {
	Rows  []Record
	Total int64
}

type rowOptions struct {
	idColumn string
}

type Option func(*rowOptions)

// WithIDColumn overrides the key column, which defaults to "id".
func WithIDColumn(column string) Option {
	return func(o *rowOptions) {
		o.idColumn = column
	}
}

func buildRowOptions(opts []Option) (rowOptions, error) {
	o := rowOptions{idColumn: "id"}
	for _, opt := range opts {
		opt(&o)
	}
	return o, ValidateIdentifier(o.idColumn)
}

// TableAccessor gives CRUD access to any table by name.
type TableAccessor struct {
	executor *Executor
}

func NewTableAccessor(executor *Executor) *TableAccessor {
	return &TableAccessor{executor: executor}
}

func (a *TableAccessor) ListTables(ctx context.Context) ([]string, error) {
	result, err := a.executor.Execute(ctx, NewStatement(a.dialect().ListTablesQuery()), FetchAll)
	if err != nil {
		return nil, err
	}

	tables := make([]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		if len(row) == 0 {
			continue
		}
		tables = append(tables, fmt.Sprint(row[0].Value))
	}

	return tables, nil
}

// Read returns one page of rows and the table's total row count. When the count
// fails the total falls back to the number of rows read.
func (a *TableAccessor) Read(ctx context.Context, table string, page Page) (TablePage, error) {
	if err := ValidateIdentifier(table); err != nil {
		return TablePage{}, err
	}
	if err := page.Validate(); err != nil {
		return TablePage{}, err
	}

	query := fmt.Sprintf("SELECT * FROM %s LIMIT %d OFFSET %d", table, page.Limit, page.Offset)
	result, err := a.executor.Execute(ctx, NewStatement(query), FetchAll)
	if err != nil {
		return TablePage{}, err
	}

	out := TablePage{Rows: result.Rows, Total: int64(len(result.Rows))}

	count, err := a.executor.Execute(ctx, NewStatement("SELECT COUNT(*) AS total FROM "+table), FetchOne)
	if err != nil {
		slog.Warn("error counting rows, using page size",
			slog.String("table", table),
			slog.String("error", err.Error()),
		)
		return out, nil
	}
	if row, ok := count.First(); ok && len(row) > 0 {
		if total, ok := toInt64(row[0].Value); ok {
			out.Total = total
		}
	}

	return out, nil
}

func (a *TableAccessor) Insert(ctx context.Context, table string, record Record, opts ...Option) (int64, error) {
	if err := a.validate(table, record); err != nil {
		return 0, err
	}
	o, err := buildRowOptions(opts)
	if err != nil {
		return 0, err
	}

	columns := make([]string, len(record))
	placeholders := make([]string, len(record))
	args := make([]any, len(record))
	for i, f := range record {
		columns[i] = f.Column
		placeholders[i] = "?"
		args[i] = f.Value
	}

	stmt := NewStatement(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", ")), args...)
	if a.dialect().InsertReturning() {
		stmt.Text += " RETURNING *"
		stmt.ReturningColumn = o.idColumn
	}

	result, err := a.executor.Execute(ctx, stmt, FetchNone)
	if err != nil {
		return 0, err
	}

	return result.LastInsertID, nil
}

func (a *TableAccessor) Update(ctx context.Context, table string, id any, record Record, opts ...Option) (int64, error) {
	if err := a.validate(table, record); err != nil {
		return 0, err
	}
	o, err := buildRowOptions(opts)
	if err != nil {
		return 0, err
	}

	assignments := make([]string, len(record))
	args := make([]any, 0, len(record)+1)
	for i, f := range record {
		assignments[i] = f.Column + " = ?"
		args = append(args, f.Value)
	}
	args = append(args, id)

	stmt := NewStatement(fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		table, strings.Join(assignments, ", "), o.idColumn), args...)

	result, err := a.executor.Execute(ctx, stmt, FetchNone)
	if err != nil {
		return 0, err
	}

	return result.AffectedRows, nil
}

func (a *TableAccessor) Delete(ctx context.Context, table string, id any, opts ...Option) (int64, error) {
	if err := ValidateIdentifier(table); err != nil {
		return 0, err
	}
	o, err := buildRowOptions(opts)
	if err != nil {
		return 0, err
	}

	stmt := NewStatement(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, o.idColumn), id)
	result, err := a.executor.Execute(ctx, stmt, FetchNone)
	if err != nil {
		return 0, err
	}

	return result.AffectedRows, nil
}

// Query runs a caller supplied read statement with bound parameters.
func (a *TableAccessor) Query(ctx context.Context, text string, args ...any) ([]Record, error) {
	stmt := NewStatement(text, args...)
	if !stmt.IsRead() {
		return nil, fmt.Errorf("%w: only read statements are allowed", ErrInvalidArgument)
	}
	if len(ParseScript(text, ParseOptions{StripComments: true})) > 1 {
		return nil, fmt.Errorf("%w: only a single statement is allowed", ErrInvalidArgument)
	}

	result, err := a.executor.Execute(ctx, stmt, FetchAll)
	if err != nil {
		return nil, err
	}

	return result.Rows, nil
}

func (a *TableAccessor) validate(table string, record Record) error {
	if err := ValidateIdentifier(table); err != nil {
		return err
	}
	if len(record) == 0 {
		return fmt.Errorf("%w: record has no columns", ErrInvalidArgument)
	}
	for _, f := range record {
		if err := ValidateIdentifier(f.Column); err != nil {
			return err
		}
	}
	return nil
}

func (a *TableAccessor) dialect() Dialect {
	return a.executor.Pool().Dialect()
}
