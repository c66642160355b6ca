package usecases

//go:generate mockgen -source=database_service.go -destination=../../../test/unit/doubles/workbench/usecases/database_service_mock.go -package=usecases -mock_names=DatabaseService=MockDatabaseService,ScriptSource=MockScriptSource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"edudb-server/internal/infra/async"
	"edudb-server/internal/infra/sql"
	"edudb-server/internal/workbench/domain"
)

const _eventTimeout = 5 * time.Second

var ErrReadOnlyQuery = errors.New("only SELECT queries are allowed through this endpoint")

// DatabaseService is everything the workbench pages need from the store.
type DatabaseService interface {
	TestConnection(ctx context.Context, credentials domain.Credentials) error
	CheckStatus(ctx context.Context) (domain.Status, error)
	CreateDatabase(ctx context.Context, credentials domain.Credentials) (domain.ProvisionSummary, error)
	ListTables(ctx context.Context) ([]string, error)
	ReadTable(ctx context.Context, name string, page sql.Page) (sql.TablePage, error)
	InsertRow(ctx context.Context, name string, record sql.Record) (int64, error)
	UpdateRow(ctx context.Context, name string, id int64, record sql.Record) (int64, error)
	DeleteRow(ctx context.Context, name string, id int64) error
	ResetDatabase(ctx context.Context) error
	RunReadOnlyQuery(ctx context.Context, text string, params []any) ([]sql.Record, error)
}

// ScriptSource supplies the provisioning and reset scripts of the configured store.
type ScriptSource interface {
	Provisioning() ([]sql.NamedScript, error)
	Reset() (sql.NamedScript, error)
}

type DatabaseServiceOptions struct {
	Policy sql.FailurePolicy
}

func NewDatabaseService(
	pool *sql.Pool,
	accessor *sql.TableAccessor,
	runner *sql.Runner,
	scripts ScriptSource,
	broker async.InternalBroker,
	opts DatabaseServiceOptions,
) *SimpleDatabaseService {
	return &SimpleDatabaseService{
		pool:     pool,
		accessor: accessor,
		runner:   runner,
		scripts:  scripts,
		broker:   broker,
		opts:     opts,
	}
}

var _ DatabaseService = (*SimpleDatabaseService)(nil)

type SimpleDatabaseService struct {
	pool     *sql.Pool
	accessor *sql.TableAccessor
	runner   *sql.Runner
	scripts  ScriptSource
	broker   async.InternalBroker
	opts     DatabaseServiceOptions
}

// TestConnection reaches the store server without selecting the database, so it
// succeeds before the database has been created.
func (s *SimpleDatabaseService) TestConnection(ctx context.Context, credentials domain.Credentials) error {
	dialect := s.pool.Dialect()
	target := credentials.Target(s.pool.Target().Database)

	handle, err := dialect.Open(ctx, target, sql.OpenOptions{WithDatabase: false, MaxConns: 1})
	if err != nil {
		return fmt.Errorf("%w: %w", sql.ErrStoreUnavailable, err)
	}
	defer handle.Close()

	if err := handle.PingContext(ctx); err != nil {
		slog.Warn("connection test failed",
			slog.String("host", target.Host),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %w", sql.ErrStoreUnavailable, err)
	}

	return nil
}

func (s *SimpleDatabaseService) CheckStatus(ctx context.Context) (domain.Status, error) {
	tables, err := s.accessor.ListTables(ctx)
	switch {
	case err != nil && sql.IsProvisioningError(err):
		return domain.Status{Message: domain.StatusNotSetUpMessage}, nil
	case err != nil:
		slog.Warn("checking database status", slog.String("error", err.Error()))
		return domain.Status{Message: domain.StatusNotAccessibleMessage}, nil
	case len(tables) == 0:
		return domain.Status{Message: domain.StatusNotSetUpMessage}, nil
	}

	return domain.Status{
		Connected:  true,
		Message:    domain.StatusReadyMessage,
		TableCount: len(tables),
	}, nil
}

func (s *SimpleDatabaseService) CreateDatabase(ctx context.Context, credentials domain.Credentials) (domain.ProvisionSummary, error) {
	provisioning, err := s.scripts.Provisioning()
	if err != nil {
		return domain.ProvisionSummary{}, fmt.Errorf("loading provisioning scripts: %w", err)
	}

	target := credentials.Target(s.pool.Target().Database)
	report, err := s.runner.Provision(ctx, target, provisioning, sql.ProvisionOptions{Policy: s.opts.Policy})
	summary := domain.NewProvisionSummary(report)
	if summary.Applied > 0 {
		s.publish(ctx, async.DatabaseCreatedEvent, target.Database)
	}
	if err != nil {
		return summary, fmt.Errorf("creating database: %w", err)
	}

	return summary, nil
}

func (s *SimpleDatabaseService) ListTables(ctx context.Context) ([]string, error) {
	tables, err := s.accessor.ListTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	return tables, nil
}

func (s *SimpleDatabaseService) ReadTable(ctx context.Context, name string, page sql.Page) (sql.TablePage, error) {
	result, err := s.accessor.Read(ctx, name, page)
	if err != nil {
		return sql.TablePage{}, fmt.Errorf("reading table %s: %w", name, err)
	}
	return result, nil
}

func (s *SimpleDatabaseService) InsertRow(ctx context.Context, name string, record sql.Record) (int64, error) {
	id, err := s.accessor.Insert(ctx, name, record)
	if err != nil {
		return 0, fmt.Errorf("inserting into %s: %w", name, err)
	}

	slog.Info("record inserted", slog.String("table", name), slog.Int64("id", id))
	return id, nil
}

func (s *SimpleDatabaseService) UpdateRow(ctx context.Context, name string, id int64, record sql.Record) (int64, error) {
	affected, err := s.accessor.Update(ctx, name, id, record)
	if err != nil {
		return 0, fmt.Errorf("updating %s: %w", name, err)
	}
	return affected, nil
}

func (s *SimpleDatabaseService) DeleteRow(ctx context.Context, name string, id int64) error {
	if _, err := s.accessor.Delete(ctx, name, id); err != nil {
		return fmt.Errorf("deleting from %s: %w", name, err)
	}
	return nil
}

func (s *SimpleDatabaseService) ResetDatabase(ctx context.Context) error {
	script, err := s.scripts.Reset()
	if err != nil {
		return fmt.Errorf("loading reset script: %w", err)
	}

	if _, err := s.runner.Reset(ctx, script, sql.ResetOptions{StripComments: true}); err != nil {
		return fmt.Errorf("resetting database: %w", err)
	}

	s.publish(ctx, async.DatabaseResetEvent, s.pool.Target().Database)
	return nil
}

// publish announces that the database content was replaced and waits until the
// subscribers have handled it, so caches are clear before the caller returns.
// Nobody listening is not an error.
func (s *SimpleDatabaseService) publish(ctx context.Context, event, database string) {
	ctx, cancel := context.WithTimeout(ctx, _eventTimeout)
	defer cancel()

	err := s.broker.PublishAndWait(ctx, async.StoreEventsTopic, async.BrokerMessage{Event: event, Value: database})
	if err != nil && !errors.Is(err, async.ErrTopicNotFound) {
		slog.Error("publishing store event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

func (s *SimpleDatabaseService) RunReadOnlyQuery(ctx context.Context, text string, params []any) ([]sql.Record, error) {
	if !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(text)), "SELECT") {
		return nil, fmt.Errorf("%w: %w", sql.ErrInvalidArgument, ErrReadOnlyQuery)
	}

	rows, err := s.accessor.Query(ctx, text, params...)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	return rows, nil
}
