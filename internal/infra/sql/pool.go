package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const _defaultMaxConns = 5

type PoolOptions struct {
	MaxConns       int
	ResetOnRelease bool
	// AcquireTimeout bounds the wait for a free connection when the caller's
	// context has no deadline. Zero waits forever.
	AcquireTimeout time.Duration
	// QueryTimeout is applied to ORM calls made through Pool.ORM.
	QueryTimeout time.Duration
	Registerer   prometheus.Registerer
}

// Pool owns at most one live connection pool to the target database. It is created
// lazily on the first Acquire and rebuilt after Reset or Retarget.
type Pool struct {
	mu         sync.Mutex
	dialect    Dialect
	target     Target
	opts       PoolOptions
	handle     *Handle
	orm        *DB
	collector  prometheus.Collector
	generation int
	lastErr    error
}

func NewPool(dialect Dialect, target Target, opts PoolOptions) *Pool {
	if opts.MaxConns <= 0 {
		opts.MaxConns = _defaultMaxConns
	}

	return &Pool{
		dialect: dialect,
		target:  target,
		opts:    opts,
	}
}

func (p *Pool) Dialect() Dialect {
	return p.dialect
}

func (p *Pool) Target() Target {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.target
}

// Generation is the number of pools created so far.
func (p *Pool) Generation() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation
}

// LastError is the cause of the most recent failed initialization, nil once a
// pool is live.
func (p *Pool) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

func (p *Pool) Stats() sql.DBStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handle == nil {
		return sql.DBStats{}
	}
	return p.handle.Stats()
}

// Initialize builds the pool if it does not exist yet. Failure never panics: the
// cause is recorded and returned wrapped in ErrStoreUnavailable so the service can
// keep running in degraded mode.
func (p *Pool) Initialize(ctx context.Context) error {
	_, err := p.current(ctx)
	return err
}

func (p *Pool) current(ctx context.Context) (*Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.currentLocked(ctx)
}

func (p *Pool) currentLocked(ctx context.Context) (*Handle, error) {
	if p.handle != nil {
		return p.handle, nil
	}

	handle, err := p.dialect.Open(ctx, p.target, OpenOptions{WithDatabase: true, MaxConns: p.opts.MaxConns})
	if err == nil {
		if err = handle.PingContext(ctx); err != nil {
			_ = handle.Close()
		}
	}
	if err != nil {
		p.lastErr = err
		slog.Error("error creating connection pool",
			slog.String("database", p.target.Database),
			slog.String("error", err.Error()),
		)
		slog.Warn("database not available yet, use the setup flow to create it")
		return nil, unavailableError(p.dialect, err)
	}

	p.handle = handle
	p.lastErr = nil
	p.generation++
	p.registerCollector(handle)

	slog.Info("connection pool created",
		slog.String("driver", p.dialect.Name()),
		slog.String("database", p.target.Database),
		slog.Int("max_conns", p.opts.MaxConns),
	)

	return handle, nil
}

// Acquire leases one connection, initializing the pool first when needed. The
// caller must Release the lease on every path.
func (p *Pool) Acquire(ctx context.Context) (*Lease, error) {
	handle, err := p.current(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := ctx.Deadline(); !ok && p.opts.AcquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.AcquireTimeout)
		defer cancel()
	}

	conn, err := handle.Connx(ctx)
	if err != nil {
		return nil, unavailableError(p.dialect, err)
	}

	lease := &Lease{conn: conn}
	if p.opts.ResetOnRelease {
		lease.resetQuery = p.dialect.ResetSessionQuery()
	}

	return lease, nil
}

// ORMSource hands out the ORM bound to the live pool. Repositories hold the
// source, not an ORM, because the pool is rebuilt after provisioning.
type ORMSource interface {
	ORM(ctx context.Context) (ORM, error)
}

var _ ORMSource = (*Pool)(nil)

// ORM returns a gorm session over the live pool. It shares the pool's connections
// and is rebuilt together with the pool. The session is built under the same lock
// that picks the handle, so it never outlives a Reset.
func (p *Pool) ORM(ctx context.Context) (ORM, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	handle, err := p.currentLocked(ctx)
	if err != nil {
		return nil, err
	}

	if p.orm != nil {
		return p.orm, nil
	}

	gormDB, err := gorm.Open(p.dialect.GormDialector(handle.DB.DB), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: opening orm: %w", ErrStoreUnavailable, err)
	}

	p.orm = &DB{DB: gormDB, dialect: p.dialect, timeout: p.opts.QueryTimeout}
	return p.orm, nil
}

// Reset discards the current pool so the next Acquire rebuilds it against fresh
// state.
func (p *Pool) Reset() {
	p.mu.Lock()
	handle := p.detachLocked()
	p.mu.Unlock()

	closeHandle(handle)
}

// Retarget points the pool at a new target and discards the current pool.
func (p *Pool) Retarget(target Target) {
	p.mu.Lock()
	p.target = target
	handle := p.detachLocked()
	p.mu.Unlock()

	closeHandle(handle)
}

func (p *Pool) Close() {
	p.Reset()
}

func (p *Pool) detachLocked() *Handle {
	handle := p.handle
	p.handle = nil
	p.orm = nil
	if p.collector != nil && p.opts.Registerer != nil {
		p.opts.Registerer.Unregister(p.collector)
	}
	p.collector = nil
	return handle
}

func (p *Pool) registerCollector(handle *Handle) {
	if p.opts.Registerer == nil {
		return
	}

	collector := collectors.NewDBStatsCollector(handle.DB.DB, p.target.Database)
	if err := p.opts.Registerer.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			slog.Warn("error registering pool metrics", slog.String("error", err.Error()))
		}
		return
	}
	p.collector = collector
}

func closeHandle(handle *Handle) {
	if handle == nil {
		return
	}
	if err := handle.Close(); err != nil {
		slog.Warn("error closing connection pool", slog.String("error", err.Error()))
	}
	slog.Info("connection pool reset")
}

// Lease is a connection borrowed from the pool for one logical operation.
type Lease struct {
	conn       *sqlx.Conn
	resetQuery string
	once       sync.Once
}

func (l *Lease) Conn() *sqlx.Conn {
	return l.conn
}

// Release returns the connection to the pool. Calling it more than once is safe.
func (l *Lease) Release() {
	l.once.Do(func() {
		if l.resetQuery != "" {
			if _, err := l.conn.ExecContext(context.Background(), l.resetQuery); err != nil {
				slog.Warn("error resetting session", slog.String("error", err.Error()))
			}
		}
		if err := l.conn.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
			slog.Warn("error releasing connection", slog.String("error", err.Error()))
		}
	})
}
