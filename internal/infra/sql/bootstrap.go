package sql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
)

// FailurePolicy decides what a script run does when one statement fails.
type FailurePolicy int

const (
	// ContinueOnFailure runs each statement in its own transaction, logs and rolls
	// back failures and keeps going.
	ContinueOnFailure FailurePolicy = iota
	// AbortOnFailure runs the whole script in one transaction and stops at the
	// first failure.
	AbortOnFailure
)

func (p FailurePolicy) String() string {
	if p == AbortOnFailure {
		return "abort"
	}
	return "continue"
}

func ParseFailurePolicy(value string) (FailurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "continue":
		return ContinueOnFailure, nil
	case "abort":
		return AbortOnFailure, nil
	default:
		return ContinueOnFailure, fmt.Errorf("%w: unknown failure policy %q", ErrInvalidArgument, value)
	}
}

type Outcome string

const (
	OutcomeApplied    Outcome = "applied"
	OutcomeFailed     Outcome = "failed"
	OutcomeSkipped    Outcome = "skipped"
	OutcomeRolledBack Outcome = "rolled_back"
)

type StatementOutcome struct {
	Script    string
	Index     int
	Statement string
	Outcome   Outcome
	Err       error
}

type RunReport struct {
	Applied  int
	Failed   int
	Skipped  int
	Outcomes []StatementOutcome
}

func (r *RunReport) add(outcome StatementOutcome) {
	switch outcome.Outcome {
	case OutcomeApplied:
		r.Applied++
	case OutcomeFailed:
		r.Failed++
	case OutcomeSkipped:
		r.Skipped++
	}
	r.Outcomes = append(r.Outcomes, outcome)
}

type ProvisionOptions struct {
	Policy FailurePolicy
}

type ResetOptions struct {
	StripComments bool
}

// Runner provisions and resets the database from SQL scripts. Runs are serialized.
type Runner struct {
	mu   sync.Mutex
	pool *Pool
}

func NewRunner(pool *Pool) *Runner {
	return &Runner{pool: pool}
}

// Provision creates target's database when missing, applies scripts over one
// dedicated connection and points the pool at target. Under ContinueOnFailure
// statement failures are reported, not returned. Connecting or creating the
// database aborts the run.
func (r *Runner) Provision(ctx context.Context, target Target, scripts []NamedScript, opts ProvisionOptions) (RunReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var report RunReport
	dialect := r.pool.Dialect()

	if err := r.ensureDatabase(ctx, dialect, target); err != nil {
		slog.Error("database creation error", slog.String("error", err.Error()))
		return report, err
	}
	slog.Info("database created or already exists", slog.String("database", target.Database))

	db, err := dialect.Open(ctx, target, OpenOptions{WithDatabase: true, MaxConns: 1})
	if err != nil {
		return report, unavailableError(dialect, err)
	}
	defer db.Close()

	conn, err := db.Connx(ctx)
	if err != nil {
		return report, unavailableError(dialect, err)
	}
	defer conn.Close()

	for _, script := range scripts {
		statements := ParseScript(script.Text, ParseOptions{StripComments: true})
		if err := r.apply(ctx, conn, script.Name, statements, opts.Policy, true, &report); err != nil {
			return report, err
		}
		slog.Info("script executed", slog.String("script", script.Name))
	}

	r.pool.Retarget(target)
	if err := r.pool.Initialize(ctx); err != nil {
		slog.Warn("pool not available after provisioning", slog.String("error", err.Error()))
	}

	slog.Info("database provisioned",
		slog.Int("applied", report.Applied),
		slog.Int("failed", report.Failed),
		slog.Int("skipped", report.Skipped),
	)

	return report, nil
}

func (r *Runner) ensureDatabase(ctx context.Context, dialect Dialect, target Target) error {
	admin, err := dialect.Open(ctx, target, OpenOptions{WithDatabase: false, MaxConns: 1})
	if err != nil {
		return unavailableError(dialect, err)
	}
	defer admin.Close()

	if err := admin.PingContext(ctx); err != nil {
		return unavailableError(dialect, err)
	}

	if err := dialect.EnsureDatabase(ctx, admin, target); err != nil {
		if errors.Is(err, ErrInvalidIdentifier) || errors.Is(err, ErrInvalidArgument) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	return nil
}

// Reset runs script over one leased connection in a single transaction. The first
// failing statement rolls everything back and is returned.
func (r *Runner) Reset(ctx context.Context, script NamedScript, opts ResetOptions) (RunReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var report RunReport

	var statements []string
	for _, statement := range ParseScript(script.Text, ParseOptions{StripComments: opts.StripComments}) {
		if strings.HasPrefix(statement, _commentMarker) {
			continue
		}
		statements = append(statements, statement)
	}

	lease, err := r.pool.Acquire(ctx)
	if err != nil {
		return report, err
	}
	defer lease.Release()

	if err := r.apply(ctx, lease.Conn(), script.Name, statements, AbortOnFailure, false, &report); err != nil {
		slog.Error("database reset error", slog.String("error", err.Error()))
		return report, err
	}

	slog.Info("database reset", slog.String("script", script.Name), slog.Int("statements", report.Applied))
	return report, nil
}

func (r *Runner) apply(ctx context.Context, conn *sqlx.Conn, name string, statements []string, policy FailurePolicy, provisioning bool, report *RunReport) error {
	if policy == AbortOnFailure {
		return r.applyAtomically(ctx, conn, name, statements, provisioning, report)
	}

	for i, statement := range statements {
		outcome := StatementOutcome{Script: name, Index: i, Statement: statement}

		if provisioning && isProvisioningOnly(statement) {
			slog.Info("skipping statement", slog.String("statement", snippet(statement, 50)))
			outcome.Outcome = OutcomeSkipped
			report.add(outcome)
			continue
		}

		if err := execInTx(ctx, conn, statement); err != nil {
			slog.Error("error executing statement",
				slog.String("script", name),
				slog.Int("index", i),
				slog.String("statement", snippet(statement, 80)),
				slog.String("error", err.Error()),
			)
			outcome.Outcome = OutcomeFailed
			outcome.Err = classifyError(r.pool.Dialect(), err)
			report.add(outcome)
			continue
		}

		slog.Info(describeStatement(statement), slog.String("script", name))
		outcome.Outcome = OutcomeApplied
		report.add(outcome)
	}

	return nil
}

func (r *Runner) applyAtomically(ctx context.Context, conn *sqlx.Conn, name string, statements []string, provisioning bool, report *RunReport) error {
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return classifyError(r.pool.Dialect(), err)
	}

	var executed []StatementOutcome
	for i, statement := range statements {
		outcome := StatementOutcome{Script: name, Index: i, Statement: statement}

		if provisioning && isProvisioningOnly(statement) {
			outcome.Outcome = OutcomeSkipped
			executed = append(executed, outcome)
			continue
		}

		if _, err := tx.ExecContext(ctx, statement); err != nil {
			_ = tx.Rollback()
			for _, done := range executed {
				if done.Outcome == OutcomeApplied {
					done.Outcome = OutcomeRolledBack
				}
				report.add(done)
			}
			outcome.Outcome = OutcomeFailed
			outcome.Err = classifyError(r.pool.Dialect(), err)
			report.add(outcome)
			return fmt.Errorf("statement #%d (%s): %w", i, snippet(statement, 80), outcome.Err)
		}

		outcome.Outcome = OutcomeApplied
		executed = append(executed, outcome)
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return classifyError(r.pool.Dialect(), err)
	}

	for _, done := range executed {
		if done.Outcome == OutcomeApplied {
			slog.Info(describeStatement(done.Statement), slog.String("script", name))
		}
		report.add(done)
	}

	return nil
}

func execInTx(ctx context.Context, conn *sqlx.Conn, statement string) error {
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, statement); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
