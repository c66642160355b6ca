package sql_test

import (
	"context"
	"os"

	"edudb-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

const _schemaScript = `
-- school schema
CREATE DATABASE IF NOT EXISTS edudb;
USE edudb;

CREATE TABLE students (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL -- full name
);
CREATE TABLE courses (id INTEGER PRIMARY KEY, title TEXT NOT NULL);
CREATE INDEX idx_students_name ON students (name);
INSERT INTO students (id, name) VALUES (1, 'Ana'), (2, 'Luis');
INSERT INTO courses (id, title) VALUES (1, 'Databases');

SELECT 'schema ready' AS message;
`

const _appScript = `
CREATE TABLE user_progress (id INTEGER PRIMARY KEY, beginner_score INTEGER DEFAULT 0);
INSERT INTO user_progress (id) VALUES (1);
`

var _ = ginkgo.Describe("Runner", func() {
	var (
		ctx    context.Context
		target sql.Target
		pool   *sql.Pool
		runner *sql.Runner
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		target = sqliteTarget()
		pool = sql.NewPool(sql.SQLiteDialect{}, target, sql.PoolOptions{})
		ginkgo.DeferCleanup(pool.Close)
		runner = sql.NewRunner(pool)
	})

	ginkgo.Context("Provision", func() {
		ginkgo.It("creates the database, applies the scripts and reinitializes the pool", func() {
			_, err := pool.Acquire(ctx)
			gomega.Expect(err).To(gomega.MatchError(sql.ErrStoreNotProvisioned))

			report, err := runner.Provision(ctx, target, []sql.NamedScript{
				{Name: "init_db.sql", Text: _schemaScript},
				{Name: "app_schema.sql", Text: _appScript},
			}, sql.ProvisionOptions{})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(report.Applied).To(gomega.Equal(7))
			gomega.Expect(report.Failed).To(gomega.BeZero())
			gomega.Expect(report.Skipped).To(gomega.Equal(3))

			_, err = os.Stat(target.Database)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(pool.Generation()).To(gomega.Equal(1))

			executor := sql.NewExecutor(pool)
			gomega.Expect(countRows(ctx, executor, "students")).To(gomega.Equal(int64(2)))
			gomega.Expect(countRows(ctx, executor, "user_progress")).To(gomega.Equal(int64(1)))
		})

		ginkgo.It("applies the other statements when one fails and still reports success", func() {
			broken := `
CREATE TABLE students (id INTEGER PRIMARY KEY, name TEXT);
INSERT INTO students (id, name) VALUES (1, 'Ana');
INSERT INTO students (id, name VALUES (2, 'Luis');
INSERT INTO students (id, name) VALUES (3, 'Marta');
CREATE TABLE teachers (id INTEGER PRIMARY KEY, name TEXT);
`
			report, err := runner.Provision(ctx, target, []sql.NamedScript{{Name: "init_db.sql", Text: broken}}, sql.ProvisionOptions{})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(report.Applied).To(gomega.Equal(4))
			gomega.Expect(report.Failed).To(gomega.Equal(1))

			failed := report.Outcomes[2]
			gomega.Expect(failed.Outcome).To(gomega.Equal(sql.OutcomeFailed))
			gomega.Expect(failed.Index).To(gomega.Equal(2))
			gomega.Expect(failed.Err).To(gomega.MatchError(sql.ErrQueryFailed))

			gomega.Expect(countRows(ctx, sql.NewExecutor(pool), "students")).To(gomega.Equal(int64(2)))
		})

		ginkgo.It("stops at the first failure in abort mode", func() {
			broken := `
CREATE TABLE students (id INTEGER PRIMARY KEY, name TEXT);
INSERT INTO students (id, name) VALUES (1, 'Ana');
INSERT INTO nowhere (id) VALUES (1);
CREATE TABLE teachers (id INTEGER PRIMARY KEY, name TEXT);
`
			report, err := runner.Provision(ctx, target, []sql.NamedScript{{Name: "init_db.sql", Text: broken}}, sql.ProvisionOptions{Policy: sql.AbortOnFailure})
			gomega.Expect(err).To(gomega.MatchError(sql.ErrQueryFailed))
			gomega.Expect(report.Applied).To(gomega.BeZero())
			gomega.Expect(report.Failed).To(gomega.Equal(1))
			gomega.Expect(report.Outcomes[0].Outcome).To(gomega.Equal(sql.OutcomeRolledBack))

			gomega.Expect(pool.Generation()).To(gomega.BeZero())

			check := sql.NewPool(sql.SQLiteDialect{}, target, sql.PoolOptions{})
			ginkgo.DeferCleanup(check.Close)
			tables, err := sql.NewTableAccessor(sql.NewExecutor(check)).ListTables(ctx)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(tables).To(gomega.BeEmpty())
		})

		ginkgo.It("aborts when the database cannot be created", func() {
			bad := sql.Target{Database: "/nonexistent-dir/edudb.db"}
			_, err := runner.Provision(ctx, bad, []sql.NamedScript{{Name: "init_db.sql", Text: _schemaScript}}, sql.ProvisionOptions{})
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(pool.Target()).To(gomega.Equal(target))
		})
	})

	ginkgo.Context("Reset", func() {
		const resetScript = `
DELETE FROM students;
INSERT INTO students (id, name) VALUES (1, 'Ana'), (2, 'Luis'), (3, 'Marta')
`

		ginkgo.BeforeEach(func() {
			_, err := runner.Provision(ctx, target, []sql.NamedScript{{Name: "init_db.sql", Text: _schemaScript}}, sql.ProvisionOptions{})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("produces the same rows when run twice", func() {
			executor := sql.NewExecutor(pool)
			mustExec(ctx, executor, "INSERT INTO students (id, name) VALUES (?, ?)", 10, "Extra")

			_, err := runner.Reset(ctx, sql.NamedScript{Name: "reset_db.sql", Text: resetScript}, sql.ResetOptions{})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			first := countRows(ctx, executor, "students")

			report, err := runner.Reset(ctx, sql.NamedScript{Name: "reset_db.sql", Text: resetScript}, sql.ResetOptions{})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(report.Applied).To(gomega.Equal(2))

			gomega.Expect(first).To(gomega.Equal(int64(3)))
			gomega.Expect(countRows(ctx, executor, "students")).To(gomega.Equal(first))
		})

		ginkgo.It("rolls back everything and surfaces the first failure", func() {
			script := `
DELETE FROM students;
INSERT INTO nowhere (id) VALUES (1);
INSERT INTO students (id, name) VALUES (9, 'Never')
`
			report, err := runner.Reset(ctx, sql.NamedScript{Name: "reset_db.sql", Text: script}, sql.ResetOptions{})
			gomega.Expect(err).To(gomega.MatchError(sql.ErrQueryFailed))
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("statement #1"))
			gomega.Expect(report.Failed).To(gomega.Equal(1))

			gomega.Expect(countRows(ctx, sql.NewExecutor(pool), "students")).To(gomega.Equal(int64(2)))
		})

		ginkgo.It("skips fragments that start with a comment unless comments are stripped", func() {
			script := "-- clear students\nDELETE FROM students;\nINSERT INTO students (id, name) VALUES (5, 'Eva')"

			_, err := runner.Reset(ctx, sql.NamedScript{Name: "reset_db.sql", Text: script}, sql.ResetOptions{})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(countRows(ctx, sql.NewExecutor(pool), "students")).To(gomega.Equal(int64(3)))

			_, err = runner.Reset(ctx, sql.NamedScript{Name: "reset_db.sql", Text: script}, sql.ResetOptions{StripComments: true})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(countRows(ctx, sql.NewExecutor(pool), "students")).To(gomega.Equal(int64(1)))
		})

		ginkgo.It("fails with a provisioning error when the store is missing", func() {
			missing := sql.NewRunner(sql.NewPool(sql.SQLiteDialect{}, sqliteTarget(), sql.PoolOptions{}))
			_, err := missing.Reset(ctx, sql.NamedScript{Name: "reset_db.sql", Text: resetScript}, sql.ResetOptions{})
			gomega.Expect(sql.IsProvisioningError(err)).To(gomega.BeTrue())
		})
	})
})

var _ = ginkgo.Describe("ParseFailurePolicy", func() {
	ginkgo.It("parses the named policies", func() {
		gomega.Expect(sql.ParseFailurePolicy("continue")).To(gomega.Equal(sql.ContinueOnFailure))
		gomega.Expect(sql.ParseFailurePolicy("ABORT")).To(gomega.Equal(sql.AbortOnFailure))
		gomega.Expect(sql.ParseFailurePolicy("")).To(gomega.Equal(sql.ContinueOnFailure))
	})

	ginkgo.It("rejects unknown policies", func() {
		_, err := sql.ParseFailurePolicy("sometimes")
		gomega.Expect(err).To(gomega.MatchError(sql.ErrInvalidArgument))
	})
})
