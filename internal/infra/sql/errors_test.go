package sql

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Error classification", func() {
	ginkgo.DescribeTable("classifyError",
		func(dialect Dialect, cause error, provisioning bool) {
			err := classifyError(dialect, fmt.Errorf("running statement: %w", cause))

			gomega.Expect(IsProvisioningError(err)).To(gomega.Equal(provisioning))
			if provisioning {
				gomega.Expect(err).To(gomega.MatchError(ErrStoreNotProvisioned))
				gomega.Expect(err.Error()).To(gomega.ContainSubstring(SetupHint))
			} else {
				gomega.Expect(err).To(gomega.MatchError(ErrQueryFailed))
			}
			gomega.Expect(errors.Is(err, cause)).To(gomega.BeTrue())
		},
		ginkgo.Entry("mysql unknown database", MySQLDialect{}, &mysql.MySQLError{Number: 1049, Message: "Unknown database 'edudb'"}, true),
		ginkgo.Entry("mysql unknown table", MySQLDialect{}, &mysql.MySQLError{Number: 1146, Message: "Table 'edudb.x' doesn't exist"}, false),
		ginkgo.Entry("postgres invalid catalog name", PostgresDialect{}, &pgconn.PgError{Code: "3D000", Message: `database "edudb" does not exist`}, true),
		ginkgo.Entry("postgres undefined table", PostgresDialect{}, &pgconn.PgError{Code: "42P01", Message: `relation "x" does not exist`}, false),
		ginkgo.Entry("postgres code under mysql", MySQLDialect{}, &pgconn.PgError{Code: "3D000"}, false),
	)

	ginkgo.DescribeTable("unavailableError",
		func(dialect Dialect, cause error, notProvisioned bool) {
			err := unavailableError(dialect, fmt.Errorf("opening pool: %w", cause))

			gomega.Expect(IsProvisioningError(err)).To(gomega.BeTrue())
			gomega.Expect(err).To(gomega.MatchError(ErrStoreUnavailable))
			gomega.Expect(errors.Is(err, ErrStoreNotProvisioned)).To(gomega.Equal(notProvisioned))
		},
		ginkgo.Entry("mysql unknown database", MySQLDialect{}, &mysql.MySQLError{Number: 1049}, true),
		ginkgo.Entry("mysql access denied", MySQLDialect{}, &mysql.MySQLError{Number: 1045}, false),
		ginkgo.Entry("postgres invalid catalog name", PostgresDialect{}, &pgconn.PgError{Code: "3D000"}, true),
		ginkgo.Entry("postgres auth failure", PostgresDialect{}, &pgconn.PgError{Code: "28P01"}, false),
	)

	ginkgo.It("keeps errors that are already classified", func() {
		err := fmt.Errorf("%w: boom", ErrQueryFailed)
		gomega.Expect(classifyError(MySQLDialect{}, err)).To(gomega.BeIdenticalTo(err))
		gomega.Expect(classifyError(MySQLDialect{}, nil)).To(gomega.Succeed())
	})
})
