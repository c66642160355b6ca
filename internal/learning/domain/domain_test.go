package domain_test

import (
	"fmt"
	"regexp"
	"time"

	"edudb-server/internal/infra/utils"
	"edudb-server/internal/learning/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Scoring", func() {
	scoring := domain.DefaultScoring()

	ginkgo.DescribeTable("OverallScore",
		func(b, i, a int, expected float64) {
			gomega.Expect(scoring.OverallScore(b, i, a)).To(gomega.Equal(expected))
		},
		ginkgo.Entry("perfect", 15, 15, 15, 100.0),
		ginkgo.Entry("nothing", 0, 0, 0, 0.0),
		ginkgo.Entry("rounded to two decimals", 14, 13, 11, 84.44),
		ginkgo.Entry("one answer", 1, 0, 0, 2.22),
	)

	ginkgo.DescribeTable("Passed",
		func(score int, expected bool) {
			gomega.Expect(scoring.Passed(score)).To(gomega.Equal(expected))
		},
		ginkgo.Entry("exactly eighty percent", 12, true),
		ginkgo.Entry("just below", 11, false),
		ginkgo.Entry("full marks", 15, true),
	)

	ginkgo.It("guards against an empty question set", func() {
		empty := domain.Scoring{}
		gomega.Expect(empty.OverallScore(1, 1, 1)).To(gomega.BeZero())
		gomega.Expect(empty.LevelPercentage(3)).To(gomega.BeZero())
	})
})

var _ = ginkgo.Describe("Certificate", func() {
	idPattern := regexp.MustCompile(fmt.Sprintf(`^EDB-%d-[0-9A-F]{6}$`, time.Now().Year()))

	ginkgo.It("builds with an id, today's date and the overall score", func() {
		certificate, err := domain.NewCertificateBuilder("", domain.DefaultScoring()).
			WithStudentName("Ana").
			WithScores(15, 12, 9).
			WithTotalTime(3600).
			Build()

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(certificate.ID.String()).To(gomega.MatchRegexp(idPattern.String()))
		gomega.Expect(certificate.IssueDate).To(gomega.Equal(utils.Today()))
		gomega.Expect(certificate.OverallScore).To(gomega.Equal(80.0))
		gomega.Expect(certificate.TotalTime).To(gomega.Equal(3600))
	})

	ginkgo.It("keeps an explicit issue date and prefix", func() {
		issued, err := utils.ParseDate("2024-05-01")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		certificate, err := domain.NewCertificateBuilder("SQL", domain.DefaultScoring()).
			WithStudentName("Ana").
			WithIssueDate(issued).
			Build()

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(certificate.IssueDate.String()).To(gomega.Equal("2024-05-01"))
		gomega.Expect(certificate.ID.String()).To(gomega.HavePrefix("SQL-"))
	})

	ginkgo.It("requires a student name", func() {
		_, err := domain.NewCertificateBuilder("", domain.DefaultScoring()).WithScores(1, 2, 3).Build()
		gomega.Expect(err).To(gomega.MatchError(domain.ErrStudentNameRequired))
	})

	ginkgo.It("rejects negative scores", func() {
		_, err := domain.NewCertificateBuilder("", domain.DefaultScoring()).
			WithStudentName("Ana").
			WithScores(-1, 0, 0).
			Build()
		gomega.Expect(err).To(gomega.MatchError(domain.ErrNegativeScore))
	})

	ginkgo.It("generates distinct ids", func() {
		first := domain.NewCertificateID("EDB", time.Now())
		second := domain.NewCertificateID("EDB", time.Now())
		gomega.Expect(first).NotTo(gomega.Equal(second))
	})
})
