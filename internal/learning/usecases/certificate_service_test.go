package usecases_test

import (
	"context"
	"errors"
	"time"

	"edudb-server/internal/infra/cache"
	"edudb-server/internal/infra/utils"
	"edudb-server/internal/learning/domain"
	"edudb-server/internal/learning/usecases"
	mockusecases "edudb-server/test/unit/doubles/learning/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("CertificateService", func() {
	var (
		ctrl       *gomock.Controller
		repository *mockusecases.MockCertificateRepository
		service    *usecases.SimpleCertificateService
		ctx        context.Context
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		repository = mockusecases.NewMockCertificateRepository(ctrl)

		certificateCache, err := cache.New(&cache.CacheConfig{MaxEntries: 100, BufferItems: 64})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		service = usecases.NewCertificateService(repository, certificateCache, usecases.CertificateServiceOptions{
			Prefix:   "EDB",
			Scoring:  domain.DefaultScoring(),
			CacheTTL: time.Minute,
		})
		ctx = context.Background()
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.Context("Generate", func() {
		ginkgo.It("should compute the overall score and store the certificate", func() {
			var stored domain.Certificate
			repository.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, certificate domain.Certificate) error {
					stored = certificate
					return nil
				})

			certificate, err := service.Generate(ctx, usecases.CertificateRequest{
				StudentName:       "Ana",
				BeginnerScore:     14,
				IntermediateScore: 13,
				AdvancedScore:     11,
				TotalTime:         1200,
			})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(certificate).To(gomega.Equal(stored))
			gomega.Expect(certificate.OverallScore).To(gomega.Equal(84.44))
			gomega.Expect(certificate.ID.String()).To(gomega.MatchRegexp(`^EDB-\d{4}-[0-9A-F]{6}$`))
			gomega.Expect(certificate.IssueDate).To(gomega.Equal(utils.Today()))
		})

		ginkgo.It("should use the requested issue date", func() {
			issued, _ := utils.ParseDate("2024-12-31")
			repository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			certificate, err := service.Generate(ctx, usecases.CertificateRequest{StudentName: "Ana", IssueDate: &issued})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(certificate.IssueDate.String()).To(gomega.Equal("2024-12-31"))
		})

		ginkgo.It("should require a student name", func() {
			_, err := service.Generate(ctx, usecases.CertificateRequest{BeginnerScore: 3})
			gomega.Expect(err).To(gomega.MatchError(domain.ErrStudentNameRequired))
		})
	})

	ginkgo.Context("GetCertificate", func() {
		ginkgo.It("should hit the repository once for repeated lookups", func() {
			stored := domain.Certificate{ID: "EDB-2026-ABC123", StudentName: "Ana"}
			repository.EXPECT().GetByID(gomock.Any(), domain.CertificateID("EDB-2026-ABC123")).Return(stored, nil).Times(1)

			for range 3 {
				certificate, err := service.GetCertificate(ctx, "EDB-2026-ABC123")
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(certificate).To(gomega.Equal(stored))
			}
		})

		ginkgo.It("should not remember misses", func() {
			gomock.InOrder(
				repository.EXPECT().GetByID(gomock.Any(), domain.CertificateID("EDB-2026-000000")).
					Return(domain.Certificate{}, usecases.ErrCertificateNotFound),
				repository.EXPECT().GetByID(gomock.Any(), domain.CertificateID("EDB-2026-000000")).
					Return(domain.Certificate{ID: "EDB-2026-000000"}, nil),
			)

			_, err := service.GetCertificate(ctx, "EDB-2026-000000")
			gomega.Expect(err).To(gomega.Equal(usecases.ErrCertificateNotFound))

			certificate, err := service.GetCertificate(ctx, "EDB-2026-000000")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(certificate.ID).To(gomega.Equal(domain.CertificateID("EDB-2026-000000")))
		})

		ginkgo.It("should wrap store failures", func() {
			boom := errors.New("boom")
			repository.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(domain.Certificate{}, boom)

			_, err := service.GetCertificate(ctx, "EDB-2026-FFFFFF")
			gomega.Expect(err).To(gomega.MatchError(boom))
		})
	})

	ginkgo.Context("ListCertificates", func() {
		ginkgo.It("should return the repository order", func() {
			certificates := []domain.Certificate{{ID: "EDB-2026-000002"}, {ID: "EDB-2026-000001"}}
			repository.EXPECT().FindAll(gomock.Any()).Return(certificates, nil)

			result, err := service.ListCertificates(ctx)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(result).To(gomega.Equal(certificates))
		})
	})
})
