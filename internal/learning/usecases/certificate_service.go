package usecases

//go:generate mockgen -source=certificate_service.go -destination=../../../test/unit/doubles/learning/usecases/certificate_service_mock.go -package=usecases -mock_names=CertificateService=MockCertificateService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"edudb-server/internal/infra/cache"
	"edudb-server/internal/infra/utils"
	"edudb-server/internal/learning/domain"
)

const _certificateCacheKeyPrefix = "certificate:"

// CertificateRequest is what a learner submits to be certified.
type CertificateRequest struct {
	StudentName       string
	IssueDate         *utils.Date
	BeginnerScore     int
	IntermediateScore int
	AdvancedScore     int
	TotalTime         int
}

type CertificateService interface {
	Generate(ctx context.Context, request CertificateRequest) (domain.Certificate, error)
	GetCertificate(ctx context.Context, id domain.CertificateID) (domain.Certificate, error)
	ListCertificates(ctx context.Context) ([]domain.Certificate, error)
}

type CertificateServiceOptions struct {
	Prefix   string
	Scoring  domain.Scoring
	CacheTTL time.Duration
}

func NewCertificateService(
	repository CertificateRepository,
	cache cache.Cache,
	opts CertificateServiceOptions,
) *SimpleCertificateService {
	return &SimpleCertificateService{
		repository: repository,
		cache:      cache,
		opts:       opts,
	}
}

var _ CertificateService = (*SimpleCertificateService)(nil)

type SimpleCertificateService struct {
	repository CertificateRepository
	cache      cache.Cache
	opts       CertificateServiceOptions
}

func (s *SimpleCertificateService) Generate(ctx context.Context, request CertificateRequest) (domain.Certificate, error) {
	builder := domain.NewCertificateBuilder(s.opts.Prefix, s.opts.Scoring).
		WithStudentName(request.StudentName).
		WithScores(request.BeginnerScore, request.IntermediateScore, request.AdvancedScore).
		WithTotalTime(request.TotalTime)
	if request.IssueDate != nil {
		builder = builder.WithIssueDate(*request.IssueDate)
	}

	certificate, err := builder.Build()
	if err != nil {
		return domain.Certificate{}, err
	}

	if err := s.repository.Create(ctx, certificate); err != nil {
		slog.Error("creating certificate", slog.String("error", err.Error()))
		return domain.Certificate{}, fmt.Errorf("creating certificate: %w", err)
	}

	slog.Info("certificate generated",
		slog.String("certificate_id", certificate.ID.String()),
		slog.Float64("overall_score", certificate.OverallScore),
	)

	return certificate, nil
}

// GetCertificate serves lookups from the cache. Misses are not cached so a
// certificate is visible as soon as it is created.
func (s *SimpleCertificateService) GetCertificate(ctx context.Context, id domain.CertificateID) (domain.Certificate, error) {
	value, err := s.cache.GetOrSet(ctx, _certificateCacheKeyPrefix+id.String(), s.opts.CacheTTL,
		func(ctx context.Context) (any, error) {
			return s.repository.GetByID(ctx, id)
		},
	)
	if err != nil {
		if errors.Is(err, ErrCertificateNotFound) {
			return domain.Certificate{}, ErrCertificateNotFound
		}
		slog.Error("getting certificate", slog.String("error", err.Error()))
		return domain.Certificate{}, fmt.Errorf("getting certificate: %w", err)
	}

	certificate, ok := value.(domain.Certificate)
	if !ok {
		return domain.Certificate{}, fmt.Errorf("unexpected cached value %T", value)
	}

	return certificate, nil
}

func (s *SimpleCertificateService) ListCertificates(ctx context.Context) ([]domain.Certificate, error) {
	certificates, err := s.repository.FindAll(ctx)
	if err != nil {
		slog.Error("listing certificates", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing certificates: %w", err)
	}

	return certificates, nil
}
