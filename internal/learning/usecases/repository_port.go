package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/learning/usecases/repository_port_mock.go -package=usecases -mock_names=ProgressRepository=MockProgressRepository,CertificateRepository=MockCertificateRepository

import (
	"context"
	"errors"

	"edudb-server/internal/learning/domain"
)

var (
	ErrProgressNotFound    = errors.New("no progress found")
	ErrCertificateNotFound = errors.New("certificate not found")
)

type ProgressRepository interface {
	Get(ctx context.Context) (domain.Progress, error)
	Update(ctx context.Context, progress domain.Progress) error
	Reset(ctx context.Context) error
}

type CertificateRepository interface {
	Create(ctx context.Context, certificate domain.Certificate) error
	GetByID(ctx context.Context, id domain.CertificateID) (domain.Certificate, error)
	FindAll(ctx context.Context) ([]domain.Certificate, error)
}
