package persistence

import (
	"context"
	"errors"
	"fmt"

	"edudb-server/internal/infra/sql"
	"edudb-server/internal/learning/domain"
	"edudb-server/internal/learning/persistence/internal"
	"edudb-server/internal/learning/usecases"
)

func NewCertificateRepository(orms sql.ORMSource) *SimpleCertificateRepository {
	return &SimpleCertificateRepository{orms: orms}
}

var _ usecases.CertificateRepository = (*SimpleCertificateRepository)(nil)

type SimpleCertificateRepository struct {
	orms sql.ORMSource
}

func (r *SimpleCertificateRepository) Create(ctx context.Context, certificate domain.Certificate) error {
	orm, err := r.orms.ORM(ctx)
	if err != nil {
		return err
	}

	entity := internal.FromCertificate(certificate)
	if err := orm.WithContext(ctx).Create(&entity).Error(); err != nil {
		return fmt.Errorf("creating certificate in database: %w", err)
	}

	return nil
}

func (r *SimpleCertificateRepository) GetByID(ctx context.Context, id domain.CertificateID) (domain.Certificate, error) {
	orm, err := r.orms.ORM(ctx)
	if err != nil {
		return domain.Certificate{}, err
	}

	var entity internal.Certificate
	err = orm.WithContext(ctx).
		Where("certificate_id = ?", id.String()).
		First(&entity).
		Error()
	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Certificate{}, usecases.ErrCertificateNotFound
	}
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

// FindAll returns every certificate, newest first.
func (r *SimpleCertificateRepository) FindAll(ctx context.Context) ([]domain.Certificate, error) {
	orm, err := r.orms.ORM(ctx)
	if err != nil {
		return nil, err
	}

	var entities []internal.Certificate
	err = orm.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	certificates := make([]domain.Certificate, len(entities))
	for i, entity := range entities {
		certificates[i] = entity.ToDomain()
	}

	return certificates, nil
}
