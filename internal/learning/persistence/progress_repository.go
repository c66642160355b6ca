package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"edudb-server/internal/infra/sql"
	"edudb-server/internal/learning/domain"
	"edudb-server/internal/learning/persistence/internal"
	"edudb-server/internal/learning/usecases"
)

func NewProgressRepository(orms sql.ORMSource) *SimpleProgressRepository {
	return &SimpleProgressRepository{orms: orms}
}

var _ usecases.ProgressRepository = (*SimpleProgressRepository)(nil)

type SimpleProgressRepository struct {
	orms sql.ORMSource
}

func (r *SimpleProgressRepository) Get(ctx context.Context) (domain.Progress, error) {
	orm, err := r.orms.ORM(ctx)
	if err != nil {
		return domain.Progress{}, err
	}

	var entity internal.Progress
	err = orm.WithContext(ctx).First(&entity).Error()
	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Progress{}, usecases.ErrProgressNotFound
	}
	if err != nil {
		return domain.Progress{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleProgressRepository) Update(ctx context.Context, progress domain.Progress) error {
	return r.update(ctx, internal.UpdateColumns(progress, time.Now().UTC()))
}

func (r *SimpleProgressRepository) Reset(ctx context.Context) error {
	return r.update(ctx, internal.ResetColumns(time.Now().UTC()))
}

func (r *SimpleProgressRepository) update(ctx context.Context, columns map[string]any) error {
	orm, err := r.orms.ORM(ctx)
	if err != nil {
		return err
	}

	err = orm.WithContext(ctx).
		Model(&internal.Progress{}).
		Where("id = ?", internal.ProgressID).
		Updates(columns).
		Error()
	if err != nil {
		return fmt.Errorf("updating progress: %w", err)
	}

	return nil
}
