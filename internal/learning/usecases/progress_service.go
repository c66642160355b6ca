package usecases

//go:generate mockgen -source=progress_service.go -destination=../../../test/unit/doubles/learning/usecases/progress_service_mock.go -package=usecases -mock_names=ProgressService=MockProgressService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"edudb-server/internal/learning/domain"
)

type ProgressService interface {
	GetProgress(ctx context.Context) (domain.Progress, error)
	SaveProgress(ctx context.Context, progress domain.Progress) error
	ResetProgress(ctx context.Context) error
	Scoring() domain.Scoring
}

func NewProgressService(repository ProgressRepository, scoring domain.Scoring) *SimpleProgressService {
	return &SimpleProgressService{
		repository: repository,
		scoring:    scoring,
	}
}

var _ ProgressService = (*SimpleProgressService)(nil)

type SimpleProgressService struct {
	repository ProgressRepository
	scoring    domain.Scoring
}

func (s *SimpleProgressService) GetProgress(ctx context.Context) (domain.Progress, error) {
	progress, err := s.repository.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrProgressNotFound) {
			return domain.Progress{}, ErrProgressNotFound
		}
		slog.Error("getting progress", slog.String("error", err.Error()))
		return domain.Progress{}, fmt.Errorf("getting progress: %w", err)
	}

	return progress, nil
}

func (s *SimpleProgressService) SaveProgress(ctx context.Context, progress domain.Progress) error {
	if err := progress.Validate(); err != nil {
		return err
	}

	if err := s.repository.Update(ctx, progress); err != nil {
		slog.Error("saving progress", slog.String("error", err.Error()))
		return fmt.Errorf("saving progress: %w", err)
	}

	return nil
}

func (s *SimpleProgressService) ResetProgress(ctx context.Context) error {
	if err := s.repository.Reset(ctx); err != nil {
		slog.Error("resetting progress", slog.String("error", err.Error()))
		return fmt.Errorf("resetting progress: %w", err)
	}

	slog.Info("progress reset")
	return nil
}

func (s *SimpleProgressService) Scoring() domain.Scoring {
	return s.scoring
}
