package service

import (
	"context"

	"github.com/fitplanner/fitness-api/internal/core/domain"
	"github.com/fitplanner/fitness-api/internal/core/ports"
)

// ExerciseService exposes the read-only exercise catalog.
type ExerciseService struct {
	repo ports.ExerciseRepository
}

func NewExerciseService(repo ports.ExerciseRepository) *ExerciseService {
	return &ExerciseService{repo: repo}
}

func (s *ExerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	exercises, err := s.repo.ListByName(ctx)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return exercises, nil
}
