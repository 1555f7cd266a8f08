package ports

import (
	"context"

	"github.com/fitplanner/fitness-api/internal/core/domain"
)

type ExerciseService interface {
	// ListExercises returns the full catalog ordered by name ascending.
	// No pagination, no filtering.
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
}
