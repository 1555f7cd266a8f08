package ports

import (
	"context"

	"github.com/fitplanner/fitness-api/internal/core/domain"
)

// ExerciseRepository reads the exercise catalog. The catalog is never
// written through this interface.
type ExerciseRepository interface {
	// ListByName returns all exercises ordered by name ascending.
	ListByName(ctx context.Context) ([]domain.Exercise, error)
}
