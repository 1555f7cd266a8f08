package postgres

import (
	"context"
	"fmt"

	"github.com/fitplanner/fitness-api/internal/core/domain"
)

type ExerciseRepository struct {
	db DBTX
}

func NewExerciseRepository(db DBTX) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// ListByName returns the full exercise catalog ordered by name ascending.
func (r *ExerciseRepository) ListByName(ctx context.Context) ([]domain.Exercise, error) {
	query := `SELECT id, name, calories_per_minute
	          FROM exercises
	          ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []domain.Exercise
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.CaloriesPerMinute); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	return exercises, nil
}
