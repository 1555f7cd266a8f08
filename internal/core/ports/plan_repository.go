package ports

import (
	"context"

	"github.com/fitplanner/fitness-api/internal/core/domain"
)

// PlanRepository defines persistence operations for plans.
type PlanRepository interface {
	// Create inserts a plan and fills in its assigned ID and created_at.
	Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)
	// ListByUser returns the user's plans newest-id-first. An unknown user
	// yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID int64) ([]domain.Plan, error)
	// Delete removes the plan with the given id. Deleting a missing id is
	// not an error.
	Delete(ctx context.Context, id int64) error
}
