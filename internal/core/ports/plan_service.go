package ports

import (
	"context"

	"github.com/fitplanner/fitness-api/internal/core/domain"
)

// PlanItemInput is one item record as supplied by the client. Values are
// already coerced to their target types by the transport layer.
type PlanItemInput struct {
	Name              string
	Quantity          int
	Time              float64
	CaloriesPerMinute float64
}

// CreatePlanInput carries all data needed to create a plan.
type CreatePlanInput struct {
	UserID int64
	Name   string
	Items  []PlanItemInput
}

// PlanResult is returned by the service after creating a plan.
type PlanResult struct {
	ID            int64
	TotalTime     float64
	TotalCalories float64
}

// PlanService defines use-case operations for plans.
type PlanService interface {
	CreatePlan(ctx context.Context, in CreatePlanInput) (*PlanResult, error)
	ListPlans(ctx context.Context, userID int64) ([]domain.Plan, error)
	DeletePlan(ctx context.Context, id int64) error
}
