package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitplanner/fitness-api/internal/core/domain"
	"github.com/fitplanner/fitness-api/internal/core/ports"
)

// PlanService implements plan creation, listing and deletion.
type PlanService struct {
	repo   ports.PlanRepository
	logger zerolog.Logger
}

func NewPlanService(repo ports.PlanRepository, logger zerolog.Logger) *PlanService {
	return &PlanService{repo: repo, logger: logger}
}

// CreatePlan validates the input, computes the plan totals and stores the
// plan. The full item list is stored verbatim, including items that fail the
// positivity filter and contribute nothing to the totals.
func (s *PlanService) CreatePlan(ctx context.Context, in ports.CreatePlanInput) (*ports.PlanResult, error) {
	name := strings.TrimSpace(in.Name)
	if in.UserID <= 0 || name == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidPlanData
	}

	items := make([]domain.PlanItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, domain.PlanItem{
			Name:              it.Name,
			Quantity:          it.Quantity,
			Time:              it.Time,
			CaloriesPerMinute: it.CaloriesPerMinute,
		})
	}

	totalTime, totalCalories := domain.ComputeTotals(items)

	plan := &domain.Plan{
		UserID:        in.UserID,
		Name:          name,
		Items:         items,
		TotalTime:     totalTime,
		TotalCalories: totalCalories,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, plan)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", in.UserID).Msg("failed to create plan")
		return nil, err
	}

	s.logger.Info().
		Int64("plan_id", created.ID).
		Int64("user_id", created.UserID).
		Float64("total_time", created.TotalTime).
		Float64("total_calories", created.TotalCalories).
		Msg("plan created")

	return &ports.PlanResult{
		ID:            created.ID,
		TotalTime:     created.TotalTime,
		TotalCalories: created.TotalCalories,
	}, nil
}

// ListPlans returns the user's plans newest-id-first. A user with no plans
// yields an empty slice.
func (s *PlanService) ListPlans(ctx context.Context, userID int64) ([]domain.Plan, error) {
	if userID <= 0 {
		return nil, domain.ErrUserIDRequired
	}

	plans, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []domain.Plan{}
	}
	return plans, nil
}

// DeletePlan removes the plan with the given id. Deleting an id that does
// not exist is not an error.
func (s *PlanService) DeletePlan(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("plan_id", id).Msg("failed to delete plan")
		return err
	}

	s.logger.Info().Int64("plan_id", id).Msg("plan deleted")
	return nil
}
