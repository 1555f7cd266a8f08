package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fitplanner/fitness-api/internal/core/domain"
)

type PlanRepository struct {
	db DBTX
}

func NewPlanRepository(db DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create inserts a plan row with its item list serialized to JSON and the
// precomputed totals stored redundantly.
func (r *PlanRepository) Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	itemsJSON, err := json.Marshal(plan.Items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	query := `INSERT INTO plans (user_id, name, items_json, total_time, total_calories, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	err = r.db.QueryRowContext(ctx, query,
		plan.UserID, plan.Name, itemsJSON, plan.TotalTime, plan.TotalCalories, plan.CreatedAt).
		Scan(&plan.ID)
	if err != nil {
		return nil, fmt.Errorf("insert plan: %w", err)
	}

	return plan, nil
}

// ListByUser returns the user's plans newest-id-first, decoding the stored
// item JSON back into structured items.
func (r *PlanRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Plan, error) {
	query := `SELECT id, name, items_json, total_time, total_calories, created_at
	          FROM plans
	          WHERE user_id = $1
	          ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		p := domain.Plan{UserID: userID}
		var itemsJSON []byte
		if err := rows.Scan(&p.ID, &p.Name, &itemsJSON, &p.TotalTime, &p.TotalCalories, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		if err := json.Unmarshal(itemsJSON, &p.Items); err != nil {
			return nil, fmt.Errorf("decode items for plan %d: %w", p.ID, err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	return plans, nil
}

// Delete removes the plan with the given id. A missing row is not an error.
func (r *PlanRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}
