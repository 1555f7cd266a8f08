package handler

import (
	"time"

	"github.com/fitplanner/fitness-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// planItemRequest is one item record as sent by the client. Items may fail
// the totals filter and are stored regardless, so no per-field validation
// tags apply here.
type planItemRequest struct {
	Name              string  `json:"name"`
	Quantity          int     `json:"quantity"`
	Time              float64 `json:"time"`
	CaloriesPerMinute float64 `json:"caloriesPerMinute"`
}

type createPlanRequest struct {
	UserID int64             `json:"user_id" validate:"required,gt=0"`
	Name   string            `json:"name"    validate:"required"`
	Items  []planItemRequest `json:"items"   validate:"required,min=1"`
}

type createPlanResponse struct {
	ID            int64   `json:"id"`
	TotalTime     float64 `json:"total_time"`
	TotalCalories float64 `json:"total_calories"`
}

// planResponse is the list view: stored items decoded back into structured
// records plus the precomputed totals.
type planResponse struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Items         []domain.PlanItem `json:"items"`
	TotalTime     float64           `json:"total_time"`
	TotalCalories float64           `json:"total_calories"`
	CreatedAt     time.Time         `json:"created_at"`
}

type deletePlanResponse struct {
	Deleted bool `json:"deleted"`
}
