package domain

import (
	"errors"
	"time"
)

var ErrInvalidPlanData = errors.New("invalid plan data")
var ErrUserIDRequired = errors.New("user_id is required")

// PlanItem is one line entry within a plan. Field casing follows the client
// payload. The exercise name is free text, not a reference into the catalog.
type PlanItem struct {
	Name              string  `json:"name"`
	Quantity          int     `json:"quantity"`
	Time              float64 `json:"time"`
	CaloriesPerMinute float64 `json:"caloriesPerMinute"`
}

// Counts reports whether the item participates in the plan totals.
// Items failing the filter are still stored as part of the plan.
func (it PlanItem) Counts() bool {
	return it.Quantity > 0 && it.Time > 0 && it.CaloriesPerMinute > 0
}

// Plan is the core aggregate: a user-owned collection of exercise items with
// totals computed once at creation time and stored redundantly.
type Plan struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	Name          string     `json:"name"`
	Items         []PlanItem `json:"items"`
	TotalTime     float64    `json:"total_time"`
	TotalCalories float64    `json:"total_calories"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ComputeTotals sums time and calories over the items that pass the
// positivity filter.
//
//	total_time     = Σ quantity × time
//	total_calories = Σ quantity × time × caloriesPerMinute
func ComputeTotals(items []PlanItem) (totalTime, totalCalories float64) {
	for _, it := range items {
		if !it.Counts() {
			continue
		}
		t := float64(it.Quantity) * it.Time
		totalTime += t
		totalCalories += t * it.CaloriesPerMinute
	}
	return totalTime, totalCalories
}
