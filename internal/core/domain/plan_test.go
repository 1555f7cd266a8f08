package domain

import "testing"

func TestComputeTotals_FiltersNonPositiveItems(t *testing.T) {
	items := []PlanItem{
		{Name: "Squats", Quantity: 2, Time: 3, CaloriesPerMinute: 5},
		{Name: "Rest", Quantity: 0, Time: 5, CaloriesPerMinute: 10},
	}

	totalTime, totalCalories := ComputeTotals(items)
	if totalTime != 6 {
		t.Fatalf("expected total_time 6, got %v", totalTime)
	}
	if totalCalories != 30 {
		t.Fatalf("expected total_calories 30, got %v", totalCalories)
	}
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	totalTime, totalCalories := ComputeTotals(nil)
	if totalTime != 0 || totalCalories != 0 {
		t.Fatalf("expected zero totals, got %v/%v", totalTime, totalCalories)
	}
}

func TestComputeTotals_AllItemsCount(t *testing.T) {
	items := []PlanItem{
		{Quantity: 1, Time: 10, CaloriesPerMinute: 4},
		{Quantity: 3, Time: 2, CaloriesPerMinute: 8},
	}

	totalTime, totalCalories := ComputeTotals(items)
	if totalTime != 16 {
		t.Fatalf("expected total_time 16, got %v", totalTime)
	}
	// 1*10*4 + 3*2*8 = 40 + 48
	if totalCalories != 88 {
		t.Fatalf("expected total_calories 88, got %v", totalCalories)
	}
}

func TestPlanItem_Counts(t *testing.T) {
	cases := []struct {
		name string
		item PlanItem
		want bool
	}{
		{"all positive", PlanItem{Quantity: 1, Time: 1, CaloriesPerMinute: 1}, true},
		{"zero quantity", PlanItem{Quantity: 0, Time: 1, CaloriesPerMinute: 1}, false},
		{"zero time", PlanItem{Quantity: 1, Time: 0, CaloriesPerMinute: 1}, false},
		{"zero rate", PlanItem{Quantity: 1, Time: 1, CaloriesPerMinute: 0}, false},
		{"negative quantity", PlanItem{Quantity: -2, Time: 1, CaloriesPerMinute: 1}, false},
	}

	for _, tc := range cases {
		if got := tc.item.Counts(); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
