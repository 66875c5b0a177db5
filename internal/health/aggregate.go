package health

import "mealplanner/internal/models"

// TotalCalories sums the calorie totals of a plan's assigned slots.
func TotalCalories(plan *models.MealPlan) float64 {
	if plan == nil {
		return 0
	}
	return plan.TotalCalories()
}

// RemainingCalories is the profile's daily goal minus the plan's total.
// A missing goal counts as zero, so the result can go negative.
func RemainingCalories(profile *models.UserProfile, plan *models.MealPlan) float64 {
	var goal float64
	if profile != nil && profile.DailyCalorieGoal != nil {
		goal = *profile.DailyCalorieGoal
	}
	return goal - TotalCalories(plan)
}
