// Package health computes the derived health metrics of a profile and the
// calorie aggregates of a meal plan. All functions are pure; callers persist
// the results themselves.
package health

import (
	"math"

	"mealplanner/internal/models"
)

// ActivityFactorSedentary is the fixed multiplier applied to BMR. There is no
// user-selectable activity level.
const ActivityFactorSedentary = 1.2

// ComputeBMI returns weight_kg / (height_m)^2 rounded to two decimals, or nil
// if either input is absent or non-positive.
func ComputeBMI(heightCm, weightKg *float64) *float64 {
	if heightCm == nil || weightKg == nil || *heightCm <= 0 || *weightKg <= 0 {
		return nil
	}
	heightM := *heightCm / 100
	bmi := round2(*weightKg / (heightM * heightM))
	return &bmi
}

// ComputeDailyCalorieGoal estimates daily calorie needs with the
// Mifflin-St Jeor equation at the sedentary activity factor. Returns nil
// unless age, gender, height and weight are all present and positive.
func ComputeDailyCalorieGoal(age *int, gender *string, heightCm, weightKg *float64) *float64 {
	if age == nil || gender == nil || heightCm == nil || weightKg == nil {
		return nil
	}
	if *age <= 0 || *heightCm <= 0 || *weightKg <= 0 {
		return nil
	}

	bmr := 10*(*weightKg) + 6.25*(*heightCm) - 5*float64(*age)
	if *gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	goal := round2(bmr * ActivityFactorSedentary)
	return &goal
}

// Recompute refreshes both derived metrics of a profile in place.
func Recompute(profile *models.UserProfile) {
	profile.BMI = ComputeBMI(profile.HeightCm, profile.WeightKg)
	profile.DailyCalorieGoal = ComputeDailyCalorieGoal(profile.Age, profile.Gender, profile.HeightCm, profile.WeightKg)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
