package models

import "time"

// MealType names one of the four recipe slots of a meal plan.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

var MealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}

func (m MealType) Valid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// MealPlan holds one optional recipe per meal slot for a (user, day) pair.
// Slots reference recipes with set-null semantics: deleting a recipe clears
// the slots that pointed at it, never the plan itself.
type MealPlan struct {
	ID                uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt         time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt         time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	UserID            uint      `gorm:"uniqueIndex:idx_meal_plan_user_day" json:"user_id" example:"1"`
	Day               time.Time `gorm:"type:date;uniqueIndex:idx_meal_plan_user_day" json:"day" example:"2023-01-02T00:00:00Z"`
	BreakfastRecipeID *uint     `json:"breakfast_recipe_id"`
	BreakfastRecipe   *Recipe   `gorm:"foreignKey:BreakfastRecipeID;constraint:OnDelete:SET NULL" json:"breakfast_recipe,omitempty"`
	LunchRecipeID     *uint     `json:"lunch_recipe_id"`
	LunchRecipe       *Recipe   `gorm:"foreignKey:LunchRecipeID;constraint:OnDelete:SET NULL" json:"lunch_recipe,omitempty"`
	DinnerRecipeID    *uint     `json:"dinner_recipe_id"`
	DinnerRecipe      *Recipe   `gorm:"foreignKey:DinnerRecipeID;constraint:OnDelete:SET NULL" json:"dinner_recipe,omitempty"`
	SnackRecipeID     *uint     `json:"snack_recipe_id"`
	SnackRecipe       *Recipe   `gorm:"foreignKey:SnackRecipeID;constraint:OnDelete:SET NULL" json:"snack_recipe,omitempty"`
}

func (MealPlan) TableName() string {
	return "meal_plan"
}

// SlotRecipes returns the loaded recipe of each slot keyed by meal type.
// Empty slots map to nil.
func (p *MealPlan) SlotRecipes() map[MealType]*Recipe {
	return map[MealType]*Recipe{
		MealTypeBreakfast: p.BreakfastRecipe,
		MealTypeLunch:     p.LunchRecipe,
		MealTypeDinner:    p.DinnerRecipe,
		MealTypeSnack:     p.SnackRecipe,
	}
}

// TotalCalories sums the calorie totals of the assigned slots. Empty slots
// contribute zero. Recipes must be preloaded.
func (p *MealPlan) TotalCalories() float64 {
	var total float64
	for _, r := range []*Recipe{p.BreakfastRecipe, p.LunchRecipe, p.DinnerRecipe, p.SnackRecipe} {
		if r != nil {
			total += r.TotalCalories
		}
	}
	return total
}
