package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
	CategorySnack     = "snack"
)

var RecipeCategories = []string{CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnack}

func ValidCategory(c string) bool {
	for _, v := range RecipeCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Ingredient is one entry of a recipe's ordered ingredient list.
type Ingredient struct {
	Name     string  `json:"name" example:"rolled oats"`
	Quantity float64 `json:"quantity" example:"100"`
	Unit     string  `json:"unit" example:"g"`
}

// Recipe is a user-created recipe with nutrition totals per serving set.
// Ingredients and Instructions are stored as ordered JSONB lists.
type Recipe struct {
	ID              uint                            `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt       time.Time                       `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time                       `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Title           string                          `gorm:"size:255" json:"title" example:"Overnight Oats"`
	Description     string                          `json:"description"`
	Category        string                          `gorm:"size:20;index" json:"category" example:"breakfast"`
	Ingredients     datatypes.JSONSlice[Ingredient] `gorm:"type:jsonb" json:"ingredients" swaggertype:"array,object"`
	Instructions    datatypes.JSONSlice[string]     `gorm:"type:jsonb" json:"instructions" swaggertype:"array,string"`
	Servings        int                             `gorm:"default:1" json:"servings" example:"2"`
	PrepTimeMinutes int                             `json:"prep_time_minutes" example:"10"`
	CookTimeMinutes int                             `json:"cook_time_minutes" example:"0"`
	TotalCalories   float64                         `json:"total_calories" example:"350"`
	Protein         float64                         `json:"protein" example:"12"`
	Carbs           float64                         `json:"carbs" example:"55"`
	Fat             float64                         `json:"fat" example:"8"`
	ImageURL        string                          `json:"image_url"`
	CreatedBy       uint                            `gorm:"index" json:"created_by" example:"1"`
}

func (Recipe) TableName() string {
	return "recipe"
}

// TotalTime is prep plus cook time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}
