package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Default values applied when a profile is auto-created at registration.
const (
	DefaultAge      = 18
	DefaultGender   = GenderOther
	DefaultHeightCm = 170.0
	DefaultWeightKg = 70.0
)

// UserProfile holds the biometric attributes a user maintains plus the two
// derived metrics. BMI and DailyCalorieGoal are recomputed from the inputs on
// every save and are never written independently.
type UserProfile struct {
	ID               uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt        time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt        time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID           uint           `gorm:"uniqueIndex" json:"user_id" example:"1"`
	Age              *int           `json:"age" example:"30"`
	Gender           *string        `gorm:"size:10" json:"gender" example:"male"`
	HeightCm         *float64       `json:"height_cm" example:"180"`
	WeightKg         *float64       `json:"weight_kg" example:"80"`
	BMI              *float64       `json:"bmi" example:"24.69"`
	DailyCalorieGoal *float64       `json:"daily_calorie_goal" example:"2136"`
}

func (UserProfile) TableName() string {
	return "user_profile"
}

// Complete reports whether every attribute needed by the dashboard is set.
func (p *UserProfile) Complete() bool {
	return p.Age != nil && p.Gender != nil && p.HeightCm != nil &&
		p.WeightKg != nil && p.DailyCalorieGoal != nil
}

func ValidGender(g string) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}
