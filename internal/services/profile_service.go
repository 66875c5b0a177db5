package services

import (
	"errors"

	"mealplanner/internal/health"
	"mealplanner/internal/models"
	"mealplanner/internal/repository"

	"gorm.io/gorm"
)

// ProfileService owns profile creation and updates. Metric recomputation is
// an explicit step here, not a persistence hook: every successful update
// recomputes BMI and the daily calorie goal before the single persist call.
type ProfileService struct {
	profiles repository.UserProfileRepository
}

func NewProfileService(profiles repository.UserProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// ProfileUpdate carries the fields of an update request. Nil fields are left
// unchanged on the profile.
type ProfileUpdate struct {
	Age      *int     `json:"age"`
	Gender   *string  `json:"gender"`
	HeightCm *float64 `json:"height_cm"`
	WeightKg *float64 `json:"weight_kg"`
}

// GetOrCreate returns the user's profile, creating one with safe defaults on
// first access. Staff accounts never get an auto-created profile.
func (s *ProfileService) GetOrCreate(user *models.User) (*models.UserProfile, error) {
	profile, err := s.profiles.FindByUserID(user.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if user.IsStaff {
		return nil, &NotFoundError{Resource: "profile", ID: user.ID}
	}

	age := models.DefaultAge
	gender := models.DefaultGender
	heightCm := models.DefaultHeightCm
	weightKg := models.DefaultWeightKg
	profile = &models.UserProfile{
		UserID:   user.ID,
		Age:      &age,
		Gender:   &gender,
		HeightCm: &heightCm,
		WeightKg: &weightKg,
	}
	health.Recompute(profile)

	if err := s.profiles.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Update merges the provided fields into the user's profile, validates them,
// recomputes the derived metrics and persists. On a validation failure
// nothing is written.
func (s *ProfileService) Update(userID uint, update ProfileUpdate) (*models.UserProfile, error) {
	profile, err := s.profiles.FindByUserID(userID)
	if err != nil {
		return nil, notFound(err, "profile", userID)
	}

	if update.Age != nil {
		profile.Age = update.Age
	}
	if update.Gender != nil {
		profile.Gender = update.Gender
	}
	if update.HeightCm != nil {
		profile.HeightCm = update.HeightCm
	}
	if update.WeightKg != nil {
		profile.WeightKg = update.WeightKg
	}

	if verr := validateProfile(profile); verr.HasErrors() {
		return nil, verr
	}

	health.Recompute(profile)

	if err := s.profiles.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Delete removes the user's profile. The next profile access recreates it
// with defaults.
func (s *ProfileService) Delete(userID uint) error {
	if _, err := s.profiles.FindByUserID(userID); err != nil {
		return notFound(err, "profile", userID)
	}
	return s.profiles.DeleteByUserID(userID)
}

func validateProfile(profile *models.UserProfile) *ValidationError {
	verr := NewValidationError()
	if profile.Age != nil && (*profile.Age < 1 || *profile.Age > 150) {
		verr.Add("age", "Age must be between 1 and 150.")
	}
	if profile.Gender != nil && !models.ValidGender(*profile.Gender) {
		verr.Add("gender", "Gender must be one of male, female, other.")
	}
	if profile.HeightCm != nil && (*profile.HeightCm < 50 || *profile.HeightCm > 300) {
		verr.Add("height_cm", "Height must be between 50 and 300 cm.")
	}
	if profile.WeightKg != nil && (*profile.WeightKg < 10 || *profile.WeightKg > 500) {
		verr.Add("weight_kg", "Weight must be between 10 and 500 kg.")
	}
	return verr
}
