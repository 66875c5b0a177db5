package services

import (
	"errors"
	"time"

	"mealplanner/internal/health"
	"mealplanner/internal/models"
	"mealplanner/internal/repository"

	"gorm.io/gorm"
)

// MealPlanService owns per-day meal plans: lazy creation, slot assignment
// and the calorie summary shown on the dashboard.
type MealPlanService struct {
	plans    repository.MealPlanRepository
	recipes  repository.RecipeRepository
	profiles repository.UserProfileRepository
}

func NewMealPlanService(
	plans repository.MealPlanRepository,
	recipes repository.RecipeRepository,
	profiles repository.UserProfileRepository,
) *MealPlanService {
	return &MealPlanService{plans: plans, recipes: recipes, profiles: profiles}
}

// PlanSummary is a plan with its calorie aggregates.
type PlanSummary struct {
	Plan              *models.MealPlan `json:"plan"`
	TotalCalories     float64          `json:"total_calories"`
	RemainingCalories float64          `json:"remaining_calories"`
}

// dayOf truncates a timestamp to its calendar date in UTC. Plans are keyed
// by date only.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// GetOrCreate returns the user's plan for the given day, creating an empty
// one on first access. Any calendar date is accepted here; day-of-week rules
// belong to the plan-creation form.
func (s *MealPlanService) GetOrCreate(userID uint, day time.Time) (*models.MealPlan, error) {
	day = dayOf(day)

	plan, err := s.plans.FindByUserAndDay(userID, day)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	plan = &models.MealPlan{UserID: userID, Day: day}
	if err := s.plans.Create(plan); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent first access; the row exists now.
			return s.plans.FindByUserAndDay(userID, day)
		}
		return nil, err
	}
	return plan, nil
}

// List returns all of the user's plans, newest day first, with slot recipes
// preloaded.
func (s *MealPlanService) List(userID uint) ([]models.MealPlan, error) {
	return s.plans.FindAllByUserID(userID)
}

// Create makes a new plan for the day, optionally with initial slots, and
// fails with a ConflictError if one already exists for (user, day).
func (s *MealPlanService) Create(userID uint, day time.Time, slots map[models.MealType]*uint) (*models.MealPlan, error) {
	plan := &models.MealPlan{UserID: userID, Day: dayOf(day)}

	for mealType, recipeID := range slots {
		if err := s.setSlot(plan, mealType, recipeID); err != nil {
			return nil, err
		}
	}

	if err := s.plans.Create(plan); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "a meal plan already exists for this day"}
		}
		return nil, err
	}
	return s.plans.FindByID(plan.ID)
}

// AssignSlot sets or clears one slot of the plan. A nil recipeID clears the
// slot. The recipe's category is deliberately not checked against the slot.
func (s *MealPlanService) AssignSlot(planID uint, mealType models.MealType, recipeID *uint, userID uint) (*models.MealPlan, error) {
	plan, err := s.plans.FindByID(planID)
	if err != nil {
		return nil, notFound(err, "meal plan", planID)
	}
	if plan.UserID != userID {
		return nil, &AuthorizationError{Message: "only the plan's owner may modify it"}
	}

	if err := s.setSlot(plan, mealType, recipeID); err != nil {
		return nil, err
	}

	if err := s.plans.Update(plan); err != nil {
		return nil, err
	}
	return s.plans.FindByID(plan.ID)
}

func (s *MealPlanService) setSlot(plan *models.MealPlan, mealType models.MealType, recipeID *uint) error {
	if !mealType.Valid() {
		verr := NewValidationError()
		verr.Add("meal_type", "Meal type must be one of breakfast, lunch, dinner, snack.")
		return verr
	}
	if recipeID != nil {
		if _, err := s.recipes.FindByID(*recipeID); err != nil {
			return notFound(err, "recipe", *recipeID)
		}
	}

	switch mealType {
	case models.MealTypeBreakfast:
		plan.BreakfastRecipeID = recipeID
		plan.BreakfastRecipe = nil
	case models.MealTypeLunch:
		plan.LunchRecipeID = recipeID
		plan.LunchRecipe = nil
	case models.MealTypeDinner:
		plan.DinnerRecipeID = recipeID
		plan.DinnerRecipe = nil
	case models.MealTypeSnack:
		plan.SnackRecipeID = recipeID
		plan.SnackRecipe = nil
	}
	return nil
}

// Delete hard-deletes a plan.
func (s *MealPlanService) Delete(planID uint, userID uint) error {
	plan, err := s.plans.FindByID(planID)
	if err != nil {
		return notFound(err, "meal plan", planID)
	}
	if plan.UserID != userID {
		return &AuthorizationError{Message: "only the plan's owner may delete it"}
	}
	return s.plans.Delete(planID)
}

// Summary returns the plan with its total and remaining calories. The
// remaining count treats a missing calorie goal as zero.
func (s *MealPlanService) Summary(planID uint, userID uint) (*PlanSummary, error) {
	plan, err := s.plans.FindByID(planID)
	if err != nil {
		return nil, notFound(err, "meal plan", planID)
	}
	if plan.UserID != userID {
		return nil, &AuthorizationError{Message: "only the plan's owner may view it"}
	}

	profile, err := s.profiles.FindByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &PlanSummary{
		Plan:              plan,
		TotalCalories:     health.TotalCalories(plan),
		RemainingCalories: health.RemainingCalories(profile, plan),
	}, nil
}

// SummaryForDay is Summary keyed by date, creating the plan lazily. Used by
// the dashboard.
func (s *MealPlanService) SummaryForDay(userID uint, day time.Time) (*PlanSummary, error) {
	plan, err := s.GetOrCreate(userID, day)
	if err != nil {
		return nil, err
	}
	return s.Summary(plan.ID, userID)
}
