package repository

import (
	"time"

	"mealplanner/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MealPlanRepository interface {
	Create(plan *models.MealPlan) error
	FindByID(id uint) (*models.MealPlan, error)
	FindByUserAndDay(userID uint, day time.Time) (*models.MealPlan, error)
	FindAllByUserID(userID uint) ([]models.MealPlan, error)
	Update(plan *models.MealPlan) error
	Delete(id uint) error
}

type mealPlanRepository struct {
	db *gorm.DB
}

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db}
}

func (r *mealPlanRepository) preload() *gorm.DB {
	return r.db.
		Preload("BreakfastRecipe").
		Preload("LunchRecipe").
		Preload("DinnerRecipe").
		Preload("SnackRecipe")
}

func (r *mealPlanRepository) Create(plan *models.MealPlan) error {
	return r.db.Omit(clause.Associations).Create(plan).Error
}

func (r *mealPlanRepository) FindByID(id uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.preload().First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) FindByUserAndDay(userID uint, day time.Time) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.preload().Where("user_id = ? AND day = ?", userID, day).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) FindAllByUserID(userID uint) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := r.preload().Where("user_id = ?", userID).Order("day DESC").Find(&plans).Error
	return plans, err
}

// Update writes all columns, including slots cleared back to NULL. Loaded
// recipe associations are never touched.
func (r *mealPlanRepository) Update(plan *models.MealPlan) error {
	return r.db.Omit(clause.Associations).Save(plan).Error
}

func (r *mealPlanRepository) Delete(id uint) error {
	return r.db.Delete(&models.MealPlan{}, id).Error
}
