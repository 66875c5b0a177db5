package repository

import (
	"mealplanner/internal/models"

	"gorm.io/gorm"
)

// RecipeFilter narrows a catalog listing. Zero values mean "no restriction".
type RecipeFilter struct {
	Search          string
	Category        string
	OwnerID         *uint
	GroupByCategory bool
	Limit           int
	Offset          int
}

type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	FindByID(id uint) (*models.Recipe, error)
	Find(filter RecipeFilter) ([]models.Recipe, error)
	Update(recipe *models.Recipe) error
	Delete(id uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db}
}

func (r *recipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *recipeRepository) FindByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) Find(filter RecipeFilter) ([]models.Recipe, error) {
	var recipes []models.Recipe

	query := r.db.Model(&models.Recipe{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", filter.Category)
	}
	if filter.OwnerID != nil {
		query = query.Where("created_by = ?", *filter.OwnerID)
	}

	if filter.GroupByCategory {
		query = query.Order("category DESC, title ASC")
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	err := query.Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepository) Update(recipe *models.Recipe) error {
	return r.db.Save(recipe).Error
}

// Delete removes the recipe and clears every meal plan slot referencing it,
// as a single transaction. Plans keep their other slots.
func (r *recipeRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		slots := []string{"breakfast_recipe_id", "lunch_recipe_id", "dinner_recipe_id", "snack_recipe_id"}
		for _, slot := range slots {
			if err := tx.Model(&models.MealPlan{}).
				Where(slot+" = ?", id).
				Update(slot, nil).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
}
