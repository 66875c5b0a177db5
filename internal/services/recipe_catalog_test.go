package services_test

import (
	"errors"
	"testing"

	"mealplanner/internal/models"
	"mealplanner/internal/repository"
	"mealplanner/internal/services"
	"mealplanner/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func validRecipeInput() services.RecipeInput {
	return services.RecipeInput{
		Title:       "Overnight Oats",
		Description: "Oats soaked overnight.",
		Category:    models.CategoryBreakfast,
		Ingredients: []models.Ingredient{
			{Name: "rolled oats", Quantity: 100, Unit: "g"},
		},
		Instructions:  []string{"Combine.", "Refrigerate."},
		Servings:      2,
		TotalCalories: 350,
		Protein:       12,
		Carbs:         55,
		Fat:           8,
	}
}

func TestRecipeCreate(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	catalog := services.NewRecipeCatalog(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Recipe")).Return(nil)

	recipe, err := catalog.Create(validRecipeInput(), 1)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), recipe.CreatedBy)
	assert.Equal(t, 2, recipe.Servings)
	mockRepo.AssertExpectations(t)
}

func TestRecipeCreateCoercesServings(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	catalog := services.NewRecipeCatalog(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Recipe")).Return(nil)

	input := validRecipeInput()
	input.Servings = 0
	recipe, err := catalog.Create(input, 1)

	assert.NoError(t, err)
	assert.Equal(t, 1, recipe.Servings)

	input.Servings = -3
	recipe, err = catalog.Create(input, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, recipe.Servings)
}

func TestRecipeCreateRequiresOwner(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	catalog := services.NewRecipeCatalog(mockRepo, nil)

	_, err := catalog.Create(validRecipeInput(), 0)

	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "created_by")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRecipeCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*services.RecipeInput)
		field  string
	}{
		{
			name:   "missing title",
			mutate: func(in *services.RecipeInput) { in.Title = "  " },
			field:  "title",
		},
		{
			name:   "bad category",
			mutate: func(in *services.RecipeInput) { in.Category = "brunch" },
			field:  "category",
		},
		{
			name: "nameless ingredient",
			mutate: func(in *services.RecipeInput) {
				in.Ingredients = []models.Ingredient{{Name: "", Quantity: 1, Unit: "g"}}
			},
			field: "ingredients[0].name",
		},
		{
			name:   "negative calories",
			mutate: func(in *services.RecipeInput) { in.TotalCalories = -1 },
			field:  "total_calories",
		},
		{
			name:   "negative prep time",
			mutate: func(in *services.RecipeInput) { in.PrepTimeMinutes = -5 },
			field:  "prep_time_minutes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockRecipeRepository)
			catalog := services.NewRecipeCatalog(mockRepo, nil)

			input := validRecipeInput()
			tt.mutate(&input)

			_, err := catalog.Create(input, 1)

			var verr *services.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestRecipeUpdateByNonOwner(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	catalog := services.NewRecipeCatalog(mockRepo, nil)

	existing := &models.Recipe{ID: 5, Title: "Original", CreatedBy: 1}
	mockRepo.On("FindByID", uint(5)).Return(existing, nil)

	_, err := catalog.Update(5, validRecipeInput(), 2)

	var aerr *services.AuthorizationError
	assert.ErrorAs(t, err, &aerr)
	// The record stays untouched.
	assert.Equal(t, "Original", existing.Title)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestRecipeUpdateByOwner(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	catalog := services.NewRecipeCatalog(mockRepo, nil)

	existing := &models.Recipe{ID: 5, Title: "Original", CreatedBy: 1}
	mockRepo.On("FindByID", uint(5)).Return(existing, nil)
	mockRepo.On("Update", mock.AnythingOfType("*models.Recipe")).Return(nil)

	recipe, err := catalog.Update(5, validRecipeInput(), 1)

	assert.NoError(t, err)
	assert.Equal(t, "Overnight Oats", recipe.Title)
	assert.Equal(t, uint(1), recipe.CreatedBy)
	mockRepo.AssertExpectations(t)
}

func TestRecipeUpdateMissing(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	catalog := services.NewRecipeCatalog(mockRepo, nil)

	mockRepo.On("FindByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := catalog.Update(99, validRecipeInput(), 1)

	var nerr *services.NotFoundError
	assert.ErrorAs(t, err, &nerr)
}

func TestRecipeDeleteByNonOwner(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	catalog := services.NewRecipeCatalog(mockRepo, nil)

	mockRepo.On("FindByID", uint(5)).Return(&models.Recipe{ID: 5, CreatedBy: 1}, nil)

	err := catalog.Delete(5, 2)

	var aerr *services.AuthorizationError
	assert.ErrorAs(t, err, &aerr)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestRecipeDeleteByOwner(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	catalog := services.NewRecipeCatalog(mockRepo, nil)

	mockRepo.On("FindByID", uint(5)).Return(&models.Recipe{ID: 5, CreatedBy: 1}, nil)
	mockRepo.On("Delete", uint(5)).Return(nil)

	assert.NoError(t, catalog.Delete(5, 1))
	mockRepo.AssertExpectations(t)
}

func TestRecipeListPassesFilter(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	catalog := services.NewRecipeCatalog(mockRepo, nil)

	owner := uint(1)
	filter := repository.RecipeFilter{
		Search:   "oats",
		Category: models.CategoryBreakfast,
		OwnerID:  &owner,
		Limit:    20,
	}
	expected := []models.Recipe{{ID: 1, Title: "Overnight Oats"}}
	mockRepo.On("Find", filter).Return(expected, nil)

	recipes, err := catalog.List(filter)

	assert.NoError(t, err)
	assert.Equal(t, expected, recipes)
	mockRepo.AssertExpectations(t)
}

func TestRecipeListPropagatesError(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	catalog := services.NewRecipeCatalog(mockRepo, nil)

	mockRepo.On("Find", mock.Anything).Return([]models.Recipe(nil), errors.New("db down"))

	_, err := catalog.List(repository.RecipeFilter{})
	assert.Error(t, err)
}
