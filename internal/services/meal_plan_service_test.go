package services_test

import (
	"testing"
	"time"

	"mealplanner/internal/models"
	"mealplanner/internal/services"
	"mealplanner/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func planServiceWithMocks() (*services.MealPlanService, *mocks.MockMealPlanRepository, *mocks.MockRecipeRepository, *mocks.MockUserProfileRepository) {
	planRepo := new(mocks.MockMealPlanRepository)
	recipeRepo := new(mocks.MockRecipeRepository)
	profileRepo := new(mocks.MockUserProfileRepository)
	service := services.NewMealPlanService(planRepo, recipeRepo, profileRepo)
	return service, planRepo, recipeRepo, profileRepo
}

var testDay = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

func TestPlanGetOrCreateReturnsExisting(t *testing.T) {
	service, planRepo, _, _ := planServiceWithMocks()

	existing := &models.MealPlan{ID: 1, UserID: 1, Day: testDay}
	planRepo.On("FindByUserAndDay", uint(1), testDay).Return(existing, nil)

	plan, err := service.GetOrCreate(1, testDay)

	assert.NoError(t, err)
	assert.Equal(t, existing, plan)
	planRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestPlanGetOrCreateCreatesEmpty(t *testing.T) {
	service, planRepo, _, _ := planServiceWithMocks()

	planRepo.On("FindByUserAndDay", uint(1), testDay).Return(nil, gorm.ErrRecordNotFound)
	planRepo.On("Create", mock.AnythingOfType("*models.MealPlan")).Return(nil)

	plan, err := service.GetOrCreate(1, testDay)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), plan.UserID)
	assert.Equal(t, testDay, plan.Day)
	assert.Nil(t, plan.BreakfastRecipeID)
	planRepo.AssertExpectations(t)
}

func TestPlanGetOrCreateTruncatesToDate(t *testing.T) {
	service, planRepo, _, _ := planServiceWithMocks()

	// Mid-afternoon timestamp resolves to the same plan as midnight.
	afternoon := time.Date(2026, time.September, 7, 15, 30, 12, 0, time.UTC)
	existing := &models.MealPlan{ID: 1, UserID: 1, Day: testDay}
	planRepo.On("FindByUserAndDay", uint(1), testDay).Return(existing, nil)

	plan, err := service.GetOrCreate(1, afternoon)

	assert.NoError(t, err)
	assert.Equal(t, existing, plan)
}

func TestPlanList(t *testing.T) {
	service, planRepo, _, _ := planServiceWithMocks()

	plans := []models.MealPlan{
		{ID: 2, UserID: 1, Day: testDay.AddDate(0, 0, 7)},
		{ID: 1, UserID: 1, Day: testDay},
	}
	planRepo.On("FindAllByUserID", uint(1)).Return(plans, nil)

	got, err := service.List(1)

	assert.NoError(t, err)
	assert.Equal(t, plans, got)
	planRepo.AssertExpectations(t)
}

func TestPlanCreateDuplicateDay(t *testing.T) {
	service, planRepo, _, _ := planServiceWithMocks()

	planRepo.On("Create", mock.AnythingOfType("*models.MealPlan")).Return(gorm.ErrDuplicatedKey)

	_, err := service.Create(1, testDay, nil)

	var cerr *services.ConflictError
	assert.ErrorAs(t, err, &cerr)
}

func TestPlanCreateWithInitialSlots(t *testing.T) {
	service, planRepo, recipeRepo, _ := planServiceWithMocks()

	recipeID := uint(3)
	recipeRepo.On("FindByID", recipeID).Return(&models.Recipe{ID: recipeID}, nil)
	planRepo.On("Create", mock.AnythingOfType("*models.MealPlan")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.MealPlan).ID = 7
	}).Return(nil)
	planRepo.On("FindByID", uint(7)).Return(&models.MealPlan{ID: 7, UserID: 1, Day: testDay, BreakfastRecipeID: &recipeID}, nil)

	plan, err := service.Create(1, testDay, map[models.MealType]*uint{models.MealTypeBreakfast: &recipeID})

	assert.NoError(t, err)
	assert.Equal(t, &recipeID, plan.BreakfastRecipeID)
	planRepo.AssertExpectations(t)
}

func TestAssignSlot(t *testing.T) {
	service, planRepo, recipeRepo, _ := planServiceWithMocks()

	recipeID := uint(3)
	plan := &models.MealPlan{ID: 1, UserID: 1, Day: testDay}
	planRepo.On("FindByID", uint(1)).Return(plan, nil)
	// Dinner recipe in the breakfast slot is allowed.
	recipeRepo.On("FindByID", recipeID).Return(&models.Recipe{ID: recipeID, Category: models.CategoryDinner}, nil)
	planRepo.On("Update", mock.AnythingOfType("*models.MealPlan")).Return(nil)

	got, err := service.AssignSlot(1, models.MealTypeBreakfast, &recipeID, 1)

	assert.NoError(t, err)
	assert.Equal(t, &recipeID, got.BreakfastRecipeID)
	planRepo.AssertExpectations(t)
}

func TestAssignSlotClears(t *testing.T) {
	service, planRepo, recipeRepo, _ := planServiceWithMocks()

	recipeID := uint(3)
	plan := &models.MealPlan{ID: 1, UserID: 1, Day: testDay, LunchRecipeID: &recipeID}
	planRepo.On("FindByID", uint(1)).Return(plan, nil)
	planRepo.On("Update", mock.AnythingOfType("*models.MealPlan")).Return(nil)

	got, err := service.AssignSlot(1, models.MealTypeLunch, nil, 1)

	assert.NoError(t, err)
	assert.Nil(t, got.LunchRecipeID)
	recipeRepo.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestAssignSlotInvalidMealType(t *testing.T) {
	service, planRepo, _, _ := planServiceWithMocks()

	plan := &models.MealPlan{ID: 1, UserID: 1, Day: testDay}
	planRepo.On("FindByID", uint(1)).Return(plan, nil)

	_, err := service.AssignSlot(1, models.MealType("brunch"), nil, 1)

	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "meal_type")
	planRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestAssignSlotMissingRecipe(t *testing.T) {
	service, planRepo, recipeRepo, _ := planServiceWithMocks()

	recipeID := uint(99)
	plan := &models.MealPlan{ID: 1, UserID: 1, Day: testDay}
	planRepo.On("FindByID", uint(1)).Return(plan, nil)
	recipeRepo.On("FindByID", recipeID).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.AssignSlot(1, models.MealTypeDinner, &recipeID, 1)

	var nerr *services.NotFoundError
	assert.ErrorAs(t, err, &nerr)
	planRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestAssignSlotByNonOwner(t *testing.T) {
	service, planRepo, _, _ := planServiceWithMocks()

	plan := &models.MealPlan{ID: 1, UserID: 1, Day: testDay}
	planRepo.On("FindByID", uint(1)).Return(plan, nil)

	_, err := service.AssignSlot(1, models.MealTypeBreakfast, nil, 2)

	var aerr *services.AuthorizationError
	assert.ErrorAs(t, err, &aerr)
	planRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestPlanDelete(t *testing.T) {
	service, planRepo, _, _ := planServiceWithMocks()

	plan := &models.MealPlan{ID: 1, UserID: 1, Day: testDay}
	planRepo.On("FindByID", uint(1)).Return(plan, nil)
	planRepo.On("Delete", uint(1)).Return(nil)

	assert.NoError(t, service.Delete(1, 1))
	planRepo.AssertExpectations(t)
}

func TestPlanSummary(t *testing.T) {
	service, planRepo, _, profileRepo := planServiceWithMocks()

	goal := 2136.0
	plan := &models.MealPlan{
		ID:              1,
		UserID:          1,
		Day:             testDay,
		BreakfastRecipe: &models.Recipe{TotalCalories: 350},
	}
	planRepo.On("FindByID", uint(1)).Return(plan, nil)
	profileRepo.On("FindByUserID", uint(1)).Return(&models.UserProfile{UserID: 1, DailyCalorieGoal: &goal}, nil)

	summary, err := service.Summary(1, 1)

	assert.NoError(t, err)
	assert.InDelta(t, 350.0, summary.TotalCalories, 0.001)
	assert.InDelta(t, 1786.0, summary.RemainingCalories, 0.001)
}

func TestPlanSummaryWithoutProfile(t *testing.T) {
	service, planRepo, _, profileRepo := planServiceWithMocks()

	plan := &models.MealPlan{ID: 1, UserID: 1, Day: testDay, SnackRecipe: &models.Recipe{TotalCalories: 280}}
	planRepo.On("FindByID", uint(1)).Return(plan, nil)
	profileRepo.On("FindByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)

	summary, err := service.Summary(1, 1)

	assert.NoError(t, err)
	assert.InDelta(t, 280.0, summary.TotalCalories, 0.001)
	assert.InDelta(t, -280.0, summary.RemainingCalories, 0.001)
}
