package controllers

import (
	"net/http"
	"time"

	"mealplanner/internal/models"
	"mealplanner/internal/services"

	"github.com/gin-gonic/gin"
)

const dayLayout = "2006-01-02"

type MealPlanController struct {
	planService *services.MealPlanService
}

func NewMealPlanController(planService *services.MealPlanService) *MealPlanController {
	return &MealPlanController{planService: planService}
}

type CreateMealPlanRequest struct {
	Day               string `json:"day" binding:"required" example:"2026-09-07"`
	BreakfastRecipeID *uint  `json:"breakfast_recipe_id"`
	LunchRecipeID     *uint  `json:"lunch_recipe_id"`
	DinnerRecipeID    *uint  `json:"dinner_recipe_id"`
	SnackRecipeID     *uint  `json:"snack_recipe_id"`
}

type AssignSlotRequest struct {
	MealType string `json:"meal_type" binding:"required" example:"breakfast"`
	RecipeID *uint  `json:"recipe_id"`
}

// GetMealPlan godoc
// @Summary Get or create the plan for a day
// @Description Returns the meal plan for the given day, creating an empty one on first access
// @Tags mealplans
// @Produce json
// @Security BearerAuth
// @Param day query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Meal plan retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid day"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /mealplans [get]
func (mc *MealPlanController) GetMealPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	day, err := time.Parse(dayLayout, c.Query("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid day",
			"error":   "Day must be a date in YYYY-MM-DD format",
		})
		return
	}

	plan, err := mc.planService.GetOrCreate(userID, day)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plan retrieved successfully",
		"data":    plan,
	})
}

// ListMealPlans godoc
// @Summary List the user's meal plans
// @Description Returns every meal plan of the current user, newest day first
// @Tags mealplans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Meal plans retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /mealplans/list [get]
func (mc *MealPlanController) ListMealPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plans, err := mc.planService.List(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plans retrieved successfully",
		"data":    plans,
	})
}

// CreateMealPlan godoc
// @Summary Create a weekly plan entry
// @Description Create a plan for a day. This form requires the day to be a Monday and not in the past.
// @Tags mealplans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body CreateMealPlanRequest true "Plan data"
// @Success 201 {object} map[string]interface{} "Meal plan created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 409 {object} map[string]interface{} "Plan already exists for this day"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /mealplans [post]
func (mc *MealPlanController) CreateMealPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	day, err := time.Parse(dayLayout, req.Day)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"errors":  gin.H{"day": "Day must be a date in YYYY-MM-DD format."},
		})
		return
	}

	// Form-level rules only; the service accepts any calendar date.
	if day.Weekday() != time.Monday {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"errors":  gin.H{"day": "Week must start on Monday."},
		})
		return
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if day.Before(today) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"errors":  gin.H{"day": "Week cannot start in the past."},
		})
		return
	}

	slots := map[models.MealType]*uint{
		models.MealTypeBreakfast: req.BreakfastRecipeID,
		models.MealTypeLunch:     req.LunchRecipeID,
		models.MealTypeDinner:    req.DinnerRecipeID,
		models.MealTypeSnack:     req.SnackRecipeID,
	}

	plan, err := mc.planService.Create(userID, day, slots)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meal plan created successfully",
		"data":    plan,
	})
}

// AssignSlot godoc
// @Summary Assign or clear a meal slot
// @Description Set one slot of the plan to a recipe, or clear it with a null recipe_id
// @Tags mealplans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meal plan ID"
// @Param slot body AssignSlotRequest true "Slot assignment"
// @Success 200 {object} map[string]interface{} "Slot assigned successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 404 {object} map[string]interface{} "Plan or recipe not found"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /mealplans/{id}/slot [put]
func (mc *MealPlanController) AssignSlot(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req AssignSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	plan, err := mc.planService.AssignSlot(id, models.MealType(req.MealType), req.RecipeID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Slot assigned successfully",
		"data":    plan,
	})
}

// DeleteMealPlan godoc
// @Summary Delete a meal plan
// @Tags mealplans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meal plan ID"
// @Success 200 {object} map[string]interface{} "Meal plan deleted successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Router /mealplans/{id} [delete]
func (mc *MealPlanController) DeleteMealPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	if err := mc.planService.Delete(id, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plan deleted successfully",
		"data":    nil,
	})
}

// GetSummary godoc
// @Summary Meal plan calorie summary
// @Description Total calories across assigned slots and calories remaining against the profile's goal
// @Tags mealplans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meal plan ID"
// @Success 200 {object} map[string]interface{} "Summary retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Router /mealplans/{id}/summary [get]
func (mc *MealPlanController) GetSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	summary, err := mc.planService.Summary(id, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Summary retrieved successfully",
		"data":    summary,
	})
}
