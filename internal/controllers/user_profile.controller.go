package controllers

import (
	"net/http"
	"time"

	"mealplanner/internal/repository"
	"mealplanner/internal/services"

	"github.com/gin-gonic/gin"
)

type UserProfileController struct {
	userRepo       repository.UserRepository
	profileService *services.ProfileService
	planService    *services.MealPlanService
}

func NewUserProfileController(
	userRepo repository.UserRepository,
	profileService *services.ProfileService,
	planService *services.MealPlanService,
) *UserProfileController {
	return &UserProfileController{
		userRepo:       userRepo,
		profileService: profileService,
		planService:    planService,
	}
}

// GetUserProfile godoc
// @Summary Get user profile
// @Description Retrieve the authenticated user's profile, creating it with defaults on first access
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User profile retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [get]
func (pc *UserProfileController) GetUserProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := pc.userRepo.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No account exists for this user",
		})
		return
	}

	profile, err := pc.profileService.GetOrCreate(user)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User profile retrieved successfully",
		"data":    profile,
	})
}

// UpdateUserProfile godoc
// @Summary Update user profile
// @Description Merge the provided fields, recompute BMI and calorie goal, and persist
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body services.ProfileUpdate true "Profile fields"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /profile [put]
func (pc *UserProfileController) UpdateUserProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var update services.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	profile, err := pc.profileService.Update(userID, update)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    profile,
	})
}

// DeleteUserProfile godoc
// @Summary Delete user profile
// @Description Remove the profile; the next profile access recreates it with defaults
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile deleted successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile [delete]
func (pc *UserProfileController) DeleteUserProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := pc.profileService.Delete(userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile deleted successfully",
		"data":    nil,
	})
}

// Dashboard godoc
// @Summary User dashboard
// @Description Profile with completeness flag and today's meal plan summary
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Dashboard retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /dashboard [get]
func (pc *UserProfileController) Dashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := pc.userRepo.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No account exists for this user",
		})
		return
	}

	profile, err := pc.profileService.GetOrCreate(user)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	summary, err := pc.planService.SummaryForDay(userID, time.Now().UTC())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dashboard retrieved successfully",
		"data": gin.H{
			"profile":          profile,
			"profile_complete": profile.Complete(),
			"today":            summary,
		},
	})
}
