package routes

import (
	"mealplanner/internal/controllers"
	"mealplanner/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserProfileRoutes(router *gin.Engine, userProfileController *controllers.UserProfileController) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware())
	{
		profileRoutes.GET("/", userProfileController.GetUserProfile)
		profileRoutes.PUT("/", userProfileController.UpdateUserProfile)
		profileRoutes.DELETE("/", userProfileController.DeleteUserProfile)
	}

	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware())
	{
		dashboardRoutes.GET("/", userProfileController.Dashboard)
	}
}
