package routes

import (
	"mealplanner/internal/controllers"
	"mealplanner/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMealPlanRoutes(router *gin.Engine, mealPlanController *controllers.MealPlanController) {
	planRoutes := router.Group("/mealplans")
	planRoutes.Use(middleware.AuthMiddleware())
	{
		planRoutes.GET("/", mealPlanController.GetMealPlan)
		planRoutes.GET("/list", mealPlanController.ListMealPlans)
		planRoutes.POST("/", mealPlanController.CreateMealPlan)
		planRoutes.PUT("/:id/slot", mealPlanController.AssignSlot)
		planRoutes.GET("/:id/summary", mealPlanController.GetSummary)
		planRoutes.DELETE("/:id", mealPlanController.DeleteMealPlan)
	}
}
