package routes

import (
	"mealplanner/internal/controllers"
	"mealplanner/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRecipeRoutes(router *gin.Engine, recipeController *controllers.RecipeController) {
	recipeRoutes := router.Group("/recipes")
	recipeRoutes.Use(middleware.AuthMiddleware())
	{
		recipeRoutes.GET("/", recipeController.ListRecipes)
		recipeRoutes.POST("/", recipeController.CreateRecipe)
		recipeRoutes.GET("/:id", recipeController.GetRecipe)
		recipeRoutes.PUT("/:id", recipeController.UpdateRecipe)
		recipeRoutes.DELETE("/:id", recipeController.DeleteRecipe)
	}
}
