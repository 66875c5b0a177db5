package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"mealplanner/database"
	"mealplanner/docs"
	"mealplanner/internal/cache"
	"mealplanner/internal/controllers"
	"mealplanner/internal/repository"
	"mealplanner/internal/services"
	"mealplanner/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found: %v", err)
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Meal Planner API"
	docs.SwaggerInfo.Description = "Meal planning API: health profiles, recipes and per-day meal plans."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Redis is optional; without it recipe listings just hit the database.
	var recipeCache services.RecipeListCache
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, recipe list caching disabled: %v", err)
	} else {
		recipeCache = redisClient
		defer redisClient.Close()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	profileRepo := repository.NewUserProfileRepository(database.DB)
	recipeRepo := repository.NewRecipeRepository(database.DB)
	planRepo := repository.NewMealPlanRepository(database.DB)

	// Initialize services
	profileService := services.NewProfileService(profileRepo)
	recipeCatalog := services.NewRecipeCatalog(recipeRepo, recipeCache)
	planService := services.NewMealPlanService(planRepo, recipeRepo, profileRepo)

	// Initialize controllers
	userController := controllers.NewUserController(userRepo, profileService)
	profileController := controllers.NewUserProfileController(userRepo, profileService, planService)
	recipeController := controllers.NewRecipeController(recipeCatalog)
	planController := controllers.NewMealPlanController(planService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":  "Meal Planner API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"database": "PostgreSQL",
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterUserProfileRoutes(router, profileController)
	routes.RegisterRecipeRoutes(router, recipeController)
	routes.RegisterMealPlanRoutes(router, planController)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		isHealthy := err == nil && result == 1

		response := gin.H{"database_health": isHealthy}
		if redisClient != nil {
			if status, err := redisClient.GetStatus(); err == nil {
				response["cache"] = status
			} else {
				response["cache"] = gin.H{"connected": false, "error": err.Error()}
			}
		}
		c.JSON(200, response)
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
