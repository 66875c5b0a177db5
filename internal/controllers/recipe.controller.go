package controllers

import (
	"net/http"
	"strconv"

	"mealplanner/internal/repository"
	"mealplanner/internal/services"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	catalog *services.RecipeCatalog
}

func NewRecipeController(catalog *services.RecipeCatalog) *RecipeController {
	return &RecipeController{catalog: catalog}
}

// ListRecipes godoc
// @Summary List recipes
// @Description List recipes with optional search, category filter, ownership filter and pagination
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive substring match on title or description"
// @Param category query string false "Exact category match (breakfast, lunch, dinner, snack)"
// @Param mine query bool false "Restrict to recipes created by the current user"
// @Param group query string false "Set to 'category' for category-grouped ordering"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Recipes retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /recipes [get]
func (rc *RecipeController) ListRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filter := repository.RecipeFilter{
		Search:          c.Query("search"),
		Category:        c.Query("category"),
		GroupByCategory: c.Query("group") == "category",
	}
	if c.Query("mine") == "true" {
		filter.OwnerID = &userID
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "0")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil {
		filter.Offset = offset
	}

	recipes, err := rc.catalog.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipes retrieved successfully",
		"data":    recipes,
	})
}

// GetRecipe godoc
// @Summary Get a recipe
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id} [get]
func (rc *RecipeController) GetRecipe(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	recipe, err := rc.catalog.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe retrieved successfully",
		"data":    recipe,
	})
}

// CreateRecipe godoc
// @Summary Create a recipe
// @Description Create a recipe owned by the current user; servings below 1 are coerced to 1
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recipe body services.RecipeInput true "Recipe data"
// @Success 201 {object} map[string]interface{} "Recipe created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /recipes [post]
func (rc *RecipeController) CreateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input services.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	recipe, err := rc.catalog.Create(input, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Recipe created successfully",
		"data":    recipe,
	})
}

// UpdateRecipe godoc
// @Summary Update a recipe
// @Description Replace a recipe's fields; only the creator may edit it
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Param recipe body services.RecipeInput true "Recipe data"
// @Success 200 {object} map[string]interface{} "Recipe updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id} [put]
func (rc *RecipeController) UpdateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	var input services.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	recipe, err := rc.catalog.Update(id, input, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe updated successfully",
		"data":    recipe,
	})
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Description Delete a recipe; meal plan slots referencing it are cleared
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe deleted successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /recipes/{id} [delete]
func (rc *RecipeController) DeleteRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	if err := rc.catalog.Delete(id, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe deleted successfully",
		"data":    nil,
	})
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ID",
			"error":   "ID must be a positive integer",
		})
		return 0, err
	}
	return uint(id), nil
}
