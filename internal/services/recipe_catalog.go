package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"mealplanner/internal/models"
	"mealplanner/internal/repository"

	"gorm.io/datatypes"
)

const recipeListCacheTTL = 5 * time.Minute

// RecipeListCache caches catalog listings. Derived profile metrics are never
// cached, only recipe lists.
type RecipeListCache interface {
	GetRecipeList(key string) ([]models.Recipe, bool, error)
	StoreRecipeList(key string, recipes []models.Recipe, ttl time.Duration) error
	InvalidateRecipeLists() error
}

// RecipeCatalog owns recipe records: filtered listing, creation, and
// owner-guarded mutation. The cache is optional; a nil cache disables it.
type RecipeCatalog struct {
	recipes repository.RecipeRepository
	cache   RecipeListCache
}

func NewRecipeCatalog(recipes repository.RecipeRepository, cache RecipeListCache) *RecipeCatalog {
	return &RecipeCatalog{recipes: recipes, cache: cache}
}

// RecipeInput is the full set of writable recipe fields, bound from the
// create and update request bodies.
type RecipeInput struct {
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Category        string              `json:"category"`
	Ingredients     []models.Ingredient `json:"ingredients"`
	Instructions    []string            `json:"instructions"`
	Servings        int                 `json:"servings"`
	PrepTimeMinutes int                 `json:"prep_time_minutes"`
	CookTimeMinutes int                 `json:"cook_time_minutes"`
	TotalCalories   float64             `json:"total_calories"`
	Protein         float64             `json:"protein"`
	Carbs           float64             `json:"carbs"`
	Fat             float64             `json:"fat"`
	ImageURL        string              `json:"image_url"`
}

// List returns recipes matching the filter, consulting the cache first.
// Cache failures are logged and the query falls through to the store.
func (s *RecipeCatalog) List(filter repository.RecipeFilter) ([]models.Recipe, error) {
	key := listCacheKey(filter)

	if s.cache != nil {
		recipes, found, err := s.cache.GetRecipeList(key)
		if err != nil {
			log.Printf("recipe list cache read failed: %v", err)
		} else if found {
			return recipes, nil
		}
	}

	recipes, err := s.recipes.Find(filter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.StoreRecipeList(key, recipes, recipeListCacheTTL); err != nil {
			log.Printf("recipe list cache write failed: %v", err)
		}
	}
	return recipes, nil
}

// Get fetches one recipe.
func (s *RecipeCatalog) Get(id uint) (*models.Recipe, error) {
	recipe, err := s.recipes.FindByID(id)
	if err != nil {
		return nil, notFound(err, "recipe", id)
	}
	return recipe, nil
}

// Create validates the input and persists a recipe owned by ownerID.
// Non-positive servings are coerced to 1.
func (s *RecipeCatalog) Create(input RecipeInput, ownerID uint) (*models.Recipe, error) {
	if ownerID == 0 {
		verr := NewValidationError()
		verr.Add("created_by", "Recipe must have a creator.")
		return nil, verr
	}
	if verr := validateRecipeInput(input); verr.HasErrors() {
		return nil, verr
	}

	recipe := &models.Recipe{CreatedBy: ownerID}
	applyRecipeInput(recipe, input)

	if err := s.recipes.Create(recipe); err != nil {
		return nil, err
	}
	s.invalidate()
	return recipe, nil
}

// Update replaces the writable fields of a recipe. Only the creator may
// update it; on any error the record is left unchanged.
func (s *RecipeCatalog) Update(id uint, input RecipeInput, ownerID uint) (*models.Recipe, error) {
	recipe, err := s.recipes.FindByID(id)
	if err != nil {
		return nil, notFound(err, "recipe", id)
	}
	if recipe.CreatedBy != ownerID {
		return nil, &AuthorizationError{Message: "only the recipe's creator may edit it"}
	}
	if verr := validateRecipeInput(input); verr.HasErrors() {
		return nil, verr
	}

	applyRecipeInput(recipe, input)

	if err := s.recipes.Update(recipe); err != nil {
		return nil, err
	}
	s.invalidate()
	return recipe, nil
}

// Delete removes a recipe. Meal plan slots referencing it are set to null,
// never cascaded.
func (s *RecipeCatalog) Delete(id uint, ownerID uint) error {
	recipe, err := s.recipes.FindByID(id)
	if err != nil {
		return notFound(err, "recipe", id)
	}
	if recipe.CreatedBy != ownerID {
		return &AuthorizationError{Message: "only the recipe's creator may delete it"}
	}

	if err := s.recipes.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *RecipeCatalog) invalidate() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateRecipeLists(); err != nil {
		log.Printf("recipe list cache invalidation failed: %v", err)
	}
}

func validateRecipeInput(input RecipeInput) *ValidationError {
	verr := NewValidationError()
	if strings.TrimSpace(input.Title) == "" {
		verr.Add("title", "Title is required.")
	}
	if !models.ValidCategory(input.Category) {
		verr.Add("category", "Category must be one of breakfast, lunch, dinner, snack.")
	}
	for i, ing := range input.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			verr.Add(fmt.Sprintf("ingredients[%d].name", i), "Ingredient name is required.")
		}
		if ing.Quantity < 0 {
			verr.Add(fmt.Sprintf("ingredients[%d].quantity", i), "Ingredient quantity cannot be negative.")
		}
	}
	if input.PrepTimeMinutes < 0 {
		verr.Add("prep_time_minutes", "Prep time cannot be negative.")
	}
	if input.CookTimeMinutes < 0 {
		verr.Add("cook_time_minutes", "Cook time cannot be negative.")
	}
	if input.TotalCalories < 0 {
		verr.Add("total_calories", "Calories cannot be negative.")
	}
	if input.Protein < 0 {
		verr.Add("protein", "Protein cannot be negative.")
	}
	if input.Carbs < 0 {
		verr.Add("carbs", "Carbs cannot be negative.")
	}
	if input.Fat < 0 {
		verr.Add("fat", "Fat cannot be negative.")
	}
	return verr
}

func applyRecipeInput(recipe *models.Recipe, input RecipeInput) {
	recipe.Title = input.Title
	recipe.Description = input.Description
	recipe.Category = input.Category
	recipe.Ingredients = datatypes.NewJSONSlice(input.Ingredients)
	recipe.Instructions = datatypes.NewJSONSlice(input.Instructions)
	recipe.Servings = input.Servings
	if recipe.Servings <= 0 {
		recipe.Servings = 1
	}
	recipe.PrepTimeMinutes = input.PrepTimeMinutes
	recipe.CookTimeMinutes = input.CookTimeMinutes
	recipe.TotalCalories = input.TotalCalories
	recipe.Protein = input.Protein
	recipe.Carbs = input.Carbs
	recipe.Fat = input.Fat
	recipe.ImageURL = input.ImageURL
}

func listCacheKey(filter repository.RecipeFilter) string {
	owner := uint(0)
	if filter.OwnerID != nil {
		owner = *filter.OwnerID
	}
	return fmt.Sprintf("recipes:list:%s|%s|%d|%t|%d|%d",
		strings.ToLower(filter.Search), strings.ToLower(filter.Category),
		owner, filter.GroupByCategory, filter.Limit, filter.Offset)
}
