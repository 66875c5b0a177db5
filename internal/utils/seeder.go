package utils

import (
	"fmt"
	"log"

	"mealplanner/database"
	"mealplanner/internal/health"
	"mealplanner/internal/models"

	"gorm.io/datatypes"
)

const DefaultNumUsers = 10

const seedPassword = "TestPassword123!"

// SeedDemoData creates numUsers demo accounts with profiles plus a small
// recipe catalog per category, owned round-robin by the seeded users.
func SeedDemoData(numUsers int) error {
	db := database.DB

	hash, err := HashPassword(seedPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	var users []models.User
	for i := 1; i <= numUsers; i++ {
		user := models.User{
			Username: fmt.Sprintf("seeduser%d", i),
			Email:    fmt.Sprintf("seeduser%d@example.com", i),
			Password: hash,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create seed user %d: %w", i, err)
		}

		age := 20 + i%40
		gender := models.GenderOther
		if i%2 == 0 {
			gender = models.GenderMale
		} else if i%3 == 0 {
			gender = models.GenderFemale
		}
		heightCm := 150.0 + float64(i%40)
		weightKg := 50.0 + float64(i%50)

		profile := models.UserProfile{
			UserID:   user.ID,
			Age:      &age,
			Gender:   &gender,
			HeightCm: &heightCm,
			WeightKg: &weightKg,
		}
		health.Recompute(&profile)
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to create seed profile %d: %w", i, err)
		}

		users = append(users, user)
	}
	log.Printf("Seeded %d users with profiles", len(users))

	if len(users) == 0 {
		return nil
	}

	recipes := demoRecipes()
	for i := range recipes {
		recipes[i].CreatedBy = users[i%len(users)].ID
		if err := db.Create(&recipes[i]).Error; err != nil {
			return fmt.Errorf("failed to create seed recipe %q: %w", recipes[i].Title, err)
		}
	}
	log.Printf("Seeded %d recipes", len(recipes))

	return nil
}

// CheckSeededUsers reports how many seed accounts exist.
func CheckSeededUsers() (int64, error) {
	var count int64
	err := database.DB.Model(&models.User{}).Where("username LIKE ?", "seeduser%").Count(&count).Error
	return count, err
}

// DeleteSeededUsers removes the seed accounts and everything they own.
func DeleteSeededUsers() error {
	db := database.DB

	var users []models.User
	if err := db.Where("username LIKE ?", "seeduser%").Find(&users).Error; err != nil {
		return err
	}

	for _, user := range users {
		if err := db.Where("user_id = ?", user.ID).Delete(&models.MealPlan{}).Error; err != nil {
			return err
		}
		if err := db.Where("created_by = ?", user.ID).Delete(&models.Recipe{}).Error; err != nil {
			return err
		}
		if err := db.Unscoped().Where("user_id = ?", user.ID).Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}
		if err := db.Unscoped().Delete(&models.User{}, user.ID).Error; err != nil {
			return err
		}
	}

	log.Printf("Deleted %d seed users", len(users))
	return nil
}

func demoRecipes() []models.Recipe {
	return []models.Recipe{
		{
			Title:       "Overnight Oats",
			Description: "Rolled oats soaked overnight with milk and berries.",
			Category:    models.CategoryBreakfast,
			Ingredients: datatypes.NewJSONSlice([]models.Ingredient{
				{Name: "rolled oats", Quantity: 100, Unit: "g"},
				{Name: "milk", Quantity: 200, Unit: "ml"},
				{Name: "blueberries", Quantity: 50, Unit: "g"},
			}),
			Instructions: datatypes.NewJSONSlice([]string{
				"Combine oats and milk in a jar.",
				"Refrigerate overnight.",
				"Top with berries before serving.",
			}),
			Servings:        1,
			PrepTimeMinutes: 10,
			TotalCalories:   350, Protein: 12, Carbs: 55, Fat: 8,
		},
		{
			Title:       "Chicken Caesar Salad",
			Description: "Grilled chicken over romaine with caesar dressing.",
			Category:    models.CategoryLunch,
			Ingredients: datatypes.NewJSONSlice([]models.Ingredient{
				{Name: "chicken breast", Quantity: 150, Unit: "g"},
				{Name: "romaine lettuce", Quantity: 100, Unit: "g"},
				{Name: "caesar dressing", Quantity: 30, Unit: "ml"},
			}),
			Instructions: datatypes.NewJSONSlice([]string{
				"Grill the chicken and slice it.",
				"Toss the lettuce with dressing.",
				"Top with chicken.",
			}),
			Servings:        1,
			PrepTimeMinutes: 10,
			CookTimeMinutes: 15,
			TotalCalories:   420, Protein: 38, Carbs: 12, Fat: 24,
		},
		{
			Title:       "Salmon with Roast Vegetables",
			Description: "Baked salmon fillet with a tray of seasonal vegetables.",
			Category:    models.CategoryDinner,
			Ingredients: datatypes.NewJSONSlice([]models.Ingredient{
				{Name: "salmon fillet", Quantity: 180, Unit: "g"},
				{Name: "broccoli", Quantity: 120, Unit: "g"},
				{Name: "carrot", Quantity: 80, Unit: "g"},
				{Name: "olive oil", Quantity: 15, Unit: "ml"},
			}),
			Instructions: datatypes.NewJSONSlice([]string{
				"Toss the vegetables in oil and roast at 200C for 20 minutes.",
				"Add the salmon and bake 12 more minutes.",
			}),
			Servings:        1,
			PrepTimeMinutes: 10,
			CookTimeMinutes: 32,
			TotalCalories:   560, Protein: 40, Carbs: 18, Fat: 34,
		},
		{
			Title:       "Greek Yogurt with Honey",
			Description: "Thick yogurt with a drizzle of honey and walnuts.",
			Category:    models.CategorySnack,
			Ingredients: datatypes.NewJSONSlice([]models.Ingredient{
				{Name: "greek yogurt", Quantity: 150, Unit: "g"},
				{Name: "honey", Quantity: 15, Unit: "g"},
				{Name: "walnuts", Quantity: 20, Unit: "g"},
			}),
			Instructions: datatypes.NewJSONSlice([]string{
				"Spoon the yogurt into a bowl.",
				"Drizzle honey and scatter walnuts on top.",
			}),
			Servings:        1,
			PrepTimeMinutes: 5,
			TotalCalories:   280, Protein: 16, Carbs: 24, Fat: 14,
		},
	}
}
