package health

import (
	"testing"

	"mealplanner/internal/models"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func TestComputeBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm *float64
		weightKg *float64
		expected *float64
	}{
		{
			name:     "typical values",
			heightCm: floatPtr(170),
			weightKg: floatPtr(70),
			expected: floatPtr(24.22),
		},
		{
			name:     "tall and heavy",
			heightCm: floatPtr(180),
			weightKg: floatPtr(80),
			expected: floatPtr(24.69),
		},
		{
			name:     "missing height",
			heightCm: nil,
			weightKg: floatPtr(70),
			expected: nil,
		},
		{
			name:     "missing weight",
			heightCm: floatPtr(170),
			weightKg: nil,
			expected: nil,
		},
		{
			name:     "zero height",
			heightCm: floatPtr(0),
			weightKg: floatPtr(70),
			expected: nil,
		},
		{
			name:     "negative weight",
			heightCm: floatPtr(170),
			weightKg: floatPtr(-5),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBMI(tt.heightCm, tt.weightKg)
			if tt.expected == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.InDelta(t, *tt.expected, *got, 0.001)
			}
		})
	}
}

func TestComputeBMIDeterministic(t *testing.T) {
	first := ComputeBMI(floatPtr(165), floatPtr(60))
	second := ComputeBMI(floatPtr(165), floatPtr(60))
	assert.NotNil(t, first)
	assert.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func TestComputeDailyCalorieGoal(t *testing.T) {
	tests := []struct {
		name     string
		age      *int
		gender   *string
		heightCm *float64
		weightKg *float64
		expected *float64
	}{
		{
			name:     "male",
			age:      intPtr(30),
			gender:   strPtr(models.GenderMale),
			heightCm: floatPtr(180),
			weightKg: floatPtr(80),
			// bmr = 10*80 + 6.25*180 - 5*30 + 5 = 1780; goal = 1780 * 1.2
			expected: floatPtr(2136.0),
		},
		{
			name:     "female",
			age:      intPtr(25),
			gender:   strPtr(models.GenderFemale),
			heightCm: floatPtr(165),
			weightKg: floatPtr(60),
			// bmr = 10*60 + 6.25*165 - 5*25 - 161 = 1345.25; goal = 1614.3
			expected: floatPtr(1614.3),
		},
		{
			name:     "other uses the non-male constant",
			age:      intPtr(25),
			gender:   strPtr(models.GenderOther),
			heightCm: floatPtr(165),
			weightKg: floatPtr(60),
			expected: floatPtr(1614.3),
		},
		{
			name:     "missing age",
			age:      nil,
			gender:   strPtr(models.GenderMale),
			heightCm: floatPtr(180),
			weightKg: floatPtr(80),
			expected: nil,
		},
		{
			name:     "missing gender",
			age:      intPtr(30),
			gender:   nil,
			heightCm: floatPtr(180),
			weightKg: floatPtr(80),
			expected: nil,
		},
		{
			name:     "missing height",
			age:      intPtr(30),
			gender:   strPtr(models.GenderMale),
			heightCm: nil,
			weightKg: floatPtr(80),
			expected: nil,
		},
		{
			name:     "missing weight",
			age:      intPtr(30),
			gender:   strPtr(models.GenderMale),
			heightCm: floatPtr(180),
			weightKg: nil,
			expected: nil,
		},
		{
			name:     "non-positive age",
			age:      intPtr(0),
			gender:   strPtr(models.GenderMale),
			heightCm: floatPtr(180),
			weightKg: floatPtr(80),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDailyCalorieGoal(tt.age, tt.gender, tt.heightCm, tt.weightKg)
			if tt.expected == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.InDelta(t, *tt.expected, *got, 0.001)
			}
		})
	}
}

func TestRecompute(t *testing.T) {
	age := 30
	gender := models.GenderMale
	profile := &models.UserProfile{
		Age:      &age,
		Gender:   &gender,
		HeightCm: floatPtr(180),
		WeightKg: floatPtr(80),
	}

	Recompute(profile)

	assert.NotNil(t, profile.BMI)
	assert.InDelta(t, 24.69, *profile.BMI, 0.001)
	assert.NotNil(t, profile.DailyCalorieGoal)
	assert.InDelta(t, 2136.0, *profile.DailyCalorieGoal, 0.001)
}

func TestRecomputeClearsStaleMetrics(t *testing.T) {
	profile := &models.UserProfile{
		BMI:              floatPtr(22.0),
		DailyCalorieGoal: floatPtr(2000),
	}

	Recompute(profile)

	assert.Nil(t, profile.BMI)
	assert.Nil(t, profile.DailyCalorieGoal)
}
