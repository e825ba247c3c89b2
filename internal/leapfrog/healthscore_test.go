package leapfrog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

func TestHealthScorePerfect(t *testing.T) {
	v := models.HealthVitals{
		Age: 30, BMI: 22, SystolicBP: 118, DiastolicBP: 76, Glucose: 90,
	}
	assert.Equal(t, 100, HealthScore(v))
}

func TestHealthScoreDeductions(t *testing.T) {
	v := models.HealthVitals{
		Age:         70,  // -10
		BMI:         32,  // -15
		SystolicBP:  150, // -10
		DiastolicBP: 95,  // -5
		Glucose:     130, // -10
		Fatigue:     4,   // -2
		ChestPain:   2,   // -1
		Smoking:     1,   // -10
	}
	// 100 - 53 = 47
	assert.Equal(t, 47, HealthScore(v))
}

func TestHealthScoreLifestyleCredit(t *testing.T) {
	v := models.HealthVitals{
		Age: 55, BMI: 27, SystolicBP: 120, DiastolicBP: 80, Glucose: 95,
		ExerciseHours: 3, // +6
	}
	// 100 - 5 - 5 + 6, clamped at 100
	assert.Equal(t, 96, HealthScore(v))
}

func TestHealthScoreClamps(t *testing.T) {
	v := models.HealthVitals{
		Age: 80, BMI: 40, SystolicBP: 180, DiastolicBP: 110, Glucose: 200,
		Fatigue: 10, ChestPain: 10, ShortnessBreath: 10, Headache: 10,
		Smoking: 1, AlcoholUnits: 60,
	}
	assert.Equal(t, 0, HealthScore(v))

	fit := models.HealthVitals{Age: 25, BMI: 21, ExerciseHours: 20}
	assert.Equal(t, 100, HealthScore(fit))
}

func TestHealthRiskLevelBands(t *testing.T) {
	assert.Equal(t, "Low", HealthRiskLevel(80))
	assert.Equal(t, "Moderate", HealthRiskLevel(79))
	assert.Equal(t, "Moderate", HealthRiskLevel(60))
	assert.Equal(t, "High", HealthRiskLevel(59))
}

func TestFallbackRecommendationsHighScore(t *testing.T) {
	got := FallbackRecommendations(models.HealthVitals{}, 85)
	require.Len(t, got, 1)
	assert.Equal(t, "Preventive Care & Wellness", got[0].Treatment)
	assert.Equal(t, "maintenance", got[0].Priority)
}

func TestFallbackRecommendationsMidScoreTargetsFindings(t *testing.T) {
	v := models.HealthVitals{BMI: 32, SystolicBP: 150, Glucose: 130}
	got := FallbackRecommendations(v, 65)
	require.Len(t, got, 3)
	assert.Equal(t, "Weight Management Program", got[0].Treatment)
	assert.Equal(t, "Blood Pressure Monitoring", got[1].Treatment)
	assert.Equal(t, "Diabetes Management", got[2].Treatment)
}

func TestFallbackRecommendationsLowScore(t *testing.T) {
	got := FallbackRecommendations(models.HealthVitals{}, 40)
	require.Len(t, got, 1)
	assert.Equal(t, "Comprehensive Medical Evaluation", got[0].Treatment)
	assert.Equal(t, "urgent", got[0].Priority)
}
