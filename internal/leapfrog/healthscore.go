package leapfrog

import (
	"fmt"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

// HealthScore condenses vitals, symptoms and lifestyle factors into a
// 0-100 score. Deductions are additive from a perfect score.
func HealthScore(v models.HealthVitals) int {
	score := 100.0

	switch {
	case v.Age > 65:
		score -= 10
	case v.Age > 50:
		score -= 5
	}

	switch {
	case v.BMI > 30:
		score -= 15
	case v.BMI > 25:
		score -= 5
	}

	if v.SystolicBP > 140 {
		score -= 10
	}
	if v.DiastolicBP > 90 {
		score -= 5
	}

	switch {
	case v.Glucose > 126:
		score -= 10
	case v.Glucose > 100:
		score -= 3
	}

	score -= float64(v.Fatigue+v.ChestPain+v.ShortnessBreath+v.Headache) * 0.5

	score += v.ExerciseHours * 2
	score -= float64(v.Smoking) * 10
	score -= v.AlcoholUnits * 0.5

	return int(max(0, min(100, score)))
}

// HealthRiskLevel maps a health score onto the coarse risk bands used
// in patient-facing summaries.
func HealthRiskLevel(score int) string {
	switch {
	case score >= 80:
		return "Low"
	case score >= 60:
		return "Moderate"
	default:
		return "High"
	}
}

// HealthSummary is the one-line patient-facing summary for a score.
func HealthSummary(score int) string {
	return fmt.Sprintf("Based on your health data, your overall health score is %d/100.", score)
}

// FallbackRecommendations produces rule-based treatment
// recommendations when the classifier service is unavailable.
func FallbackRecommendations(v models.HealthVitals, score int) []models.TreatmentRecommendation {
	var recs []models.TreatmentRecommendation

	switch {
	case score >= 80:
		recs = append(recs, models.TreatmentRecommendation{
			ID: 1, Treatment: "Preventive Care & Wellness", Confidence: 0.9, Priority: "maintenance",
		})
	case score >= 60:
		if v.BMI > 30 {
			recs = append(recs, models.TreatmentRecommendation{
				ID: 1, Treatment: "Weight Management Program", Confidence: 0.8, Priority: "improvement",
			})
		}
		if v.SystolicBP > 140 {
			recs = append(recs, models.TreatmentRecommendation{
				ID: 2, Treatment: "Blood Pressure Monitoring", Confidence: 0.8, Priority: "improvement",
			})
		}
		if v.Glucose > 126 {
			recs = append(recs, models.TreatmentRecommendation{
				ID: 3, Treatment: "Diabetes Management", Confidence: 0.8, Priority: "improvement",
			})
		}
	default:
		recs = append(recs, models.TreatmentRecommendation{
			ID: 1, Treatment: "Comprehensive Medical Evaluation", Confidence: 0.9, Priority: "urgent",
		})
	}

	return recs
}
