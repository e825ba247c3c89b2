package service

import (
	"context"
	"time"

	"github.com/leapfroghealth/leapfrog/backend/internal/leapfrog"
	"github.com/leapfroghealth/leapfrog/backend/internal/logger"
	"github.com/leapfroghealth/leapfrog/backend/internal/models"
	"github.com/leapfroghealth/leapfrog/backend/pkg/classifier"
)

const fallbackConfidence = 0.7

// Classifier is the subset of the classifier client the service needs.
type Classifier interface {
	Predict(ctx context.Context, features map[string]any) (*classifier.Prediction, error)
}

type recommendationService struct {
	classifier Classifier
	log        logger.Logger
	now        func() time.Time
}

// NewRecommendationService creates a new recommendation service. The
// classifier may be nil, in which case the rule-based path is always used.
func NewRecommendationService(c Classifier, log logger.Logger) RecommendationService {
	return &recommendationService{
		classifier: c,
		log:        log,
		now:        time.Now,
	}
}

// RecommendTreatments scores the vitals and asks the ML classifier for
// treatment recommendations, falling back to the rule-based table when
// the classifier is unavailable.
func (s *recommendationService) RecommendTreatments(ctx context.Context, vitals models.HealthVitals) (*models.HealthRecommendations, error) {
	score := leapfrog.HealthScore(vitals)

	result := &models.HealthRecommendations{
		HealthScore: score,
		RiskLevel:   leapfrog.HealthRiskLevel(score),
		Summary:     leapfrog.HealthSummary(score),
		GeneratedAt: s.now().UTC(),
	}

	if s.classifier != nil {
		prediction, err := s.classifier.Predict(ctx, classifierFeatures(vitals, score))
		if err == nil {
			result.ModelSource = "classifier"
			result.PrimaryTreatment = prediction.PrimaryTreatment
			result.Confidence = prediction.Confidence
			for _, rec := range prediction.Recommendations {
				result.Recommendations = append(result.Recommendations, models.TreatmentRecommendation{
					ID:         rec.ID,
					Treatment:  rec.Treatment,
					Confidence: rec.Confidence,
					Priority:   rec.Priority,
				})
			}
			return result, nil
		}
		s.log.WithContext(ctx).Warn("classifier unavailable, using rule-based recommendations",
			logger.Err(err))
	}

	recs := leapfrog.FallbackRecommendations(vitals, score)
	result.ModelSource = "rules"
	result.Recommendations = recs
	result.Confidence = fallbackConfidence
	if len(recs) > 0 {
		result.PrimaryTreatment = recs[0].Treatment
		result.Confidence = recs[0].Confidence
	}
	return result, nil
}

func classifierFeatures(v models.HealthVitals, score int) map[string]any {
	return map[string]any{
		"age":              v.Age,
		"bmi":              v.BMI,
		"systolic_bp":      v.SystolicBP,
		"diastolic_bp":     v.DiastolicBP,
		"glucose":          v.Glucose,
		"cholesterol":      v.Cholesterol,
		"fatigue":          v.Fatigue,
		"chest_pain":       v.ChestPain,
		"shortness_breath": v.ShortnessBreath,
		"headache":         v.Headache,
		"exercise_hours":   v.ExerciseHours,
		"smoking":          v.Smoking,
		"alcohol_units":    v.AlcoholUnits,
		"health_score":     score,
	}
}
