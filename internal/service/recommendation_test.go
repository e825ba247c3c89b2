package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapfroghealth/leapfrog/backend/internal/logger"
	"github.com/leapfroghealth/leapfrog/backend/internal/models"
	"github.com/leapfroghealth/leapfrog/backend/pkg/classifier"
)

func healthyVitals() models.HealthVitals {
	return models.HealthVitals{
		Age:         35,
		BMI:         22,
		SystolicBP:  115,
		DiastolicBP: 75,
		Glucose:     90,
		Cholesterol: 180,
	}
}

func TestRecommendTreatmentsUsesClassifier(t *testing.T) {
	c := &mockClassifier{
		prediction: &classifier.Prediction{
			Recommendations: []classifier.Recommendation{
				{ID: 3, Treatment: "Cardiac Rehabilitation", Confidence: 0.91, Priority: "high"},
			},
			PrimaryTreatment: "Cardiac Rehabilitation",
			Confidence:       0.91,
		},
	}
	svc := NewRecommendationService(c, logger.NewNop())

	result, err := svc.RecommendTreatments(context.Background(), healthyVitals())
	require.NoError(t, err)

	assert.Equal(t, 1, c.calls)
	assert.Equal(t, "classifier", result.ModelSource)
	assert.Equal(t, "Cardiac Rehabilitation", result.PrimaryTreatment)
	assert.Equal(t, 0.91, result.Confidence)
	assert.Equal(t, 100, result.HealthScore)
	assert.Equal(t, "Low", result.RiskLevel)
	assert.False(t, result.GeneratedAt.IsZero())
}

func TestRecommendTreatmentsFallsBackOnClassifierError(t *testing.T) {
	c := &mockClassifier{err: errors.New("connection refused")}
	svc := NewRecommendationService(c, logger.NewNop())

	result, err := svc.RecommendTreatments(context.Background(), healthyVitals())
	require.NoError(t, err)

	assert.Equal(t, 1, c.calls)
	assert.Equal(t, "rules", result.ModelSource)
	require.NotEmpty(t, result.Recommendations)
	assert.Equal(t, result.Recommendations[0].Treatment, result.PrimaryTreatment)
	assert.Equal(t, result.Recommendations[0].Confidence, result.Confidence)
}

func TestRecommendTreatmentsWithoutClassifier(t *testing.T) {
	svc := NewRecommendationService(nil, logger.NewNop())

	vitals := healthyVitals()
	vitals.BMI = 36
	vitals.SystolicBP = 165
	vitals.Glucose = 210
	vitals.Smoking = 1

	result, err := svc.RecommendTreatments(context.Background(), vitals)
	require.NoError(t, err)

	assert.Equal(t, "rules", result.ModelSource)
	assert.Less(t, result.HealthScore, 60)
	assert.Equal(t, "High", result.RiskLevel)
	assert.NotEmpty(t, result.Recommendations)
	assert.Contains(t, result.Summary, "overall health score")
}
