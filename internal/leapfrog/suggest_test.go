package leapfrog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

func TestGenerateSuggestionsInsufficientData(t *testing.T) {
	e := New(DefaultConfig())

	analysis := e.AnalyzeProgress("patient-1", symptomSeries(5, 5), moodSeries(5, 5), nil)
	require.False(t, analysis.DataSufficiency.Sufficient)

	got := e.GenerateSuggestions(analysis, nil)
	require.Len(t, got, 1)
	assert.Equal(t, models.SuggestionDataCollection, got[0].Type)
	assert.Equal(t, "Increase Data Collection", got[0].Title)
	assert.InDelta(t, 0.9, got[0].ConfidenceScore, 1e-9)
	assert.Equal(t, models.PriorityMedium, got[0].Priority)
	assert.Equal(t, "patient-1", got[0].PatientID)
}

func TestGenerateSuggestionsSymptomAndRiskRules(t *testing.T) {
	e := New(DefaultConfig())

	// Worsening severe symptoms over two weeks plus stable mood.
	symptoms := symptomSeries(3, 3, 3, 3, 3, 3, 3, 9, 9, 9, 9, 9, 9, 9)
	moods := moodSeries(6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6)

	analysis := e.AnalyzeProgress("patient-1", symptoms, moods, nil)
	treatmentID := "plan-9"
	got := e.GenerateSuggestions(analysis, &treatmentID)

	require.NotEmpty(t, got)
	assert.Equal(t, models.SuggestionSymptomManagement, got[0].Type)
	assert.Equal(t, models.PriorityHigh, got[0].Priority)
	assert.Contains(t, got[0].Reasoning, "6.0 points")

	var types []models.SuggestionType
	for _, s := range got {
		types = append(types, s.Type)
		assert.Equal(t, "patient-1", s.PatientID)
		require.NotNil(t, s.CurrentTreatmentID)
		assert.Equal(t, "plan-9", *s.CurrentTreatmentID)
	}
	assert.Contains(t, types, models.SuggestionRiskMitigation)
}

func TestGenerateSuggestionsConfidenceFilter(t *testing.T) {
	cfg := DefaultConfig()
	e := New(cfg)

	// Nine symptoms: trend confidence 9/20 = 0.45, below the threshold,
	// so the symptom-management suggestion is dropped.
	symptoms := symptomSeries(2, 2, 2, 2, 2, 8, 8, 8, 8)
	moods := moodSeries(6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6)

	analysis := e.AnalyzeProgress("patient-1", symptoms, moods, nil)
	require.Equal(t, models.TrendIncreasing, analysis.SymptomTrend.Trend)

	got := e.GenerateSuggestions(analysis, nil)
	for _, s := range got {
		assert.NotEqual(t, models.SuggestionSymptomManagement, s.Type)
		assert.GreaterOrEqual(t, s.ConfidenceScore, cfg.ConfidenceThreshold)
	}
}

func TestGenerateSuggestionsCapsAtFive(t *testing.T) {
	e := New(DefaultConfig())

	analysis := models.ProgressAnalysis{
		PatientID:       "patient-1",
		DataSufficiency: models.DataSufficiency{Sufficient: true},
		SymptomTrend:    models.TrendResult{Trend: models.TrendIncreasing, Delta: 3, Confidence: 0.9},
		MoodTrend:       models.TrendResult{Trend: models.TrendDeclining, Delta: -3, Confidence: 0.9},
		ActivityCorrelation: models.CorrelationResult{
			Strength: 0.8, Direction: models.CorrelationPositive, Confidence: 0.6,
		},
		RiskFactors: []string{
			RiskHighSeveritySymptoms, RiskPersistentLowMood, RiskIncreasingFrequency,
		},
	}

	got := e.GenerateSuggestions(analysis, nil)
	require.Len(t, got, 5)
	// Firing order survives the cap.
	assert.Equal(t, models.SuggestionSymptomManagement, got[0].Type)
	assert.Equal(t, models.SuggestionMoodIntervention, got[1].Type)
	assert.Equal(t, models.SuggestionActivityModification, got[2].Type)
	assert.Equal(t, models.SuggestionRiskMitigation, got[3].Type)
	assert.Equal(t, models.SuggestionRiskMitigation, got[4].Type)
}

func TestGenerateSuggestionsWellnessFallback(t *testing.T) {
	e := New(DefaultConfig())

	// Quiet trends but high stress in recent moods.
	symptoms := symptomSeries(4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4)
	moods := moodSeries(6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6)
	moods[12].StressLevel = intPtr(9)
	activities := activitySeries(30, 30, 30, 30, 30, 30, 30)

	analysis := e.AnalyzeProgress("patient-1", symptoms, moods, activities)
	got := e.GenerateSuggestions(analysis, nil)

	require.Len(t, got, 1)
	assert.Equal(t, models.SuggestionWellnessImprovement, got[0].Type)
	assert.Equal(t, "Stress Management Enhancement", got[0].Title)
}

func TestSuggestionJSONRoundTrip(t *testing.T) {
	e := New(DefaultConfig())

	symptoms := symptomSeries(3, 3, 3, 3, 3, 3, 3, 9, 9, 9, 9, 9, 9, 9)
	moods := moodSeries(6, 6, 6, 6, 6)
	analysis := e.AnalyzeProgress("patient-1", symptoms, moods, nil)
	treatmentID := "plan-4"
	got := e.GenerateSuggestions(analysis, &treatmentID)
	require.NotEmpty(t, got)

	original := got[0]
	original.ID = "sugg-1"
	original.CreatedAt = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded models.Suggestion
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.InDelta(t, original.ConfidenceScore, decoded.ConfidenceScore, 1e-9)
	assert.Equal(t, original, decoded)
}

func TestRiskMitigationUnknownFactor(t *testing.T) {
	got := riskMitigationSuggestion("something_else")
	assert.Equal(t, "General Risk Management", got.Title)
	assert.Equal(t, models.PriorityMedium, got.Priority)
	assert.InDelta(t, 0.8, got.ConfidenceScore, 1e-9)
}

func TestRiskMitigationUrgentPriority(t *testing.T) {
	got := riskMitigationSuggestion(RiskHighSeveritySymptoms)
	assert.Equal(t, models.PriorityUrgent, got.Priority)
	assert.Contains(t, got.ImplementationSteps, "Contact healthcare provider immediately")
}
