package leapfrog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

func TestIdentifyRiskFactorsHighSeverity(t *testing.T) {
	e := New(DefaultConfig())

	symptoms := symptomSeries(3, 3, 3, 3, 3, 9, 8)
	got := e.IdentifyRiskFactors(symptoms, nil)
	assert.Contains(t, got, RiskHighSeveritySymptoms)
}

func TestIdentifyRiskFactorsPersistentLowMood(t *testing.T) {
	e := New(DefaultConfig())

	got := e.IdentifyRiskFactors(nil, moodSeries(7, 7, 2, 3, 1, 6, 6))
	assert.Contains(t, got, RiskPersistentLowMood)
}

func TestIdentifyRiskFactorsFrequencySurge(t *testing.T) {
	e := New(DefaultConfig())

	// Any recent symptoms with no second trailing week on record counts
	// as a surge against a zero baseline.
	got := e.IdentifyRiskFactors(symptomSeries(3, 3, 3), nil)
	assert.Contains(t, got, RiskIncreasingFrequency)

	// Fourteen entries: trailing week matches the prior week, no surge.
	got = e.IdentifyRiskFactors(symptomSeries(3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3), nil)
	assert.NotContains(t, got, RiskIncreasingFrequency)
}

func TestIdentifyRiskFactorsNone(t *testing.T) {
	e := New(DefaultConfig())

	got := e.IdentifyRiskFactors(
		symptomSeries(3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3),
		moodSeries(6, 7, 6, 7, 6, 7, 6))
	assert.Empty(t, got)
}

func TestIdentifyImprovementAreas(t *testing.T) {
	e := New(DefaultConfig())

	moods := moodSeries(5, 5, 5)
	moods[1].StressLevel = intPtr(9)
	moods[2].SleepQuality = intPtr(3)

	got := e.IdentifyImprovementAreas(nil, moods, activitySeries(30))
	assert.Equal(t, []string{"increase_activity_tracking", "stress_management", "sleep_improvement"}, got)
}

func TestAssessRiskWeightedComposite(t *testing.T) {
	e := New(DefaultConfig())

	// All seven recent symptoms severe, all seven moods at rock bottom.
	symptoms := symptomSeries(9, 9, 9, 9, 9, 9, 9)
	moods := moodSeries(1, 1, 1, 1, 1, 1, 1)
	assessments := []models.ClinicalAssessment{
		{AssessmentType: "PHQ-9", TotalScore: 21, RiskLevel: models.AssessmentRiskSevere},
	}

	got := e.AssessRisk(symptoms, moods, nil, assessments)
	// 1.0*0.30 + 1.0*0.25 + 0.8*0.3
	assert.InDelta(t, 0.79, got.OverallRiskScore, 1e-9)
	assert.Equal(t, models.RiskHigh, got.RiskLevel)
	assert.InDelta(t, 1.0, got.RiskFactors["symptom_severity"], 1e-9)
	assert.InDelta(t, 1.0, got.RiskFactors["mood_decline"], 1e-9)
	assert.InDelta(t, 0.8, got.RiskFactors["clinical_risk"], 1e-9)
	assert.Contains(t, got.Recommendations, "Schedule urgent consultation with healthcare provider")
}

func TestAssessRiskEngagementTrackedButUnweighted(t *testing.T) {
	e := New(DefaultConfig())

	activities := activitySeries(30, 30, 30, 30, 30, 30, 30)
	for i := range activities {
		activities[i].Completed = false
	}

	got := e.AssessRisk(nil, nil, activities, nil)
	assert.InDelta(t, 1.0, got.RiskFactors["low_engagement"], 1e-9)
	assert.Zero(t, got.OverallRiskScore)
	assert.Equal(t, models.RiskLow, got.RiskLevel)
	assert.Contains(t, got.Recommendations, "Implement engagement enhancement strategies")
}

func TestAssessRiskLowBand(t *testing.T) {
	e := New(DefaultConfig())

	// Three severe of seven, four low moods of seven.
	symptoms := symptomSeries(3, 3, 3, 3, 9, 9, 9)
	moods := moodSeries(2, 2, 2, 2, 6, 6, 6)

	got := e.AssessRisk(symptoms, moods, nil, nil)
	// (3/7)*0.30 + (4/7)*0.25
	assert.InDelta(t, 3.0/7*0.30+4.0/7*0.25, got.OverallRiskScore, 1e-9)
	assert.Equal(t, models.RiskLow, got.RiskLevel)
}

func TestAssessRiskModerateClinical(t *testing.T) {
	e := New(DefaultConfig())

	moods := moodSeries(1, 1, 1, 1, 1, 1, 1)
	assessments := []models.ClinicalAssessment{
		{AssessmentType: "GAD-7", TotalScore: 14, RiskLevel: models.AssessmentRiskModerate},
	}

	got := e.AssessRisk(nil, moods, nil, assessments)
	// 1.0*0.25 + 0.6*0.3
	assert.InDelta(t, 0.43, got.OverallRiskScore, 1e-9)
	assert.Equal(t, models.RiskModerate, got.RiskLevel)
}
