package leapfrog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

func TestComprehensiveAnalysisIdempotent(t *testing.T) {
	e := New(DefaultConfig())
	now := testStart.Add(30 * 24 * time.Hour)

	data := PatientData{
		Symptoms:   symptomSeries(5, 6, 7, 6, 5, 4, 6, 7, 5, 6),
		Moods:      moodSeries(6, 5, 6, 7, 5, 6, 6),
		Activities: activitySeries(30, 20, 40, 30),
		Goals: []models.ProgressGoal{
			{ID: "goal-1", PatientID: "patient-1", GoalType: "exercise", Title: "Walk daily", Status: models.GoalActive},
		},
	}

	first := e.ComprehensiveAnalysis("patient-1", now, data)
	second := e.ComprehensiveAnalysis("patient-1", now, data)

	assert.Equal(t, first, second)
}

func TestComprehensiveAnalysisEmptyDataNeverFails(t *testing.T) {
	e := New(DefaultConfig())

	got := e.ComprehensiveAnalysis("patient-1", testStart, PatientData{})

	assert.Equal(t, models.StatusNoData, got.SymptomAnalysis.Status)
	assert.Equal(t, models.StatusNoData, got.MoodAnalysis.Status)
	assert.Equal(t, models.StatusNoTreatments, got.TreatmentEffectiveness.Status)
	assert.Equal(t, 90, got.DataPeriodDays)
}
