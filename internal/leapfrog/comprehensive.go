package leapfrog

import (
	"time"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

// PatientData bundles everything the comprehensive analysis consumes.
// Symptom, mood, activity and assessment slices must be ordered oldest
// first; treatment plans newest first.
type PatientData struct {
	Symptoms       []models.SymptomEntry
	Moods          []models.MoodEntry
	Activities     []models.ActivityEntry
	Assessments    []models.ClinicalAssessment
	Goals          []models.ProgressGoal
	TreatmentPlans []models.TreatmentPlan
}

// ComprehensiveAnalysis runs every sub-analysis over the 90-day data
// window and assembles the full analysis bundle.
func (e *Engine) ComprehensiveAnalysis(patientID string, now time.Time, data PatientData) models.AnalysisResult {
	return models.AnalysisResult{
		PatientID:              patientID,
		AnalysisTimestamp:      now.UTC(),
		DataPeriodDays:         90,
		SymptomAnalysis:        e.AnalyzeSymptoms(data.Symptoms),
		MoodAnalysis:           e.AnalyzeMoods(data.Moods),
		ActivityAnalysis:       e.AnalyzeActivities(data.Activities),
		AssessmentTrends:       e.AnalyzeAssessments(data.Assessments),
		GoalProgress:           e.AnalyzeGoals(data.Goals),
		TreatmentEffectiveness: e.AnalyzeTreatmentEffectiveness(data.TreatmentPlans, data.Symptoms, data.Moods),
		RiskAssessment:         e.AssessRisk(data.Symptoms, data.Moods, data.Activities, data.Assessments),
		PredictiveInsights:     e.PredictiveInsights(data.Symptoms, data.Moods, data.Activities),
		CorrelationMatrix:      e.CorrelationMatrix(data.Symptoms, data.Moods, data.Activities),
		Phenotype:              e.DeterminePhenotype(data.Symptoms, data.Moods, data.Activities, data.Assessments),
		DataQuality:            e.AssessDataQuality(now, data.Symptoms, data.Moods, data.Activities, data.Assessments),
	}
}
