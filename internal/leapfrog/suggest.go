package leapfrog

import (
	"fmt"
	"math"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

// AnalyzeProgress builds the 30-day trend bundle a suggestion run is
// based on. All entry slices must be ordered oldest first.
func (e *Engine) AnalyzeProgress(patientID string, symptoms []models.SymptomEntry,
	moods []models.MoodEntry, activities []models.ActivityEntry) models.ProgressAnalysis {

	return models.ProgressAnalysis{
		PatientID:           patientID,
		DataPeriodDays:      30,
		SymptomTrend:        e.AnalyzeSymptomTrend(symptoms),
		MoodTrend:           e.AnalyzeMoodTrend(moods),
		ActivityCorrelation: e.AnalyzeActivityCorrelation(activities, moods),
		RiskFactors:         e.IdentifyRiskFactors(symptoms, moods),
		ImprovementAreas:    e.IdentifyImprovementAreas(symptoms, moods, activities),
		DataSufficiency: models.DataSufficiency{
			Symptoms:   len(symptoms),
			Moods:      len(moods),
			Activities: len(activities),
			Sufficient: len(symptoms) >= e.cfg.MinimumDataPoints && len(moods) >= e.cfg.MinimumDataPoints,
		},
	}
}

// GenerateSuggestions turns a progress analysis into ranked treatment
// suggestions. Rules fire in a fixed order, low-confidence results are
// filtered, and at most MaxSuggestions survive in firing order.
func (e *Engine) GenerateSuggestions(analysis models.ProgressAnalysis, currentTreatmentID *string) []models.Suggestion {
	if !analysis.DataSufficiency.Sufficient {
		return []models.Suggestion{dataCollectionSuggestion(analysis.PatientID)}
	}

	var suggestions []models.Suggestion

	if analysis.SymptomTrend.Trend == models.TrendIncreasing {
		suggestions = append(suggestions, symptomManagementSuggestion(analysis.SymptomTrend))
	}
	if analysis.MoodTrend.Trend == models.TrendDeclining {
		suggestions = append(suggestions, moodInterventionSuggestion(analysis.MoodTrend))
	}
	if analysis.ActivityCorrelation.Strength > 0.5 {
		suggestions = append(suggestions, activityModificationSuggestion(analysis.ActivityCorrelation))
	}
	for _, factor := range analysis.RiskFactors {
		suggestions = append(suggestions, riskMitigationSuggestion(factor))
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, generalImprovementSuggestions(analysis.ImprovementAreas)...)
	}

	kept := suggestions[:0]
	for _, s := range suggestions {
		if s.ConfidenceScore >= e.cfg.ConfidenceThreshold {
			s.PatientID = analysis.PatientID
			s.CurrentTreatmentID = currentTreatmentID
			kept = append(kept, s)
		}
	}
	if len(kept) > e.cfg.MaxSuggestions {
		kept = kept[:e.cfg.MaxSuggestions]
	}
	return kept
}

func dataCollectionSuggestion(patientID string) models.Suggestion {
	return models.Suggestion{
		PatientID:       patientID,
		Type:            models.SuggestionDataCollection,
		Title:           "Increase Data Collection",
		Description:     "More consistent tracking is needed to provide personalized suggestions.",
		Reasoning:       "Insufficient data points for reliable analysis",
		ConfidenceScore: 0.9,
		Priority:        models.PriorityMedium,
		ImplementationSteps: []string{
			"Set daily reminders for mood tracking",
			"Log symptoms as they occur",
			"Track at least one activity daily",
		},
		ExpectedOutcomes: []string{
			"Better data for AI analysis",
			"More accurate treatment recommendations",
			"Improved care coordination",
		},
		MonitoringParameters: []string{"Daily entries", "Data consistency", "Engagement metrics"},
	}
}

func symptomManagementSuggestion(trend models.TrendResult) models.Suggestion {
	priority := models.PriorityMedium
	if trend.Delta > 2 {
		priority = models.PriorityHigh
	}
	return models.Suggestion{
		Type:            models.SuggestionSymptomManagement,
		Title:           "Enhanced Symptom Management",
		Description:     "Your symptoms have shown an increasing trend. Consider additional management strategies.",
		Reasoning:       fmt.Sprintf("Symptom severity increased by %.1f points recently", trend.Delta),
		ConfidenceScore: trend.Confidence,
		Priority:        priority,
		ImplementationSteps: []string{
			"Discuss symptom patterns with your doctor",
			"Consider medication timing adjustments",
			"Implement additional comfort measures",
			"Track triggers more closely",
		},
		ExpectedOutcomes: []string{
			"Reduced symptom severity",
			"Better symptom control",
			"Improved quality of life",
		},
		MonitoringParameters: []string{"Daily symptom scores", "Medication adherence", "Trigger identification"},
	}
}

func moodInterventionSuggestion(trend models.TrendResult) models.Suggestion {
	priority := models.PriorityMedium
	if trend.Delta < -2 {
		priority = models.PriorityHigh
	}
	return models.Suggestion{
		Type:            models.SuggestionMoodIntervention,
		Title:           "Mood Support Intervention",
		Description:     "Your mood scores have been declining. Let's implement some supportive strategies.",
		Reasoning:       fmt.Sprintf("Mood decreased by %.1f points recently", math.Abs(trend.Delta)),
		ConfidenceScore: trend.Confidence,
		Priority:        priority,
		ImplementationSteps: []string{
			"Schedule check-in with mental health provider",
			"Increase social support activities",
			"Consider mood-boosting activities",
			"Evaluate current stressors",
		},
		ExpectedOutcomes: []string{
			"Improved mood stability",
			"Better emotional regulation",
			"Enhanced coping strategies",
		},
		MonitoringParameters: []string{"Daily mood scores", "Stress levels", "Social interaction frequency"},
	}
}

func activityModificationSuggestion(corr models.CorrelationResult) models.Suggestion {
	return models.Suggestion{
		Type:            models.SuggestionActivityModification,
		Title:           "Optimize Activity Routine",
		Description:     "Your activities show strong correlation with mood. Let's optimize your routine.",
		Reasoning:       fmt.Sprintf("Strong %s correlation detected", corr.Direction),
		ConfidenceScore: corr.Confidence,
		Priority:        models.PriorityMedium,
		ImplementationSteps: []string{
			"Increase beneficial activities",
			"Schedule activities during optimal times",
			"Try new mood-boosting activities",
			"Track activity-mood patterns",
		},
		ExpectedOutcomes: []string{
			"Improved mood through activity",
			"Better activity planning",
			"Enhanced daily routine",
		},
		MonitoringParameters: []string{"Activity duration", "Mood before/after activities", "Energy levels"},
	}
}

type riskRule struct {
	title       string
	description string
	priority    models.SuggestionPriority
	steps       []string
}

var riskRules = map[string]riskRule{
	RiskHighSeveritySymptoms: {
		title:       "Urgent Symptom Management",
		description: "You've reported several high-severity symptoms. Immediate attention recommended.",
		priority:    models.PriorityUrgent,
		steps: []string{
			"Contact healthcare provider immediately",
			"Review current treatment plan",
			"Consider emergency interventions if needed",
		},
	},
	RiskPersistentLowMood: {
		title:       "Mental Health Support",
		description: "Persistent low mood detected. Mental health intervention recommended.",
		priority:    models.PriorityHigh,
		steps: []string{
			"Schedule mental health consultation",
			"Implement mood tracking protocols",
			"Consider therapeutic interventions",
		},
	},
	RiskIncreasingFrequency: {
		title:       "Treatment Plan Review",
		description: "Symptom frequency is increasing. Treatment plan adjustment may be needed.",
		priority:    models.PriorityHigh,
		steps: []string{
			"Schedule urgent doctor appointment",
			"Review medication effectiveness",
			"Analyze potential triggers",
		},
	},
}

func riskMitigationSuggestion(factor string) models.Suggestion {
	rule, ok := riskRules[factor]
	if !ok {
		rule = riskRule{
			title:       "General Risk Management",
			description: "Risk factor identified requiring attention.",
			priority:    models.PriorityMedium,
		}
	}
	return models.Suggestion{
		Type:                 models.SuggestionRiskMitigation,
		Title:                rule.title,
		Description:          rule.description,
		Reasoning:            fmt.Sprintf("Risk factor '%s' requires proactive management", factor),
		ConfidenceScore:      0.8,
		Priority:             rule.priority,
		ImplementationSteps:  rule.steps,
		ExpectedOutcomes:     []string{"Reduced risk", "Improved safety", "Better health outcomes"},
		MonitoringParameters: []string{"Risk factor metrics", "Safety indicators", "Response to interventions"},
	}
}

func generalImprovementSuggestions(areas []string) []models.Suggestion {
	var suggestions []models.Suggestion
	for _, area := range areas {
		if area != "stress_management" {
			continue
		}
		suggestions = append(suggestions, models.Suggestion{
			Type:            models.SuggestionWellnessImprovement,
			Title:           "Stress Management Enhancement",
			Description:     "Your stress levels could benefit from additional management techniques.",
			Reasoning:       "High stress levels detected in recent entries",
			ConfidenceScore: 0.7,
			Priority:        models.PriorityMedium,
			ImplementationSteps: []string{
				"Try daily meditation or breathing exercises",
				"Identify and address stress triggers",
				"Consider stress management counseling",
			},
			ExpectedOutcomes:     []string{"Reduced stress levels", "Better coping", "Improved overall wellbeing"},
			MonitoringParameters: []string{"Daily stress scores", "Stress trigger frequency", "Relaxation practice"},
		})
	}
	return suggestions
}
