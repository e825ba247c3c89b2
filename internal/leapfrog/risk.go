package leapfrog

import (
	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

const (
	highSeverity     = 8
	lowMood          = 3
	highStress       = 8
	poorSleep        = 4
	frequencySurge   = 1.5
	severeRiskWeight = 0.8
	moderRiskWeight  = 0.6
	clinicalWeight   = 0.3
)

// Risk factor labels shared between the quick scan and the weighted
// composite.
const (
	RiskHighSeveritySymptoms = "high_severity_symptoms"
	RiskPersistentLowMood    = "persistent_low_mood"
	RiskIncreasingFrequency  = "increasing_symptom_frequency"
)

// IdentifyRiskFactors scans the trailing week of symptoms and moods
// for conditions needing attention. Entries must be ordered oldest
// first.
func (e *Engine) IdentifyRiskFactors(symptoms []models.SymptomEntry, moods []models.MoodEntry) []string {
	var factors []string

	var severe int
	for _, s := range lastN(symptoms, recentWindow) {
		if s.Severity >= highSeverity {
			severe++
		}
	}
	if severe >= 2 {
		factors = append(factors, RiskHighSeveritySymptoms)
	}

	var low int
	for _, m := range lastN(moods, recentWindow) {
		if m.MoodScore <= lowMood {
			low++
		}
	}
	if low >= 3 {
		factors = append(factors, RiskPersistentLowMood)
	}

	recent := len(lastN(symptoms, recentWindow))
	var prior int
	if len(symptoms) >= 2*recentWindow {
		prior = recentWindow
	}
	if float64(recent) > float64(prior)*frequencySurge {
		factors = append(factors, RiskIncreasingFrequency)
	}

	return factors
}

// IdentifyImprovementAreas flags tracking and wellness gaps over the
// trailing week.
func (e *Engine) IdentifyImprovementAreas(symptoms []models.SymptomEntry, moods []models.MoodEntry, activities []models.ActivityEntry) []string {
	var areas []string

	if len(lastN(activities, recentWindow)) < 3 {
		areas = append(areas, "increase_activity_tracking")
	}

	recentMoods := lastN(moods, recentWindow)
	for _, m := range recentMoods {
		if m.StressLevel != nil && *m.StressLevel >= highStress {
			areas = append(areas, "stress_management")
			break
		}
	}
	for _, m := range recentMoods {
		if m.SleepQuality != nil && *m.SleepQuality <= poorSleep {
			areas = append(areas, "sleep_improvement")
			break
		}
	}

	return areas
}

// AssessRisk builds the weighted risk composite across symptoms,
// moods, activity engagement and the latest clinical assessment.
// Engagement is tracked as a factor but carries no composite weight.
func (e *Engine) AssessRisk(symptoms []models.SymptomEntry, moods []models.MoodEntry,
	activities []models.ActivityEntry, assessments []models.ClinicalAssessment) models.RiskAssessment {

	factors := make(map[string]float64)
	var overall float64

	if len(symptoms) > 0 {
		var severe int
		for _, s := range lastN(symptoms, recentWindow) {
			if s.Severity >= highSeverity {
				severe++
			}
		}
		risk := float64(severe) / recentWindow
		factors["symptom_severity"] = risk
		overall += risk * e.cfg.RiskWeights["symptom_severity"]
	}

	if len(moods) > 0 {
		var low int
		for _, m := range lastN(moods, recentWindow) {
			if m.MoodScore <= lowMood {
				low++
			}
		}
		risk := float64(low) / recentWindow
		factors["mood_decline"] = risk
		overall += risk * e.cfg.RiskWeights["mood_decline"]
	}

	if len(activities) > 0 {
		var incomplete int
		for _, a := range lastN(activities, recentWindow) {
			if !a.Completed {
				incomplete++
			}
		}
		factors["low_engagement"] = float64(incomplete) / recentWindow
	}

	if len(assessments) > 0 {
		latest := assessments[len(assessments)-1]
		switch latest.RiskLevel {
		case models.AssessmentRiskSevere:
			factors["clinical_risk"] = severeRiskWeight
		case models.AssessmentRiskModerate:
			factors["clinical_risk"] = moderRiskWeight
		}
		if v, ok := factors["clinical_risk"]; ok {
			overall += v * clinicalWeight
		}
	}

	level := models.RiskLow
	if overall > e.cfg.RiskThreshold {
		level = models.RiskHigh
	} else if overall > 0.4 {
		level = models.RiskModerate
	}

	return models.RiskAssessment{
		OverallRiskScore: overall,
		RiskLevel:        level,
		RiskFactors:      factors,
		Recommendations:  riskRecommendations(factors, level),
	}
}

func riskRecommendations(factors map[string]float64, level models.RiskLevel) []string {
	var recs []string

	if level == models.RiskHigh {
		recs = append(recs,
			"Schedule urgent consultation with healthcare provider",
			"Implement daily monitoring protocols",
			"Consider crisis intervention resources")
	}
	if factors["symptom_severity"] > 0.5 {
		recs = append(recs,
			"Review and adjust symptom management strategies",
			"Consider additional pain management techniques")
	}
	if factors["mood_decline"] > 0.5 {
		recs = append(recs,
			"Increase mental health support interventions",
			"Consider mood stabilization techniques")
	}
	if factors["low_engagement"] > 0.5 {
		recs = append(recs,
			"Implement engagement enhancement strategies",
			"Simplify activity recommendations")
	}

	return recs
}
