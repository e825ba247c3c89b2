package leapfrog

import (
	"sort"
	"strings"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

// AnalyzeSymptoms builds per-symptom pattern breakdowns over the
// analysis window. Entries must be ordered oldest first.
func (e *Engine) AnalyzeSymptoms(symptoms []models.SymptomEntry) models.SymptomAnalysis {
	if len(symptoms) == 0 {
		return models.SymptomAnalysis{Status: models.StatusNoData, Patterns: []models.SymptomPattern{}}
	}

	groups := make(map[string][]models.SymptomEntry)
	var order []string
	for _, s := range symptoms {
		if _, seen := groups[s.SymptomName]; !seen {
			order = append(order, s.SymptomName)
		}
		groups[s.SymptomName] = append(groups[s.SymptomName], s)
	}

	patterns := make([]models.SymptomPattern, 0, len(order))
	for _, name := range order {
		entries := groups[name]
		if len(entries) < 3 {
			continue
		}
		severities := symptomSeverities(entries)

		var triggers []string
		locationSet := make(map[string]struct{})
		var locations []string
		for _, s := range entries {
			if s.Triggers != nil && *s.Triggers != "" {
				triggers = append(triggers, *s.Triggers)
			}
			if s.Location != nil && *s.Location != "" {
				if _, ok := locationSet[*s.Location]; !ok {
					locationSet[*s.Location] = struct{}{}
					locations = append(locations, *s.Location)
				}
			}
		}

		patterns = append(patterns, models.SymptomPattern{
			Symptom:        name,
			Frequency:      len(entries),
			AvgSeverity:    mean(severities),
			SeverityTrend:  slopeTrend(severities),
			CommonTriggers: commonWords(triggers, 5),
			Locations:      locations,
		})
	}

	burden := mean(symptomSeverities(lastN(symptoms, 14)))

	return models.SymptomAnalysis{
		Status:         models.StatusAnalyzed,
		TotalEntries:   len(symptoms),
		UniqueSymptoms: len(groups),
		SymptomBurden:  burden,
		Patterns:       patterns,
		OverallTrend:   slopeTrend(symptomSeverities(symptoms)),
		FrequencyTrend: frequencyTrend(symptoms),
	}
}

// AnalyzeMoods builds stability and impact metrics over mood entries.
func (e *Engine) AnalyzeMoods(moods []models.MoodEntry) models.MoodAnalysis {
	if len(moods) == 0 {
		return models.MoodAnalysis{Status: models.StatusNoData, RiskIndicators: []string{}}
	}

	scores := moodScores(moods)
	sd, _ := stats.StandardDeviation(stats.Float64Data(scores))

	return models.MoodAnalysis{
		Status:          models.StatusAnalyzed,
		TotalEntries:    len(moods),
		AverageMood:     mean(scores),
		MoodStability:   1 - sd/10,
		MoodTrend:       slopeTrend(scores),
		MoodVariability: sd,
		EnergyImpact:    optionalCorrelation(moods, func(m models.MoodEntry) *int { return m.EnergyLevel }),
		StressImpact:    optionalCorrelation(moods, func(m models.MoodEntry) *int { return m.StressLevel }),
		SleepImpact:     optionalCorrelation(moods, func(m models.MoodEntry) *int { return m.SleepQuality }),
		WeeklyPatterns:  weeklyMoodPatterns(moods),
		RiskIndicators:  moodRiskIndicators(moods),
	}
}

// AnalyzeActivities builds engagement metrics grouped by activity type.
func (e *Engine) AnalyzeActivities(activities []models.ActivityEntry) models.ActivityAnalysis {
	if len(activities) == 0 {
		return models.ActivityAnalysis{Status: models.StatusNoData, Patterns: map[string]models.ActivityTypePattern{}}
	}

	groups := make(map[string][]models.ActivityEntry)
	for _, a := range activities {
		groups[a.ActivityType] = append(groups[a.ActivityType], a)
	}

	var completed int
	var durations, intensities []float64
	for _, a := range activities {
		if a.Completed {
			completed++
		}
		if a.Duration != nil {
			durations = append(durations, float64(*a.Duration))
		}
		if a.Intensity != nil {
			intensities = append(intensities, float64(*a.Intensity))
		}
	}

	patterns := make(map[string]models.ActivityTypePattern, len(groups))
	for typ, entries := range groups {
		var typCompleted int
		var typDurations []float64
		series := make([]float64, len(entries))
		for i, a := range entries {
			if a.Completed {
				typCompleted++
			}
			if a.Duration != nil {
				typDurations = append(typDurations, float64(*a.Duration))
				series[i] = float64(*a.Duration)
			}
		}
		patterns[typ] = models.ActivityTypePattern{
			Frequency:      len(entries),
			CompletionRate: float64(typCompleted) / float64(len(entries)),
			AvgDuration:    mean(typDurations),
			Trend:          slopeTrend(series),
		}
	}

	return models.ActivityAnalysis{
		Status:            models.StatusAnalyzed,
		TotalActivities:   len(activities),
		CompletionRate:    float64(completed) / float64(len(activities)),
		AvgDuration:       mean(durations),
		AvgIntensity:      mean(intensities),
		ActivityDiversity: len(groups),
		Patterns:          patterns,
		EngagementScore:   engagementScore(activities),
	}
}

// AnalyzeAssessments groups clinical assessment score trajectories by
// assessment type. Entries must be ordered oldest first.
func (e *Engine) AnalyzeAssessments(assessments []models.ClinicalAssessment) models.AssessmentAnalysis {
	if len(assessments) == 0 {
		return models.AssessmentAnalysis{Status: models.StatusNoData, Trends: map[string]models.AssessmentTrend{}}
	}

	groups := make(map[string][]models.ClinicalAssessment)
	var types []string
	for _, a := range assessments {
		if _, seen := groups[a.AssessmentType]; !seen {
			types = append(types, a.AssessmentType)
		}
		groups[a.AssessmentType] = append(groups[a.AssessmentType], a)
	}

	trends := make(map[string]models.AssessmentTrend, len(groups))
	for typ, entries := range groups {
		scores := make([]float64, len(entries))
		for i, a := range entries {
			scores[i] = float64(a.TotalScore)
		}
		trends[typ] = models.AssessmentTrend{
			LatestScore: entries[len(entries)-1].TotalScore,
			Trend:       slopeTrend(scores),
			RiskLevel:   entries[len(entries)-1].RiskLevel,
			Improvement: len(scores) > 1 && scores[len(scores)-1] < scores[0],
		}
	}

	return models.AssessmentAnalysis{
		Status:           models.StatusAnalyzed,
		TotalAssessments: len(assessments),
		AssessmentTypes:  types,
		Trends:           trends,
	}
}

// AnalyzeGoals summarizes progress goal completion.
func (e *Engine) AnalyzeGoals(goals []models.ProgressGoal) models.GoalProgress {
	if len(goals) == 0 {
		return models.GoalProgress{Status: models.StatusNoGoals, Goals: []models.GoalSummary{}}
	}

	var active, completedCount int
	var activeProgress []float64
	summaries := make([]models.GoalSummary, 0, len(goals))
	for _, g := range goals {
		switch g.Status {
		case models.GoalActive:
			active++
			activeProgress = append(activeProgress, g.ProgressPercentage)
		case models.GoalCompleted:
			completedCount++
		}
		summaries = append(summaries, models.GoalSummary{
			ID:       g.ID,
			Title:    g.Title,
			Type:     g.GoalType,
			Progress: g.ProgressPercentage,
			Status:   g.Status,
		})
	}

	return models.GoalProgress{
		Status:         models.StatusAnalyzed,
		TotalGoals:     len(goals),
		ActiveGoals:    active,
		CompletedGoals: completedCount,
		CompletionRate: float64(completedCount) / float64(len(goals)),
		AvgProgress:    mean(activeProgress),
		Goals:          summaries,
	}
}

// PredictiveInsights projects short-term trajectories from recent
// series when enough history exists.
func (e *Engine) PredictiveInsights(symptoms []models.SymptomEntry, moods []models.MoodEntry,
	activities []models.ActivityEntry) map[string]models.PredictiveInsight {

	insights := make(map[string]models.PredictiveInsight)

	if len(symptoms) >= 10 {
		switch slopeTrend(symptomSeverities(lastN(symptoms, 10))) {
		case models.TrendIncreasing:
			insights["symptom_prediction"] = models.PredictiveInsight{
				Trajectory:     "worsening",
				Confidence:     0.7,
				Timeframe:      "next_7_days",
				Recommendation: "Consider treatment adjustment",
			}
		case models.TrendDecreasing:
			insights["symptom_prediction"] = models.PredictiveInsight{
				Trajectory:     "improving",
				Confidence:     0.8,
				Timeframe:      "next_7_days",
				Recommendation: "Continue current approach",
			}
		}
	}

	if len(moods) >= 14 {
		sd, _ := stats.StandardDeviation(stats.Float64Data(moodScores(lastN(moods, 14))))
		if sd > 2.5 {
			insights["mood_prediction"] = models.PredictiveInsight{
				Stability:      "unstable",
				Confidence:     0.6,
				Recommendation: "Focus on mood stabilization techniques",
			}
		}
	}

	return insights
}

// CorrelationMatrix cross-correlates the tracked metric series.
func (e *Engine) CorrelationMatrix(symptoms []models.SymptomEntry, moods []models.MoodEntry,
	activities []models.ActivityEntry) map[string]float64 {

	correlations := make(map[string]float64)

	if len(symptoms) > 0 && len(moods) > 0 {
		severities := symptomSeverities(lastN(symptoms, 30))
		scores := moodScores(lastN(moods, 30))
		if len(severities) == len(scores) {
			correlations["symptom_mood"] = pearson(severities, scores)
		}
	}

	return correlations
}

// DeterminePhenotype derives a coarse patient profile for treatment
// personalization.
func (e *Engine) DeterminePhenotype(symptoms []models.SymptomEntry, moods []models.MoodEntry,
	activities []models.ActivityEntry, assessments []models.ClinicalAssessment) models.PatientPhenotype {

	phenotype := models.PatientPhenotype{
		PrimaryConcerns: []string{},
		RiskProfile:     "standard",
	}

	if len(symptoms) > 0 {
		for _, nc := range topSymptoms(symptoms, 3) {
			phenotype.PrimaryConcerns = append(phenotype.PrimaryConcerns, nc.Name)
		}
	}

	if len(moods) > 0 {
		avg := mean(moodScores(moods))
		switch {
		case avg < 5:
			phenotype.MoodTendency = "low"
		case avg > 7:
			phenotype.MoodTendency = "high"
		default:
			phenotype.MoodTendency = "moderate"
		}
	}

	return phenotype
}

// frequencyTrend classifies how often entries occur by bucketing them
// into ISO weeks and sloping the weekly counts.
func frequencyTrend(symptoms []models.SymptomEntry) models.TrendDirection {
	if len(symptoms) < 7 {
		return models.TrendInsufficientData
	}

	counts := make(map[int]int)
	var weeks []int
	for _, s := range symptoms {
		_, week := s.CreatedAt.ISOWeek()
		if _, seen := counts[week]; !seen {
			weeks = append(weeks, week)
		}
		counts[week]++
	}
	if len(weeks) < 2 {
		return models.TrendInsufficientData
	}

	series := make([]float64, len(weeks))
	for i, w := range weeks {
		series[i] = float64(counts[w])
	}
	return slopeTrend(series)
}

func weeklyMoodPatterns(moods []models.MoodEntry) map[string]float64 {
	byWeekday := make(map[time.Weekday][]float64)
	for _, m := range moods {
		wd := m.DateRecorded.Weekday()
		byWeekday[wd] = append(byWeekday[wd], float64(m.MoodScore))
	}

	patterns := make(map[string]float64, len(byWeekday))
	for wd, scores := range byWeekday {
		patterns[wd.String()] = mean(scores)
	}
	return patterns
}

func moodRiskIndicators(moods []models.MoodEntry) []string {
	indicators := []string{}
	recent := lastN(moods, recentWindow)

	var low, stressed, sleepless int
	for _, m := range recent {
		if m.MoodScore <= lowMood {
			low++
		}
		if m.StressLevel != nil && *m.StressLevel >= highStress {
			stressed++
		}
		if m.SleepQuality != nil && *m.SleepQuality <= poorSleep {
			sleepless++
		}
	}
	if low >= 3 {
		indicators = append(indicators, "persistent_low_mood")
	}
	if stressed >= 2 {
		indicators = append(indicators, "high_stress_levels")
	}
	if sleepless >= 3 {
		indicators = append(indicators, "poor_sleep_quality")
	}
	return indicators
}

// engagementScore blends completion, weekly consistency and activity
// variety into a single [0,1] score.
func engagementScore(activities []models.ActivityEntry) float64 {
	if len(activities) == 0 {
		return 0
	}

	var completed int
	weeks := make(map[int]struct{})
	types := make(map[string]struct{})
	for _, a := range activities {
		if a.Completed {
			completed++
		}
		_, week := a.DateRecorded.ISOWeek()
		weeks[week] = struct{}{}
		types[a.ActivityType] = struct{}{}
	}

	completionRate := float64(completed) / float64(len(activities))
	var consistency float64
	if len(weeks) > 0 {
		consistency = min(1, float64(len(activities))/(float64(len(weeks))*3))
	}
	variety := min(1, float64(len(types))/5)

	score := completionRate*0.5 + consistency*0.3 + variety*0.2
	return min(1, score)
}

// optionalCorrelation correlates mood score with an optional companion
// field over the entries where the field was recorded.
func optionalCorrelation(moods []models.MoodEntry, field func(models.MoodEntry) *int) float64 {
	var x, y []float64
	for _, m := range moods {
		if v := field(m); v != nil {
			x = append(x, float64(m.MoodScore))
			y = append(y, float64(*v))
		}
	}
	return pearson(x, y)
}

// commonWords tallies words longer than three characters across the
// free-text snippets and returns the most frequent.
func commonWords(texts []string, limit int) []string {
	if len(texts) == 0 {
		return []string{}
	}

	counts := make(map[string]int)
	var order []string
	for _, text := range texts {
		for _, word := range strings.Fields(strings.ToLower(text)) {
			if len(word) <= 3 {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	return order
}
