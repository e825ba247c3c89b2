package leapfrog

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

const (
	recentWindow   = 7
	fallbackWindow = 3
	trendThreshold = 1.0
	slopeThreshold = 0.1
)

// AnalyzeSymptomTrend compares recent symptom severity against the
// older baseline and classifies the direction of change. Entries must
// be ordered oldest first.
func (e *Engine) AnalyzeSymptomTrend(symptoms []models.SymptomEntry) models.TrendResult {
	if len(symptoms) < 3 {
		return models.TrendResult{Trend: models.TrendInsufficientData, Confidence: 0}
	}

	window := recentWindow
	if len(symptoms) < recentWindow {
		window = fallbackWindow
	}
	recent := symptoms[len(symptoms)-window:]
	older := symptoms[:len(symptoms)-window]

	recentAvg := mean(symptomSeverities(recent))
	olderAvg := recentAvg
	if len(older) > 0 {
		olderAvg = mean(symptomSeverities(older))
	}
	delta := recentAvg - olderAvg

	trend := models.TrendStable
	if delta > trendThreshold {
		trend = models.TrendIncreasing
	} else if delta < -trendThreshold {
		trend = models.TrendDecreasing
	}

	return models.TrendResult{
		Trend:              trend,
		Delta:              delta,
		RecentAverage:      recentAvg,
		MostCommonSymptoms: topSymptoms(symptoms, 3),
		Confidence:         math.Min(0.9, float64(len(symptoms))/20),
	}
}

// AnalyzeMoodTrend compares recent mood scores against the older
// baseline. Entries must be ordered oldest first.
func (e *Engine) AnalyzeMoodTrend(moods []models.MoodEntry) models.TrendResult {
	if len(moods) < 3 {
		return models.TrendResult{Trend: models.TrendInsufficientData, Confidence: 0}
	}

	window := recentWindow
	if len(moods) < recentWindow {
		window = fallbackWindow
	}
	recent := moods[len(moods)-window:]
	older := moods[:len(moods)-window]

	recentAvg := mean(moodScores(recent))
	olderAvg := recentAvg
	if len(older) > 0 {
		olderAvg = mean(moodScores(older))
	}
	delta := recentAvg - olderAvg

	trend := models.TrendStable
	if delta > trendThreshold {
		trend = models.TrendImproving
	} else if delta < -trendThreshold {
		trend = models.TrendDeclining
	}

	return models.TrendResult{
		Trend:           trend,
		Delta:           delta,
		RecentAverage:   recentAvg,
		RecentStressAvg: optionalAverage(recent, func(m models.MoodEntry) *int { return m.StressLevel }),
		RecentEnergyAvg: optionalAverage(recent, func(m models.MoodEntry) *int { return m.EnergyLevel }),
		Confidence:      math.Min(0.9, float64(len(moods))/15),
	}
}

// slopeTrend classifies a value series by its least-squares slope.
func slopeTrend(values []float64) models.TrendDirection {
	if len(values) < 2 {
		return models.TrendInsufficientData
	}
	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, values, nil, false)
	switch {
	case slope > slopeThreshold:
		return models.TrendIncreasing
	case slope < -slopeThreshold:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}

// topSymptoms ranks symptom names by occurrence, ties keeping first
// appearance order.
func topSymptoms(symptoms []models.SymptomEntry, limit int) []models.NameCount {
	counts := make(map[string]int)
	var order []string
	for _, s := range symptoms {
		if _, seen := counts[s.SymptomName]; !seen {
			order = append(order, s.SymptomName)
		}
		counts[s.SymptomName]++
	}

	ranked := make([]models.NameCount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, models.NameCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func optionalAverage(moods []models.MoodEntry, field func(models.MoodEntry) *int) *float64 {
	var sum float64
	var n int
	for _, m := range moods {
		if v := field(m); v != nil {
			sum += float64(*v)
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}
