package leapfrog

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

const (
	correlationDirection = 0.1
	correlationStrong    = 0.3
)

var positiveCorrelationActivities = []string{
	"Increase duration of beneficial activities on high-energy days",
	"Schedule light exercise (e.g., walking) earlier in the day",
	"Track which activities most boost mood and repeat them",
}

var negativeCorrelationActivities = []string{
	"Reduce intensity on days with lower mood",
	"Introduce restorative activities (breathing, mindfulness)",
	"Avoid over-scheduling when fatigued",
}

var neutralCorrelationActivities = []string{
	"Experiment with new activities (short sessions)",
	"Track pre/post-mood to identify helpful activities",
	"Maintain consistency rather than intensity",
}

// AnalyzeActivityCorrelation measures the day-aligned Pearson
// correlation between activity load and average mood. Days present in
// only one series are dropped before correlating.
func (e *Engine) AnalyzeActivityCorrelation(activities []models.ActivityEntry, moods []models.MoodEntry) models.CorrelationResult {
	if len(activities) < 3 || len(moods) < 3 {
		return models.CorrelationResult{Direction: models.CorrelationInsufficientData}
	}

	activityByDay := activityScoreByDay(activities)
	moodByDay := moodAverageByDay(moods)

	var days []time.Time
	for day := range activityByDay {
		if _, ok := moodByDay[day]; ok {
			days = append(days, day)
		}
	}
	if len(days) < 3 {
		return models.CorrelationResult{Direction: models.CorrelationInsufficientData}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	xs := make([]float64, len(days))
	ys := make([]float64, len(days))
	for i, day := range days {
		xs[i] = activityByDay[day]
		ys[i] = moodByDay[day]
	}

	if stat.StdDev(xs, nil) == 0 || stat.StdDev(ys, nil) == 0 {
		return models.CorrelationResult{Direction: models.CorrelationNone, Confidence: 0.4}
	}

	corr := stat.Correlation(xs, ys, nil)
	if math.IsNaN(corr) {
		corr = 0
	}
	strength := math.Abs(corr)

	direction := models.CorrelationNone
	recs := neutralCorrelationActivities
	switch {
	case corr > correlationDirection:
		direction = models.CorrelationPositive
		recs = positiveCorrelationActivities
	case corr < -correlationDirection:
		direction = models.CorrelationNegative
		recs = negativeCorrelationActivities
	}

	confidence := 0.4
	if strength >= correlationStrong {
		confidence = 0.6
	}

	return models.CorrelationResult{
		Strength:              round3(strength),
		Direction:             direction,
		Confidence:            confidence,
		RecommendedActivities: recs,
	}
}

// pearson returns the Pearson correlation of two equal-length series,
// or 0 when it is undefined.
func pearson(x, y []float64) float64 {
	if len(x) < 2 || len(y) < 2 || len(x) != len(y) {
		return 0
	}
	corr := stat.Correlation(x, y, nil)
	if math.IsNaN(corr) {
		return 0
	}
	return corr
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
