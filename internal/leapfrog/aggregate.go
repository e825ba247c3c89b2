package leapfrog

import (
	"time"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

// DateKey truncates a timestamp to its UTC calendar day. All per-day
// aggregation in the engine buckets on this key.
func DateKey(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

// lastN returns the trailing n elements of s, or s itself when shorter.
func lastN[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// mean returns the arithmetic mean of vals, or 0 for an empty slice.
func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// activityScoreByDay sums each day's activity load. Duration counts
// when recorded, otherwise a completed activity counts as 1.
func activityScoreByDay(activities []models.ActivityEntry) map[time.Time]float64 {
	byDay := make(map[time.Time]float64)
	for _, a := range activities {
		day := DateKey(a.DateRecorded)
		var val float64
		if a.Duration != nil {
			val = float64(*a.Duration)
		} else if a.Completed {
			val = 1
		}
		byDay[day] += val
	}
	return byDay
}

// moodAverageByDay averages mood scores per calendar day.
func moodAverageByDay(moods []models.MoodEntry) map[time.Time]float64 {
	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for _, m := range moods {
		day := DateKey(m.DateRecorded)
		sums[day] += float64(m.MoodScore)
		counts[day]++
	}
	out := make(map[time.Time]float64, len(sums))
	for day, sum := range sums {
		out[day] = sum / float64(counts[day])
	}
	return out
}

func symptomSeverities(symptoms []models.SymptomEntry) []float64 {
	out := make([]float64, len(symptoms))
	for i, s := range symptoms {
		out[i] = float64(s.Severity)
	}
	return out
}

func moodScores(moods []models.MoodEntry) []float64 {
	out := make([]float64, len(moods))
	for i, m := range moods {
		out[i] = float64(m.MoodScore)
	}
	return out
}
