package leapfrog

import (
	"time"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

var testStart = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func symptomSeries(severities ...int) []models.SymptomEntry {
	out := make([]models.SymptomEntry, len(severities))
	for i, sev := range severities {
		out[i] = models.SymptomEntry{
			SymptomName: "headache",
			Severity:    sev,
			CreatedAt:   testStart.Add(time.Duration(i) * 24 * time.Hour),
		}
	}
	return out
}

func moodSeries(scores ...int) []models.MoodEntry {
	out := make([]models.MoodEntry, len(scores))
	for i, score := range scores {
		day := testStart.Add(time.Duration(i) * 24 * time.Hour)
		out[i] = models.MoodEntry{
			MoodScore:    score,
			DateRecorded: day,
			CreatedAt:    day,
		}
	}
	return out
}

func activitySeries(durations ...int) []models.ActivityEntry {
	out := make([]models.ActivityEntry, len(durations))
	for i := range durations {
		d := durations[i]
		out[i] = models.ActivityEntry{
			ActivityType: "exercise",
			ActivityName: "walk",
			Duration:     &d,
			Completed:    true,
			DateRecorded: testStart.Add(time.Duration(i) * 24 * time.Hour),
		}
	}
	return out
}

func intPtr(v int) *int { return &v }
