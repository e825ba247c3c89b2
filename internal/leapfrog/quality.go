package leapfrog

import (
	"time"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

// AssessDataQuality scores how complete, consistent and fresh the
// patient's tracked data is. Recency decays to zero over a week
// without new entries.
func (e *Engine) AssessDataQuality(now time.Time, symptoms []models.SymptomEntry,
	moods []models.MoodEntry, activities []models.ActivityEntry,
	assessments []models.ClinicalAssessment) models.DataQuality {

	var present int
	for _, nonEmpty := range []bool{
		len(symptoms) > 0, len(moods) > 0, len(activities) > 0, len(assessments) > 0,
	} {
		if nonEmpty {
			present++
		}
	}
	completeness := float64(present) / 4

	var consistency float64
	if len(moods) > 0 {
		days := make(map[time.Time]struct{})
		for _, m := range lastN(moods, 30) {
			days[DateKey(m.DateRecorded)] = struct{}{}
		}
		consistency = min(1, float64(len(days))/30)
	}

	var recency float64
	var latest time.Time
	if len(symptoms) > 0 {
		latest = laterOf(latest, symptoms[len(symptoms)-1].CreatedAt)
	}
	if len(moods) > 0 {
		latest = laterOf(latest, moods[len(moods)-1].DateRecorded)
	}
	if len(activities) > 0 {
		latest = laterOf(latest, activities[len(activities)-1].DateRecorded)
	}
	if !latest.IsZero() {
		daysSince := DateKey(now).Sub(DateKey(latest)).Hours() / 24
		recency = max(0, 1-daysSince/7)
	}

	return models.DataQuality{
		Completeness:   completeness,
		Consistency:    consistency,
		Recency:        recency,
		OverallQuality: (completeness + consistency + recency) / 3,
		InvalidEntries: countInvalidEntries(symptoms, moods),
	}
}

// countInvalidEntries tallies scores outside the 1-10 scale.
func countInvalidEntries(symptoms []models.SymptomEntry, moods []models.MoodEntry) int {
	var invalid int
	for _, s := range symptoms {
		if s.Severity < models.ScaleMin || s.Severity > models.ScaleMax {
			invalid++
		}
	}
	for _, m := range moods {
		if m.MoodScore < models.ScaleMin || m.MoodScore > models.ScaleMax {
			invalid++
		}
	}
	return invalid
}

func laterOf(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
