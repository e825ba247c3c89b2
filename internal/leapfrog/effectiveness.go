package leapfrog

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

// AnalyzeTreatmentEffectiveness scores the newest treatment plan by
// comparing symptom severity before and after its start date and by
// mood stability under treatment. Plans must be ordered newest first;
// metrics that cannot be computed are omitted from the composite.
func (e *Engine) AnalyzeTreatmentEffectiveness(plans []models.TreatmentPlan,
	symptoms []models.SymptomEntry, moods []models.MoodEntry) models.TreatmentEffectiveness {

	if len(plans) == 0 {
		return models.TreatmentEffectiveness{Status: models.StatusNoTreatments, Metrics: map[string]float64{}}
	}
	current := plans[0]

	metrics := make(map[string]float64)

	if len(symptoms) > 0 {
		var pre, post []float64
		for _, s := range symptoms {
			if s.CreatedAt.Before(current.StartDate) {
				pre = append(pre, float64(s.Severity))
			} else {
				post = append(post, float64(s.Severity))
			}
		}
		if len(pre) > 0 && len(post) > 0 {
			preAvg := mean(lastN(pre, 10))
			postAvg := mean(post)
			metrics["symptom_improvement"] = math.Max(0, (preAvg-postAvg)/preAvg)
		}
	}

	if len(moods) > 0 {
		var scores []float64
		for _, m := range moods {
			if !m.DateRecorded.Before(current.StartDate) {
				scores = append(scores, float64(m.MoodScore))
			}
		}
		if len(scores) > 0 {
			metrics["mood_stability"] = stabilityScore(scores)
		}
	}

	var overall float64
	for metric, weight := range e.cfg.EffectivenessWeights {
		if v, ok := metrics[metric]; ok {
			overall += v * weight
		}
	}

	var adherence, reported float64
	if current.AdherencePercentage != nil {
		adherence = *current.AdherencePercentage
	}
	if current.EffectivenessScore != nil {
		reported = *current.EffectivenessScore
	}

	return models.TreatmentEffectiveness{
		Status:                models.StatusAnalyzed,
		CurrentTreatmentID:    current.ID,
		TreatmentDurationDays: int(time.Since(current.StartDate).Hours() / 24),
		EffectivenessScore:    overall,
		Metrics:               metrics,
		AdherenceRate:         adherence,
		PatientReportedScore:  reported,
	}
}

// stabilityScore maps score dispersion onto [0,1]; a flat series
// scores 1, a single point scores 0.
func stabilityScore(scores []float64) float64 {
	if len(scores) < 2 {
		return 0
	}
	sd, err := stats.StandardDeviation(stats.Float64Data(scores))
	if err != nil {
		return 0
	}
	return 1 - sd/10
}
