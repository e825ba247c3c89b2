package leapfrog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAssessDataQualityEmpty(t *testing.T) {
	e := New(DefaultConfig())

	got := e.AssessDataQuality(testStart, nil, nil, nil, nil)
	assert.Zero(t, got.Completeness)
	assert.Zero(t, got.Consistency)
	assert.Zero(t, got.Recency)
	assert.Zero(t, got.OverallQuality)
}

func TestAssessDataQualityFresh(t *testing.T) {
	e := New(DefaultConfig())

	moods := moodSeries(5, 5, 5, 5, 5, 5)
	now := moods[len(moods)-1].DateRecorded

	got := e.AssessDataQuality(now, nil, moods, nil, nil)
	assert.InDelta(t, 0.25, got.Completeness, 1e-9)
	assert.InDelta(t, 6.0/30, got.Consistency, 1e-9)
	assert.InDelta(t, 1.0, got.Recency, 1e-9)
	assert.InDelta(t, (0.25+0.2+1.0)/3, got.OverallQuality, 1e-9)
}

func TestAssessDataQualityRecencyDecays(t *testing.T) {
	e := New(DefaultConfig())

	moods := moodSeries(5)
	threeDaysLater := moods[0].DateRecorded.Add(3 * 24 * time.Hour)
	got := e.AssessDataQuality(threeDaysLater, nil, moods, nil, nil)
	assert.InDelta(t, 1-3.0/7, got.Recency, 1e-9)

	tenDaysLater := moods[0].DateRecorded.Add(10 * 24 * time.Hour)
	got = e.AssessDataQuality(tenDaysLater, nil, moods, nil, nil)
	assert.Zero(t, got.Recency)
}

func TestAssessDataQualityUsesLatestAcrossSources(t *testing.T) {
	e := New(DefaultConfig())

	symptoms := symptomSeries(5)
	activities := activitySeries(30, 30)
	now := activities[1].DateRecorded

	got := e.AssessDataQuality(now, symptoms, nil, activities, nil)
	assert.InDelta(t, 0.5, got.Completeness, 1e-9)
	assert.InDelta(t, 1.0, got.Recency, 1e-9)
}

func TestCountInvalidEntries(t *testing.T) {
	symptoms := symptomSeries(5, 5)
	symptoms[1].Severity = 14
	moods := moodSeries(5)
	moods[0].MoodScore = 0

	got := countInvalidEntries(symptoms, moods)
	assert.Equal(t, 2, got)

	quality := New(DefaultConfig()).AssessDataQuality(testStart, symptoms, moods, nil, nil)
	assert.Equal(t, 2, quality.InvalidEntries)
}
