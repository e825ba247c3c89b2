package service

import (
	"context"
	"fmt"
	"time"

	"github.com/leapfroghealth/leapfrog/backend/internal/leapfrog"
	"github.com/leapfroghealth/leapfrog/backend/internal/logger"
	"github.com/leapfroghealth/leapfrog/backend/internal/models"
	"github.com/leapfroghealth/leapfrog/backend/internal/repository"
)

const insightsPeriodDays = 90

type analysisService struct {
	patientRepo    repository.PatientRepository
	progressRepo   repository.ProgressRepository
	suggestionRepo repository.SuggestionRepository
	engine         *leapfrog.Engine
	lookbackDays   int
	log            logger.Logger
	now            func() time.Time
}

// NewAnalysisService creates a new analysis service around the
// analytics engine. lookbackDays sets the progress-analysis window.
func NewAnalysisService(
	patientRepo repository.PatientRepository,
	progressRepo repository.ProgressRepository,
	suggestionRepo repository.SuggestionRepository,
	engine *leapfrog.Engine,
	lookbackDays int,
	log logger.Logger,
) AnalysisService {
	if lookbackDays <= 0 {
		lookbackDays = 30
	}
	return &analysisService{
		patientRepo:    patientRepo,
		progressRepo:   progressRepo,
		suggestionRepo: suggestionRepo,
		engine:         engine,
		lookbackDays:   lookbackDays,
		log:            log,
		now:            time.Now,
	}
}

func (s *analysisService) AnalyzeProgress(ctx context.Context, patientID string) (*models.ProgressAnalysis, error) {
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return nil, err
	}

	since := s.now().AddDate(0, 0, -s.lookbackDays)
	symptoms, moods, activities, err := s.loadEntries(ctx, patientID, since)
	if err != nil {
		return nil, err
	}

	analysis := s.engine.AnalyzeProgress(patientID, symptoms, moods, activities)
	return &analysis, nil
}

func (s *analysisService) GenerateSuggestions(ctx context.Context, patientID string) ([]models.Suggestion, error) {
	analysis, err := s.AnalyzeProgress(ctx, patientID)
	if err != nil {
		return nil, err
	}

	currentTreatmentID, err := s.currentTreatmentID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	suggestions := s.engine.GenerateSuggestions(*analysis, currentTreatmentID)

	for i := range suggestions {
		saved, err := s.suggestionRepo.Create(ctx, &suggestions[i])
		if err != nil {
			return nil, fmt.Errorf("failed to persist suggestion: %w", err)
		}
		suggestions[i] = *saved
	}

	s.log.WithContext(ctx).Info("generated treatment suggestions",
		logger.String("patient_id", patientID),
		logger.Int("count", len(suggestions)),
		logger.Any("sufficient_data", analysis.DataSufficiency.Sufficient))

	return suggestions, nil
}

func (s *analysisService) GetSuggestions(ctx context.Context, patientID string, limit int) ([]models.Suggestion, error) {
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	return s.suggestionRepo.GetByPatientID(ctx, patientID, limit)
}

func (s *analysisService) GetComprehensiveInsights(ctx context.Context, patientID string) (*models.AnalysisResult, error) {
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return nil, err
	}

	now := s.now()
	since := now.AddDate(0, 0, -insightsPeriodDays)

	symptoms, moods, activities, err := s.loadEntries(ctx, patientID, since)
	if err != nil {
		return nil, err
	}
	assessments, err := s.progressRepo.GetAssessmentsSince(ctx, patientID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get assessments: %w", err)
	}
	goals, err := s.progressRepo.GetGoals(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}
	plans, err := s.progressRepo.GetTreatmentPlans(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get treatment plans: %w", err)
	}

	result := s.engine.ComprehensiveAnalysis(patientID, now, leapfrog.PatientData{
		Symptoms:       symptoms,
		Moods:          moods,
		Activities:     activities,
		Assessments:    assessments,
		Goals:          goals,
		TreatmentPlans: plans,
	})
	return &result, nil
}

func (s *analysisService) AssessRisk(ctx context.Context, patientID string) (*models.RiskAssessment, error) {
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return nil, err
	}

	since := s.now().AddDate(0, 0, -s.lookbackDays)
	symptoms, moods, activities, err := s.loadEntries(ctx, patientID, since)
	if err != nil {
		return nil, err
	}
	if len(symptoms) == 0 && len(moods) == 0 {
		return nil, ErrInsufficientData
	}
	assessments, err := s.progressRepo.GetAssessmentsSince(ctx, patientID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get assessments: %w", err)
	}

	assessment := s.engine.AssessRisk(symptoms, moods, activities, assessments)
	return &assessment, nil
}

func (s *analysisService) loadEntries(ctx context.Context, patientID string, since time.Time) (
	[]models.SymptomEntry, []models.MoodEntry, []models.ActivityEntry, error) {

	symptoms, err := s.progressRepo.GetSymptomsSince(ctx, patientID, since)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get symptoms: %w", err)
	}
	moods, err := s.progressRepo.GetMoodsSince(ctx, patientID, since)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get moods: %w", err)
	}
	activities, err := s.progressRepo.GetActivitiesSince(ctx, patientID, since)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get activities: %w", err)
	}
	return symptoms, moods, activities, nil
}

// currentTreatmentID returns the newest active treatment plan ID, if any.
func (s *analysisService) currentTreatmentID(ctx context.Context, patientID string) (*string, error) {
	plans, err := s.progressRepo.GetTreatmentPlans(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get treatment plans: %w", err)
	}
	for i := range plans {
		if plans[i].Status == "active" {
			return &plans[i].ID, nil
		}
	}
	return nil, nil
}
