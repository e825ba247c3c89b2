package service

import (
	"context"
	"time"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
	"github.com/leapfroghealth/leapfrog/backend/internal/repository"
)

type progressService struct {
	progressRepo repository.ProgressRepository
	patientRepo  repository.PatientRepository
	doctorRepo   repository.DoctorRepository
	now          func() time.Time
}

// NewProgressService creates a new progress tracking service
func NewProgressService(
	progressRepo repository.ProgressRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		now:          time.Now,
	}
}

func (s *progressService) LogSymptom(ctx context.Context, req *models.CreateSymptomEntryRequest) (*models.SymptomEntry, error) {
	if _, err := s.patientRepo.GetByID(ctx, req.PatientID); err != nil {
		return nil, err
	}

	entry := &models.SymptomEntry{
		PatientID:   req.PatientID,
		SymptomName: req.SymptomName,
		Severity:    req.Severity,
		Location:    req.Location,
		Duration:    req.Duration,
		Triggers:    req.Triggers,
		Notes:       req.Notes,
		Tags:        req.Tags,
	}
	return s.progressRepo.CreateSymptom(ctx, entry)
}

func (s *progressService) LogMood(ctx context.Context, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error) {
	if _, err := s.patientRepo.GetByID(ctx, req.PatientID); err != nil {
		return nil, err
	}

	entry := &models.MoodEntry{
		PatientID:          req.PatientID,
		MoodScore:          req.MoodScore,
		EnergyLevel:        req.EnergyLevel,
		StressLevel:        req.StressLevel,
		SleepQuality:       req.SleepQuality,
		MoodTags:           req.MoodTags,
		SocialInteractions: req.SocialInteractions,
		WeatherImpact:      req.WeatherImpact,
		Notes:              req.Notes,
		DateRecorded:       s.recordedAt(req.DateRecorded),
	}
	return s.progressRepo.CreateMood(ctx, entry)
}

func (s *progressService) LogActivity(ctx context.Context, req *models.CreateActivityEntryRequest) (*models.ActivityEntry, error) {
	if _, err := s.patientRepo.GetByID(ctx, req.PatientID); err != nil {
		return nil, err
	}

	// Activities logged without an explicit flag count as completed
	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	entry := &models.ActivityEntry{
		PatientID:    req.PatientID,
		ActivityType: req.ActivityType,
		ActivityName: req.ActivityName,
		Duration:     req.Duration,
		Intensity:    req.Intensity,
		Completed:    completed,
		Notes:        req.Notes,
		DateRecorded: s.recordedAt(req.DateRecorded),
	}
	return s.progressRepo.CreateActivity(ctx, entry)
}

func (s *progressService) RecordAssessment(ctx context.Context, req *models.CreateAssessmentRequest) (*models.ClinicalAssessment, error) {
	if _, err := s.patientRepo.GetByID(ctx, req.PatientID); err != nil {
		return nil, err
	}

	assessment := &models.ClinicalAssessment{
		PatientID:      req.PatientID,
		AssessmentType: req.AssessmentType,
		TotalScore:     req.TotalScore,
		RiskLevel:      req.RiskLevel,
		Interpretation: req.Interpretation,
		DateCompleted:  s.recordedAt(req.DateCompleted),
	}
	return s.progressRepo.CreateAssessment(ctx, assessment)
}

func (s *progressService) CreateGoal(ctx context.Context, req *models.CreateGoalRequest) (*models.ProgressGoal, error) {
	if _, err := s.patientRepo.GetByID(ctx, req.PatientID); err != nil {
		return nil, err
	}

	goal := &models.ProgressGoal{
		PatientID:       req.PatientID,
		GoalType:        req.GoalType,
		Title:           req.Title,
		Description:     req.Description,
		TargetValue:     req.TargetValue,
		MeasurementUnit: req.MeasurementUnit,
		TargetDate:      req.TargetDate,
	}
	return s.progressRepo.CreateGoal(ctx, goal)
}

func (s *progressService) GetGoals(ctx context.Context, patientID string) ([]models.ProgressGoal, error) {
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	return s.progressRepo.GetGoals(ctx, patientID)
}

func (s *progressService) UpdateGoalProgress(ctx context.Context, goalID string, currentValue float64) (*models.ProgressGoal, error) {
	goal, err := s.progressRepo.GetGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	progress := goal.ProgressPercentage
	status := goal.Status
	if goal.TargetValue != nil && *goal.TargetValue > 0 {
		progress = min(currentValue / *goal.TargetValue * 100, 100)
		if progress >= 100 && status == models.GoalActive {
			status = models.GoalCompleted
		}
	}

	return s.progressRepo.UpdateGoalProgress(ctx, goalID, currentValue, progress, status)
}

func (s *progressService) CreateTreatmentPlan(ctx context.Context, req *models.CreateTreatmentPlanRequest) (*models.TreatmentPlan, error) {
	if _, err := s.patientRepo.GetByID(ctx, req.PatientID); err != nil {
		return nil, err
	}
	if _, err := s.doctorRepo.GetByID(ctx, req.DoctorID); err != nil {
		return nil, err
	}

	startDate := s.now().UTC()
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	plan := &models.TreatmentPlan{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		PlanName:    req.PlanName,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     req.EndDate,
	}
	return s.progressRepo.CreateTreatmentPlan(ctx, plan)
}

func (s *progressService) GetTreatmentPlans(ctx context.Context, patientID string) ([]models.TreatmentPlan, error) {
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	return s.progressRepo.GetTreatmentPlans(ctx, patientID)
}

func (s *progressService) recordedAt(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return s.now().UTC()
}
