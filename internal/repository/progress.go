package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

// PostgresProgressRepository implements ProgressRepository on Postgres
type PostgresProgressRepository struct {
	db *sqlx.DB
}

// NewProgressRepository creates a new Postgres progress repository
func NewProgressRepository(db *sqlx.DB) ProgressRepository {
	return &PostgresProgressRepository{db: db}
}

func (r *PostgresProgressRepository) CreateSymptom(ctx context.Context, entry *models.SymptomEntry) (*models.SymptomEntry, error) {
	entry.ID = uuid.New().String()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO symptom_entries (id, patient_id, symptom_name, severity, location,
			duration, triggers, notes, tags, created_at)
		VALUES (:id, :patient_id, :symptom_name, :severity, :location,
			:duration, :triggers, :notes, :tags, :created_at)
	`, entry)
	if err != nil {
		return nil, fmt.Errorf("insert symptom entry: %w", err)
	}
	return entry, nil
}

func (r *PostgresProgressRepository) GetSymptomsSince(ctx context.Context, patientID string, since time.Time) ([]models.SymptomEntry, error) {
	entries := []models.SymptomEntry{}
	err := r.db.SelectContext(ctx, &entries, `
		SELECT * FROM symptom_entries
		WHERE patient_id = $1 AND created_at >= $2
		ORDER BY created_at ASC
	`, patientID, since)
	if err != nil {
		return nil, fmt.Errorf("get symptoms for patient %s: %w", patientID, err)
	}
	return entries, nil
}

func (r *PostgresProgressRepository) CreateMood(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	entry.ID = uuid.New().String()
	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	if entry.DateRecorded.IsZero() {
		entry.DateRecorded = now
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO mood_entries (id, patient_id, mood_score, energy_level, stress_level,
			sleep_quality, mood_tags, social_interactions, weather_impact, notes,
			date_recorded, created_at)
		VALUES (:id, :patient_id, :mood_score, :energy_level, :stress_level,
			:sleep_quality, :mood_tags, :social_interactions, :weather_impact, :notes,
			:date_recorded, :created_at)
	`, entry)
	if err != nil {
		return nil, fmt.Errorf("insert mood entry: %w", err)
	}
	return entry, nil
}

func (r *PostgresProgressRepository) GetMoodsSince(ctx context.Context, patientID string, since time.Time) ([]models.MoodEntry, error) {
	entries := []models.MoodEntry{}
	err := r.db.SelectContext(ctx, &entries, `
		SELECT * FROM mood_entries
		WHERE patient_id = $1 AND created_at >= $2
		ORDER BY date_recorded ASC
	`, patientID, since)
	if err != nil {
		return nil, fmt.Errorf("get moods for patient %s: %w", patientID, err)
	}
	return entries, nil
}

func (r *PostgresProgressRepository) CreateActivity(ctx context.Context, entry *models.ActivityEntry) (*models.ActivityEntry, error) {
	entry.ID = uuid.New().String()
	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	if entry.DateRecorded.IsZero() {
		entry.DateRecorded = now
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO activity_entries (id, patient_id, activity_type, activity_name,
			duration, intensity, completed, notes, date_recorded, created_at)
		VALUES (:id, :patient_id, :activity_type, :activity_name,
			:duration, :intensity, :completed, :notes, :date_recorded, :created_at)
	`, entry)
	if err != nil {
		return nil, fmt.Errorf("insert activity entry: %w", err)
	}
	return entry, nil
}

func (r *PostgresProgressRepository) GetActivitiesSince(ctx context.Context, patientID string, since time.Time) ([]models.ActivityEntry, error) {
	entries := []models.ActivityEntry{}
	err := r.db.SelectContext(ctx, &entries, `
		SELECT * FROM activity_entries
		WHERE patient_id = $1 AND created_at >= $2
		ORDER BY date_recorded ASC
	`, patientID, since)
	if err != nil {
		return nil, fmt.Errorf("get activities for patient %s: %w", patientID, err)
	}
	return entries, nil
}

func (r *PostgresProgressRepository) CreateAssessment(ctx context.Context, assessment *models.ClinicalAssessment) (*models.ClinicalAssessment, error) {
	assessment.ID = uuid.New().String()
	now := time.Now().UTC()
	if assessment.CreatedAt.IsZero() {
		assessment.CreatedAt = now
	}
	if assessment.DateCompleted.IsZero() {
		assessment.DateCompleted = now
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO clinical_assessments (id, patient_id, assessment_type, total_score,
			risk_level, interpretation, date_completed, created_at)
		VALUES (:id, :patient_id, :assessment_type, :total_score,
			:risk_level, :interpretation, :date_completed, :created_at)
	`, assessment)
	if err != nil {
		return nil, fmt.Errorf("insert clinical assessment: %w", err)
	}
	return assessment, nil
}

func (r *PostgresProgressRepository) GetAssessmentsSince(ctx context.Context, patientID string, since time.Time) ([]models.ClinicalAssessment, error) {
	assessments := []models.ClinicalAssessment{}
	err := r.db.SelectContext(ctx, &assessments, `
		SELECT * FROM clinical_assessments
		WHERE patient_id = $1 AND created_at >= $2
		ORDER BY date_completed ASC
	`, patientID, since)
	if err != nil {
		return nil, fmt.Errorf("get assessments for patient %s: %w", patientID, err)
	}
	return assessments, nil
}

func (r *PostgresProgressRepository) CreateGoal(ctx context.Context, goal *models.ProgressGoal) (*models.ProgressGoal, error) {
	now := time.Now().UTC()
	goal.ID = uuid.New().String()
	goal.Status = models.GoalActive
	goal.CreatedAt = now
	goal.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO progress_goals (id, patient_id, goal_type, title, description,
			target_value, current_value, measurement_unit, target_date, status,
			progress_percentage, created_at, updated_at)
		VALUES (:id, :patient_id, :goal_type, :title, :description,
			:target_value, :current_value, :measurement_unit, :target_date, :status,
			:progress_percentage, :created_at, :updated_at)
	`, goal)
	if err != nil {
		return nil, fmt.Errorf("insert progress goal: %w", err)
	}
	return goal, nil
}

func (r *PostgresProgressRepository) GetGoals(ctx context.Context, patientID string) ([]models.ProgressGoal, error) {
	goals := []models.ProgressGoal{}
	err := r.db.SelectContext(ctx, &goals, `
		SELECT * FROM progress_goals WHERE patient_id = $1 ORDER BY created_at ASC
	`, patientID)
	if err != nil {
		return nil, fmt.Errorf("get goals for patient %s: %w", patientID, err)
	}
	return goals, nil
}

func (r *PostgresProgressRepository) GetGoalByID(ctx context.Context, id string) (*models.ProgressGoal, error) {
	var goal models.ProgressGoal
	err := r.db.GetContext(ctx, &goal, `SELECT * FROM progress_goals WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get goal %s: %w", id, err)
	}
	return &goal, nil
}

func (r *PostgresProgressRepository) UpdateGoalProgress(ctx context.Context, id string, currentValue, progress float64, status models.GoalStatus) (*models.ProgressGoal, error) {
	var goal models.ProgressGoal
	err := r.db.GetContext(ctx, &goal, `
		UPDATE progress_goals
		SET current_value = $2, progress_percentage = $3, status = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING *
	`, id, currentValue, progress, status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update goal %s: %w", id, err)
	}
	return &goal, nil
}

func (r *PostgresProgressRepository) CreateTreatmentPlan(ctx context.Context, plan *models.TreatmentPlan) (*models.TreatmentPlan, error) {
	now := time.Now().UTC()
	plan.ID = uuid.New().String()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	if plan.StartDate.IsZero() {
		plan.StartDate = now
	}
	if plan.Status == "" {
		plan.Status = "active"
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO treatment_plans (id, patient_id, doctor_id, plan_name, description,
			status, start_date, end_date, effectiveness_score, adherence_percentage,
			created_at, updated_at)
		VALUES (:id, :patient_id, :doctor_id, :plan_name, :description,
			:status, :start_date, :end_date, :effectiveness_score, :adherence_percentage,
			:created_at, :updated_at)
	`, plan)
	if err != nil {
		return nil, fmt.Errorf("insert treatment plan: %w", err)
	}
	return plan, nil
}

func (r *PostgresProgressRepository) GetTreatmentPlans(ctx context.Context, patientID string) ([]models.TreatmentPlan, error) {
	plans := []models.TreatmentPlan{}
	err := r.db.SelectContext(ctx, &plans, `
		SELECT * FROM treatment_plans WHERE patient_id = $1 ORDER BY created_at DESC
	`, patientID)
	if err != nil {
		return nil, fmt.Errorf("get treatment plans for patient %s: %w", patientID, err)
	}
	return plans, nil
}
