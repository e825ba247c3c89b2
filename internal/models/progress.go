package models

import (
	"time"

	"github.com/lib/pq"
)

// ScaleMin and ScaleMax bound every 1-10 patient-reported score.
const (
	ScaleMin = 1
	ScaleMax = 10
)

// SymptomEntry is a patient-logged symptom occurrence
type SymptomEntry struct {
	ID          string         `json:"id" db:"id"`
	PatientID   string         `json:"patient_id" db:"patient_id"`
	SymptomName string         `json:"symptom_name" db:"symptom_name"`
	Severity    int            `json:"severity" db:"severity"`
	Location    *string        `json:"location,omitempty" db:"location"`
	Duration    *string        `json:"duration,omitempty" db:"duration"`
	Triggers    *string        `json:"triggers,omitempty" db:"triggers"`
	Notes       *string        `json:"notes,omitempty" db:"notes"`
	Tags        pq.StringArray `json:"tags,omitempty" db:"tags"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
}

// MoodEntry is a patient-logged daily mood record
type MoodEntry struct {
	ID                 string         `json:"id" db:"id"`
	PatientID          string         `json:"patient_id" db:"patient_id"`
	MoodScore          int            `json:"mood_score" db:"mood_score"`
	EnergyLevel        *int           `json:"energy_level,omitempty" db:"energy_level"`
	StressLevel        *int           `json:"stress_level,omitempty" db:"stress_level"`
	SleepQuality       *int           `json:"sleep_quality,omitempty" db:"sleep_quality"`
	MoodTags           pq.StringArray `json:"mood_tags,omitempty" db:"mood_tags"`
	SocialInteractions *int           `json:"social_interactions,omitempty" db:"social_interactions"`
	WeatherImpact      *string        `json:"weather_impact,omitempty" db:"weather_impact"`
	Notes              *string        `json:"notes,omitempty" db:"notes"`
	DateRecorded       time.Time      `json:"date_recorded" db:"date_recorded"`
	CreatedAt          time.Time      `json:"created_at" db:"created_at"`
}

// ActivityEntry is a patient-logged activity record
type ActivityEntry struct {
	ID           string    `json:"id" db:"id"`
	PatientID    string    `json:"patient_id" db:"patient_id"`
	ActivityType string    `json:"activity_type" db:"activity_type"`
	ActivityName string    `json:"activity_name" db:"activity_name"`
	Duration     *int      `json:"duration,omitempty" db:"duration"`
	Intensity    *int      `json:"intensity,omitempty" db:"intensity"`
	Completed    bool      `json:"completed" db:"completed"`
	Notes        *string   `json:"notes,omitempty" db:"notes"`
	DateRecorded time.Time `json:"date_recorded" db:"date_recorded"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// AssessmentRiskLevel enumerates clinical assessment outcomes (PHQ-9, GAD-7, ...)
type AssessmentRiskLevel string

const (
	AssessmentRiskMinimal  AssessmentRiskLevel = "minimal"
	AssessmentRiskMild     AssessmentRiskLevel = "mild"
	AssessmentRiskModerate AssessmentRiskLevel = "moderate"
	AssessmentRiskSevere   AssessmentRiskLevel = "severe"
)

// ClinicalAssessment stores a standardized assessment score
type ClinicalAssessment struct {
	ID             string              `json:"id" db:"id"`
	PatientID      string              `json:"patient_id" db:"patient_id"`
	AssessmentType string              `json:"assessment_type" db:"assessment_type"`
	TotalScore     int                 `json:"total_score" db:"total_score"`
	RiskLevel      AssessmentRiskLevel `json:"risk_level" db:"risk_level"`
	Interpretation *string             `json:"interpretation,omitempty" db:"interpretation"`
	DateCompleted  time.Time           `json:"date_completed" db:"date_completed"`
	CreatedAt      time.Time           `json:"created_at" db:"created_at"`
}

// GoalStatus enumerates progress goal states
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
	GoalCancelled GoalStatus = "cancelled"
)

// ProgressGoal is a patient-set goal with tracking
type ProgressGoal struct {
	ID                 string     `json:"id" db:"id"`
	PatientID          string     `json:"patient_id" db:"patient_id"`
	GoalType           string     `json:"goal_type" db:"goal_type"`
	Title              string     `json:"title" db:"title"`
	Description        *string    `json:"description,omitempty" db:"description"`
	TargetValue        *float64   `json:"target_value,omitempty" db:"target_value"`
	CurrentValue       float64    `json:"current_value" db:"current_value"`
	MeasurementUnit    *string    `json:"measurement_unit,omitempty" db:"measurement_unit"`
	TargetDate         *time.Time `json:"target_date,omitempty" db:"target_date"`
	Status             GoalStatus `json:"status" db:"status"`
	ProgressPercentage float64    `json:"progress_percentage" db:"progress_percentage"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

// TreatmentPlan is a doctor-prescribed treatment plan
type TreatmentPlan struct {
	ID                  string     `json:"id" db:"id"`
	PatientID           string     `json:"patient_id" db:"patient_id"`
	DoctorID            string     `json:"doctor_id" db:"doctor_id"`
	PlanName            string     `json:"plan_name" db:"plan_name"`
	Description         *string    `json:"description,omitempty" db:"description"`
	Status              string     `json:"status" db:"status"`
	StartDate           time.Time  `json:"start_date" db:"start_date"`
	EndDate             *time.Time `json:"end_date,omitempty" db:"end_date"`
	EffectivenessScore  *float64   `json:"effectiveness_score,omitempty" db:"effectiveness_score"`
	AdherencePercentage *float64   `json:"adherence_percentage,omitempty" db:"adherence_percentage"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateSymptomEntryRequest logs a new symptom occurrence
type CreateSymptomEntryRequest struct {
	PatientID   string   `json:"patient_id" binding:"required"`
	SymptomName string   `json:"symptom_name" binding:"required"`
	Severity    int      `json:"severity" binding:"required,min=1,max=10"`
	Location    *string  `json:"location"`
	Duration    *string  `json:"duration"`
	Triggers    *string  `json:"triggers"`
	Notes       *string  `json:"notes"`
	Tags        []string `json:"tags"`
}

// CreateMoodEntryRequest logs a new mood record
type CreateMoodEntryRequest struct {
	PatientID          string     `json:"patient_id" binding:"required"`
	MoodScore          int        `json:"mood_score" binding:"required,min=1,max=10"`
	EnergyLevel        *int       `json:"energy_level" binding:"omitempty,min=1,max=10"`
	StressLevel        *int       `json:"stress_level" binding:"omitempty,min=1,max=10"`
	SleepQuality       *int       `json:"sleep_quality" binding:"omitempty,min=1,max=10"`
	MoodTags           []string   `json:"mood_tags"`
	SocialInteractions *int       `json:"social_interactions"`
	WeatherImpact      *string    `json:"weather_impact"`
	Notes              *string    `json:"notes"`
	DateRecorded       *time.Time `json:"date_recorded"`
}

// CreateActivityEntryRequest logs a new activity record
type CreateActivityEntryRequest struct {
	PatientID    string     `json:"patient_id" binding:"required"`
	ActivityType string     `json:"activity_type" binding:"required"`
	ActivityName string     `json:"activity_name" binding:"required"`
	Duration     *int       `json:"duration"`
	Intensity    *int       `json:"intensity" binding:"omitempty,min=1,max=10"`
	Completed    *bool      `json:"completed"`
	Notes        *string    `json:"notes"`
	DateRecorded *time.Time `json:"date_recorded"`
}

// CreateAssessmentRequest records a completed clinical assessment
type CreateAssessmentRequest struct {
	PatientID      string              `json:"patient_id" binding:"required"`
	AssessmentType string              `json:"assessment_type" binding:"required"`
	TotalScore     int                 `json:"total_score" binding:"required"`
	RiskLevel      AssessmentRiskLevel `json:"risk_level" binding:"required,oneof=minimal mild moderate severe"`
	Interpretation *string             `json:"interpretation"`
	DateCompleted  *time.Time          `json:"date_completed"`
}

// CreateGoalRequest creates a progress goal
type CreateGoalRequest struct {
	PatientID       string     `json:"patient_id" binding:"required"`
	GoalType        string     `json:"goal_type" binding:"required"`
	Title           string     `json:"title" binding:"required"`
	Description     *string    `json:"description"`
	TargetValue     *float64   `json:"target_value"`
	MeasurementUnit *string    `json:"measurement_unit"`
	TargetDate      *time.Time `json:"target_date"`
}

// CreateTreatmentPlanRequest prescribes a treatment plan
type CreateTreatmentPlanRequest struct {
	PatientID   string     `json:"patient_id" binding:"required"`
	DoctorID    string     `json:"doctor_id" binding:"required"`
	PlanName    string     `json:"plan_name" binding:"required"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}
