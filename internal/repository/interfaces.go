package repository

import (
	"context"
	"time"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

// PatientRepository defines the interface for patient data access
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	List(ctx context.Context, limit, offset int) ([]models.Patient, error)
	Update(ctx context.Context, id string, patient *models.Patient) (*models.Patient, error)
	Delete(ctx context.Context, id string) error
}

// DoctorRepository defines the interface for doctor data access
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	List(ctx context.Context, limit, offset int) ([]models.Doctor, error)
}

// ProgressRepository defines the interface for patient-tracked data
// access. Entry queries return rows ordered oldest first, which is the
// ordering the analytics engine requires; treatment plans come back
// newest first.
type ProgressRepository interface {
	CreateSymptom(ctx context.Context, entry *models.SymptomEntry) (*models.SymptomEntry, error)
	GetSymptomsSince(ctx context.Context, patientID string, since time.Time) ([]models.SymptomEntry, error)

	CreateMood(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	GetMoodsSince(ctx context.Context, patientID string, since time.Time) ([]models.MoodEntry, error)

	CreateActivity(ctx context.Context, entry *models.ActivityEntry) (*models.ActivityEntry, error)
	GetActivitiesSince(ctx context.Context, patientID string, since time.Time) ([]models.ActivityEntry, error)

	CreateAssessment(ctx context.Context, assessment *models.ClinicalAssessment) (*models.ClinicalAssessment, error)
	GetAssessmentsSince(ctx context.Context, patientID string, since time.Time) ([]models.ClinicalAssessment, error)

	CreateGoal(ctx context.Context, goal *models.ProgressGoal) (*models.ProgressGoal, error)
	GetGoals(ctx context.Context, patientID string) ([]models.ProgressGoal, error)
	GetGoalByID(ctx context.Context, id string) (*models.ProgressGoal, error)
	UpdateGoalProgress(ctx context.Context, id string, currentValue, progress float64, status models.GoalStatus) (*models.ProgressGoal, error)

	CreateTreatmentPlan(ctx context.Context, plan *models.TreatmentPlan) (*models.TreatmentPlan, error)
	GetTreatmentPlans(ctx context.Context, patientID string) ([]models.TreatmentPlan, error)
}

// SuggestionRepository defines the interface for persisted engine output
type SuggestionRepository interface {
	Create(ctx context.Context, suggestion *models.Suggestion) (*models.Suggestion, error)
	GetByPatientID(ctx context.Context, patientID string, limit int) ([]models.Suggestion, error)
}

// AppointmentRepository defines the interface for appointment data access
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	Update(ctx context.Context, id string, appointment *models.Appointment) (*models.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// MedicalRecordRepository defines the interface for medical record data access
type MedicalRecordRepository interface {
	Create(ctx context.Context, record *models.MedicalRecord) (*models.MedicalRecord, error)
	GetByID(ctx context.Context, id string) (*models.MedicalRecord, error)
	GetByPatientID(ctx context.Context, patientID string) ([]models.MedicalRecord, error)
}

// MessageRepository defines the interface for message data access
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) (*models.Message, error)
	GetConversation(ctx context.Context, userA, userB string, limit int) ([]models.Message, error)
	MarkRead(ctx context.Context, id string, readAt time.Time) error
}
