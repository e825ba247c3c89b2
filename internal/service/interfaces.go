package service

import (
	"context"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
)

// PatientService defines the interface for patient business logic
type PatientService interface {
	CreatePatient(ctx context.Context, req *models.CreatePatientRequest) (*models.Patient, error)
	GetPatient(ctx context.Context, patientID string) (*models.Patient, error)
	ListPatients(ctx context.Context, limit, offset int) ([]models.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, req *models.UpdatePatientRequest) (*models.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
}

// DoctorService defines the interface for doctor business logic
type DoctorService interface {
	CreateDoctor(ctx context.Context, req *models.CreateDoctorRequest) (*models.Doctor, error)
	GetDoctor(ctx context.Context, doctorID string) (*models.Doctor, error)
	ListDoctors(ctx context.Context, limit, offset int) ([]models.Doctor, error)
}

// AppointmentService defines the interface for appointment business logic
type AppointmentService interface {
	CreateAppointment(ctx context.Context, req *models.CreateAppointmentRequest) (*models.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error)
	GetPatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID string, req *models.UpdateAppointmentRequest) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID string) error
}

// MedicalRecordService defines the interface for medical record business logic
type MedicalRecordService interface {
	CreateRecord(ctx context.Context, req *models.CreateMedicalRecordRequest) (*models.MedicalRecord, error)
	GetRecord(ctx context.Context, recordID string) (*models.MedicalRecord, error)
	GetPatientRecords(ctx context.Context, patientID string) ([]models.MedicalRecord, error)
}

// MessageService defines the interface for messaging business logic
type MessageService interface {
	SendMessage(ctx context.Context, req *models.SendMessageRequest) (*models.Message, error)
	GetConversation(ctx context.Context, userA, userB string, limit int) ([]models.Message, error)
	MarkMessageRead(ctx context.Context, messageID string) error
}

// ProgressService defines the interface for patient-tracked data business logic
type ProgressService interface {
	LogSymptom(ctx context.Context, req *models.CreateSymptomEntryRequest) (*models.SymptomEntry, error)
	LogMood(ctx context.Context, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error)
	LogActivity(ctx context.Context, req *models.CreateActivityEntryRequest) (*models.ActivityEntry, error)
	RecordAssessment(ctx context.Context, req *models.CreateAssessmentRequest) (*models.ClinicalAssessment, error)
	CreateGoal(ctx context.Context, req *models.CreateGoalRequest) (*models.ProgressGoal, error)
	GetGoals(ctx context.Context, patientID string) ([]models.ProgressGoal, error)
	UpdateGoalProgress(ctx context.Context, goalID string, currentValue float64) (*models.ProgressGoal, error)
	CreateTreatmentPlan(ctx context.Context, req *models.CreateTreatmentPlanRequest) (*models.TreatmentPlan, error)
	GetTreatmentPlans(ctx context.Context, patientID string) ([]models.TreatmentPlan, error)
}

// AnalysisService defines the interface for the analytics engine orchestration
type AnalysisService interface {
	AnalyzeProgress(ctx context.Context, patientID string) (*models.ProgressAnalysis, error)
	GenerateSuggestions(ctx context.Context, patientID string) ([]models.Suggestion, error)
	GetSuggestions(ctx context.Context, patientID string, limit int) ([]models.Suggestion, error)
	GetComprehensiveInsights(ctx context.Context, patientID string) (*models.AnalysisResult, error)
	AssessRisk(ctx context.Context, patientID string) (*models.RiskAssessment, error)
}

// RecommendationService defines the interface for health-score recommendations
type RecommendationService interface {
	RecommendTreatments(ctx context.Context, vitals models.HealthVitals) (*models.HealthRecommendations, error)
}
