package service

import (
	"context"
	"fmt"
	"time"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
	"github.com/leapfroghealth/leapfrog/backend/internal/repository"
	"github.com/leapfroghealth/leapfrog/backend/pkg/classifier"
)

var mockIDCounter int

func generateMockID() string {
	mockIDCounter++
	return fmt.Sprintf("mock-id-%d", mockIDCounter)
}

// mockPatientRepository is a mock implementation of PatientRepository for testing
type mockPatientRepository struct {
	patients map[string]*models.Patient
}

func newMockPatientRepository() *mockPatientRepository {
	return &mockPatientRepository{patients: make(map[string]*models.Patient)}
}

func (m *mockPatientRepository) add(id string) *models.Patient {
	p := &models.Patient{ID: id, FirstName: "Test", LastName: "Patient", Email: id + "@example.com"}
	m.patients[id] = p
	return p
}

func (m *mockPatientRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	if patient.ID == "" {
		patient.ID = generateMockID()
	}
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()
	m.patients[patient.ID] = patient
	return patient, nil
}

func (m *mockPatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	if p, ok := m.patients[id]; ok {
		return p, nil
	}
	return nil, repository.ErrPatientNotFound
}

func (m *mockPatientRepository) List(ctx context.Context, limit, offset int) ([]models.Patient, error) {
	var result []models.Patient
	for _, p := range m.patients {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPatientRepository) Update(ctx context.Context, id string, patient *models.Patient) (*models.Patient, error) {
	if _, ok := m.patients[id]; !ok {
		return nil, repository.ErrPatientNotFound
	}
	patient.UpdatedAt = time.Now()
	m.patients[id] = patient
	return patient, nil
}

func (m *mockPatientRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.patients[id]; !ok {
		return repository.ErrPatientNotFound
	}
	delete(m.patients, id)
	return nil
}

// mockDoctorRepository is a mock implementation of DoctorRepository for testing
type mockDoctorRepository struct {
	doctors map[string]*models.Doctor
}

func newMockDoctorRepository() *mockDoctorRepository {
	return &mockDoctorRepository{doctors: make(map[string]*models.Doctor)}
}

func (m *mockDoctorRepository) add(id string) *models.Doctor {
	d := &models.Doctor{ID: id, FirstName: "Test", LastName: "Doctor", Specialization: "General"}
	m.doctors[id] = d
	return d
}

func (m *mockDoctorRepository) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	if doctor.ID == "" {
		doctor.ID = generateMockID()
	}
	m.doctors[doctor.ID] = doctor
	return doctor, nil
}

func (m *mockDoctorRepository) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	if d, ok := m.doctors[id]; ok {
		return d, nil
	}
	return nil, repository.ErrDoctorNotFound
}

func (m *mockDoctorRepository) List(ctx context.Context, limit, offset int) ([]models.Doctor, error) {
	var result []models.Doctor
	for _, d := range m.doctors {
		result = append(result, *d)
	}
	return result, nil
}

// mockProgressRepository is a mock implementation of ProgressRepository for testing
type mockProgressRepository struct {
	symptoms    []models.SymptomEntry
	moods       []models.MoodEntry
	activities  []models.ActivityEntry
	assessments []models.ClinicalAssessment
	goals       map[string]*models.ProgressGoal
	plans       []models.TreatmentPlan
}

func newMockProgressRepository() *mockProgressRepository {
	return &mockProgressRepository{goals: make(map[string]*models.ProgressGoal)}
}

func (m *mockProgressRepository) CreateSymptom(ctx context.Context, entry *models.SymptomEntry) (*models.SymptomEntry, error) {
	entry.ID = generateMockID()
	entry.CreatedAt = time.Now()
	m.symptoms = append(m.symptoms, *entry)
	return entry, nil
}

func (m *mockProgressRepository) GetSymptomsSince(ctx context.Context, patientID string, since time.Time) ([]models.SymptomEntry, error) {
	var result []models.SymptomEntry
	for _, e := range m.symptoms {
		if e.PatientID == patientID && e.CreatedAt.After(since) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockProgressRepository) CreateMood(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	entry.ID = generateMockID()
	entry.CreatedAt = time.Now()
	m.moods = append(m.moods, *entry)
	return entry, nil
}

func (m *mockProgressRepository) GetMoodsSince(ctx context.Context, patientID string, since time.Time) ([]models.MoodEntry, error) {
	var result []models.MoodEntry
	for _, e := range m.moods {
		if e.PatientID == patientID && e.CreatedAt.After(since) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockProgressRepository) CreateActivity(ctx context.Context, entry *models.ActivityEntry) (*models.ActivityEntry, error) {
	entry.ID = generateMockID()
	entry.CreatedAt = time.Now()
	m.activities = append(m.activities, *entry)
	return entry, nil
}

func (m *mockProgressRepository) GetActivitiesSince(ctx context.Context, patientID string, since time.Time) ([]models.ActivityEntry, error) {
	var result []models.ActivityEntry
	for _, e := range m.activities {
		if e.PatientID == patientID && e.CreatedAt.After(since) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockProgressRepository) CreateAssessment(ctx context.Context, assessment *models.ClinicalAssessment) (*models.ClinicalAssessment, error) {
	assessment.ID = generateMockID()
	assessment.CreatedAt = time.Now()
	m.assessments = append(m.assessments, *assessment)
	return assessment, nil
}

func (m *mockProgressRepository) GetAssessmentsSince(ctx context.Context, patientID string, since time.Time) ([]models.ClinicalAssessment, error) {
	var result []models.ClinicalAssessment
	for _, a := range m.assessments {
		if a.PatientID == patientID && a.CreatedAt.After(since) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockProgressRepository) CreateGoal(ctx context.Context, goal *models.ProgressGoal) (*models.ProgressGoal, error) {
	goal.ID = generateMockID()
	goal.Status = models.GoalActive
	goal.CreatedAt = time.Now()
	m.goals[goal.ID] = goal
	return goal, nil
}

func (m *mockProgressRepository) GetGoals(ctx context.Context, patientID string) ([]models.ProgressGoal, error) {
	var result []models.ProgressGoal
	for _, g := range m.goals {
		if g.PatientID == patientID {
			result = append(result, *g)
		}
	}
	return result, nil
}

func (m *mockProgressRepository) GetGoalByID(ctx context.Context, id string) (*models.ProgressGoal, error) {
	if g, ok := m.goals[id]; ok {
		return g, nil
	}
	return nil, repository.ErrGoalNotFound
}

func (m *mockProgressRepository) UpdateGoalProgress(ctx context.Context, id string, currentValue, progress float64, status models.GoalStatus) (*models.ProgressGoal, error) {
	g, ok := m.goals[id]
	if !ok {
		return nil, repository.ErrGoalNotFound
	}
	g.CurrentValue = currentValue
	g.ProgressPercentage = progress
	g.Status = status
	g.UpdatedAt = time.Now()
	return g, nil
}

func (m *mockProgressRepository) CreateTreatmentPlan(ctx context.Context, plan *models.TreatmentPlan) (*models.TreatmentPlan, error) {
	plan.ID = generateMockID()
	if plan.Status == "" {
		plan.Status = "active"
	}
	plan.CreatedAt = time.Now()
	m.plans = append(m.plans, *plan)
	return plan, nil
}

func (m *mockProgressRepository) GetTreatmentPlans(ctx context.Context, patientID string) ([]models.TreatmentPlan, error) {
	var result []models.TreatmentPlan
	for i := len(m.plans) - 1; i >= 0; i-- {
		if m.plans[i].PatientID == patientID {
			result = append(result, m.plans[i])
		}
	}
	return result, nil
}

// mockSuggestionRepository is a mock implementation of SuggestionRepository for testing
type mockSuggestionRepository struct {
	suggestions []models.Suggestion
	createCalls int
}

func newMockSuggestionRepository() *mockSuggestionRepository {
	return &mockSuggestionRepository{}
}

func (m *mockSuggestionRepository) Create(ctx context.Context, suggestion *models.Suggestion) (*models.Suggestion, error) {
	m.createCalls++
	suggestion.ID = generateMockID()
	suggestion.CreatedAt = time.Now()
	m.suggestions = append(m.suggestions, *suggestion)
	return suggestion, nil
}

func (m *mockSuggestionRepository) GetByPatientID(ctx context.Context, patientID string, limit int) ([]models.Suggestion, error) {
	var result []models.Suggestion
	for i := len(m.suggestions) - 1; i >= 0 && len(result) < limit; i-- {
		if m.suggestions[i].PatientID == patientID {
			result = append(result, m.suggestions[i])
		}
	}
	return result, nil
}

// mockAppointmentRepository is a mock implementation of AppointmentRepository for testing
type mockAppointmentRepository struct {
	appointments map[string]*models.Appointment
}

func newMockAppointmentRepository() *mockAppointmentRepository {
	return &mockAppointmentRepository{appointments: make(map[string]*models.Appointment)}
}

func (m *mockAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	appointment.ID = generateMockID()
	if appointment.Status == "" {
		appointment.Status = models.AppointmentScheduled
	}
	m.appointments[appointment.ID] = appointment
	return appointment, nil
}

func (m *mockAppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	if a, ok := m.appointments[id]; ok {
		return a, nil
	}
	return nil, repository.ErrAppointmentNotFound
}

func (m *mockAppointmentRepository) GetByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, a := range m.appointments {
		if a.PatientID == patientID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepository) Update(ctx context.Context, id string, appointment *models.Appointment) (*models.Appointment, error) {
	if _, ok := m.appointments[id]; !ok {
		return nil, repository.ErrAppointmentNotFound
	}
	m.appointments[id] = appointment
	return appointment, nil
}

func (m *mockAppointmentRepository) Delete(ctx context.Context, id string) error {
	delete(m.appointments, id)
	return nil
}

// mockMedicalRecordRepository is a mock implementation of MedicalRecordRepository for testing
type mockMedicalRecordRepository struct {
	records map[string]*models.MedicalRecord
}

func newMockMedicalRecordRepository() *mockMedicalRecordRepository {
	return &mockMedicalRecordRepository{records: make(map[string]*models.MedicalRecord)}
}

func (m *mockMedicalRecordRepository) Create(ctx context.Context, record *models.MedicalRecord) (*models.MedicalRecord, error) {
	record.ID = generateMockID()
	record.CreatedAt = time.Now()
	m.records[record.ID] = record
	return record, nil
}

func (m *mockMedicalRecordRepository) GetByID(ctx context.Context, id string) (*models.MedicalRecord, error) {
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return nil, repository.ErrMedicalRecordNotFound
}

func (m *mockMedicalRecordRepository) GetByPatientID(ctx context.Context, patientID string) ([]models.MedicalRecord, error) {
	var result []models.MedicalRecord
	for _, r := range m.records {
		if r.PatientID == patientID {
			result = append(result, *r)
		}
	}
	return result, nil
}

// mockMessageRepository is a mock implementation of MessageRepository for testing
type mockMessageRepository struct {
	messages map[string]*models.Message
}

func newMockMessageRepository() *mockMessageRepository {
	return &mockMessageRepository{messages: make(map[string]*models.Message)}
}

func (m *mockMessageRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	message.ID = generateMockID()
	message.CreatedAt = time.Now()
	m.messages[message.ID] = message
	return message, nil
}

func (m *mockMessageRepository) GetConversation(ctx context.Context, userA, userB string, limit int) ([]models.Message, error) {
	var result []models.Message
	for _, msg := range m.messages {
		if (msg.SenderID == userA && msg.ReceiverID == userB) || (msg.SenderID == userB && msg.ReceiverID == userA) {
			result = append(result, *msg)
		}
	}
	return result, nil
}

func (m *mockMessageRepository) MarkRead(ctx context.Context, id string, readAt time.Time) error {
	if msg, ok := m.messages[id]; ok && msg.ReadAt == nil {
		msg.ReadAt = &readAt
	}
	return nil
}

// mockClassifier is a mock implementation of Classifier for testing
type mockClassifier struct {
	prediction *classifier.Prediction
	err        error
	calls      int
}

func (m *mockClassifier) Predict(ctx context.Context, features map[string]any) (*classifier.Prediction, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.prediction, nil
}
