package service

import (
	"context"
	"fmt"
	"time"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
	"github.com/leapfroghealth/leapfrog/backend/internal/repository"
)

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
) AppointmentService {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
	}
}

func (s *appointmentService) CreateAppointment(ctx context.Context, req *models.CreateAppointmentRequest) (*models.Appointment, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("appointment end time must be after start time")
	}
	if _, err := s.patientRepo.GetByID(ctx, req.PatientID); err != nil {
		return nil, err
	}
	if _, err := s.doctorRepo.GetByID(ctx, req.DoctorID); err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
		Location:  req.Location,
	}
	return s.appointmentRepo.Create(ctx, appointment)
}

func (s *appointmentService) GetAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return s.appointmentRepo.GetByID(ctx, appointmentID)
}

func (s *appointmentService) GetPatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error) {
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	return s.appointmentRepo.GetByPatientID(ctx, patientID)
}

func (s *appointmentService) UpdateAppointment(ctx context.Context, appointmentID string, req *models.UpdateAppointmentRequest) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if req.StartTime != nil {
		appointment.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		appointment.EndTime = *req.EndTime
	}
	if !appointment.EndTime.After(appointment.StartTime) {
		return nil, fmt.Errorf("appointment end time must be after start time")
	}
	if req.Status != nil {
		appointment.Status = *req.Status
	}
	if req.Reason != nil {
		appointment.Reason = req.Reason
	}
	if req.Notes != nil {
		appointment.Notes = req.Notes
	}
	if req.Location != nil {
		appointment.Location = req.Location
	}

	return s.appointmentRepo.Update(ctx, appointmentID, appointment)
}

func (s *appointmentService) CancelAppointment(ctx context.Context, appointmentID string) error {
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	appointment.Status = models.AppointmentCancelled
	_, err = s.appointmentRepo.Update(ctx, appointmentID, appointment)
	return err
}

type medicalRecordService struct {
	recordRepo  repository.MedicalRecordRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
}

// NewMedicalRecordService creates a new medical record service
func NewMedicalRecordService(
	recordRepo repository.MedicalRecordRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
) MedicalRecordService {
	return &medicalRecordService{
		recordRepo:  recordRepo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

func (s *medicalRecordService) CreateRecord(ctx context.Context, req *models.CreateMedicalRecordRequest) (*models.MedicalRecord, error) {
	if _, err := s.patientRepo.GetByID(ctx, req.PatientID); err != nil {
		return nil, err
	}
	if _, err := s.doctorRepo.GetByID(ctx, req.DoctorID); err != nil {
		return nil, err
	}

	record := &models.MedicalRecord{
		PatientID:  req.PatientID,
		DoctorID:   req.DoctorID,
		RecordType: req.RecordType,
		Title:      req.Title,
		Content:    req.Content,
		Diagnosis:  req.Diagnosis,
		Medication: req.Medication,
	}
	return s.recordRepo.Create(ctx, record)
}

func (s *medicalRecordService) GetRecord(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	return s.recordRepo.GetByID(ctx, recordID)
}

func (s *medicalRecordService) GetPatientRecords(ctx context.Context, patientID string) ([]models.MedicalRecord, error) {
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	return s.recordRepo.GetByPatientID(ctx, patientID)
}

type messageService struct {
	messageRepo repository.MessageRepository
	now         func() time.Time
}

// NewMessageService creates a new message service
func NewMessageService(messageRepo repository.MessageRepository) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		now:         time.Now,
	}
}

func (s *messageService) SendMessage(ctx context.Context, req *models.SendMessageRequest) (*models.Message, error) {
	if req.SenderID == req.ReceiverID {
		return nil, fmt.Errorf("sender and receiver must differ")
	}

	message := &models.Message{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Subject:    req.Subject,
		Body:       req.Body,
	}
	return s.messageRepo.Create(ctx, message)
}

func (s *messageService) GetConversation(ctx context.Context, userA, userB string, limit int) ([]models.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.messageRepo.GetConversation(ctx, userA, userB, limit)
}

func (s *messageService) MarkMessageRead(ctx context.Context, messageID string) error {
	return s.messageRepo.MarkRead(ctx, messageID, s.now().UTC())
}
