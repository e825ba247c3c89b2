package service

import (
	"context"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
	"github.com/leapfroghealth/leapfrog/backend/internal/repository"
)

type patientService struct {
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
}

// NewPatientService creates a new patient service
func NewPatientService(patientRepo repository.PatientRepository, doctorRepo repository.DoctorRepository) PatientService {
	return &patientService{
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

func (s *patientService) CreatePatient(ctx context.Context, req *models.CreatePatientRequest) (*models.Patient, error) {
	// Validate primary doctor exists if provided
	if req.PrimaryDoctorID != nil {
		if _, err := s.doctorRepo.GetByID(ctx, *req.PrimaryDoctorID); err != nil {
			return nil, err
		}
	}

	patient := &models.Patient{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		DateOfBirth:      req.DateOfBirth,
		Gender:           req.Gender,
		PhoneNumber:      req.PhoneNumber,
		EmergencyContact: req.EmergencyContact,
		MedicalHistory:   req.MedicalHistory,
		Allergies:        req.Allergies,
		PrimaryDoctorID:  req.PrimaryDoctorID,
	}

	return s.patientRepo.Create(ctx, patient)
}

func (s *patientService) GetPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	return s.patientRepo.GetByID(ctx, patientID)
}

func (s *patientService) ListPatients(ctx context.Context, limit, offset int) ([]models.Patient, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.patientRepo.List(ctx, limit, offset)
}

func (s *patientService) UpdatePatient(ctx context.Context, patientID string, req *models.UpdatePatientRequest) (*models.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		patient.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		patient.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		patient.PhoneNumber = req.PhoneNumber
	}
	if req.DateOfBirth != nil {
		patient.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != nil {
		patient.Gender = req.Gender
	}
	if req.EmergencyContact != nil {
		patient.EmergencyContact = req.EmergencyContact
	}
	if req.MedicalHistory != nil {
		patient.MedicalHistory = req.MedicalHistory
	}
	if req.Allergies != nil {
		patient.Allergies = req.Allergies
	}
	if req.PrimaryDoctorID != nil {
		if _, err := s.doctorRepo.GetByID(ctx, *req.PrimaryDoctorID); err != nil {
			return nil, err
		}
		patient.PrimaryDoctorID = req.PrimaryDoctorID
	}

	return s.patientRepo.Update(ctx, patientID, patient)
}

func (s *patientService) DeletePatient(ctx context.Context, patientID string) error {
	return s.patientRepo.Delete(ctx, patientID)
}

type doctorService struct {
	doctorRepo repository.DoctorRepository
}

// NewDoctorService creates a new doctor service
func NewDoctorService(doctorRepo repository.DoctorRepository) DoctorService {
	return &doctorService{doctorRepo: doctorRepo}
}

func (s *doctorService) CreateDoctor(ctx context.Context, req *models.CreateDoctorRequest) (*models.Doctor, error) {
	doctor := &models.Doctor{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Specialization: req.Specialization,
		LicenseNumber:  req.LicenseNumber,
		PhoneNumber:    req.PhoneNumber,
		Bio:            req.Bio,
	}
	return s.doctorRepo.Create(ctx, doctor)
}

func (s *doctorService) GetDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return s.doctorRepo.GetByID(ctx, doctorID)
}

func (s *doctorService) ListDoctors(ctx context.Context, limit, offset int) ([]models.Doctor, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.doctorRepo.List(ctx, limit, offset)
}
