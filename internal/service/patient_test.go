package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapfroghealth/leapfrog/backend/internal/models"
	"github.com/leapfroghealth/leapfrog/backend/internal/repository"
)

func TestCreatePatient(t *testing.T) {
	patients := newMockPatientRepository()
	doctors := newMockDoctorRepository()
	svc := NewPatientService(patients, doctors)

	patient, err := svc.CreatePatient(context.Background(), &models.CreatePatientRequest{
		FirstName: "Ada",
		LastName:  "Example",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, patient.ID)
	assert.Equal(t, "Ada", patient.FirstName)
}

func TestCreatePatientValidatesPrimaryDoctor(t *testing.T) {
	patients := newMockPatientRepository()
	doctors := newMockDoctorRepository()
	svc := NewPatientService(patients, doctors)

	missing := "doc-missing"
	_, err := svc.CreatePatient(context.Background(), &models.CreatePatientRequest{
		FirstName:       "Ada",
		LastName:        "Example",
		Email:           "ada@example.com",
		PrimaryDoctorID: &missing,
	})
	assert.ErrorIs(t, err, repository.ErrDoctorNotFound)

	doctors.add("doc-1")
	docID := "doc-1"
	patient, err := svc.CreatePatient(context.Background(), &models.CreatePatientRequest{
		FirstName:       "Ada",
		LastName:        "Example",
		Email:           "ada@example.com",
		PrimaryDoctorID: &docID,
	})
	require.NoError(t, err)
	require.NotNil(t, patient.PrimaryDoctorID)
	assert.Equal(t, "doc-1", *patient.PrimaryDoctorID)
}

func TestUpdatePatientPartial(t *testing.T) {
	patients := newMockPatientRepository()
	patients.add("pat-1")
	svc := NewPatientService(patients, newMockDoctorRepository())

	name := "Updated"
	phone := "555-0100"
	patient, err := svc.UpdatePatient(context.Background(), "pat-1", &models.UpdatePatientRequest{
		FirstName:   &name,
		PhoneNumber: &phone,
	})
	require.NoError(t, err)

	assert.Equal(t, "Updated", patient.FirstName)
	require.NotNil(t, patient.PhoneNumber)
	assert.Equal(t, "555-0100", *patient.PhoneNumber)
	// Untouched fields survive
	assert.Equal(t, "Patient", patient.LastName)
}

func TestUpdatePatientNotFound(t *testing.T) {
	svc := NewPatientService(newMockPatientRepository(), newMockDoctorRepository())

	name := "x"
	_, err := svc.UpdatePatient(context.Background(), "missing", &models.UpdatePatientRequest{FirstName: &name})
	assert.ErrorIs(t, err, repository.ErrPatientNotFound)
}

func TestDeletePatient(t *testing.T) {
	patients := newMockPatientRepository()
	patients.add("pat-1")
	svc := NewPatientService(patients, newMockDoctorRepository())

	require.NoError(t, svc.DeletePatient(context.Background(), "pat-1"))
	_, err := svc.GetPatient(context.Background(), "pat-1")
	assert.ErrorIs(t, err, repository.ErrPatientNotFound)
}

func TestListPatientsClampsLimit(t *testing.T) {
	patients := newMockPatientRepository()
	patients.add("pat-1")
	svc := NewPatientService(patients, newMockDoctorRepository())

	result, err := svc.ListPatients(context.Background(), -5, -1)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}
