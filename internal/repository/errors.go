package repository

import "errors"

// Sentinel errors returned by repositories. Services match on these
// with errors.Is to translate storage misses into API responses.
var (
	ErrPatientNotFound       = errors.New("patient not found")
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrMedicalRecordNotFound = errors.New("medical record not found")
	ErrSuggestionNotFound    = errors.New("suggestion not found")
	ErrGoalNotFound          = errors.New("goal not found")
	ErrTreatmentNotFound     = errors.New("treatment plan not found")
)
