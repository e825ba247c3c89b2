package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leapfroghealth/leapfrog/backend/internal/apierror"
	"github.com/leapfroghealth/leapfrog/backend/internal/models"
	"github.com/leapfroghealth/leapfrog/backend/internal/repository"
	"github.com/leapfroghealth/leapfrog/backend/internal/service"
)

// PatientHandler serves patient profile endpoints
type PatientHandler struct {
	patientService service.PatientService
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(patientService service.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// CreatePatient handles POST /api/v1/patients
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req models.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid patient data"))
		return
	}

	patient, err := h.patientService.CreatePatient(c.Request.Context(), &req)
	if err != nil {
		writePatientError(c, "", err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

// GetPatient handles GET /api/v1/patients/:id
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id := c.Param("id")

	patient, err := h.patientService.GetPatient(c.Request.Context(), id)
	if err != nil {
		writePatientError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// ListPatients handles GET /api/v1/patients
func (h *PatientHandler) ListPatients(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	patients, err := h.patientService.ListPatients(c.Request.Context(), limit, offset)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients, "limit": limit, "offset": offset})
}

// UpdatePatient handles PUT /api/v1/patients/:id
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid patient data"))
		return
	}

	patient, err := h.patientService.UpdatePatient(c.Request.Context(), id, &req)
	if err != nil {
		writePatientError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// DeletePatient handles DELETE /api/v1/patients/:id
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id := c.Param("id")

	if err := h.patientService.DeletePatient(c.Request.Context(), id); err != nil {
		writePatientError(c, id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writePatientError(c *gin.Context, id string, err error) {
	requestID := apierror.GetRequestID(c)
	switch {
	case errors.Is(err, repository.ErrPatientNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Patient", id))
	case errors.Is(err, repository.ErrDoctorNotFound):
		fieldErrors := []apierror.FieldError{{
			Field:   "primary_doctor_id",
			Message: "references an unknown doctor",
			Code:    "invalid_reference",
		}}
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
	case strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "23505"):
		apierror.WriteProblem(c, apierror.NewConflictError(requestID, "A patient with this email already exists"))
	default:
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}

// DoctorHandler serves doctor profile endpoints
type DoctorHandler struct {
	doctorService service.DoctorService
}

// NewDoctorHandler creates a new doctor handler
func NewDoctorHandler(doctorService service.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

// CreateDoctor handles POST /api/v1/doctors
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req models.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid doctor data"))
		return
	}

	doctor, err := h.doctorService.CreateDoctor(c.Request.Context(), &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

// GetDoctor handles GET /api/v1/doctors/:id
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id := c.Param("id")

	doctor, err := h.doctorService.GetDoctor(c.Request.Context(), id)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, repository.ErrDoctorNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Doctor", id))
			return
		}
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// ListDoctors handles GET /api/v1/doctors
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	doctors, err := h.doctorService.ListDoctors(c.Request.Context(), limit, offset)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors, "limit": limit, "offset": offset})
}
