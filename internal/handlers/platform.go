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

// AppointmentHandler serves appointment endpoints
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// CreateAppointment handles POST /api/v1/appointments
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		writeAppointmentError(c, req.PatientID, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// GetAppointment handles GET /api/v1/appointments/:id
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id := c.Param("id")

	appointment, err := h.appointmentService.GetAppointment(c.Request.Context(), id)
	if err != nil {
		writeAppointmentError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// GetPatientAppointments handles GET /api/v1/patients/:id/appointments
func (h *AppointmentHandler) GetPatientAppointments(c *gin.Context) {
	patientID := c.Param("id")

	appointments, err := h.appointmentService.GetPatientAppointments(c.Request.Context(), patientID)
	if err != nil {
		writeAppointmentError(c, patientID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient_id": patientID, "appointments": appointments})
}

// UpdateAppointment handles PUT /api/v1/appointments/:id
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	appointment, err := h.appointmentService.UpdateAppointment(c.Request.Context(), id, &req)
	if err != nil {
		writeAppointmentError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// CancelAppointment handles DELETE /api/v1/appointments/:id
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	id := c.Param("id")

	if err := h.appointmentService.CancelAppointment(c.Request.Context(), id); err != nil {
		writeAppointmentError(c, id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeAppointmentError(c *gin.Context, id string, err error) {
	requestID := apierror.GetRequestID(c)
	switch {
	case errors.Is(err, repository.ErrAppointmentNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Appointment", id))
	case errors.Is(err, repository.ErrPatientNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Patient", id))
	case errors.Is(err, repository.ErrDoctorNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Doctor", id))
	case strings.Contains(err.Error(), "end time"):
		fieldErrors := []apierror.FieldError{{
			Field:   "end_time",
			Message: "must be after start_time",
			Code:    "invalid_range",
		}}
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
	default:
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}

// MedicalRecordHandler serves medical record endpoints
type MedicalRecordHandler struct {
	recordService service.MedicalRecordService
}

// NewMedicalRecordHandler creates a new medical record handler
func NewMedicalRecordHandler(recordService service.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{recordService: recordService}
}

// CreateRecord handles POST /api/v1/records
func (h *MedicalRecordHandler) CreateRecord(c *gin.Context) {
	var req models.CreateMedicalRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.recordService.CreateRecord(c.Request.Context(), &req)
	if err != nil {
		writeRecordError(c, req.PatientID, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// GetRecord handles GET /api/v1/records/:id
func (h *MedicalRecordHandler) GetRecord(c *gin.Context) {
	id := c.Param("id")

	record, err := h.recordService.GetRecord(c.Request.Context(), id)
	if err != nil {
		writeRecordError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetPatientRecords handles GET /api/v1/patients/:id/records
func (h *MedicalRecordHandler) GetPatientRecords(c *gin.Context) {
	patientID := c.Param("id")

	records, err := h.recordService.GetPatientRecords(c.Request.Context(), patientID)
	if err != nil {
		writeRecordError(c, patientID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient_id": patientID, "records": records})
}

func writeRecordError(c *gin.Context, id string, err error) {
	requestID := apierror.GetRequestID(c)
	switch {
	case errors.Is(err, repository.ErrMedicalRecordNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Medical record", id))
	case errors.Is(err, repository.ErrPatientNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Patient", id))
	case errors.Is(err, repository.ErrDoctorNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Doctor", id))
	default:
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}

// MessageHandler serves messaging endpoints
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SendMessage handles POST /api/v1/messages
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req models.SendMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	message, err := h.messageService.SendMessage(c.Request.Context(), &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if strings.Contains(err.Error(), "must differ") {
			fieldErrors := []apierror.FieldError{{
				Field:   "receiver_id",
				Message: "must differ from sender_id",
				Code:    "invalid_reference",
			}}
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
			return
		}
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}
	c.JSON(http.StatusCreated, message)
}

// GetConversation handles GET /api/v1/messages/conversation
func (h *MessageHandler) GetConversation(c *gin.Context) {
	userA := c.Query("user_a")
	userB := c.Query("user_b")
	if userA == "" || userB == "" {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID,
			"user_a and user_b query parameters are required", "Both participants must be given"))
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	messages, err := h.messageService.GetConversation(c.Request.Context(), userA, userB, limit)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// MarkMessageRead handles POST /api/v1/messages/:id/read
func (h *MessageHandler) MarkMessageRead(c *gin.Context) {
	id := c.Param("id")

	if err := h.messageService.MarkMessageRead(c.Request.Context(), id); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}
	c.Status(http.StatusNoContent)
}
