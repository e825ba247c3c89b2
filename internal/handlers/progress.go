package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leapfroghealth/leapfrog/backend/internal/apierror"
	"github.com/leapfroghealth/leapfrog/backend/internal/models"
	"github.com/leapfroghealth/leapfrog/backend/internal/repository"
	"github.com/leapfroghealth/leapfrog/backend/internal/service"
)

// ProgressHandler serves the patient tracking endpoints
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// LogSymptom handles POST /api/v1/progress/symptoms
func (h *ProgressHandler) LogSymptom(c *gin.Context) {
	var req models.CreateSymptomEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.progressService.LogSymptom(c.Request.Context(), &req)
	if err != nil {
		writeProgressError(c, req.PatientID, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// LogMood handles POST /api/v1/progress/moods
func (h *ProgressHandler) LogMood(c *gin.Context) {
	var req models.CreateMoodEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.progressService.LogMood(c.Request.Context(), &req)
	if err != nil {
		writeProgressError(c, req.PatientID, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// LogActivity handles POST /api/v1/progress/activities
func (h *ProgressHandler) LogActivity(c *gin.Context) {
	var req models.CreateActivityEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.progressService.LogActivity(c.Request.Context(), &req)
	if err != nil {
		writeProgressError(c, req.PatientID, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// RecordAssessment handles POST /api/v1/progress/assessments
func (h *ProgressHandler) RecordAssessment(c *gin.Context) {
	var req models.CreateAssessmentRequest
	if !bindJSON(c, &req) {
		return
	}

	assessment, err := h.progressService.RecordAssessment(c.Request.Context(), &req)
	if err != nil {
		writeProgressError(c, req.PatientID, err)
		return
	}
	c.JSON(http.StatusCreated, assessment)
}

// CreateGoal handles POST /api/v1/progress/goals
func (h *ProgressHandler) CreateGoal(c *gin.Context) {
	var req models.CreateGoalRequest
	if !bindJSON(c, &req) {
		return
	}

	goal, err := h.progressService.CreateGoal(c.Request.Context(), &req)
	if err != nil {
		writeProgressError(c, req.PatientID, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// GetGoals handles GET /api/v1/progress/goals/:patient_id
func (h *ProgressHandler) GetGoals(c *gin.Context) {
	patientID := c.Param("patient_id")

	goals, err := h.progressService.GetGoals(c.Request.Context(), patientID)
	if err != nil {
		writeProgressError(c, patientID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient_id": patientID, "goals": goals})
}

// UpdateGoalProgress handles PATCH /api/v1/goals/:goal_id/progress
func (h *ProgressHandler) UpdateGoalProgress(c *gin.Context) {
	goalID := c.Param("goal_id")

	var req struct {
		CurrentValue float64 `json:"current_value" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}

	goal, err := h.progressService.UpdateGoalProgress(c.Request.Context(), goalID, req.CurrentValue)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, repository.ErrGoalNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Goal", goalID))
			return
		}
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}
	c.JSON(http.StatusOK, goal)
}

// CreateTreatmentPlan handles POST /api/v1/progress/treatment-plans
func (h *ProgressHandler) CreateTreatmentPlan(c *gin.Context) {
	var req models.CreateTreatmentPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.progressService.CreateTreatmentPlan(c.Request.Context(), &req)
	if err != nil {
		writeProgressError(c, req.PatientID, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// GetTreatmentPlans handles GET /api/v1/progress/treatment-plans/:patient_id
func (h *ProgressHandler) GetTreatmentPlans(c *gin.Context) {
	patientID := c.Param("patient_id")

	plans, err := h.progressService.GetTreatmentPlans(c.Request.Context(), patientID)
	if err != nil {
		writeProgressError(c, patientID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient_id": patientID, "treatment_plans": plans})
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return false
	}
	return true
}

func writeProgressError(c *gin.Context, patientID string, err error) {
	requestID := apierror.GetRequestID(c)
	switch {
	case errors.Is(err, repository.ErrPatientNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Patient", patientID))
	case errors.Is(err, repository.ErrDoctorNotFound):
		fieldErrors := []apierror.FieldError{{
			Field:   "doctor_id",
			Message: "references an unknown doctor",
			Code:    "invalid_reference",
		}}
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
	default:
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}
