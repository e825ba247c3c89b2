package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/leapfroghealth/leapfrog/backend/internal/apierror"
	"github.com/leapfroghealth/leapfrog/backend/internal/models"
	"github.com/leapfroghealth/leapfrog/backend/internal/repository"
	"github.com/leapfroghealth/leapfrog/backend/internal/service"
)

// AIHandler serves the analytics and recommendation endpoints
type AIHandler struct {
	analysisService       service.AnalysisService
	recommendationService service.RecommendationService
}

// NewAIHandler creates a new AI handler
func NewAIHandler(analysisService service.AnalysisService, recommendationService service.RecommendationService) *AIHandler {
	return &AIHandler{
		analysisService:       analysisService,
		recommendationService: recommendationService,
	}
}

// AnalyzeProgress handles POST /api/v1/ai/analyze/:patient_id
func (h *AIHandler) AnalyzeProgress(c *gin.Context) {
	patientID := c.Param("patient_id")

	analysis, err := h.analysisService.AnalyzeProgress(c.Request.Context(), patientID)
	if err != nil {
		writeAnalysisError(c, patientID, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// GenerateSuggestions handles POST /api/v1/ai/suggestions/:patient_id
func (h *AIHandler) GenerateSuggestions(c *gin.Context) {
	patientID := c.Param("patient_id")

	suggestions, err := h.analysisService.GenerateSuggestions(c.Request.Context(), patientID)
	if err != nil {
		writeAnalysisError(c, patientID, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"patient_id":  patientID,
		"suggestions": suggestions,
	})
}

// GetSuggestions handles GET /api/v1/ai/suggestions/:patient_id
func (h *AIHandler) GetSuggestions(c *gin.Context) {
	patientID := c.Param("patient_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	suggestions, err := h.analysisService.GetSuggestions(c.Request.Context(), patientID, limit)
	if err != nil {
		writeAnalysisError(c, patientID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"patient_id":  patientID,
		"suggestions": suggestions,
	})
}

// GetInsights handles GET /api/v1/ai/insights/:patient_id
func (h *AIHandler) GetInsights(c *gin.Context) {
	patientID := c.Param("patient_id")

	insights, err := h.analysisService.GetComprehensiveInsights(c.Request.Context(), patientID)
	if err != nil {
		writeAnalysisError(c, patientID, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}

// GetRiskAssessment handles GET /api/v1/ai/risk-assessment/:patient_id
func (h *AIHandler) GetRiskAssessment(c *gin.Context) {
	patientID := c.Param("patient_id")

	assessment, err := h.analysisService.AssessRisk(c.Request.Context(), patientID)
	if err != nil {
		writeAnalysisError(c, patientID, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// RecommendTreatments handles POST /api/v1/ai/recommendations
func (h *AIHandler) RecommendTreatments(c *gin.Context) {
	var vitals models.HealthVitals
	if err := c.ShouldBindJSON(&vitals); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid health data"))
		return
	}

	recommendations, err := h.recommendationService.RecommendTreatments(c.Request.Context(), vitals)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUpstreamError(requestID, "classifier"))
		return
	}
	c.JSON(http.StatusOK, recommendations)
}

func writeAnalysisError(c *gin.Context, patientID string, err error) {
	requestID := apierror.GetRequestID(c)
	switch {
	case errors.Is(err, repository.ErrPatientNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Patient", patientID))
	case errors.Is(err, service.ErrInsufficientData):
		apierror.WriteProblem(c, apierror.NewInsufficientDataError(requestID,
			"Not enough tracked data for this patient to run an analysis"))
	default:
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}
