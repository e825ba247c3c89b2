package apierror

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestProblemDetailsJSON(t *testing.T) {
	retryAfter := 60
	problem := &ProblemDetails{
		Type:        TypeValidation,
		Title:       TitleValidation,
		Status:      http.StatusBadRequest,
		Detail:      "Field validation failed",
		Instance:    "/api/v1/ai/suggestions/pat-1",
		RequestID:   "req-abc123",
		UserMessage: "Please fix the errors",
		RetryAfter:  &retryAfter,
		Action:      "fix_validation",
		Errors: []FieldError{
			{Field: "mood_score", Message: "must be between 1 and 10", Code: "out_of_range"},
			{Field: "patient_id", Message: "is required", Code: "required"},
		},
	}

	data, err := json.Marshal(problem)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, TypeValidation, result["type"])
	assert.Equal(t, TitleValidation, result["title"])
	assert.Equal(t, float64(http.StatusBadRequest), result["status"])
	assert.Equal(t, "/api/v1/ai/suggestions/pat-1", result["instance"])
	assert.Equal(t, "req-abc123", result["request_id"])
	assert.Equal(t, float64(60), result["retry_after"])
	assert.Equal(t, "fix_validation", result["action"])
	assert.Len(t, result["errors"], 2)
}

func TestProblemDetailsJSONOmitsEmpty(t *testing.T) {
	problem := &ProblemDetails{
		Type:   TypeInternal,
		Title:  TitleInternal,
		Status: http.StatusInternalServerError,
	}

	data, err := json.Marshal(problem)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(data, &result))

	for _, field := range []string{"detail", "instance", "request_id", "user_message", "retry_after", "action", "errors"} {
		assert.NotContains(t, result, field)
	}
	for _, field := range []string{"type", "title", "status"} {
		assert.Contains(t, result, field)
	}
}

func TestWriteProblemContentType(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteProblem(c, NewInternalError("req-123"))

	assert.Equal(t, ContentTypeProblemJSON, w.Header().Get("Content-Type"))
}

func TestWriteProblemRetryAfter(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteProblem(c, NewRateLimitError("req-456", 120))

	assert.Equal(t, "120", w.Header().Get("Retry-After"))

	var result map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, float64(120), result["retry_after"])
}

func TestWriteProblemNoRetryAfterWhenNil(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteProblem(c, NewInternalError("req-789"))

	assert.Empty(t, w.Header().Get("Retry-After"))
}

func TestNewValidationErrorKeepsAllFields(t *testing.T) {
	problem := NewValidationError("req-abc", []FieldError{
		{Field: "first_name", Message: "is required", Code: "required"},
		{Field: "email", Message: "must be a valid email", Code: "invalid_email"},
		{Field: "date_of_birth", Message: "must be in the past", Code: "future_date"},
	})

	assert.Equal(t, TypeValidation, problem.Type)
	assert.Equal(t, http.StatusBadRequest, problem.Status)
	require.Len(t, problem.Errors, 3)

	fields := make(map[string]bool)
	for _, e := range problem.Errors {
		fields[e.Field] = true
	}
	assert.True(t, fields["first_name"] && fields["email"] && fields["date_of_birth"])
}

func TestNewInternalErrorHidesDetails(t *testing.T) {
	problem := NewInternalError("req-xyz")

	assert.Equal(t, "An unexpected error occurred", problem.Detail)
	assert.NotEmpty(t, problem.UserMessage)
}

func TestNewNotFoundError(t *testing.T) {
	problem := NewNotFoundError("req-123", "Patient", "pat-456")

	assert.Equal(t, TypeNotFound, problem.Type)
	assert.Equal(t, http.StatusNotFound, problem.Status)
	assert.Equal(t, "Patient with ID 'pat-456' was not found", problem.Detail)
}

func TestNewRateLimitError(t *testing.T) {
	problem := NewRateLimitError("req-789", 60)

	assert.Equal(t, TypeRateLimit, problem.Type)
	assert.Equal(t, http.StatusTooManyRequests, problem.Status)
	require.NotNil(t, problem.RetryAfter)
	assert.Equal(t, 60, *problem.RetryAfter)
}

func TestNewInsufficientDataError(t *testing.T) {
	problem := NewInsufficientDataError("req-abc", "At least 5 symptom and 5 mood entries required")

	assert.Equal(t, TypeInsufficientData, problem.Type)
	assert.Equal(t, http.StatusUnprocessableEntity, problem.Status)
	assert.Equal(t, "collect_more_data", problem.Action)
}

func TestNewUpstreamError(t *testing.T) {
	problem := NewUpstreamError("req-def", "classifier")

	assert.Equal(t, TypeUpstream, problem.Type)
	assert.Equal(t, http.StatusBadGateway, problem.Status)
	assert.Equal(t, "The classifier service did not return a usable response", problem.Detail)
}

func TestProblemDetailsError(t *testing.T) {
	withDetail := &ProblemDetails{Title: TitleValidation, Detail: "Custom error message"}
	assert.Equal(t, "Custom error message", withDetail.Error())

	titleOnly := &ProblemDetails{Title: TitleValidation}
	assert.Equal(t, TitleValidation, titleOnly.Error())
}

func TestGetRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "ctx-req-123")
	assert.Equal(t, "ctx-req-123", GetRequestID(c))

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = httptest.NewRequest("GET", "/test", nil)
	c2.Request.Header.Set("X-Request-ID", "header-req-456")
	assert.Equal(t, "header-req-456", GetRequestID(c2))

	c3, _ := gin.CreateTestContext(httptest.NewRecorder())
	c3.Request = httptest.NewRequest("GET", "/test", nil)
	assert.Empty(t, GetRequestID(c3))
}

func TestNewServiceUnavailableError(t *testing.T) {
	problem := NewServiceUnavailableError("req-mno", 300)

	assert.Equal(t, http.StatusServiceUnavailable, problem.Status)
	require.NotNil(t, problem.RetryAfter)
	assert.Equal(t, 300, *problem.RetryAfter)
}
