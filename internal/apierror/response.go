package apierror

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the media type RFC 9457 assigns to problem bodies.
const ContentTypeProblemJSON = "application/problem+json"

// WriteProblem serializes the problem with the problem+json content type.
// Responses carrying RetryAfter (429, 503) also get a Retry-After header.
// It does not abort the gin chain; callers that need to stop further
// handlers must call c.Abort themselves.
func WriteProblem(c *gin.Context, problem *ProblemDetails) {
	c.Header("Content-Type", ContentTypeProblemJSON)
	if problem.RetryAfter != nil {
		c.Header("Retry-After", strconv.Itoa(*problem.RetryAfter))
	}
	c.JSON(problem.Status, problem)
}

// GetRequestID returns the correlation ID set by the request-ID middleware,
// falling back to the inbound X-Request-ID header.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return c.GetHeader("X-Request-ID")
}

// NewValidationError builds a 400 carrying one FieldError per failed field,
// so clients can surface every problem in a single round trip.
func NewValidationError(requestID string, errors []FieldError) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeValidation,
		Title:       TitleValidation,
		Status:      http.StatusBadRequest,
		Detail:      "One or more fields failed validation",
		RequestID:   requestID,
		UserMessage: "Please check your input and try again",
		Errors:      errors,
	}
}

// NewNotFoundError builds a 404 naming the resource kind and ID.
func NewNotFoundError(requestID, resource, id string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeNotFound,
		Title:       TitleNotFound,
		Status:      http.StatusNotFound,
		Detail:      fmt.Sprintf("%s with ID '%s' was not found", resource, id),
		RequestID:   requestID,
		UserMessage: fmt.Sprintf("The requested %s could not be found", resource),
	}
}

// NewConflictError builds a 409 for writes that collide with existing rows.
func NewConflictError(requestID, detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeConflict,
		Title:       TitleConflict,
		Status:      http.StatusConflict,
		Detail:      detail,
		RequestID:   requestID,
		UserMessage: "This action conflicts with existing data",
	}
}

// NewRateLimitError builds a 429 with retryAfter in seconds.
func NewRateLimitError(requestID string, retryAfter int) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeRateLimit,
		Title:       TitleRateLimit,
		Status:      http.StatusTooManyRequests,
		Detail:      fmt.Sprintf("Rate limit exceeded. Please retry after %d seconds", retryAfter),
		RequestID:   requestID,
		UserMessage: "Too many requests. Please wait before trying again.",
		RetryAfter:  &retryAfter,
	}
}

// NewInternalError builds a 500 with a generic body. The underlying error
// never reaches the client; log it server-side before calling this.
func NewInternalError(requestID string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInternal,
		Title:       TitleInternal,
		Status:      http.StatusInternalServerError,
		Detail:      "An unexpected error occurred",
		RequestID:   requestID,
		UserMessage: "Something went wrong. Please try again later.",
	}
}

// NewBadRequestError builds a 400 for requests that fail to bind or parse.
func NewBadRequestError(requestID, detail, userMessage string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeBadRequest,
		Title:       TitleBadRequest,
		Status:      http.StatusBadRequest,
		Detail:      detail,
		RequestID:   requestID,
		UserMessage: userMessage,
	}
}

// NewInsufficientDataError creates a 422 response for analyses that
// cannot run on the patient's current tracking history.
func NewInsufficientDataError(requestID string, detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInsufficientData,
		Title:       TitleInsufficientData,
		Status:      http.StatusUnprocessableEntity,
		Detail:      detail,
		RequestID:   requestID,
		UserMessage: "Keep tracking your symptoms and mood so we can build a reliable analysis",
		Action:      "collect_more_data",
	}
}

// NewUpstreamError builds a 502 for a dependent service (e.g. the treatment
// classifier) that failed or returned an unusable response.
func NewUpstreamError(requestID, service string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeUpstream,
		Title:       TitleUpstream,
		Status:      http.StatusBadGateway,
		Detail:      fmt.Sprintf("The %s service did not return a usable response", service),
		RequestID:   requestID,
		UserMessage: "A dependent service is having trouble. Please try again later.",
		Action:      "retry",
	}
}

// NewServiceUnavailableError builds a 503 with retryAfter in seconds.
func NewServiceUnavailableError(requestID string, retryAfter int) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInternal,
		Title:       "Service Unavailable",
		Status:      http.StatusServiceUnavailable,
		Detail:      "The service is temporarily unavailable",
		RequestID:   requestID,
		UserMessage: "Service is temporarily unavailable. Please try again later.",
		RetryAfter:  &retryAfter,
	}
}
