package apierror

// Error type URIs following the urn:leapfrog:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:leapfrog:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:leapfrog:error:not_found"

	// TypeConflict indicates a resource conflict (409)
	TypeConflict = "urn:leapfrog:error:conflict"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:leapfrog:error:rate_limit"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:leapfrog:error:internal"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:leapfrog:error:bad_request"

	// TypeInsufficientData indicates too little tracked data for an
	// analysis to run (422)
	TypeInsufficientData = "urn:leapfrog:error:insufficient_data"

	// TypeUpstream indicates a dependent service failed (502)
	TypeUpstream = "urn:leapfrog:error:upstream"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation       = "Validation Error"
	TitleNotFound         = "Resource Not Found"
	TitleConflict         = "Resource Conflict"
	TitleRateLimit        = "Rate Limit Exceeded"
	TitleInternal         = "Internal Server Error"
	TitleBadRequest       = "Bad Request"
	TitleInsufficientData = "Insufficient Tracking Data"
	TitleUpstream         = "Upstream Service Error"
)
