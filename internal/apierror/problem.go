// Package apierror implements RFC 9457 problem-details responses for the
// leapfrog API. Handlers build problems with the New* constructors and emit
// them through WriteProblem so every error on the wire has the same shape.
package apierror

// ProblemDetails is the JSON body of an error response, per
// https://www.rfc-editor.org/rfc/rfc9457.html.
//
// Beyond the standard members it carries a request correlation ID, a
// UI-safe message, and an optional action hint the client can act on
// (e.g. "collect_more_data" when an analysis lacks tracking entries).
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`

	RequestID   string       `json:"request_id,omitempty"`
	UserMessage string       `json:"user_message,omitempty"`
	RetryAfter  *int         `json:"retry_after,omitempty"`
	Action      string       `json:"action,omitempty"`
	Errors      []FieldError `json:"errors,omitempty"`
}

// FieldError pins a validation failure to a single request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (p *ProblemDetails) Error() string {
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}
