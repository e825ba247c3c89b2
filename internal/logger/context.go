package logger

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	patientIDKey contextKey = "patient_id"
	loggerKey    contextKey = "logger"
)

// WithRequestID stores a correlation ID in the context, minting a UUID when
// the caller has none.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithPatientID tags the context with the patient a request operates on, so
// every log line downstream carries it.
func WithPatientID(ctx context.Context, patientID string) context.Context {
	return context.WithValue(ctx, patientIDKey, patientID)
}

func PatientIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(patientIDKey).(string)
	return id
}

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the context's logger, falling back to the default.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

func extractContextFields(ctx context.Context) []Field {
	var fields []Field
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		fields = append(fields, String("request_id", requestID))
	}
	if patientID := PatientIDFromContext(ctx); patientID != "" {
		fields = append(fields, String("patient_id", patientID))
	}
	return fields
}

// Ctx is shorthand for FromContext(ctx).WithContext(ctx).
func Ctx(ctx context.Context) Logger {
	return FromContext(ctx).WithContext(ctx)
}
