// Package logger defines the logging seam for the backend. Code logs
// through the Logger interface and Field helpers; the concrete backend
// (zap, see zap.go) stays swappable behind it.
package logger

import (
	"context"
	"time"
)

// Level is the minimum severity a logger emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Field is a structured key-value attached to a log entry.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field        { return Field{Key: key, Value: value} }
func Int(key string, value int) Field       { return Field{Key: key, Value: value} }
func Int64(key string, value int64) Field   { return Field{Key: key, Value: value} }
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field     { return Field{Key: key, Value: value} }
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}
func Any(key string, value any) Field { return Field{Key: key, Value: value} }

// Err wraps an error under the conventional "error" key.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Logger is implemented by the zap backend and by NewNop for tests.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a logger that attaches fields to every entry.
	With(fields ...Field) Logger
	// WithContext returns a logger enriched with the context's
	// request_id and patient_id, when present.
	WithContext(ctx context.Context) Logger

	Level() Level
}

// Config controls backend construction.
type Config struct {
	Level Level
	// Format is "json" or "text".
	Format string
	// AddSource appends file:line to each entry.
	AddSource bool
}

func DefaultConfig() Config {
	return Config{Level: LevelInfo, Format: "json"}
}

var defaultLogger Logger

// SetDefault installs the process-wide logger used by Default and the
// package-level log functions.
func SetDefault(l Logger) {
	defaultLogger = l
}

// Default returns the process-wide logger, constructing a zap-backed one
// on first use if SetDefault was never called.
func Default() Logger {
	if defaultLogger == nil {
		defaultLogger = NewZapLogger(DefaultConfig())
	}
	return defaultLogger
}

func Debug(msg string, fields ...Field) { Default().Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { Default().Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { Default().Warn(msg, fields...) }
func Error(msg string, fields ...Field) { Default().Error(msg, fields...) }
func With(fields ...Field) Logger       { return Default().With(fields...) }

func WithContext(ctx context.Context) Logger {
	return Default().WithContext(ctx)
}
