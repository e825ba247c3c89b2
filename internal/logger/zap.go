package logger

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements Logger using go.uber.org/zap
type ZapLogger struct {
	logger *zap.Logger
	level  Level
}

// NewZapLogger creates a new zap-based logger with the given config
func NewZapLogger(cfg Config) *ZapLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "text" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), toZapLevel(cfg.Level))

	opts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	if cfg.AddSource {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	return &ZapLogger{
		logger: zap.New(core, opts...),
		level:  cfg.Level,
	}
}

// NewNop returns a logger that discards everything, for tests.
func NewNop() Logger {
	return &ZapLogger{logger: zap.NewNop(), level: LevelError}
}

func toZapLevel(l Level) zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}

func (z *ZapLogger) Debug(msg string, fields ...Field) {
	z.logger.Debug(msg, toZapFields(fields)...)
}

func (z *ZapLogger) Info(msg string, fields ...Field) {
	z.logger.Info(msg, toZapFields(fields)...)
}

func (z *ZapLogger) Warn(msg string, fields ...Field) {
	z.logger.Warn(msg, toZapFields(fields)...)
}

func (z *ZapLogger) Error(msg string, fields ...Field) {
	z.logger.Error(msg, toZapFields(fields)...)
}

// With returns a new logger with the given fields attached to every entry
func (z *ZapLogger) With(fields ...Field) Logger {
	return &ZapLogger{
		logger: z.logger.With(toZapFields(fields)...),
		level:  z.level,
	}
}

// WithContext returns a new logger carrying request-scoped fields from ctx
func (z *ZapLogger) WithContext(ctx context.Context) Logger {
	fields := extractContextFields(ctx)
	if len(fields) == 0 {
		return z
	}
	return z.With(fields...)
}

// Level returns the configured minimum level
func (z *ZapLogger) Level() Level {
	return z.level
}

// Sync flushes buffered log entries; call it on shutdown
func (z *ZapLogger) Sync() error {
	return z.logger.Sync()
}
