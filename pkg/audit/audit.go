package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType names a step of a submission.
type EventType string

const (
	EventRequestReceived  EventType = "request_received"
	EventRequestRejected  EventType = "request_rejected"
	EventNotificationSent EventType = "notification_sent"
	EventConfirmationSent EventType = "confirmation_sent"
	EventDispatchFailed   EventType = "dispatch_failed"
)

// Event is one audit record. The submitter is identified by a hash of their
// email, never the address itself.
type Event struct {
	Timestamp   time.Time
	Event       EventType
	RequestID   string
	SubjectHash string
	ProjectType string
	Stage       string
	Fields      []string
	Error       string
}

// Logger writes submission audit events. A nil *Logger discards everything.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// New builds a JSON audit logger on stdout, plus a size-rotated file when
// filePath is set.
func New(serviceName, environment, filePath string) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.MessageKey = "message"

	sinks := []zapcore.WriteSyncer{zapcore.Lock(os.Stdout)}
	if filePath != "" {
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}))
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.NewMultiWriteSyncer(sinks...),
		zapcore.InfoLevel,
	)
	return NewFromZap(zap.New(core, zap.AddCaller()), serviceName, environment)
}

// NewFromZap wraps an existing zap logger.
func NewFromZap(z *zap.Logger, serviceName, environment string) *Logger {
	return &Logger{zapLogger: z, serviceName: serviceName, environment: environment}
}

// Log writes one event.
func (l *Logger) Log(ctx context.Context, event Event) {
	if l == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	level := zapcore.InfoLevel
	switch event.Event {
	case EventRequestRejected:
		level = zapcore.WarnLevel
	case EventDispatchFailed:
		level = zapcore.ErrorLevel
	}

	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event.Event)),
		zap.Time("event_time", event.Timestamp),
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if event.SubjectHash != "" {
		fields = append(fields, zap.String("subject_hash", event.SubjectHash))
	}
	if event.ProjectType != "" {
		fields = append(fields, zap.String("project_type", event.ProjectType))
	}
	if event.Stage != "" {
		fields = append(fields, zap.String("stage", event.Stage))
	}
	if len(event.Fields) > 0 {
		fields = append(fields, zap.Strings("fields", event.Fields))
	}
	if event.Error != "" {
		fields = append(fields, zap.String("error", event.Error))
	}

	l.zapLogger.Log(level, string(event.Event), fields...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.zapLogger.Sync()
}

// HashValue returns a short SHA256 of value, case-folded so the same mailbox
// always hashes alike.
func HashValue(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
