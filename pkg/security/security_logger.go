package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventLoginFailed        EventType = "login_failed"
	EventLoginBlocked       EventType = "login_blocked"
	EventLoginSuccess       EventType = "login_success"
	EventRegistered         EventType = "registered"
	EventUnauthorizedAccess EventType = "unauthorized_access"
	EventPermissionDenied   EventType = "permission_denied"
	EventBlockCreated       EventType = "block_created"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
)

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Timestamp    time.Time              `json:"timestamp"`
	Event        EventType              `json:"event"`
	SubjectType  string                 `json:"subject_type,omitempty"`  // "email", "ip", "user_id"
	SubjectValue string                 `json:"subject_value,omitempty"` // Masked or hashed for PII
	ActorType    string                 `json:"actor_type,omitempty"`
	IP           string                 `json:"ip,omitempty"`
	RequestID    string                 `json:"request_id,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// SecurityLogger provides structured logging for security events
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewSecurityLogger builds a JSON zap logger for audit events.
func NewSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return NewSecurityLoggerWith(logger, serviceName, environment)
}

// NewSecurityLoggerWith wraps an existing zap logger.
func NewSecurityLoggerWith(logger *zap.Logger, serviceName, environment string) *SecurityLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SecurityLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// NopLogger discards every event.
func NopLogger() *SecurityLogger {
	return NewSecurityLoggerWith(zap.NewNop(), "", "")
}

// Log logs a security event
func (sl *SecurityLogger) Log(ctx context.Context, event SecurityEvent) {
	if sl == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	level := zapcore.WarnLevel
	switch event.Event {
	case EventLoginSuccess, EventRegistered:
		level = zapcore.InfoLevel
	case EventLoginBlocked, EventBlockCreated:
		level = zapcore.ErrorLevel
	}

	fields := []zap.Field{
		zap.String("service", sl.serviceName),
		zap.String("env", sl.environment),
		zap.String("event", string(event.Event)),
		zap.Time("occurred_at", event.Timestamp),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.ActorType != "" {
		fields = append(fields, zap.String("actor_type", event.ActorType))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	sl.zapLogger.Log(level, string(event.Event), fields...)
}

func (sl *SecurityLogger) LogLoginFailed(ctx context.Context, actorType, email, ip, requestID, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventLoginFailed,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		ActorType:    actorType,
		IP:           ip,
		RequestID:    requestID,
		Details:      map[string]interface{}{"reason": reason},
	})
}

func (sl *SecurityLogger) LogLoginBlocked(ctx context.Context, actorType, email, ip, requestID string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventLoginBlocked,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		ActorType:    actorType,
		IP:           ip,
		RequestID:    requestID,
		Details:      map[string]interface{}{"reason": "too_many_failed_attempts"},
	})
}

func (sl *SecurityLogger) LogLoginSuccess(ctx context.Context, actorType, subjectID, ip, requestID string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventLoginSuccess,
		SubjectType:  "user_id",
		SubjectValue: subjectID,
		ActorType:    actorType,
		IP:           ip,
		RequestID:    requestID,
	})
}

func (sl *SecurityLogger) LogRegistered(ctx context.Context, actorType, subjectID string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventRegistered,
		SubjectType:  "user_id",
		SubjectValue: subjectID,
		ActorType:    actorType,
	})
}

// LogUnauthorizedAccess records a rejected token.
func (sl *SecurityLogger) LogUnauthorizedAccess(ctx context.Context, ip, requestID, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventUnauthorizedAccess,
		IP:        ip,
		RequestID: requestID,
		Details:   map[string]interface{}{"reason": reason},
	})
}

// LogPermissionDenied records an ownership check that failed.
func (sl *SecurityLogger) LogPermissionDenied(ctx context.Context, actorType, subjectID, resource, resourceID string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventPermissionDenied,
		SubjectType:  "user_id",
		SubjectValue: subjectID,
		ActorType:    actorType,
		Details:      map[string]interface{}{"resource": resource, "resource_id": resourceID},
	})
}

func (sl *SecurityLogger) LogBlockCreated(ctx context.Context, subjectType, subjectValue, requestID string, durationMinutes int) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventBlockCreated,
		SubjectType:  subjectType,
		SubjectValue: maskValue(subjectType, subjectValue),
		RequestID:    requestID,
		Details:      map[string]interface{}{"duration_minutes": durationMinutes},
	})
}

func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		RequestID:    requestID,
		Details:      map[string]interface{}{"user_agent": userAgent, "endpoint": endpoint},
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	if sl == nil {
		return nil
	}
	return sl.zapLogger.Sync()
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 1 {
		return "***" + email[1:]
	}
	return string(email[0]) + "***" + email[atIndex:]
}

// HashValue creates a SHA256 hash of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}

func maskValue(subjectType, value string) string {
	switch subjectType {
	case "email":
		return MaskEmail(value)
	case "ip":
		return value
	default:
		return HashValue(value)
	}
}
