package instrumentation

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Invocation captures one tool call or wire method dispatch for audit logging.
//
// The UserEmail field contains PII. General logs should use UserDomain()
// instead; full addresses belong only in audit-specific log streams with
// proper access controls.
type Invocation struct {
	// Name is the tool or wire method name.
	Name string

	// UserEmail is the calendar owner's address, when known.
	UserEmail string

	// Account is the local account alias (default, work, personal).
	Account string

	// Operation is the upstream operation type (list, get, create, ...).
	Operation string

	// Execution details
	StartTime time.Time
	Duration  time.Duration
	Success   bool
	Error     string

	// Tracing context
	TraceID string
	SpanID  string
}

// NewInvocation creates an Invocation with timing started.
// Call Complete() when the operation finishes.
func NewInvocation(name string) *Invocation {
	return &Invocation{
		Name:      name,
		StartTime: time.Now(),
	}
}

// UserDomain returns the domain portion of the user's email for
// lower-cardinality logging.
func (inv *Invocation) UserDomain() string {
	return ExtractUserDomain(inv.UserEmail)
}

// Status returns "success" or "error" based on the Success field.
func (inv *Invocation) Status() string {
	if inv.Success {
		return StatusSuccess
	}
	return StatusError
}

// WithUser sets the calendar owner's address.
func (inv *Invocation) WithUser(email string) *Invocation {
	inv.UserEmail = email
	return inv
}

// WithAccount sets the local account alias.
func (inv *Invocation) WithAccount(account string) *Invocation {
	inv.Account = account
	return inv
}

// WithOperation sets the upstream operation type.
func (inv *Invocation) WithOperation(operation string) *Invocation {
	inv.Operation = operation
	return inv
}

// WithSpanContext extracts trace context from the current span.
func (inv *Invocation) WithSpanContext(ctx context.Context) *Invocation {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		inv.TraceID = span.SpanContext().TraceID().String()
		inv.SpanID = span.SpanContext().SpanID().String()
	}
	return inv
}

// Complete marks the invocation as completed and calculates duration.
func (inv *Invocation) Complete(success bool, err error) *Invocation {
	inv.Duration = time.Since(inv.StartTime)
	inv.Success = success
	if err != nil {
		inv.Error = err.Error()
	}
	return inv
}

// CompleteWithError marks the invocation as failed with the given error.
func (inv *Invocation) CompleteWithError(err error) *Invocation {
	return inv.Complete(false, err)
}

// CompleteSuccess marks the invocation as successful.
func (inv *Invocation) CompleteSuccess() *Invocation {
	return inv.Complete(true, nil)
}

// LogAttrs returns slog attributes with cardinality-controlled values.
// For full audit logging use LogAuditAttrs.
func (inv *Invocation) LogAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("name", inv.Name),
		slog.String("user_domain", inv.UserDomain()),
		slog.Duration("duration", inv.Duration),
		slog.Bool("success", inv.Success),
	}

	if inv.Account != "" && inv.Account != "default" {
		attrs = append(attrs, slog.String("account", inv.Account))
	}
	if inv.Operation != "" {
		attrs = append(attrs, slog.String("operation", inv.Operation))
	}
	if inv.TraceID != "" {
		attrs = append(attrs, slog.String("trace_id", inv.TraceID))
	}
	if inv.Error != "" {
		attrs = append(attrs, slog.String("error", inv.Error))
	}

	return attrs
}

// LogAuditAttrs returns slog attributes for full audit logging, including
// the user's full address. Route these logs to secure storage only.
func (inv *Invocation) LogAuditAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("name", inv.Name),
		slog.String("user", inv.UserEmail),
		slog.Duration("duration", inv.Duration),
		slog.Bool("success", inv.Success),
	}

	if inv.Account != "" {
		attrs = append(attrs, slog.String("account", inv.Account))
	}
	if inv.Operation != "" {
		attrs = append(attrs, slog.String("operation", inv.Operation))
	}
	if inv.TraceID != "" {
		attrs = append(attrs, slog.String("trace_id", inv.TraceID))
	}
	if inv.SpanID != "" {
		attrs = append(attrs, slog.String("span_id", inv.SpanID))
	}
	if inv.Error != "" {
		attrs = append(attrs, slog.String("error", inv.Error))
	}

	return attrs
}

// AuditLogger provides structured audit logging for tool and method calls.
type AuditLogger struct {
	logger     *slog.Logger
	includePII bool
	enabled    bool
}

// NewAuditLogger creates an AuditLogger with the given slog.Logger.
// PII is excluded by default.
func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger:     logger,
		includePII: false,
		enabled:    true,
	}
}

// NewAuditLoggerWithConfig creates an AuditLogger with the given configuration.
func NewAuditLoggerWithConfig(logger *slog.Logger, config AuditLoggingConfig) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger:     logger,
		includePII: config.IncludePII,
		enabled:    config.Enabled,
	}
}

// SetIncludePII sets whether full addresses appear in audit logs.
func (al *AuditLogger) SetIncludePII(include bool) {
	al.includePII = include
}

// SetEnabled sets whether audit logging is enabled.
func (al *AuditLogger) SetEnabled(enabled bool) {
	al.enabled = enabled
}

// LogInvocation logs an invocation. With IncludePII set, full addresses are
// logged; otherwise only domain-based identifiers appear.
func (al *AuditLogger) LogInvocation(inv *Invocation) {
	if !al.enabled {
		return
	}

	var attrs []slog.Attr
	if al.includePII {
		attrs = inv.LogAuditAttrs()
	} else {
		attrs = inv.LogAttrs()
	}

	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}

	if inv.Success {
		al.logger.Info("call_executed", args...)
	} else {
		al.logger.Warn("call_failed", args...)
	}
}

// LogAudit logs an invocation with full audit details, including PII,
// regardless of the IncludePII configuration. Use LogInvocation for
// configuration-aware logging.
func (al *AuditLogger) LogAudit(inv *Invocation) {
	if !al.enabled {
		return
	}

	attrs := inv.LogAuditAttrs()
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}

	al.logger.Info("call_audit", args...)
}
