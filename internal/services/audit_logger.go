package services

import (
	"context"
	"log/slog"
	"time"

	"clevercash/internal/dto"

	"github.com/google/uuid"
)

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogObligationProcessed(ctx context.Context, obligationType string, obligationID, accountID uuid.UUID, amount string, outcome ProcessingOutcome) {
	al.logger.InfoContext(ctx, "obligation processed",
		slog.String("event_type", "obligation_processed"),
		slog.String("obligation_type", obligationType),
		slog.String("obligation_id", obligationID.String()),
		slog.String("account_id", accountID.String()),
		slog.String("amount", amount),
		slog.String("outcome", string(outcome)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogObligationClosed(ctx context.Context, obligationType string, obligationID, accountID uuid.UUID) {
	al.logger.InfoContext(ctx, "obligation closed",
		slog.String("event_type", "obligation_closed"),
		slog.String("obligation_type", obligationType),
		slog.String("obligation_id", obligationID.String()),
		slog.String("account_id", accountID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogObligationRemoved(ctx context.Context, obligationType string, obligationID, accountID uuid.UUID, deleted bool) {
	al.logger.InfoContext(ctx, "obligation removed",
		slog.String("event_type", "obligation_removed"),
		slog.String("obligation_type", obligationType),
		slog.String("obligation_id", obligationID.String()),
		slog.String("account_id", accountID.String()),
		slog.Bool("deleted", deleted),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAdmissionRejected(ctx context.Context, accountID uuid.UUID, source, amount, reason string) {
	al.logger.InfoContext(ctx, "admission rejected",
		slog.String("event_type", "admission_rejected"),
		slog.String("account_id", accountID.String()),
		slog.String("source", source),
		slog.String("amount", amount),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogBalanceUpdate(ctx context.Context, accountID uuid.UUID, oldBalance, newBalance string, transactionID uuid.UUID) {
	al.logger.InfoContext(ctx, "balance update",
		slog.String("event_type", "balance_update"),
		slog.String("account_id", accountID.String()),
		slog.String("old_balance", oldBalance),
		slog.String("new_balance", newBalance),
		slog.String("transaction_id", transactionID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogPaymentCreated(ctx context.Context, transactionID, accountID uuid.UUID, amount string) {
	al.logger.InfoContext(ctx, "payment created",
		slog.String("event_type", "payment_created"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("account_id", accountID.String()),
		slog.String("amount", amount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogDispatchStarted(ctx context.Context, runID uuid.UUID, job, trigger string, due int) {
	al.logger.InfoContext(ctx, "dispatch started",
		slog.String("event_type", "dispatch_started"),
		slog.String("run_id", runID.String()),
		slog.String("job", job),
		slog.String("trigger", trigger),
		slog.Int("due", due),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogDispatchCompleted(ctx context.Context, summary *dto.RunSummary) {
	attrs := []slog.Attr{
		slog.String("event_type", "dispatch_completed"),
		slog.String("run_id", summary.RunID.String()),
		slog.String("job", summary.Job),
		slog.String("trigger", summary.Trigger),
		slog.String("business_date", summary.BusinessDate),
		slog.Int("due", summary.Due),
		slog.Int("applied", summary.Applied),
		slog.Int("completed", summary.Completed),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed),
		slog.Int64("duration_ms", summary.DurationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	level := slog.LevelInfo
	if summary.Failed > 0 {
		level = slog.LevelWarn
	}

	al.logger.LogAttrs(ctx, level, "dispatch completed", attrs...)
}

func (al *AuditLogger) LogStepFailed(ctx context.Context, obligationType string, obligationID, accountID uuid.UUID, errorMsg string) {
	al.logger.WarnContext(ctx, "obligation step failed",
		slog.String("event_type", "obligation_step_failed"),
		slog.String("obligation_type", obligationType),
		slog.String("obligation_id", obligationID.String()),
		slog.String("account_id", accountID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

type contextKey string

const (
	// CorrelationIDKey carries the id shared by every log line of one run or request.
	CorrelationIDKey contextKey = "correlation_id"
	RequestIDKey     contextKey = "request_id"
)

// WithCorrelationID returns a context whose audit events carry id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

// WithRequestID attaches the id of the HTTP request that started the work.
// A dispatch run started by that request still logs under its own run id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}

	return ""
}
