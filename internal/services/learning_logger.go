package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey string

const (
	CorrelationIDKey contextKey = "correlation_id"
	RequestIDKey     contextKey = "request_id"
)

// LearningLogger writes structured events for the merchant learning path.
// Only tenant ids, normalized merchant names and category labels are logged,
// never amounts or receipt text.
type LearningLogger struct {
	logger *slog.Logger
}

func NewLearningLogger(logger *slog.Logger) LearningLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &LearningLogger{
		logger: logger,
	}
}

func (l *LearningLogger) LogMappingLookupFailed(ctx context.Context, tenantID uuid.UUID, merchant string, errorMsg string) {
	l.logger.WarnContext(ctx, "merchant mapping lookup failed",
		slog.String("event_type", "mapping_lookup_failed"),
		slog.String("tenant_id", tenantID.String()),
		slog.String("merchant", merchant),
		slog.String("error", errorMsg),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LearningLogger) LogStoreUnavailable(ctx context.Context, tenantID uuid.UUID, merchant string) {
	l.logger.WarnContext(ctx, "mapping store unavailable, skipping learned mapping",
		slog.String("event_type", "mapping_store_unavailable"),
		slog.String("tenant_id", tenantID.String()),
		slog.String("merchant", merchant),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LearningLogger) LogMappingApplied(ctx context.Context, tenantID uuid.UUID, merchant string, aiLabel, mappedLabel string) {
	l.logger.DebugContext(ctx, "learned merchant mapping applied",
		slog.String("event_type", "mapping_applied"),
		slog.String("tenant_id", tenantID.String()),
		slog.String("merchant", merchant),
		slog.String("ai_category", aiLabel),
		slog.String("mapped_category", mappedLabel),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LearningLogger) LogMappingUpdated(ctx context.Context, tenantID uuid.UUID, merchant string, userID uuid.UUID) {
	l.logger.InfoContext(ctx, "merchant mapping updated",
		slog.String("event_type", "mapping_updated"),
		slog.String("tenant_id", tenantID.String()),
		slog.String("merchant", merchant),
		slog.String("user_id", userID.String()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LearningLogger) LogMappingUpdateFailed(ctx context.Context, tenantID uuid.UUID, merchant string, errorMsg string) {
	l.logger.ErrorContext(ctx, "merchant mapping update failed",
		slog.String("event_type", "mapping_update_failed"),
		slog.String("tenant_id", tenantID.String()),
		slog.String("merchant", merchant),
		slog.String("error", errorMsg),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LearningLogger) LogMappingDeleted(ctx context.Context, tenantID uuid.UUID, merchant string) {
	l.logger.InfoContext(ctx, "merchant mapping deleted",
		slog.String("event_type", "mapping_deleted"),
		slog.String("tenant_id", tenantID.String()),
		slog.String("merchant", merchant),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LearningLogger) LogTenantReset(ctx context.Context, tenantID uuid.UUID, removed int64) {
	l.logger.InfoContext(ctx, "tenant merchant mappings reset",
		slog.String("event_type", "tenant_reset"),
		slog.String("tenant_id", tenantID.String()),
		slog.Int64("removed", removed),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LearningLogger) LogCacheInvalidated(ctx context.Context, kind string, tenantID uuid.UUID, removed int) {
	l.logger.InfoContext(ctx, "merchant map cache invalidated",
		slog.String("event_type", "cache_invalidated"),
		slog.String("kind", kind),
		slog.String("tenant_id", tenantID.String()),
		slog.Int("removed", removed),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LearningLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	l.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LearningLogger) LogPublishFailed(ctx context.Context, kind string, tenantID uuid.UUID, errorMsg string) {
	l.logger.WarnContext(ctx, "failed to publish cache invalidation",
		slog.String("event_type", "invalidation_publish_failed"),
		slog.String("kind", kind),
		slog.String("tenant_id", tenantID.String()),
		slog.String("error", errorMsg),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LearningLogger) LogLearningPanic(ctx context.Context, tenantID uuid.UUID, recovered string) {
	l.logger.ErrorContext(ctx, "panic in learning path recovered",
		slog.String("event_type", "learning_panic"),
		slog.String("tenant_id", tenantID.String()),
		slog.String("panic", recovered),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
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
