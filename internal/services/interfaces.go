package services

import (
	"context"
	"time"

	"receipt-tracker/internal/cache"
	"receipt-tracker/internal/models"

	"github.com/google/uuid"
)

// MerchantMappingServiceInterface composes the cache, the mapping store and
// the merge rule into the learning path used by the AI pipeline and by user
// corrections.
type MerchantMappingServiceInterface interface {
	// Lookup returns the tenant's mapping for the merchant, or nil. Store
	// failures are logged and reported as nil.
	Lookup(ctx context.Context, tenantID uuid.UUID, merchantName string) *models.MerchantMapping

	// CategorizeReceipt applies the tenant's learned mapping, if any, to an AI categorization.
	CategorizeReceipt(ctx context.Context, tenantID uuid.UUID, receipt models.ReceiptCategorization) models.ReceiptCategorization

	// UpdateMapping records a user correction and writes it through to the cache.
	UpdateMapping(ctx context.Context, tenantID uuid.UUID, merchantName, category string, subcategory *string, userID uuid.UUID) (*models.MerchantMapping, error)

	DeleteMapping(ctx context.Context, tenantID uuid.UUID, merchantName string) error
	ResetTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
	ListMappings(ctx context.Context, tenantID uuid.UUID) ([]*models.MerchantMapping, error)
	SuggestMappings(ctx context.Context, tenantID uuid.UUID, merchantName string, limit int) ([]*models.MerchantSuggestion, error)

	CacheStats() cache.Stats
	ClearCache(ctx context.Context)

	// HandleInvalidation applies a change published by another instance.
	HandleInvalidation(ctx context.Context, event models.MappingInvalidation) error
}

type MerchantMapCacheInterface interface {
	Get(tenantID uuid.UUID, merchantName string) cache.LookupResult
	Set(tenantID uuid.UUID, merchantName string, mapping *models.MerchantMapping)
	Invalidate(tenantID uuid.UUID, merchantName string)
	InvalidateTenant(tenantID uuid.UUID) int
	Clear()
	Stats() cache.Stats
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}

type LearningLoggerInterface interface {
	LogMappingLookupFailed(ctx context.Context, tenantID uuid.UUID, merchant string, errorMsg string)
	LogStoreUnavailable(ctx context.Context, tenantID uuid.UUID, merchant string)
	LogMappingApplied(ctx context.Context, tenantID uuid.UUID, merchant string, aiLabel, mappedLabel string)
	LogMappingUpdated(ctx context.Context, tenantID uuid.UUID, merchant string, userID uuid.UUID)
	LogMappingUpdateFailed(ctx context.Context, tenantID uuid.UUID, merchant string, errorMsg string)
	LogMappingDeleted(ctx context.Context, tenantID uuid.UUID, merchant string)
	LogTenantReset(ctx context.Context, tenantID uuid.UUID, removed int64)
	LogCacheInvalidated(ctx context.Context, kind string, tenantID uuid.UUID, removed int)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogPublishFailed(ctx context.Context, kind string, tenantID uuid.UUID, errorMsg string)
	LogLearningPanic(ctx context.Context, tenantID uuid.UUID, recovered string)
}

// InvalidationPublisherInterface broadcasts mapping changes to peer instances.
type InvalidationPublisherInterface interface {
	Publish(ctx context.Context, event models.MappingInvalidation) error
}
