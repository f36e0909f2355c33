package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"receipt-tracker/internal/cache"
	"receipt-tracker/internal/models"
	"receipt-tracker/internal/repositories"

	"github.com/google/uuid"
)

const mappingStoreService = "mapping_store"

var (
	ErrMappingNotFound     = repositories.ErrMappingNotFound
	ErrMappingSaveFailed   = errors.New("failed to save merchant mapping")
	ErrMappingDeleteFailed = errors.New("failed to delete merchant mapping")
	ErrInvalidMerchant     = errors.New("merchant name is empty after normalization")
	ErrInvalidCategory     = errors.New("category is required")
	ErrInvalidInvalidation = errors.New("invalid mapping invalidation event")
)

// NoopInvalidationPublisher is used when no broker is configured.
type NoopInvalidationPublisher struct{}

func (NoopInvalidationPublisher) Publish(ctx context.Context, event models.MappingInvalidation) error {
	return nil
}

type MerchantMappingService struct {
	repo           repositories.MerchantMappingRepositoryInterface
	cache          MerchantMapCacheInterface
	merger         *CategorizationMerger
	circuitBreaker CircuitBreakerInterface
	metrics        MetricsRecorderInterface
	logger         LearningLoggerInterface
	publisher      InvalidationPublisherInterface
	instanceID     string
}

func NewMerchantMappingService(
	repo repositories.MerchantMappingRepositoryInterface,
	mappingCache MerchantMapCacheInterface,
	merger *CategorizationMerger,
	circuitBreaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger LearningLoggerInterface,
	publisher InvalidationPublisherInterface,
	instanceID string,
) MerchantMappingServiceInterface {
	if merger == nil {
		merger = NewCategorizationMerger(DefaultConfidenceBoost)
	}
	if publisher == nil {
		publisher = NoopInvalidationPublisher{}
	}

	return &MerchantMappingService{
		repo:           repo,
		cache:          mappingCache,
		merger:         merger,
		circuitBreaker: circuitBreaker,
		metrics:        metrics,
		logger:         logger,
		publisher:      publisher,
		instanceID:     instanceID,
	}
}

// Lookup consults the cache and, on a miss, the mapping store. Found and
// not-found results are cached; store errors are not, so the next request
// tries again.
func (s *MerchantMappingService) Lookup(ctx context.Context, tenantID uuid.UUID, merchantName string) *models.MerchantMapping {
	normalized := models.NormalizeMerchantName(merchantName)
	if normalized == "" {
		return nil
	}

	result := s.cache.Get(tenantID, normalized)
	switch result.Kind {
	case cache.Hit:
		s.recordLookup("hit")
		return result.Mapping
	case cache.NegativeHit:
		s.recordLookup("negative_hit")
		return nil
	}

	if s.circuitBreaker.IsOpen() {
		s.recordLookup("circuit_open")
		s.logger.LogStoreUnavailable(ctx, tenantID, normalized)
		return nil
	}

	start := time.Now()
	mapping, err := s.repo.Find(ctx, tenantID, normalized)
	s.metrics.RecordProcessingTime(MetricStoreLookupDuration, time.Since(start))

	switch {
	case errors.Is(err, repositories.ErrMappingNotFound):
		s.recordStoreSuccess(ctx)
		s.recordLookup("miss_not_found")
		s.cache.Set(tenantID, normalized, nil)
		return nil
	case err != nil:
		s.recordStoreFailure(ctx)
		s.recordLookup("store_error")
		s.logger.LogMappingLookupFailed(ctx, tenantID, normalized, err.Error())
		return nil
	}

	s.recordStoreSuccess(ctx)
	s.recordLookup("miss_found")
	s.cache.Set(tenantID, normalized, mapping)
	return mapping
}

// CategorizeReceipt never fails: whatever goes wrong in the learning path,
// the AI categorization is returned as it came in.
func (s *MerchantMappingService) CategorizeReceipt(ctx context.Context, tenantID uuid.UUID, receipt models.ReceiptCategorization) (result models.ReceiptCategorization) {
	result = receipt

	defer func() {
		if r := recover(); r != nil {
			s.metrics.IncrementCounter(MetricLearningPathRecovery, nil)
			s.logger.LogLearningPanic(ctx, tenantID, fmt.Sprint(r))
			result = receipt
		}
	}()

	mapping := s.Lookup(ctx, tenantID, receipt.Merchant)
	if mapping == nil {
		s.metrics.IncrementCounter(MetricMappingApplied, map[string]string{"applied": "false"})
		return receipt
	}

	result = s.merger.Apply(receipt, mapping)
	s.metrics.IncrementCounter(MetricMappingApplied, map[string]string{"applied": "true"})
	s.logger.LogMappingApplied(ctx, tenantID, mapping.NormalizedMerchantName, receipt.Label(), result.Label())

	return result
}

// UpdateMapping saves a user correction. On success the tenant's cached
// entries are dropped, the fresh mapping is cached and peers are notified.
// On failure the cache is left untouched.
func (s *MerchantMappingService) UpdateMapping(ctx context.Context, tenantID uuid.UUID, merchantName, category string, subcategory *string, userID uuid.UUID) (*models.MerchantMapping, error) {
	normalized := models.NormalizeMerchantName(merchantName)
	if normalized == "" {
		return nil, ErrInvalidMerchant
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrInvalidCategory
	}

	mapping := &models.MerchantMapping{
		TenantID:               tenantID,
		NormalizedMerchantName: normalized,
		Category:               category,
		Subcategory:            cleanSubcategory(subcategory),
		CreatedBy:              userID,
	}

	stored, err := s.repo.Upsert(ctx, mapping)
	if err != nil {
		s.metrics.IncrementCounter(MetricMappingUpdated, map[string]string{"status": "failed"})
		s.logger.LogMappingUpdateFailed(ctx, tenantID, normalized, err.Error())
		return nil, fmt.Errorf("%w: %w", ErrMappingSaveFailed, err)
	}

	removed := s.cache.InvalidateTenant(tenantID)
	s.cache.Set(tenantID, normalized, stored)

	s.metrics.IncrementCounter(MetricMappingUpdated, map[string]string{"status": "success"})
	s.recordInvalidation(ctx, models.InvalidationMappingUpdated, tenantID, removed, "local")
	s.logger.LogMappingUpdated(ctx, tenantID, normalized, userID)
	s.publish(ctx, models.InvalidationMappingUpdated, tenantID, normalized)

	return stored, nil
}

// DeleteMapping forgets a learned mapping. The key is cached as a negative
// result since the store no longer has it.
func (s *MerchantMappingService) DeleteMapping(ctx context.Context, tenantID uuid.UUID, merchantName string) error {
	normalized := models.NormalizeMerchantName(merchantName)
	if normalized == "" {
		return ErrInvalidMerchant
	}

	if err := s.repo.Delete(ctx, tenantID, normalized); err != nil {
		if errors.Is(err, repositories.ErrMappingNotFound) {
			return ErrMappingNotFound
		}
		s.metrics.IncrementCounter(MetricMappingDeleted, map[string]string{"status": "failed"})
		return fmt.Errorf("%w: %w", ErrMappingDeleteFailed, err)
	}

	s.cache.Set(tenantID, normalized, nil)

	s.metrics.IncrementCounter(MetricMappingDeleted, map[string]string{"status": "success"})
	s.logger.LogMappingDeleted(ctx, tenantID, normalized)
	s.publish(ctx, models.InvalidationMappingDeleted, tenantID, normalized)

	return nil
}

// ResetTenant deletes every learned mapping for the tenant.
func (s *MerchantMappingService) ResetTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	deleted, err := s.repo.DeleteByTenant(ctx, tenantID)
	if err != nil {
		s.metrics.IncrementCounter(MetricMappingDeleted, map[string]string{"status": "failed"})
		return 0, fmt.Errorf("%w: %w", ErrMappingDeleteFailed, err)
	}

	removed := s.cache.InvalidateTenant(tenantID)

	s.recordInvalidation(ctx, models.InvalidationTenantReset, tenantID, removed, "local")
	s.logger.LogTenantReset(ctx, tenantID, deleted)
	s.publish(ctx, models.InvalidationTenantReset, tenantID, "")

	return deleted, nil
}

func (s *MerchantMappingService) ListMappings(ctx context.Context, tenantID uuid.UUID) ([]*models.MerchantMapping, error) {
	mappings, err := s.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list merchant mappings: %w", err)
	}
	return mappings, nil
}

// SuggestMappings returns the tenant's learned merchants closest to the given
// name, for "did you mean" prompts when no exact mapping exists.
func (s *MerchantMappingService) SuggestMappings(ctx context.Context, tenantID uuid.UUID, merchantName string, limit int) ([]*models.MerchantSuggestion, error) {
	normalized := models.NormalizeMerchantName(merchantName)
	if normalized == "" {
		return nil, ErrInvalidMerchant
	}

	mappings, err := s.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load merchant mappings for suggestions: %w", err)
	}

	return rankSuggestions(normalized, mappings, limit), nil
}

func (s *MerchantMappingService) CacheStats() cache.Stats {
	stats := s.cache.Stats()
	s.metrics.RecordGauge(MetricCacheEntries, float64(stats.EntryCount), nil)
	s.metrics.RecordGauge(MetricCacheHitRate, stats.HitRate, nil)
	return stats
}

func (s *MerchantMappingService) ClearCache(ctx context.Context) {
	s.cache.Clear()
	s.recordInvalidation(ctx, models.InvalidationCacheCleared, uuid.Nil, 0, "local")
	s.publish(ctx, models.InvalidationCacheCleared, uuid.Nil, "")
}

// HandleInvalidation applies a peer's change to the local cache. Events this
// instance published itself are ignored.
func (s *MerchantMappingService) HandleInvalidation(ctx context.Context, event models.MappingInvalidation) error {
	if !models.IsValidInvalidationKind(event.Kind) {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidInvalidation, event.Kind)
	}
	if event.OriginID != "" && event.OriginID == s.instanceID {
		return nil
	}

	if event.Kind == models.InvalidationCacheCleared {
		s.cache.Clear()
		s.recordInvalidation(ctx, event.Kind, uuid.Nil, 0, "remote")
		return nil
	}

	if event.TenantID == uuid.Nil {
		return fmt.Errorf("%w: tenant id is required", ErrInvalidInvalidation)
	}

	removed := s.cache.InvalidateTenant(event.TenantID)
	s.recordInvalidation(ctx, event.Kind, event.TenantID, removed, "remote")
	return nil
}

func (s *MerchantMappingService) publish(ctx context.Context, kind string, tenantID uuid.UUID, normalized string) {
	event := models.MappingInvalidation{
		Kind:                   kind,
		TenantID:               tenantID,
		NormalizedMerchantName: normalized,
		OriginID:               s.instanceID,
		OccurredAt:             time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.metrics.IncrementCounter(MetricPublishFailed, nil)
		s.logger.LogPublishFailed(ctx, kind, tenantID, err.Error())
	}
}

func (s *MerchantMappingService) recordLookup(result string) {
	s.metrics.IncrementCounter(MetricLookup, map[string]string{"result": result})
}

func (s *MerchantMappingService) recordInvalidation(ctx context.Context, kind string, tenantID uuid.UUID, removed int, source string) {
	s.metrics.IncrementCounter(MetricInvalidation, map[string]string{"kind": kind, "source": source})
	s.logger.LogCacheInvalidated(ctx, kind, tenantID, removed)
}

func (s *MerchantMappingService) recordStoreSuccess(ctx context.Context) {
	before := s.circuitBreaker.GetState()
	s.circuitBreaker.RecordSuccess()
	s.reportBreakerTransition(ctx, before)
}

func (s *MerchantMappingService) recordStoreFailure(ctx context.Context) {
	before := s.circuitBreaker.GetState()
	s.circuitBreaker.RecordFailure()
	s.reportBreakerTransition(ctx, before)
}

func (s *MerchantMappingService) reportBreakerTransition(ctx context.Context, before CircuitBreakerState) {
	after := s.circuitBreaker.GetState()
	if after == before {
		return
	}

	s.metrics.RecordGauge(MetricCircuitBreakerState, float64(after), map[string]string{"service": mappingStoreService})
	s.logger.LogCircuitBreakerStateChange(ctx, mappingStoreService, before.String(), after.String())
}

func cleanSubcategory(subcategory *string) *string {
	if subcategory == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*subcategory)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
