package models

import (
	"time"

	"github.com/google/uuid"
)

// Kinds of mapping change broadcast to peer instances
const (
	InvalidationMappingUpdated = "mapping.updated"
	InvalidationMappingDeleted = "mapping.deleted"
	InvalidationTenantReset    = "tenant.reset"
	InvalidationCacheCleared   = "cache.cleared"
)

// MappingInvalidation tells other instances that their cached view of a
// tenant's mappings is stale. OriginID identifies the publishing instance so
// it can ignore its own messages.
type MappingInvalidation struct {
	Kind                   string    `json:"kind"`
	TenantID               uuid.UUID `json:"tenant_id"`
	NormalizedMerchantName string    `json:"normalized_merchant_name,omitempty"`
	OriginID               string    `json:"origin_id"`
	OccurredAt             time.Time `json:"occurred_at"`
}

func IsValidInvalidationKind(kind string) bool {
	switch kind {
	case InvalidationMappingUpdated, InvalidationMappingDeleted, InvalidationTenantReset, InvalidationCacheCleared:
		return true
	}
	return false
}
