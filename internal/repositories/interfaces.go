package repositories

import (
	"context"

	"receipt-tracker/internal/models"

	"github.com/google/uuid"
)

// MerchantMappingRepositoryInterface is the Mapping Store client.
type MerchantMappingRepositoryInterface interface {
	Find(ctx context.Context, tenantID uuid.UUID, normalizedName string) (*models.MerchantMapping, error)
	Upsert(ctx context.Context, mapping *models.MerchantMapping) (*models.MerchantMapping, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.MerchantMapping, error)
	Delete(ctx context.Context, tenantID uuid.UUID, normalizedName string) error
	DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
