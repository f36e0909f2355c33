package repositories

import (
	"context"
	"errors"
	"fmt"

	"receipt-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrMappingNotFound = errors.New("merchant mapping not found")
	ErrInvalidMapping  = errors.New("invalid merchant mapping")
)

// MerchantMappingRepository persists learned merchant mappings. Every query
// is scoped to a single tenant.
type MerchantMappingRepository struct {
	db *gorm.DB
}

func NewMerchantMappingRepository(db *gorm.DB) MerchantMappingRepositoryInterface {
	return &MerchantMappingRepository{
		db: db,
	}
}

// Find returns the tenant's mapping for an already-normalized merchant name,
// or ErrMappingNotFound.
func (r *MerchantMappingRepository) Find(ctx context.Context, tenantID uuid.UUID, normalizedName string) (*models.MerchantMapping, error) {
	var mapping models.MerchantMapping
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND normalized_merchant_name = ?", tenantID, normalizedName).
		First(&mapping).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMappingNotFound
		}
		return nil, fmt.Errorf("failed to find merchant mapping: %w", err)
	}

	return &mapping, nil
}

// Upsert inserts the mapping or, when the tenant already has one for the same
// merchant, replaces its category, subcategory and author. The stored row is
// returned.
func (r *MerchantMappingRepository) Upsert(ctx context.Context, mapping *models.MerchantMapping) (*models.MerchantMapping, error) {
	if mapping == nil {
		return nil, fmt.Errorf("%w: mapping cannot be nil", ErrInvalidMapping)
	}
	if mapping.TenantID == uuid.Nil || mapping.NormalizedMerchantName == "" || mapping.Category == "" {
		return nil, fmt.Errorf("%w: tenant, merchant and category are required", ErrInvalidMapping)
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}, {Name: "normalized_merchant_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"category",
			"subcategory",
			"created_by",
			"updated_at",
		}),
	}).Create(mapping).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert merchant mapping: %w", err)
	}

	stored, err := r.Find(ctx, mapping.TenantID, mapping.NormalizedMerchantName)
	if err != nil {
		return nil, fmt.Errorf("failed to reload merchant mapping: %w", err)
	}

	return stored, nil
}

// ListByTenant returns every mapping the tenant has learned, by merchant name.
func (r *MerchantMappingRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.MerchantMapping, error) {
	var mappings []*models.MerchantMapping
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("normalized_merchant_name ASC").
		Find(&mappings).Error; err != nil {
		return nil, fmt.Errorf("failed to list merchant mappings: %w", err)
	}

	return mappings, nil
}

// Delete removes one mapping. It returns ErrMappingNotFound when nothing matched.
func (r *MerchantMappingRepository) Delete(ctx context.Context, tenantID uuid.UUID, normalizedName string) error {
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND normalized_merchant_name = ?", tenantID, normalizedName).
		Delete(&models.MerchantMapping{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete merchant mapping: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMappingNotFound
	}

	return nil
}

// DeleteByTenant removes all of a tenant's mappings and reports how many.
func (r *MerchantMappingRepository) DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&models.MerchantMapping{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete tenant merchant mappings: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// CountByTenant reports how many mappings the tenant has.
func (r *MerchantMappingRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.MerchantMapping{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count merchant mappings: %w", err)
	}

	return count, nil
}
