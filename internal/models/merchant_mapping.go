package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MerchantMapping is a tenant's learned correction: every receipt whose merchant
// normalizes to NormalizedMerchantName is recategorized to Category/Subcategory.
type MerchantMapping struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_merchant_mappings_tenant_merchant,priority:1" json:"tenant_id"`
	NormalizedMerchantName string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_merchant_mappings_tenant_merchant,priority:2" json:"normalized_merchant_name"`
	Category               string    `gorm:"type:varchar(100);not null" json:"category"`
	Subcategory            *string   `gorm:"type:varchar(100)" json:"subcategory,omitempty"`
	CreatedBy              uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt              time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt              time.Time `gorm:"not null" json:"updated_at"`
}

func (m *MerchantMapping) TableName() string {
	return "merchant_mappings"
}

func (m *MerchantMapping) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// SubcategoryValue returns the subcategory or an empty string when absent.
func (m *MerchantMapping) SubcategoryValue() string {
	if m == nil || m.Subcategory == nil {
		return ""
	}
	return *m.Subcategory
}

// Label renders the mapping as "Category / Subcategory", or just the category.
func (m *MerchantMapping) Label() string {
	return CategoryLabel(m.Category, m.Subcategory)
}

func (m *MerchantMapping) String() string {
	return fmt.Sprintf("MerchantMapping[Tenant: %s, Merchant: %s, Category: %s]",
		m.TenantID, m.NormalizedMerchantName, m.Label())
}

// CategoryLabel joins a category and an optional subcategory for display.
func CategoryLabel(category string, subcategory *string) string {
	if subcategory == nil || *subcategory == "" {
		return category
	}
	return category + " / " + *subcategory
}
