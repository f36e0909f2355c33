package database

import (
	"testing"

	"receipt-tracker/internal/config"
	"receipt-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB returns an in-memory sqlite database with the schema applied.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// one connection, or each pooled connection gets its own empty :memory: db
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM merchant_mappings").Error; err != nil {
		t.Logf("failed to cleanup table merchant_mappings: %v", err)
	}
}

// CreateTestMapping stores a mapping for the tenant and merchant.
func CreateTestMapping(t *testing.T, db *DB, tenantID uuid.UUID, merchant, category string, subcategory *string) *models.MerchantMapping {
	t.Helper()

	mapping := &models.MerchantMapping{
		TenantID:               tenantID,
		NormalizedMerchantName: models.NormalizeMerchantName(merchant),
		Category:               category,
		Subcategory:            subcategory,
		CreatedBy:              uuid.New(),
	}

	if err := db.Create(mapping).Error; err != nil {
		t.Fatalf("failed to create test mapping: %v", err)
	}

	return mapping
}
