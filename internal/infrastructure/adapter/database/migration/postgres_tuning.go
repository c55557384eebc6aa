package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// PostgresTuning manages PostgreSQL-specific indexes and storage settings
type PostgresTuning struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPostgresTuning creates a new PostgreSQL tuning manager
func NewPostgresTuning(db *gorm.DB, logger coreport.Logger) *PostgresTuning {
	return &PostgresTuning{
		db:     db,
		logger: logger,
	}
}

// CreateIndexes creates PostgreSQL-only indexes
func (m *PostgresTuning) CreateIndexes(ctx context.Context) error {
	m.logger.Info("Creating PostgreSQL indexes", nil)

	db := m.db.WithContext(ctx)

	// BRIN suits the append-only hit log and purchase history
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_rate_limit_hits_hit_at_brin
		ON rate_limit_hits USING BRIN (hit_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on rate_limit_hits.hit_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_processed_purchases_created_at_brin
		ON processed_purchases USING BRIN (created_at)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on processed_purchases.created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_referrals_referrer_created
		ON referrals (referrer_id, created_at DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create referrer index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	return nil
}

// ApplyStorageTweaks applies non-critical PostgreSQL storage settings
func (m *PostgresTuning) ApplyStorageTweaks(ctx context.Context) {
	db := m.db.WithContext(ctx)

	// users is updated in place on every decrement
	if err := db.Exec(`ALTER TABLE users SET (fillfactor = 85)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for users table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec(`ALTER TABLE rate_limit_hits SET (autovacuum_vacuum_scale_factor = 0.05)`).Error; err != nil {
		m.logger.Warn("Failed to set autovacuum for rate_limit_hits", map[string]any{
			"error": err.Error(),
		})
	}
}
