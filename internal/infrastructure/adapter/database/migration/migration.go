package migration

import (
	"context"
	"errors"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	driver       string
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	tuning       *PostgresTuning
}

// NewMigrationManager creates a new migration manager for the given driver
func NewMigrationManager(db *gorm.DB, driver string, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		driver:       driver,
		logger:       logger,
		timeProvider: timeProvider,
		tuning:       NewPostgresTuning(db, logger),
	}
}

// MigrateAll performs all migrations
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"driver":         m.driver,
	})

	db := m.db.WithContext(ctx)

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := m.autoMigrateModels(db); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.runVersionedMigrations(db, currentVersion); err != nil {
		m.logger.Error("Failed to run versioned migrations", map[string]any{
			"error":           err.Error(),
			"current_version": currentVersion,
			"target_version":  CurrentSchemaVersion,
		})
		return err
	}

	if err := m.createIndexes(db); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if m.driver == "postgres" {
		if err := m.tuning.CreateIndexes(ctx); err != nil {
			return err
		}
		m.tuning.ApplyStorageTweaks(ctx)
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Ledger schema"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("id desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		Driver:    m.driver,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

// autoMigrateModels auto-migrates database models
func (m *MigrationManager) autoMigrateModels(db *gorm.DB) error {
	m.logger.Info("Auto-migrating database models", nil)

	return db.AutoMigrate(
		&model.Account{},
		&model.Referral{},
		&model.Purchase{},
		&model.Feedback{},
		&model.RateLimitHit{},
	)
}

// runVersionedMigrations runs migrations specific to version transitions
func (m *MigrationManager) runVersionedMigrations(db *gorm.DB, currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	switch currentVersion {
	case "":
		return nil
	case "1.0.0":
		return m.migrateFrom1_0_0To1_1_0(db)
	}

	return nil
}

// migrateFrom1_0_0To1_1_0 backfills the referral status column added in 1.1.0
func (m *MigrationManager) migrateFrom1_0_0To1_1_0(db *gorm.DB) error {
	m.logger.Info("Migrating from v1.0.0 to v1.1.0", nil)

	return db.Exec(
		"UPDATE referrals SET status = 'completed' WHERE credits_awarded = ? AND status <> 'completed'",
		true,
	).Error
}

// createIndexes creates the indexes both drivers support
func (m *MigrationManager) createIndexes(db *gorm.DB) error {
	m.logger.Info("Creating database indexes", nil)

	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_referrals_pending ON referrals (referred_user_id) WHERE credits_awarded = false",
		"CREATE INDEX IF NOT EXISTS idx_users_created_at ON users (created_at)",
		"CREATE INDEX IF NOT EXISTS idx_feedback_created_at ON feedback (created_at)",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
