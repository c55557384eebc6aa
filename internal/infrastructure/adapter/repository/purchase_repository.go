package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/model"
)

var _ persistence.PurchaseRepository = (*PurchaseRepository)(nil)

// PurchaseRepository implements PurchaseRepository interface using GORM
type PurchaseRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPurchaseRepository creates a new PurchaseRepository instance
func NewPurchaseRepository(db *gorm.DB, logger coreport.Logger) *PurchaseRepository {
	return &PurchaseRepository{db: db, logger: logger}
}

func purchaseToEntity(m *model.Purchase) *entity.Purchase {
	return &entity.Purchase{
		SessionID:   m.SessionID,
		EventID:     m.EventID,
		UserID:      m.UserID,
		Credits:     m.Credits,
		AmountTotal: m.AmountTotal,
		Currency:    m.Currency,
		Status:      entity.PurchaseStatus(m.Status),
		Source:      entity.PurchaseSource(m.Source),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Claim records the session as processed and reports whether the caller owns the grant
func (r *PurchaseRepository) Claim(ctx context.Context, purchase *entity.Purchase) (bool, error) {
	db := conn(ctx, r.db)

	m := model.Purchase{
		SessionID:   purchase.SessionID,
		EventID:     purchase.EventID,
		UserID:      purchase.UserID,
		Credits:     purchase.Credits,
		AmountTotal: purchase.AmountTotal,
		Currency:    purchase.Currency,
		Status:      string(purchase.Status),
		Source:      string(purchase.Source),
		CreatedAt:   purchase.CreatedAt,
		UpdatedAt:   purchase.UpdatedAt,
	}

	result := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "session_id"}}, DoNothing: true}).Create(&m)
	if result.Error != nil {
		return false, r.handleDatabaseError("claiming purchase", result.Error, purchase.SessionID)
	}
	if result.RowsAffected == 1 {
		return true, nil
	}

	// Seen before: only a session recorded without credits can still be upgraded
	if purchase.Status != entity.PurchaseCredited {
		return false, nil
	}

	result = db.Model(&model.Purchase{}).
		Where("session_id = ? AND status = ?", purchase.SessionID, string(entity.PurchaseNoCredits)).
		Updates(map[string]any{
			"credits":      purchase.Credits,
			"status":       string(entity.PurchaseCredited),
			"source":       string(purchase.Source),
			"amount_total": purchase.AmountTotal,
			"updated_at":   purchase.UpdatedAt,
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("upgrading purchase", result.Error, purchase.SessionID)
	}
	return result.RowsAffected == 1, nil
}

// GetBySessionID retrieves a processed session
func (r *PurchaseRepository) GetBySessionID(ctx context.Context, sessionID string) (*entity.Purchase, error) {
	var m model.Purchase
	if err := conn(ctx, r.db).Where("session_id = ?", sessionID).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting purchase", err, sessionID)
	}
	return purchaseToEntity(&m), nil
}

// ListRecent lists the most recently processed sessions
func (r *PurchaseRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Purchase, error) {
	if limit <= 0 {
		limit = 20
	}

	var models []model.Purchase
	if err := conn(ctx, r.db).Order("created_at DESC").Limit(limit).Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing purchases", err, "")
	}

	purchases := make([]*entity.Purchase, 0, len(models))
	for i := range models {
		purchases = append(purchases, purchaseToEntity(&models[i]))
	}
	return purchases, nil
}

// CountByStatus counts processed sessions per status
func (r *PurchaseRepository) CountByStatus(ctx context.Context) (map[entity.PurchaseStatus]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := conn(ctx, r.db).Model(&model.Purchase{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("counting purchases", err, "")
	}

	counts := make(map[entity.PurchaseStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.PurchaseStatus(row.Status)] = row.Total
	}
	return counts, nil
}

func (r *PurchaseRepository) handleDatabaseError(operation string, err error, sessionID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrPurchaseNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"session_id": sessionID,
		"error":      err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}
