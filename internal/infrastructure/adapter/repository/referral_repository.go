package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/model"
)

var _ persistence.ReferralRepository = (*ReferralRepository)(nil)

// ReferralRepository implements ReferralRepository interface using GORM
type ReferralRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewReferralRepository creates a new ReferralRepository instance
func NewReferralRepository(db *gorm.DB, logger coreport.Logger) *ReferralRepository {
	return &ReferralRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func referralToEntity(m *model.Referral) *entity.Referral {
	return &entity.Referral{
		ID:             m.ID,
		ReferrerID:     m.ReferrerID,
		ReferredUserID: m.ReferredUserID,
		ReferralCode:   m.ReferralCode,
		Status:         entity.ReferralStatus(m.Status),
		CreditsAwarded: m.CreditsAwarded,
		CreatedAt:      m.CreatedAt,
		CompletedAt:    m.CompletedAt,
	}
}

func (r *ReferralRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrReferralNotFound
	}

	logFields := map[string]any{"error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create saves a new referral record, one per referred user
func (r *ReferralRepository) Create(ctx context.Context, referral *entity.Referral) error {
	m := model.Referral{
		ID:             referral.ID,
		ReferrerID:     referral.ReferrerID,
		ReferredUserID: referral.ReferredUserID,
		ReferralCode:   referral.ReferralCode,
		Status:         string(referral.Status),
		CreditsAwarded: referral.CreditsAwarded,
		CreatedAt:      referral.CreatedAt,
		CompletedAt:    referral.CompletedAt,
	}

	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			return errs.ErrAlreadyReferred
		}
		return r.handleDatabaseError("creating referral", err, map[string]any{
			"referrer_id":      referral.ReferrerID,
			"referred_user_id": referral.ReferredUserID,
		})
	}

	r.logger.Info("Referral recorded", map[string]any{
		"referral_id":      referral.ID,
		"referrer_id":      referral.ReferrerID,
		"referred_user_id": referral.ReferredUserID,
	})
	return nil
}

// GetByReferredUser retrieves the referral record of a referred user
func (r *ReferralRepository) GetByReferredUser(ctx context.Context, referredUserID string) (*entity.Referral, error) {
	var m model.Referral
	err := conn(ctx, r.db).Where("referred_user_id = ?", referredUserID).First(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting referral", err, map[string]any{"referred_user_id": referredUserID})
	}
	return referralToEntity(&m), nil
}

// FindUnawardedByReferredUser lists referral records whose bonus is still pending
func (r *ReferralRepository) FindUnawardedByReferredUser(ctx context.Context, referredUserID string) ([]*entity.Referral, error) {
	var models []model.Referral
	err := conn(ctx, r.db).
		Where("referred_user_id = ? AND credits_awarded = ?", referredUserID, false).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("finding pending referrals", err, map[string]any{"referred_user_id": referredUserID})
	}

	referrals := make([]*entity.Referral, 0, len(models))
	for i := range models {
		referrals = append(referrals, referralToEntity(&models[i]))
	}
	return referrals, nil
}

// MarkAwarded flips credits_awarded only while it is still false
func (r *ReferralRepository) MarkAwarded(ctx context.Context, referralID string, at time.Time) (bool, error) {
	result := conn(ctx, r.db).Model(&model.Referral{}).
		Where("id = ? AND credits_awarded = ?", referralID, false).
		Updates(map[string]any{
			"credits_awarded": true,
			"status":          string(entity.ReferralCompleted),
			"completed_at":    at,
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("marking referral awarded", result.Error, map[string]any{"referral_id": referralID})
	}
	return result.RowsAffected == 1, nil
}

// ListByReferrer lists a referrer's records, newest first
func (r *ReferralRepository) ListByReferrer(ctx context.Context, referrerID string) ([]*entity.Referral, error) {
	var models []model.Referral
	err := conn(ctx, r.db).
		Where("referrer_id = ?", referrerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing referrals", err, map[string]any{"referrer_id": referrerID})
	}

	referrals := make([]*entity.Referral, 0, len(models))
	for i := range models {
		referrals = append(referrals, referralToEntity(&models[i]))
	}
	return referrals, nil
}
