package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/model"
)

var _ persistence.AccountRepository = (*AccountRepository)(nil)

// AccountRepository implements AccountRepository interface using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// modelToEntity converts an account model to an entity
func (r *AccountRepository) modelToEntity(m *model.Account) (*entity.Account, error) {
	account, err := entity.NewAccount(m.ID, m.Credits, r.timeProvider)
	if err != nil {
		r.logger.Error("Failed to create account entity", map[string]any{
			"user_id": m.ID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create account entity: %s", errs.ErrInternalServer, err.Error())
	}

	account.Email = m.Email
	account.ReferralCode = strVal(m.ReferralCode)
	account.ReferredBy = strVal(m.ReferredBy)
	account.ReferredByCode = strVal(m.ReferredByCode)
	account.ReferralCount = m.ReferralCount
	account.CreditsEarnedFromReferrals = m.CreditsEarnedFromReferrals
	account.CreatedAt = m.CreatedAt
	account.UpdatedAt = m.UpdatedAt
	account.LastUsed = m.LastUsed
	account.LastPurchase = m.LastPurchase

	return account, nil
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAccountNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDuplicateRecord, err.Error())
	}
	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves an account by user ID
func (r *AccountRepository) GetByID(ctx context.Context, userID string) (*entity.Account, error) {
	var m model.Account
	if err := conn(ctx, r.db).Where("id = ?", userID).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting account", err, userID)
	}
	return r.modelToEntity(&m)
}

// CreateIfAbsent inserts the account unless one already exists
func (r *AccountRepository) CreateIfAbsent(ctx context.Context, account *entity.Account) (bool, error) {
	m := model.Account{
		ID:                         account.UserID,
		Credits:                    account.Credits(),
		Email:                      account.Email,
		ReferralCode:               strPtr(account.ReferralCode),
		ReferredBy:                 strPtr(account.ReferredBy),
		ReferredByCode:             strPtr(account.ReferredByCode),
		ReferralCount:              account.ReferralCount,
		CreditsEarnedFromReferrals: account.CreditsEarnedFromReferrals,
		CreatedAt:                  account.CreatedAt,
		UpdatedAt:                  account.UpdatedAt,
	}

	result := conn(ctx, r.db).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&m)
	if result.Error != nil {
		return false, r.handleDatabaseError("creating account", result.Error, account.UserID)
	}

	created := result.RowsAffected == 1
	if created {
		r.logger.Info("Account created", map[string]any{
			"user_id": account.UserID,
			"credits": account.Credits(),
		})
	}
	return created, nil
}

// currentCredits reads the balance of an account
func (r *AccountRepository) currentCredits(ctx context.Context, userID string) (int64, error) {
	var m model.Account
	err := conn(ctx, r.db).Select("id", "credits").Where("id = ?", userID).First(&m).Error
	if err != nil {
		return 0, r.handleDatabaseError("reading credits", err, userID)
	}
	return m.Credits, nil
}

// updateCredits runs a conditional balance update and returns the balance written by that same statement
func (r *AccountRepository) updateCredits(ctx context.Context, values map[string]any, query string, args ...any) (int64, int64, error) {
	var updated model.Account
	result := conn(ctx, r.db).Model(&updated).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "credits"}}}).
		Where(query, args...).
		Updates(values)
	return updated.Credits, result.RowsAffected, result.Error
}

// AddCredits adds amount to the balance in a single conditional update
func (r *AccountRepository) AddCredits(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, errs.ErrInvalidAmount
	}

	credits, rows, err := r.updateCredits(ctx, map[string]any{
		"credits":    gorm.Expr("credits + ?", amount),
		"updated_at": r.timeProvider.Now(),
	}, "id = ?", userID)
	if err != nil {
		return 0, r.handleDatabaseError("adding credits", err, userID)
	}
	if rows == 0 {
		return 0, errs.ErrAccountNotFound
	}
	return credits, nil
}

// ConsumeCredit removes one credit only while the balance is positive
func (r *AccountRepository) ConsumeCredit(ctx context.Context, userID string) (int64, error) {
	now := r.timeProvider.Now()
	credits, rows, err := r.updateCredits(ctx, map[string]any{
		"credits":    gorm.Expr("credits - 1"),
		"last_used":  now,
		"updated_at": now,
	}, "id = ? AND credits > 0", userID)
	if err != nil {
		return 0, r.handleDatabaseError("consuming credit", err, userID)
	}
	if rows == 0 {
		return r.refusal(ctx, userID)
	}
	return credits, nil
}

// DeductCredits removes amount only while the balance covers it
func (r *AccountRepository) DeductCredits(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, errs.ErrInvalidAmount
	}

	credits, rows, err := r.updateCredits(ctx, map[string]any{
		"credits":    gorm.Expr("credits - ?", amount),
		"updated_at": r.timeProvider.Now(),
	}, "id = ? AND credits >= ?", userID, amount)
	if err != nil {
		return 0, r.handleDatabaseError("deducting credits", err, userID)
	}
	if rows == 0 {
		return r.refusal(ctx, userID)
	}
	return credits, nil
}

// refusal reports why a conditional debit matched no row
func (r *AccountRepository) refusal(ctx context.Context, userID string) (int64, error) {
	credits, err := r.currentCredits(ctx, userID)
	if err != nil {
		return 0, err
	}
	return credits, errs.NewInsufficientCreditsError(userID, credits)
}

// SetCredits overwrites the balance
func (r *AccountRepository) SetCredits(ctx context.Context, userID string, credits int64) error {
	if credits < 0 {
		return errs.ErrNegativeCredits
	}

	result := conn(ctx, r.db).Model(&model.Account{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"credits":    credits,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("setting credits", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}

// TouchLastPurchase stamps the last purchase time
func (r *AccountRepository) TouchLastPurchase(ctx context.Context, userID string, at time.Time) error {
	result := conn(ctx, r.db).Model(&model.Account{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"last_purchase": at,
			"updated_at":    at,
		})
	if result.Error != nil {
		return r.handleDatabaseError("stamping last purchase", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}

// FindByReferralCode resolves a referral code by exact match
func (r *AccountRepository) FindByReferralCode(ctx context.Context, code string) (*entity.Account, error) {
	var m model.Account
	if err := conn(ctx, r.db).Where("referral_code = ?", code).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("finding account by referral code", err, "")
	}
	return r.modelToEntity(&m)
}

// ReferralCodeExists checks global code uniqueness
func (r *AccountRepository) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.Account{}).Where("referral_code = ?", code).Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking referral code", err, "")
	}
	return count > 0, nil
}

// exists reports whether an account row exists
func (r *AccountRepository) exists(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.Account{}).Where("id = ?", userID).Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking account", err, userID)
	}
	return count > 0, nil
}

// AssignReferralCode sets the code only while none is assigned
func (r *AccountRepository) AssignReferralCode(ctx context.Context, userID, code string) (bool, error) {
	result := conn(ctx, r.db).Model(&model.Account{}).
		Where("id = ? AND referral_code IS NULL", userID).
		Updates(map[string]any{
			"referral_code": code,
			"updated_at":    r.timeProvider.Now(),
		})
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return false, errs.ErrReferralCodeTaken
		}
		return false, r.handleDatabaseError("assigning referral code", result.Error, userID)
	}
	if result.RowsAffected == 1 {
		return true, nil
	}

	ok, err := r.exists(ctx, userID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, errs.ErrAccountNotFound
	}
	return false, nil
}

// SetReferredBy stamps the referrer only while none is set
func (r *AccountRepository) SetReferredBy(ctx context.Context, userID, referrerID, code string) (bool, error) {
	result := conn(ctx, r.db).Model(&model.Account{}).
		Where("id = ? AND referred_by IS NULL", userID).
		Updates(map[string]any{
			"referred_by":      referrerID,
			"referred_by_code": code,
			"updated_at":       r.timeProvider.Now(),
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("stamping referrer", result.Error, userID)
	}
	if result.RowsAffected == 1 {
		return true, nil
	}

	ok, err := r.exists(ctx, userID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, errs.ErrAccountNotFound
	}
	return false, nil
}

// RecordReferralReward credits the bonus and bumps the referral counters together
func (r *AccountRepository) RecordReferralReward(ctx context.Context, referrerID string, bonus int64) error {
	if bonus <= 0 {
		return errs.ErrInvalidAmount
	}

	result := conn(ctx, r.db).Model(&model.Account{}).
		Where("id = ?", referrerID).
		Updates(map[string]any{
			"credits":                       gorm.Expr("credits + ?", bonus),
			"referral_count":                gorm.Expr("referral_count + 1"),
			"credits_earned_from_referrals": gorm.Expr("credits_earned_from_referrals + ?", bonus),
			"updated_at":                    r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("recording referral reward", result.Error, referrerID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}

// Delete removes the account
func (r *AccountRepository) Delete(ctx context.Context, userID string) error {
	result := conn(ctx, r.db).Where("id = ?", userID).Delete(&model.Account{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting account", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}

	r.logger.Info("Account deleted", map[string]any{"user_id": userID})
	return nil
}
