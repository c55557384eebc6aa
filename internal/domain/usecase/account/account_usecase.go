package account

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

var _ usecase.AccountUseCase = (*AccountUseCase)(nil)

// AccountUseCase handles account bootstrap
type AccountUseCase struct {
	*Initializer
	referrals usecase.ReferralUseCase
	logger    coreport.Logger
}

// NewAccountUseCase creates a new AccountUseCase
func NewAccountUseCase(initializer *Initializer, referrals usecase.ReferralUseCase, logger coreport.Logger) *AccountUseCase {
	return &AccountUseCase{
		Initializer: initializer,
		referrals:   referrals,
		logger:      logger,
	}
}

// Signup ensures the caller's account and captures a referral code if one was supplied.
// A failed referral capture is reported in the result and never fails the signup.
func (u *AccountUseCase) Signup(ctx context.Context, identity *entity.Identity, referralCode string) (*usecase.SignupResult, error) {
	if identity == nil || identity.UserID == "" {
		return nil, errs.ErrInvalidUserID
	}

	account, created, err := u.Ensure(ctx, identity.UserID, identity.Email)
	if err != nil {
		u.logger.Error("Failed to initialize account", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	result := &usecase.SignupResult{
		Account: account,
		Created: created,
	}

	if referralCode == "" {
		return result, nil
	}

	referrerID, err := u.referrals.TrackReferral(ctx, identity.UserID, referralCode)
	if err != nil {
		u.logger.Warn("Referral capture failed during signup", map[string]any{
			"user_id":       identity.UserID,
			"referral_code": referralCode,
			"reason":        errs.Reason(err),
			"error":         err.Error(),
		})
		result.ReferralError = errs.Reason(err)
		return result, nil
	}

	result.ReferrerID = referrerID
	// Refresh so the response carries the referrer stamp
	if refreshed, _, err := u.Ensure(ctx, identity.UserID, identity.Email); err == nil {
		result.Account = refreshed
	}
	return result, nil
}
