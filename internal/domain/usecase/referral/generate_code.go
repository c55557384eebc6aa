package referral

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

// GenerateCode returns the user's referral code, assigning a fresh unique one on first call.
// Each candidate is checked for uniqueness and assigned with a conditional update;
// a collision on the unique index counts as a failed attempt.
func (u *ReferralUseCase) GenerateCode(ctx context.Context, userID string) (*usecase.ReferralSummary, error) {
	account, _, err := u.initializer.Ensure(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	if account.HasReferralCode() {
		return summaryOf(account), nil
	}

	for attempt := 1; attempt <= u.maxAttempts; attempt++ {
		code, err := u.newCode()
		if err != nil {
			return nil, err
		}

		taken, err := u.accountRepo.ReferralCodeExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if taken {
			u.logger.Debug("Referral code collision", map[string]any{
				"user_id": userID,
				"attempt": attempt,
			})
			continue
		}

		assigned, err := u.accountRepo.AssignReferralCode(ctx, userID, code)
		if errors.Is(err, errs.ErrReferralCodeTaken) {
			continue
		}
		if err != nil {
			return nil, err
		}

		// Either this call assigned it or a concurrent call already did
		stored, err := u.accountRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if assigned {
			u.logger.Info("Referral code assigned", map[string]any{
				"user_id":       userID,
				"referral_code": code,
				"attempts":      attempt,
			})
		}
		return summaryOf(stored), nil
	}

	u.logger.Error("Referral code generation exhausted", map[string]any{
		"user_id":  userID,
		"attempts": u.maxAttempts,
	})
	return nil, errs.ErrCodeGenerationExhausted
}
