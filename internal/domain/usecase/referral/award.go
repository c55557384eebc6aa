package referral

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

// AwardIfEligible pays the referrer of userID the bonus, at most once per referral.
// The flip of credits_awarded and the bonus commit together.
func (u *ReferralUseCase) AwardIfEligible(ctx context.Context, userID string) (*usecase.AwardResult, error) {
	pending, err := u.referralRepo.FindUnawardedByReferredUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &usecase.AwardResult{}
	for _, referral := range pending {
		awarded, err := u.award(ctx, referral)
		if err != nil {
			return nil, err
		}
		if awarded {
			result.Awarded = true
			result.ReferralID = referral.ID
			result.ReferrerID = referral.ReferrerID
			result.Bonus += u.bonus
		}
	}
	return result, nil
}

// award persists the completion of referral; the store flip decides which caller pays the bonus
func (u *ReferralUseCase) award(ctx context.Context, referral *entity.Referral) (bool, error) {
	if !referral.Complete(u.timeProvider) {
		return false, nil
	}

	var flipped bool
	err := u.unitOfWork.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		flipped, err = u.referralRepo.MarkAwarded(txCtx, referral.ID, *referral.CompletedAt)
		if err != nil || !flipped {
			return err
		}
		return u.accountRepo.RecordReferralReward(txCtx, referral.ReferrerID, u.bonus)
	})
	if err != nil {
		u.logger.Error("Failed to award referral bonus", map[string]any{
			"referral_id": referral.ID,
			"referrer_id": referral.ReferrerID,
			"error":       err.Error(),
		})
		return false, err
	}

	if flipped {
		u.logger.Info("Referral bonus awarded", map[string]any{
			"referral_id":      referral.ID,
			"referrer_id":      referral.ReferrerID,
			"referred_user_id": referral.ReferredUserID,
			"bonus":            u.bonus,
		})
	}
	return flipped, nil
}
