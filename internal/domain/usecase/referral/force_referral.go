package referral

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

// ForceReferral repairs a referral the signup flow missed: the record is created when
// absent and the bonus is awarded right away. Self-referral is still refused.
func (u *ReferralUseCase) ForceReferral(ctx context.Context, req usecase.ForceReferralRequest) (*usecase.AwardResult, error) {
	if req.ReferredUserID == "" {
		return nil, errs.ErrInvalidUserID
	}

	referrerID := req.ReferrerID
	code := req.ReferralCode
	switch {
	case referrerID == "" && code == "":
		return nil, errs.NewValidationError("referrerId", "referrer id or referral code is required")
	case referrerID == "":
		referrer, err := u.accountRepo.FindByReferralCode(ctx, code)
		if errors.Is(err, errs.ErrAccountNotFound) {
			return nil, errs.NewReferralError(req.ReferredUserID, "", code, errs.ErrInvalidReferralCode)
		}
		if err != nil {
			return nil, err
		}
		referrerID = referrer.UserID
	default:
		referrer, err := u.accountRepo.GetByID(ctx, referrerID)
		if err != nil {
			return nil, err
		}
		if code == "" {
			code = referrer.ReferralCode
		}
	}

	if referrerID == req.ReferredUserID {
		return nil, errs.NewReferralError(req.ReferredUserID, referrerID, code, errs.ErrSelfReferral)
	}

	err := u.unitOfWork.WithinTransaction(ctx, func(txCtx context.Context) error {
		return u.link(txCtx, referrerID, req.ReferredUserID, code)
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("Referral forced by operator", map[string]any{
		"referrer_id":      referrerID,
		"referred_user_id": req.ReferredUserID,
	})

	result, err := u.AwardIfEligible(ctx, req.ReferredUserID)
	if err != nil {
		return nil, err
	}
	if !result.Awarded {
		result.ReferrerID = referrerID
	}
	return result, nil
}
