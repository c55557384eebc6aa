package referral

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

// TrackReferral records that newUserID signed up with code and returns the referrer id.
// Tracking the same referrer again is a no-op returning the same id.
func (u *ReferralUseCase) TrackReferral(ctx context.Context, newUserID, code string) (string, error) {
	if newUserID == "" {
		return "", errs.ErrInvalidUserID
	}
	if err := entity.ValidateReferralCode(code); err != nil {
		return "", errs.NewReferralError(newUserID, "", code, err)
	}
	// Well-formed but outside the generation alphabet: no account can own it
	if !entity.IsGeneratedReferralCode(code) {
		return "", errs.NewReferralError(newUserID, "", code, errs.ErrInvalidReferralCode)
	}

	referrer, err := u.accountRepo.FindByReferralCode(ctx, code)
	if errors.Is(err, errs.ErrAccountNotFound) {
		return "", errs.NewReferralError(newUserID, "", code, errs.ErrInvalidReferralCode)
	}
	if err != nil {
		return "", err
	}
	if referrer.UserID == newUserID {
		return "", errs.NewReferralError(newUserID, referrer.UserID, code, errs.ErrSelfReferral)
	}

	err = u.unitOfWork.WithinTransaction(ctx, func(txCtx context.Context) error {
		return u.link(txCtx, referrer.UserID, newUserID, code)
	})
	if err != nil {
		var refErr *errs.ReferralError
		if errors.As(err, &refErr) {
			u.logger.Warn("Referral rejected", refErr.LogFields())
		}
		return "", err
	}

	return referrer.UserID, nil
}

// link creates the referral record and stamps the referred account, inside a transaction
func (u *ReferralUseCase) link(ctx context.Context, referrerID, newUserID, code string) error {
	if _, _, err := u.initializer.Ensure(ctx, newUserID, ""); err != nil {
		return err
	}

	existing, err := u.referralRepo.GetByReferredUser(ctx, newUserID)
	switch {
	case err == nil:
		if existing.ReferrerID == referrerID {
			return nil
		}
		return errs.NewReferralError(newUserID, referrerID, code, errs.ErrAlreadyReferred)
	case !errors.Is(err, errs.ErrReferralNotFound):
		return err
	}

	referral, err := entity.NewReferral(referrerID, newUserID, code, u.timeProvider)
	if err != nil {
		return errs.NewReferralError(newUserID, referrerID, code, err)
	}
	if err := u.referralRepo.Create(ctx, referral); err != nil {
		if errors.Is(err, errs.ErrAlreadyReferred) {
			return errs.NewReferralError(newUserID, referrerID, code, err)
		}
		return err
	}

	stamped, err := u.accountRepo.SetReferredBy(ctx, newUserID, referrerID, code)
	if err != nil {
		return err
	}
	if !stamped {
		return errs.NewReferralError(newUserID, referrerID, code, errs.ErrAlreadyReferred)
	}

	u.logger.Info("Referral tracked", map[string]any{
		"referral_id":      referral.ID,
		"referrer_id":      referrerID,
		"referred_user_id": newUserID,
	})
	return nil
}
