package credit

import (
	"context"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

// Adjust applies an operator balance change. Deltas that would overdraw are refused.
func (u *CreditUseCase) Adjust(ctx context.Context, userID string, adj usecase.CreditAdjustment) (int64, error) {
	if userID == "" {
		return 0, errs.ErrInvalidUserID
	}
	if adj.Set == nil && adj.Delta == 0 {
		return 0, errs.ErrInvalidAmount
	}
	if adj.Set != nil && *adj.Set < 0 {
		return 0, errs.ErrNegativeCredits
	}

	var credits int64
	err := u.unitOfWork.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, _, err := u.initializer.Ensure(txCtx, userID, ""); err != nil {
			return err
		}

		var err error
		switch {
		case adj.Set != nil:
			if err = u.accountRepo.SetCredits(txCtx, userID, *adj.Set); err == nil {
				credits = *adj.Set
			}
		case adj.Delta > 0:
			credits, err = u.accountRepo.AddCredits(txCtx, userID, adj.Delta)
		default:
			credits, err = u.accountRepo.DeductCredits(txCtx, userID, -adj.Delta)
		}
		return err
	})
	if err != nil {
		u.logger.Warn("Credit adjustment failed", map[string]any{
			"user_id": userID,
			"delta":   adj.Delta,
			"error":   err.Error(),
		})
		return 0, err
	}

	fields := map[string]any{
		"user_id": userID,
		"credits": credits,
		"note":    adj.Note,
	}
	if adj.Set != nil {
		fields["set"] = *adj.Set
	} else {
		fields["delta"] = adj.Delta
	}
	u.logger.Info("Credits adjusted by operator", fields)

	return credits, nil
}
