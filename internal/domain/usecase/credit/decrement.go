package credit

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

// Decrement consumes one credit with a conditional update.
// An unknown user is initialized with the starting grant first, so the first call returns grant-1.
func (u *CreditUseCase) Decrement(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, errs.ErrInvalidUserID
	}

	for attempt := 0; attempt < u.decrementRetries; attempt++ {
		credits, err := u.accountRepo.ConsumeCredit(ctx, userID)
		switch {
		case err == nil:
			u.logger.Debug("Credit consumed", map[string]any{
				"user_id": userID,
				"credits": credits,
			})
			return credits, nil
		case errs.IsInsufficientCreditsError(err):
			u.logger.Info("Credit refused, balance exhausted", map[string]any{
				"user_id": userID,
			})
			return credits, err
		case errors.Is(err, errs.ErrAccountNotFound):
			if _, _, err := u.initializer.Ensure(ctx, userID, ""); err != nil {
				return 0, err
			}
		default:
			u.logger.Error("Failed to consume credit", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
			return 0, err
		}
	}

	u.logger.Error("Credit decrement retries exhausted", map[string]any{
		"user_id":  userID,
		"attempts": u.decrementRetries,
	})
	return 0, errs.ErrConcurrentModification
}
