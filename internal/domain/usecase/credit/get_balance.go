package credit

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

// GetBalance returns the stored balance, or the starting grant for an unknown user.
// Reading never creates the account.
func (u *CreditUseCase) GetBalance(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, errs.ErrInvalidUserID
	}

	account, err := u.accountRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return u.initializer.StartingGrant(), nil
		}
		u.logger.Error("Failed to read balance", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return 0, err
	}
	return account.Credits(), nil
}
