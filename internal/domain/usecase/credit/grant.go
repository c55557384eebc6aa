package credit

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

// Grant adds amount to the balance. An absent account is created with amount as its balance.
func (u *CreditUseCase) Grant(ctx context.Context, userID string, amount int64) (int64, error) {
	if userID == "" {
		return 0, errs.ErrInvalidUserID
	}
	if amount <= 0 {
		return 0, errs.ErrInvalidAmount
	}

	// Two rounds cover a create racing with another request's create
	for attempt := 0; attempt < 2; attempt++ {
		credits, err := u.accountRepo.AddCredits(ctx, userID, amount)
		if err == nil {
			u.logger.Info("Credits granted", map[string]any{
				"user_id": userID,
				"amount":  amount,
				"credits": credits,
			})
			return credits, nil
		}
		if !errors.Is(err, errs.ErrAccountNotFound) {
			u.logger.Error("Failed to grant credits", map[string]any{
				"user_id": userID,
				"amount":  amount,
				"error":   err.Error(),
			})
			return 0, err
		}

		account, err := entity.NewAccount(userID, amount, u.timeProvider)
		if err != nil {
			return 0, err
		}
		created, err := u.accountRepo.CreateIfAbsent(ctx, account)
		if err != nil {
			return 0, err
		}
		if created {
			u.logger.Info("Account created by grant", map[string]any{
				"user_id": userID,
				"credits": amount,
			})
			return amount, nil
		}
	}

	return 0, errs.ErrConcurrentModification
}
