package usecase

import (
	"context"
)

// CreditAdjustment is an operator balance change. Exactly one of Set or Delta is used.
type CreditAdjustment struct {
	Set   *int64
	Delta int64
	Note  string
}

// CreditUseCase defines balance operations
type CreditUseCase interface {
	// GetBalance returns the stored balance or the starting grant, without creating the account
	GetBalance(ctx context.Context, userID string) (int64, error)

	// Grant adds amount, creating the account with amount as its initial balance when absent.
	// Not deduplicated, callers own idempotency.
	Grant(ctx context.Context, userID string, amount int64) (int64, error)

	// Decrement atomically consumes one credit and returns the new balance
	Decrement(ctx context.Context, userID string) (int64, error)

	// Adjust applies an operator adjustment and returns the new balance
	Adjust(ctx context.Context, userID string, adj CreditAdjustment) (int64, error)
}
