package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// SignupResult reports the outcome of an account bootstrap
type SignupResult struct {
	Account       *entity.Account
	Created       bool
	ReferrerID    string
	ReferralError string // Reason the best-effort referral capture failed, if it did
}

// AccountInitializer is the single place accounts are created with the starting grant
type AccountInitializer interface {
	// Ensure returns the account, creating it with the starting grant when absent.
	// The boolean reports whether this call created it.
	Ensure(ctx context.Context, userID, email string) (*entity.Account, bool, error)
}

// AccountUseCase defines account bootstrap operations
type AccountUseCase interface {
	AccountInitializer

	// Signup bootstraps the account and captures an optional referral code best-effort
	Signup(ctx context.Context, identity *entity.Identity, referralCode string) (*SignupResult, error)
}
