package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// AccountRepository defines methods to interact with the users collection.
// Every balance mutation is a single conditional update, never a read followed by a write.
type AccountRepository interface {
	// GetByID retrieves an account by user ID
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account exists for the user
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, userID string) (*entity.Account, error)

	// CreateIfAbsent inserts the account unless one already exists.
	// Returns true when this call created it.
	CreateIfAbsent(ctx context.Context, account *entity.Account) (bool, error)

	// AddCredits adds amount to the balance and returns the new balance
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account exists for the user
	AddCredits(ctx context.Context, userID string, amount int64) (int64, error)

	// ConsumeCredit removes one credit if the balance is positive and returns the new balance
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account exists for the user
	// - ErrInsufficientCredits: If the balance is zero, the balance is left unchanged
	ConsumeCredit(ctx context.Context, userID string) (int64, error)

	// DeductCredits removes amount only if the balance covers it and returns the new balance
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account exists for the user
	// - ErrInsufficientCredits: If the balance is below amount, the balance is left unchanged
	DeductCredits(ctx context.Context, userID string, amount int64) (int64, error)

	// SetCredits overwrites the balance (operator adjustments)
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account exists for the user
	// - ErrNegativeCredits: If credits is negative
	SetCredits(ctx context.Context, userID string, credits int64) error

	// TouchLastPurchase stamps the last purchase time
	TouchLastPurchase(ctx context.Context, userID string, at time.Time) error

	// FindByReferralCode resolves a referral code to its owner by exact match
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account owns the code
	FindByReferralCode(ctx context.Context, code string) (*entity.Account, error)

	// ReferralCodeExists checks global code uniqueness
	ReferralCodeExists(ctx context.Context, code string) (bool, error)

	// AssignReferralCode sets the code only if the account has none yet.
	// Returns false when a code was already assigned.
	//
	// Possible errors:
	// - ErrReferralCodeTaken: If another account owns the code
	AssignReferralCode(ctx context.Context, userID, code string) (bool, error)

	// SetReferredBy stamps the referrer only if none is set yet.
	// Returns false when the account already had a referrer.
	SetReferredBy(ctx context.Context, userID, referrerID, code string) (bool, error)

	// RecordReferralReward adds the bonus to the referrer's balance and referral counters
	//
	// Possible errors:
	// - ErrAccountNotFound: If the referrer account does not exist
	RecordReferralReward(ctx context.Context, referrerID string, bonus int64) error

	// Delete removes the account
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account exists for the user
	Delete(ctx context.Context, userID string) error
}
