package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// ReferralRepository defines methods to interact with the referrals collection
type ReferralRepository interface {
	// Create saves a new referral record
	//
	// Possible errors:
	// - ErrAlreadyReferred: If the referred user already has a referral record
	Create(ctx context.Context, referral *entity.Referral) error

	// GetByReferredUser retrieves the referral record of a referred user
	//
	// Possible errors:
	// - ErrReferralNotFound: If the user was never referred
	GetByReferredUser(ctx context.Context, referredUserID string) (*entity.Referral, error)

	// FindUnawardedByReferredUser lists referral records whose bonus is still pending
	FindUnawardedByReferredUser(ctx context.Context, referredUserID string) ([]*entity.Referral, error)

	// MarkAwarded flips credits_awarded from false to true and completes the record.
	// Returns false when another caller already flipped it.
	MarkAwarded(ctx context.Context, referralID string, at time.Time) (bool, error)

	// ListByReferrer lists referral records created through a referrer's code, newest first
	ListByReferrer(ctx context.Context, referrerID string) ([]*entity.Referral, error)
}
