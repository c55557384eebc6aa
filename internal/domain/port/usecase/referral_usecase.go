package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// ReferralSummary is a user's code with its counters
type ReferralSummary struct {
	ReferralCode  string
	ReferralCount int64
	CreditsEarned int64
}

// AwardResult reports what awardIfEligible did
type AwardResult struct {
	Awarded    bool
	ReferralID string
	ReferrerID string
	Bonus      int64
}

// ForceReferralRequest identifies the referrer by id or by code
type ForceReferralRequest struct {
	ReferrerID     string
	ReferralCode   string
	ReferredUserID string
}

// ReferralUseCase defines referral operations
type ReferralUseCase interface {
	// GenerateCode returns the user's code, assigning a unique one on first call
	GenerateCode(ctx context.Context, userID string) (*ReferralSummary, error)

	// TrackReferral links newUserID to the owner of code and returns the referrer id
	TrackReferral(ctx context.Context, newUserID, code string) (string, error)

	// AwardIfEligible pays the referrer bonus once the referred user qualifies.
	// Safe to call repeatedly.
	AwardIfEligible(ctx context.Context, userID string) (*AwardResult, error)

	// ForceReferral creates the referral record if missing and awards it immediately
	ForceReferral(ctx context.Context, req ForceReferralRequest) (*AwardResult, error)

	// ListByReferrer returns the referral records of a referrer
	ListByReferrer(ctx context.Context, referrerID string) ([]*entity.Referral, error)
}
