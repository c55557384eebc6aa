package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// ReferralStatus represents the reward state of a referral
type ReferralStatus string

// ReferralStatus constants
const (
	ReferralPending   ReferralStatus = "pending"
	ReferralCompleted ReferralStatus = "completed"
)

// ReferralBonus is the number of credits a referrer earns per completed referral
const ReferralBonus int64 = 10

// Referral tracks one referrer to referred relationship
type Referral struct {
	ID             string
	ReferrerID     string
	ReferredUserID string
	ReferralCode   string
	Status         ReferralStatus
	CreditsAwarded bool
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

// NewReferral creates a pending referral record
func NewReferral(referrerID, referredUserID, code string, timeProvider coreport.TimeProvider) (*Referral, error) {
	if referrerID == "" || referredUserID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if referrerID == referredUserID {
		return nil, errs.ErrSelfReferral
	}

	return &Referral{
		ID:             uuid.NewString(),
		ReferrerID:     referrerID,
		ReferredUserID: referredUserID,
		ReferralCode:   code,
		Status:         ReferralPending,
		CreditsAwarded: false,
		CreatedAt:      timeProvider.Now(),
	}, nil
}

// IsPending reports whether the referrer is still waiting for the bonus
func (r *Referral) IsPending() bool {
	return !r.CreditsAwarded
}

// Complete flips the referral to completed, exactly once
func (r *Referral) Complete(timeProvider coreport.TimeProvider) bool {
	if !r.IsPending() {
		return false
	}
	now := timeProvider.Now()
	r.CreditsAwarded = true
	r.Status = ReferralCompleted
	r.CompletedAt = &now
	return true
}
