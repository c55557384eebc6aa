package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// StartingCredits is the grant every new account receives
const StartingCredits int64 = 5

// Account represents a user's credit balance and referral state
type Account struct {
	UserID                     string     // Identifier issued by the identity provider
	credits                    int64      // Never negative (private)
	Email                      string     // Email known at creation time, may be empty
	ReferralCode               string     // Assigned once, immutable afterwards
	ReferredBy                 string     // Referrer user ID, set at most once
	ReferredByCode             string     // Code used when the referral was captured
	ReferralCount              int64      // Completed referrals credited to this account
	CreditsEarnedFromReferrals int64      // Credits earned through referral bonuses
	CreatedAt                  time.Time  // When the account was created
	UpdatedAt                  time.Time  // When the account was last updated
	LastUsed                   *time.Time // Last credit consumption
	LastPurchase               *time.Time // Last credited purchase
}

// NewAccount creates an account with the given starting balance
func NewAccount(userID string, initialCredits int64, timeProvider coreport.TimeProvider) (*Account, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if initialCredits < 0 {
		return nil, errs.ErrNegativeCredits
	}

	now := timeProvider.Now()
	return &Account{
		UserID:    userID,
		credits:   initialCredits,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Credits returns the current balance
func (a *Account) Credits() int64 {
	return a.credits
}

// HasReferralCode reports whether a referral code was already assigned
func (a *Account) HasReferralCode() bool {
	return a.ReferralCode != ""
}
