package dto

import "time"

// ReferralCodeResponse represents a user's referral code with its counters
type ReferralCodeResponse struct {
	ReferralCode  string `json:"referralCode"`
	ReferralCount int64  `json:"referralCount"`
	CreditsEarned int64  `json:"creditsEarned"`
}

// TrackReferralRequest represents the referral tracking request
type TrackReferralRequest struct {
	ReferralCode string `json:"referralCode" binding:"required"`
}

// TrackReferralResponse represents a successful referral tracking
type TrackReferralResponse struct {
	Success    bool   `json:"success"`
	ReferrerID string `json:"referrerId"`
}

// ReferralRecord represents one referral in admin listings
type ReferralRecord struct {
	ID             string     `json:"id"`
	ReferrerID     string     `json:"referrerId"`
	ReferredUserID string     `json:"referredUserId"`
	ReferralCode   string     `json:"referralCode"`
	Status         string     `json:"status"`
	CreditsAwarded bool       `json:"creditsAwarded"`
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}
