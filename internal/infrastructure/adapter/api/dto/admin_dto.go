package dto

import "time"

// WebhookResponse acknowledges a signature-valid webhook delivery
type WebhookResponse struct {
	Received bool `json:"received"`
}

// AdjustCreditsRequest represents an operator balance change. Exactly one of set or delta.
type AdjustCreditsRequest struct {
	UserID string `json:"userId" binding:"required"`
	Set    *int64 `json:"set"`
	Delta  *int64 `json:"delta"`
	Note   string `json:"note"`
}

// AdjustCreditsResponse represents the balance after an adjustment
type AdjustCreditsResponse struct {
	UserID  string `json:"userId"`
	Credits int64  `json:"credits"`
}

// RepairPaymentRequest represents a manual payment repair
type RepairPaymentRequest struct {
	SessionID       string `json:"sessionId" binding:"required"`
	CreditsOverride int64  `json:"creditsOverride" binding:"min=0"`
}

// ReconciliationResponse represents the outcome of a reconciliation run
type ReconciliationResponse struct {
	EventID         string `json:"eventId,omitempty"`
	SessionID       string `json:"sessionId"`
	UserID          string `json:"userId,omitempty"`
	Status          string `json:"status"`
	CreditsGranted  int64  `json:"creditsGranted"`
	ReferralAwarded bool   `json:"referralAwarded"`
}

// RepairReferralRequest represents a forced referral. The referrer is given by id or code.
type RepairReferralRequest struct {
	ReferrerID     string `json:"referrerId"`
	ReferralCode   string `json:"referralCode"`
	ReferredUserID string `json:"referredUserId" binding:"required"`
}

// AwardResponse represents the outcome of a referral award
type AwardResponse struct {
	Awarded    bool   `json:"awarded"`
	ReferralID string `json:"referralId,omitempty"`
	ReferrerID string `json:"referrerId,omitempty"`
	Bonus      int64  `json:"bonus"`
}

// ReferralListResponse lists the referrals of a referrer
type ReferralListResponse struct {
	ReferrerID string           `json:"referrerId"`
	Referrals  []ReferralRecord `json:"referrals"`
}

// PurchaseRecord represents a processed checkout session
type PurchaseRecord struct {
	SessionID   string    `json:"sessionId"`
	EventID     string    `json:"eventId,omitempty"`
	UserID      string    `json:"userId"`
	Credits     int64     `json:"credits"`
	AmountTotal string    `json:"amountTotal"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// WebhookDiagnosticsResponse reports webhook health
type WebhookDiagnosticsResponse struct {
	SigningSecretConfigured bool             `json:"signingSecretConfigured"`
	APIKeyConfigured        bool             `json:"apiKeyConfigured"`
	CountsByStatus          map[string]int64 `json:"countsByStatus"`
	Recent                  []PurchaseRecord `json:"recent"`
}

// SweepResponse summarizes an anonymous account sweep
type SweepResponse struct {
	Scanned         int      `json:"scanned"`
	Anonymous       int      `json:"anonymous"`
	Expired         int      `json:"expired"`
	Deleted         int      `json:"deleted"`
	AccountsDeleted int      `json:"accountsDeleted"`
	Errors          []string `json:"errors"`
	ErrorCount      int      `json:"errorCount"`
}
