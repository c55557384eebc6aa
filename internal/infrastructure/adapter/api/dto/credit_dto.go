package dto

// CreditsResponse represents the response for a balance query
type CreditsResponse struct {
	Credits int64 `json:"credits"`
}

// AccountInitRequest represents the signup bootstrap request
type AccountInitRequest struct {
	ReferralCode string `json:"referralCode"`
}

// AccountInitResponse represents the signup bootstrap response
type AccountInitResponse struct {
	UserID        string `json:"userId"`
	Credits       int64  `json:"credits"`
	Created       bool   `json:"created"`
	ReferralCode  string `json:"referralCode,omitempty"`
	ReferredBy    string `json:"referredBy,omitempty"`
	ReferralError string `json:"referralError,omitempty"`
}
