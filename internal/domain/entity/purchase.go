package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// PurchaseStatus represents how a processed checkout session was applied
type PurchaseStatus string

// PurchaseStatus constants
const (
	PurchaseCredited  PurchaseStatus = "credited"
	PurchaseNoCredits PurchaseStatus = "no_credits"
)

// PurchaseSource identifies which path processed a checkout session
type PurchaseSource string

// PurchaseSource constants
const (
	SourceWebhook     PurchaseSource = "webhook"
	SourceAdminRepair PurchaseSource = "admin_repair"
)

// Purchase is the processed-session record guarding against duplicate grants
type Purchase struct {
	SessionID   string          // Checkout session id, the idempotency key
	EventID     string          // Provider event id that delivered the session, empty for repairs
	UserID      string          // Client reference on the session
	Credits     int64           // Credits granted, zero for no_credits
	AmountTotal decimal.Decimal // Amount paid in major currency units
	Currency    string
	Status      PurchaseStatus
	Source      PurchaseSource
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPurchase builds a purchase record for a checkout session
func NewPurchase(session *CheckoutSession, eventID string, credits int64, source PurchaseSource, timeProvider coreport.TimeProvider) (*Purchase, error) {
	if session == nil || session.ID == "" {
		return nil, errs.ErrInvalidRequest
	}
	if credits < 0 {
		return nil, errs.ErrInvalidAmount
	}

	status := PurchaseCredited
	if credits == 0 {
		status = PurchaseNoCredits
	}

	now := timeProvider.Now()
	return &Purchase{
		SessionID:   session.ID,
		EventID:     eventID,
		UserID:      session.ClientReferenceID,
		Credits:     credits,
		AmountTotal: MinorUnitsToDecimal(session.AmountTotal),
		Currency:    session.Currency,
		Status:      status,
		Source:      source,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// MinorUnitsToDecimal converts an amount in cents into major currency units
func MinorUnitsToDecimal(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}
