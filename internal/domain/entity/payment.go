package entity

import (
	"strconv"
	"strings"
)

// Payment event types and statuses consumed by reconciliation
const (
	EventCheckoutSessionCompleted = "checkout.session.completed"
	PaymentStatusPaid             = "paid"
	CreditsMetadataKey            = "credits"
)

// PaymentEvent is a verified notification from the payment provider
type PaymentEvent struct {
	ID      string
	Type    string
	Session *CheckoutSession // Set for checkout session events
}

// CheckoutSession is the subset of a provider checkout session reconciliation needs
type CheckoutSession struct {
	ID                string
	ClientReferenceID string
	PaymentStatus     string
	AmountTotal       int64 // Minor currency units
	Currency          string
	LineItems         []CheckoutLineItem
	LineItemsLoaded   bool // Line items were fetched with their product metadata
}

// CheckoutLineItem is one purchased product of a session
type CheckoutLineItem struct {
	ProductID       string
	Quantity        int64
	ProductMetadata map[string]string
}

// IsPaid reports whether the provider considers the session paid
func (s *CheckoutSession) IsPaid() bool {
	return s.PaymentStatus == PaymentStatusPaid
}

// CreditQuantity sums the credits metadata of purchased products.
// The second result is false when no line item declares a numeric positive value.
func (s *CheckoutSession) CreditQuantity() (int64, bool) {
	var total int64
	found := false
	for _, item := range s.LineItems {
		raw, ok := item.ProductMetadata[CreditsMetadataKey]
		if !ok {
			continue
		}
		credits, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil || credits <= 0 {
			continue
		}
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		total += credits * quantity
		found = true
	}
	return total, found
}
