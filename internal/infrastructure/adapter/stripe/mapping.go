package stripe

import (
	stripego "github.com/stripe/stripe-go/v82"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// toCheckoutSession maps a provider session to the reconciliation view.
// Line items count as loaded only when every product was expanded with its metadata.
func toCheckoutSession(cs *stripego.CheckoutSession) *entity.CheckoutSession {
	session := &entity.CheckoutSession{
		ID:                cs.ID,
		ClientReferenceID: cs.ClientReferenceID,
		PaymentStatus:     string(cs.PaymentStatus),
		AmountTotal:       cs.AmountTotal,
		Currency:          string(cs.Currency),
	}

	if cs.LineItems == nil {
		return session
	}

	loaded := true
	for _, item := range cs.LineItems.Data {
		if item == nil {
			continue
		}
		line := entity.CheckoutLineItem{Quantity: item.Quantity}
		if item.Price != nil && item.Price.Product != nil {
			line.ProductID = item.Price.Product.ID
			line.ProductMetadata = item.Price.Product.Metadata
		}
		if line.ProductMetadata == nil {
			loaded = false
		}
		session.LineItems = append(session.LineItems, line)
	}
	session.LineItemsLoaded = loaded
	return session
}
