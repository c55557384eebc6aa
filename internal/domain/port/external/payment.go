package external

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// PaymentEventVerifier authenticates raw webhook deliveries
type PaymentEventVerifier interface {
	// VerifyEvent checks the signature header against the shared signing secret and parses the event
	//
	// Possible errors:
	// - ErrInvalidSignature: If the payload is not signed with the shared secret
	// - Any other error: the signature passed but the event could not be decoded
	VerifyEvent(payload []byte, signatureHeader string) (*entity.PaymentEvent, error)
}

// CheckoutProvider reads checkout sessions from the payment provider
type CheckoutProvider interface {
	// GetCheckoutSession fetches a session with its line items and product metadata
	GetCheckoutSession(ctx context.Context, sessionID string) (*entity.CheckoutSession, error)
}
