package stripe

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
)

var _ external.PaymentEventVerifier = (*EventVerifier)(nil)

// EventVerifier checks webhook signatures with the shared signing secret
type EventVerifier struct {
	secret    string
	tolerance time.Duration
}

// NewEventVerifier creates a verifier; tolerance bounds the signed timestamp age
func NewEventVerifier(secret string, tolerance time.Duration) *EventVerifier {
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	return &EventVerifier{secret: secret, tolerance: tolerance}
}

// VerifyEvent authenticates the payload and decodes checkout session events.
// Only authentication failures wrap ErrInvalidSignature.
func (v *EventVerifier) VerifyEvent(payload []byte, signatureHeader string) (*entity.PaymentEvent, error) {
	if v.secret == "" {
		return nil, fmt.Errorf("%w: signing secret not configured", errs.ErrInvalidSignature)
	}

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidSignature, err.Error())
	}

	out := &entity.PaymentEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}
	if out.Type != entity.EventCheckoutSessionCompleted {
		return out, nil
	}
	if event.Data == nil {
		return nil, errors.New("checkout event has no data")
	}

	var cs stripego.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
		return nil, fmt.Errorf("decoding checkout session: %w", err)
	}
	out.Session = toCheckoutSession(&cs)
	return out, nil
}
