package stripe

import (
	"context"
	"fmt"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
)

var _ external.CheckoutProvider = (*CheckoutProvider)(nil)

// lineItemProductExpand loads the purchased products with their metadata
const lineItemProductExpand = "line_items.data.price.product"

// CheckoutProvider reads checkout sessions through the provider API
type CheckoutProvider struct {
	sessions *session.Client
}

// NewCheckoutProvider creates a provider bound to the API backend.
// A nil backend selects the default API backend.
func NewCheckoutProvider(secretKey string, backend stripego.Backend) *CheckoutProvider {
	if backend == nil {
		backend = stripego.GetBackend(stripego.APIBackend)
	}
	return &CheckoutProvider{
		sessions: &session.Client{B: backend, Key: secretKey},
	}
}

// GetCheckoutSession fetches a session with expanded line item products
func (p *CheckoutProvider) GetCheckoutSession(ctx context.Context, sessionID string) (*entity.CheckoutSession, error) {
	params := &stripego.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand(lineItemProductExpand)

	cs, err := p.sessions.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("retrieving checkout session %s: %w", sessionID, err)
	}

	out := toCheckoutSession(cs)
	// Products were requested expanded, whatever metadata they carry is final
	out.LineItemsLoaded = true
	return out, nil
}
