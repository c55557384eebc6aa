package stripe

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

const signingSecret = "whsec_test_secret"

func sign(t *testing.T, payload []byte, secret string, at time.Time) string {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: at,
	})
	return signed.Header
}

func checkoutPayload(lineItems string) []byte {
	return []byte(fmt.Sprintf(`{
  "id": "evt_1",
  "object": "event",
  "api_version": "2020-08-27",
  "type": "checkout.session.completed",
  "data": {"object": {
    "id": "cs_test_1",
    "object": "checkout.session",
    "client_reference_id": "user-b",
    "payment_status": "paid",
    "amount_total": 1999,
    "currency": "usd"%s
  }}
}`, lineItems))
}

func TestVerifyEvent(t *testing.T) {
	verifier := NewEventVerifier(signingSecret, 5*time.Minute)

	t.Run("Valid checkout event", func(t *testing.T) {
		payload := checkoutPayload("")
		event, err := verifier.VerifyEvent(payload, sign(t, payload, signingSecret, time.Now()))
		require.NoError(t, err)

		assert.Equal(t, "evt_1", event.ID)
		assert.Equal(t, entity.EventCheckoutSessionCompleted, event.Type)
		require.NotNil(t, event.Session)
		assert.Equal(t, "cs_test_1", event.Session.ID)
		assert.Equal(t, "user-b", event.Session.ClientReferenceID)
		assert.True(t, event.Session.IsPaid())
		assert.Equal(t, int64(1999), event.Session.AmountTotal)
		assert.False(t, event.Session.LineItemsLoaded)
	})

	t.Run("Expanded line items are carried", func(t *testing.T) {
		payload := checkoutPayload(`,
    "line_items": {"object": "list", "data": [
      {"id": "li_1", "object": "item", "quantity": 2,
       "price": {"id": "price_1", "object": "price",
                 "product": {"id": "prod_1", "object": "product", "metadata": {"credits": "50"}}}}
    ]}`)
		event, err := verifier.VerifyEvent(payload, sign(t, payload, signingSecret, time.Now()))
		require.NoError(t, err)

		assert.True(t, event.Session.LineItemsLoaded)
		credits, ok := event.Session.CreditQuantity()
		assert.True(t, ok)
		assert.Equal(t, int64(100), credits)
	})

	t.Run("Other event types carry no session", func(t *testing.T) {
		payload := []byte(`{"id":"evt_2","object":"event","type":"invoice.paid","data":{"object":{}}}`)
		event, err := verifier.VerifyEvent(payload, sign(t, payload, signingSecret, time.Now()))
		require.NoError(t, err)
		assert.Equal(t, "invoice.paid", event.Type)
		assert.Nil(t, event.Session)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		payload := checkoutPayload("")
		_, err := verifier.VerifyEvent(payload, sign(t, payload, "whsec_other", time.Now()))
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})

	t.Run("Tampered payload", func(t *testing.T) {
		payload := checkoutPayload("")
		header := sign(t, payload, signingSecret, time.Now())
		_, err := verifier.VerifyEvent(append(payload, ' '), header)
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})

	t.Run("Stale timestamp", func(t *testing.T) {
		payload := checkoutPayload("")
		_, err := verifier.VerifyEvent(payload, sign(t, payload, signingSecret, time.Now().Add(-time.Hour)))
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})

	t.Run("Undecodable session is not a signature failure", func(t *testing.T) {
		payload := []byte(`{"id":"evt_3","object":"event","type":"checkout.session.completed",` +
			`"data":{"object":{"id":"cs_test_3","object":"checkout.session","amount_total":"not-a-number"}}}`)
		event, err := verifier.VerifyEvent(payload, sign(t, payload, signingSecret, time.Now()))
		require.Error(t, err)
		assert.Nil(t, event)
		assert.NotErrorIs(t, err, errs.ErrInvalidSignature)
	})

	t.Run("Missing secret", func(t *testing.T) {
		payload := checkoutPayload("")
		_, err := NewEventVerifier("", 0).VerifyEvent(payload, sign(t, payload, signingSecret, time.Now()))
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})
}

func TestToCheckoutSession(t *testing.T) {
	cs := &stripego.CheckoutSession{
		ID:            "cs_1",
		PaymentStatus: stripego.CheckoutSessionPaymentStatusUnpaid,
		LineItems: &stripego.LineItemList{Data: []*stripego.LineItem{
			{Quantity: 1, Price: &stripego.Price{Product: &stripego.Product{ID: "prod_1"}}},
		}},
	}

	session := toCheckoutSession(cs)
	assert.False(t, session.IsPaid())
	assert.False(t, session.LineItemsLoaded, "unexpanded products have no metadata")
	assert.Equal(t, "prod_1", session.LineItems[0].ProductID)
}
