package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// SignatureHeader is the header carrying the payment provider's signature
const SignatureHeader = "Stripe-Signature"

// maxWebhookBody bounds the payload read from the provider
const maxWebhookBody = 64 << 10

// WebhookHandler handles payment provider deliveries
type WebhookHandler struct {
	payments usecase.PaymentUseCase
	logger   coreport.Logger
	timeout  time.Duration
}

// NewWebhookHandler creates a new webhook handler instance.
// timeout bounds reconciliation, which is detached from the delivery connection.
func NewWebhookHandler(payments usecase.PaymentUseCase, logger coreport.Logger, timeout time.Duration) *WebhookHandler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &WebhookHandler{
		payments: payments,
		logger:   logger,
		timeout:  timeout,
	}
}

// HandleStripe handles POST /api/webhooks/stripe
func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		h.logger.Warn("Failed to read webhook body", map[string]any{
			"error": err.Error(),
		})
		badRequest(c, err, false)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), h.timeout)
	defer cancel()

	outcome, err := h.payments.HandleWebhook(ctx, payload, c.GetHeader(SignatureHeader))
	if err != nil {
		if errors.Is(err, errs.ErrInvalidSignature) {
			respondError(c, err)
			return
		}
		// Acknowledged anyway, the provider would only redeliver the same event
		h.logger.Error("Webhook processing failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusOK, dto.WebhookResponse{Received: true})
		return
	}

	h.logger.Debug("Webhook acknowledged", map[string]any{
		"event_id":   outcome.EventID,
		"event_type": outcome.EventType,
		"session_id": outcome.SessionID,
		"status":     string(outcome.Status),
	})
	c.JSON(http.StatusOK, dto.WebhookResponse{Received: true})
}
