package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// ReconciliationStatus describes how a payment event ended
type ReconciliationStatus string

// ReconciliationStatus constants
const (
	ReconciliationIgnored     ReconciliationStatus = "ignored"
	ReconciliationNotPaid     ReconciliationStatus = "not_paid"
	ReconciliationCredited    ReconciliationStatus = "credited"
	ReconciliationDuplicate   ReconciliationStatus = "duplicate"
	ReconciliationNoCredits   ReconciliationStatus = "no_credits"
	ReconciliationMissingUser ReconciliationStatus = "missing_client_reference"
	ReconciliationFailed      ReconciliationStatus = "failed"
)

// ReconciliationOutcome summarizes one reconciliation run
type ReconciliationOutcome struct {
	EventID         string
	EventType       string
	SessionID       string
	UserID          string
	Status          ReconciliationStatus
	CreditsGranted  int64
	ReferralAwarded bool
}

// WebhookDiagnostics summarizes webhook configuration and processed sessions
type WebhookDiagnostics struct {
	SigningSecretConfigured bool
	APIKeyConfigured        bool
	CountsByStatus          map[entity.PurchaseStatus]int64
	Recent                  []*entity.Purchase
}

// PaymentUseCase defines payment reconciliation operations
type PaymentUseCase interface {
	// HandleWebhook verifies and reconciles a delivery. Only signature failures are returned as errors.
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (*ReconciliationOutcome, error)

	// RepairPayment re-runs reconciliation for a session from the provider's stored state.
	// creditsOverride is used when positive and the product declares no credits.
	RepairPayment(ctx context.Context, sessionID string, creditsOverride int64) (*ReconciliationOutcome, error)

	// Diagnostics reports webhook health for operators
	Diagnostics(ctx context.Context, recentLimit int) (*WebhookDiagnostics, error)
}
