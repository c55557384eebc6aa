package payment

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

// Reconciliation steps, used in logs
const (
	stepFetchSession   = "fetch_session"
	stepResolveCredits = "resolve_credits"
	stepGrant          = "grant"
	stepAward          = "award_referral"
)

// HandleWebhook verifies a delivery and reconciles completed checkout sessions.
// Only a signature failure is returned as an error; every other outcome is acknowledged.
func (u *PaymentUseCase) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (*usecase.ReconciliationOutcome, error) {
	event, err := u.verifier.VerifyEvent(payload, signatureHeader)
	if errors.Is(err, errs.ErrInvalidSignature) {
		u.logger.Warn("Webhook signature rejected", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	if err != nil {
		// Signed but undecodable: a redelivery would fail the same way
		u.logger.Error("Failed to decode signed webhook event", map[string]any{
			"error": err.Error(),
		})
		return &usecase.ReconciliationOutcome{Status: usecase.ReconciliationFailed}, nil
	}

	outcome := &usecase.ReconciliationOutcome{
		EventID:   event.ID,
		EventType: event.Type,
	}

	if event.Type != entity.EventCheckoutSessionCompleted || event.Session == nil {
		outcome.Status = usecase.ReconciliationIgnored
		u.logger.Debug("Webhook event ignored", map[string]any{
			"event_id":   event.ID,
			"event_type": event.Type,
		})
		return outcome, nil
	}

	session := event.Session
	outcome.SessionID = session.ID
	if !session.IsPaid() {
		outcome.Status = usecase.ReconciliationNotPaid
		u.logger.Info("Checkout session not paid", map[string]any{
			"event_id":       event.ID,
			"session_id":     session.ID,
			"payment_status": session.PaymentStatus,
		})
		return outcome, nil
	}

	u.reconcile(ctx, outcome, session, 0, entity.SourceWebhook)
	return outcome, nil
}

// RepairPayment re-reads a session from the provider and re-applies the grant and award.
// The processed-session key keeps a repair of an already credited session a no-op.
func (u *PaymentUseCase) RepairPayment(ctx context.Context, sessionID string, creditsOverride int64) (*usecase.ReconciliationOutcome, error) {
	if sessionID == "" {
		return nil, errs.NewValidationError("sessionId", "is required")
	}
	if creditsOverride < 0 {
		return nil, errs.ErrInvalidAmount
	}

	session, err := u.checkout.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		u.logger.Error("Failed to fetch checkout session for repair", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return nil, err
	}

	outcome := &usecase.ReconciliationOutcome{SessionID: session.ID}
	if !session.IsPaid() {
		outcome.Status = usecase.ReconciliationNotPaid
		return outcome, nil
	}

	u.reconcile(ctx, outcome, session, creditsOverride, entity.SourceAdminRepair)
	u.logger.Info("Payment repair finished", map[string]any{
		"session_id": session.ID,
		"user_id":    outcome.UserID,
		"status":     string(outcome.Status),
		"credits":    outcome.CreditsGranted,
	})
	return outcome, nil
}

// reconcile runs the client reference check, session fetch, idempotent grant and referral award
func (u *PaymentUseCase) reconcile(
	ctx context.Context,
	outcome *usecase.ReconciliationOutcome,
	session *entity.CheckoutSession,
	creditsOverride int64,
	source entity.PurchaseSource,
) {
	userID := session.ClientReferenceID
	outcome.UserID = userID
	if userID == "" {
		outcome.Status = usecase.ReconciliationMissingUser
		u.logStep(u.logger.Error, outcome.EventID, session.ID, "", stepResolveCredits, errs.ErrMissingClientReference)
		return
	}

	if !session.LineItemsLoaded {
		full, err := u.checkout.GetCheckoutSession(ctx, session.ID)
		if err != nil {
			outcome.Status = usecase.ReconciliationFailed
			u.logStep(u.logger.Error, outcome.EventID, session.ID, userID, stepFetchSession, err)
			return
		}
		if full.ClientReferenceID == "" {
			full.ClientReferenceID = userID
		}
		session = full
	}

	credits, ok := session.CreditQuantity()
	if !ok && creditsOverride > 0 {
		credits, ok = creditsOverride, true
	}

	if !ok {
		outcome.Status = usecase.ReconciliationNoCredits
		u.logStep(u.logger.Error, outcome.EventID, session.ID, userID, stepResolveCredits, errs.ErrMissingCreditMetadata)
		u.recordNoCredits(ctx, session, outcome.EventID, source)
		return
	}

	granted, err := u.grantOnce(ctx, session, outcome.EventID, credits, source)
	if err != nil {
		outcome.Status = usecase.ReconciliationFailed
		u.logStep(u.logger.Error, outcome.EventID, session.ID, userID, stepGrant, err)
		return
	}
	if granted {
		outcome.Status = usecase.ReconciliationCredited
		outcome.CreditsGranted = credits
	} else {
		outcome.Status = usecase.ReconciliationDuplicate
		u.logger.Info("Checkout session already processed", map[string]any{
			"event_id":   outcome.EventID,
			"session_id": session.ID,
			"user_id":    userID,
		})
	}

	award, err := u.referrals.AwardIfEligible(ctx, userID)
	if err != nil {
		u.logStep(u.logger.Warn, outcome.EventID, session.ID, userID, stepAward, err)
		return
	}
	outcome.ReferralAwarded = award.Awarded
}

// grantOnce claims the session and grants the credits in one transaction.
// Returns false when the session was already credited.
func (u *PaymentUseCase) grantOnce(ctx context.Context, session *entity.CheckoutSession, eventID string, credits int64, source entity.PurchaseSource) (bool, error) {
	purchase, err := entity.NewPurchase(session, eventID, credits, source, u.timeProvider)
	if err != nil {
		return false, err
	}

	var claimed bool
	err = u.unitOfWork.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		claimed, err = u.purchaseRepo.Claim(txCtx, purchase)
		if err != nil || !claimed {
			return err
		}

		balance, err := u.credits.Grant(txCtx, purchase.UserID, credits)
		if err != nil {
			return err
		}
		if err := u.accountRepo.TouchLastPurchase(txCtx, purchase.UserID, purchase.CreatedAt); err != nil {
			return err
		}

		u.logger.Info("Purchase credited", map[string]any{
			"event_id":   eventID,
			"session_id": session.ID,
			"user_id":    purchase.UserID,
			"credits":    credits,
			"balance":    balance,
			"amount":     purchase.AmountTotal.StringFixed(2),
			"currency":   purchase.Currency,
			"source":     string(source),
		})
		return nil
	})
	return claimed, err
}

// recordNoCredits keeps a trace of a paid session that could not be credited so a repair can find it
func (u *PaymentUseCase) recordNoCredits(ctx context.Context, session *entity.CheckoutSession, eventID string, source entity.PurchaseSource) {
	purchase, err := entity.NewPurchase(session, eventID, 0, source, u.timeProvider)
	if err == nil {
		_, err = u.purchaseRepo.Claim(ctx, purchase)
	}
	if err != nil {
		u.logger.Warn("Failed to record uncredited session", map[string]any{
			"event_id":   eventID,
			"session_id": session.ID,
			"error":      err.Error(),
		})
	}
}

// logStep logs a failed reconciliation step at the given level
func (u *PaymentUseCase) logStep(log func(string, map[string]any), eventID, sessionID, userID, step string, err error) {
	recErr := &errs.ReconciliationError{EventID: eventID, SessionID: sessionID, UserID: userID, Step: step, Err: err}
	log("Payment reconciliation step failed", recErr.LogFields())
}
