package payment

import (
	"context"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

var _ usecase.PaymentUseCase = (*PaymentUseCase)(nil)

// defaultRecentLimit caps diagnostics listings
const defaultRecentLimit = 20

// Secrets reports which provider credentials are configured, without exposing them
type Secrets struct {
	SigningSecretConfigured bool
	APIKeyConfigured        bool
}

// PaymentUseCase reconciles checkout sessions into credit grants
type PaymentUseCase struct {
	verifier     external.PaymentEventVerifier
	checkout     external.CheckoutProvider
	credits      usecase.CreditUseCase
	referrals    usecase.ReferralUseCase
	accountRepo  persistence.AccountRepository
	purchaseRepo persistence.PurchaseRepository
	unitOfWork   persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	secrets      Secrets
}

// NewPaymentUseCase creates a new PaymentUseCase
func NewPaymentUseCase(
	verifier external.PaymentEventVerifier,
	checkout external.CheckoutProvider,
	credits usecase.CreditUseCase,
	referrals usecase.ReferralUseCase,
	accountRepo persistence.AccountRepository,
	purchaseRepo persistence.PurchaseRepository,
	unitOfWork persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	secrets Secrets,
) *PaymentUseCase {
	return &PaymentUseCase{
		verifier:     verifier,
		checkout:     checkout,
		credits:      credits,
		referrals:    referrals,
		accountRepo:  accountRepo,
		purchaseRepo: purchaseRepo,
		unitOfWork:   unitOfWork,
		timeProvider: timeProvider,
		logger:       logger,
		secrets:      secrets,
	}
}

// Diagnostics reports configuration presence and processed session counts
func (u *PaymentUseCase) Diagnostics(ctx context.Context, recentLimit int) (*usecase.WebhookDiagnostics, error) {
	if recentLimit <= 0 {
		recentLimit = defaultRecentLimit
	}

	counts, err := u.purchaseRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := u.purchaseRepo.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	return &usecase.WebhookDiagnostics{
		SigningSecretConfigured: u.secrets.SigningSecretConfigured,
		APIKeyConfigured:        u.secrets.APIKeyConfigured,
		CountsByStatus:          counts,
		Recent:                  recent,
	}, nil
}
