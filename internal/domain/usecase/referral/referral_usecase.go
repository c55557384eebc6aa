package referral

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/account"
)

var _ usecase.ReferralUseCase = (*ReferralUseCase)(nil)

// defaultMaxCodeAttempts bounds referral code generation
const defaultMaxCodeAttempts = 10

// CodeSource produces candidate referral codes
type CodeSource func() (string, error)

// ReferralUseCase handles referral codes, tracking and bonuses
type ReferralUseCase struct {
	accountRepo  persistence.AccountRepository
	referralRepo persistence.ReferralRepository
	unitOfWork   persistence.UnitOfWork
	initializer  *account.Initializer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	bonus        int64
	maxAttempts  int
	newCode      CodeSource
}

// Option configures a ReferralUseCase
type Option func(*ReferralUseCase)

// WithCodeSource replaces the random code source
func WithCodeSource(source CodeSource) Option {
	return func(u *ReferralUseCase) {
		u.newCode = source
	}
}

// NewReferralUseCase creates a new ReferralUseCase
func NewReferralUseCase(
	accountRepo persistence.AccountRepository,
	referralRepo persistence.ReferralRepository,
	unitOfWork persistence.UnitOfWork,
	initializer *account.Initializer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	bonus int64,
	maxAttempts int,
	opts ...Option,
) *ReferralUseCase {
	if bonus <= 0 {
		bonus = entity.ReferralBonus
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxCodeAttempts
	}

	u := &ReferralUseCase{
		accountRepo:  accountRepo,
		referralRepo: referralRepo,
		unitOfWork:   unitOfWork,
		initializer:  initializer,
		timeProvider: timeProvider,
		logger:       logger,
		bonus:        bonus,
		maxAttempts:  maxAttempts,
		newCode:      entity.NewReferralCode,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ListByReferrer returns the referral records of a referrer
func (u *ReferralUseCase) ListByReferrer(ctx context.Context, referrerID string) ([]*entity.Referral, error) {
	if referrerID == "" {
		return nil, errs.ErrInvalidUserID
	}
	return u.referralRepo.ListByReferrer(ctx, referrerID)
}

func summaryOf(a *entity.Account) *usecase.ReferralSummary {
	return &usecase.ReferralSummary{
		ReferralCode:  a.ReferralCode,
		ReferralCount: a.ReferralCount,
		CreditsEarned: a.CreditsEarnedFromReferrals,
	}
}
