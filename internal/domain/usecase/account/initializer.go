package account

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

var _ usecase.AccountInitializer = (*Initializer)(nil)

// Initializer creates accounts with the starting grant
type Initializer struct {
	accountRepo   persistence.AccountRepository
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	startingGrant int64
}

// NewInitializer creates a new Initializer
func NewInitializer(
	accountRepo persistence.AccountRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	startingGrant int64,
) *Initializer {
	if startingGrant < 0 {
		startingGrant = entity.StartingCredits
	}
	return &Initializer{
		accountRepo:   accountRepo,
		timeProvider:  timeProvider,
		logger:        logger,
		startingGrant: startingGrant,
	}
}

// StartingGrant returns the balance new accounts start with
func (i *Initializer) StartingGrant() int64 {
	return i.startingGrant
}

// Ensure inserts the account if absent and returns the stored one
func (i *Initializer) Ensure(ctx context.Context, userID, email string) (*entity.Account, bool, error) {
	if userID == "" {
		return nil, false, errs.ErrInvalidUserID
	}

	account, err := entity.NewAccount(userID, i.startingGrant, i.timeProvider)
	if err != nil {
		return nil, false, err
	}
	account.Email = email

	created, err := i.accountRepo.CreateIfAbsent(ctx, account)
	if err != nil {
		return nil, false, err
	}
	if created {
		i.logger.Info("Account initialized", map[string]any{
			"user_id": userID,
			"credits": i.startingGrant,
		})
		return account, true, nil
	}

	stored, err := i.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return stored, false, nil
}
