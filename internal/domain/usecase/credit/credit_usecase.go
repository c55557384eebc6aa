package credit

import (
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/account"
)

var _ usecase.CreditUseCase = (*CreditUseCase)(nil)

// defaultDecrementRetries bounds the create-then-retry loop of Decrement
const defaultDecrementRetries = 3

// CreditUseCase handles balance operations
type CreditUseCase struct {
	accountRepo      persistence.AccountRepository
	unitOfWork       persistence.UnitOfWork
	initializer      *account.Initializer
	timeProvider     coreport.TimeProvider
	logger           coreport.Logger
	decrementRetries int
}

// NewCreditUseCase creates a new CreditUseCase
func NewCreditUseCase(
	accountRepo persistence.AccountRepository,
	unitOfWork persistence.UnitOfWork,
	initializer *account.Initializer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	decrementRetries int,
) *CreditUseCase {
	if decrementRetries <= 0 {
		decrementRetries = defaultDecrementRetries
	}
	return &CreditUseCase{
		accountRepo:      accountRepo,
		unitOfWork:       unitOfWork,
		initializer:      initializer,
		timeProvider:     timeProvider,
		logger:           logger,
		decrementRetries: decrementRetries,
	}
}
