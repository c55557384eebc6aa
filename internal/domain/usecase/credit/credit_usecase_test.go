package credit_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/credit"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
)

type fixture struct {
	credits  *credit.CreditUseCase
	accounts *repository.AccountRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tdb := database.NewTestDB(t)
	tp := timeprovider.NewRealTimeProvider()
	log := logger.NewNoopLogger()

	accounts := repository.NewAccountRepository(tdb.DB, tp, log)
	initializer := account.NewInitializer(accounts, tp, log, 5)
	return &fixture{
		credits:  credit.NewCreditUseCase(accounts, tdb.UoW, initializer, tp, log, 3),
		accounts: accounts,
	}
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("Unknown user reads the starting grant without creating an account", func(t *testing.T) {
		credits, err := f.credits.GetBalance(ctx, "new-user")
		require.NoError(t, err)
		assert.Equal(t, int64(5), credits)

		_, err = f.accounts.GetByID(ctx, "new-user")
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("Empty user id", func(t *testing.T) {
		_, err := f.credits.GetBalance(ctx, "")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestDecrement(t *testing.T) {
	ctx := context.Background()

	t.Run("First decrement of an unknown user returns four", func(t *testing.T) {
		f := newFixture(t)

		credits, err := f.credits.Decrement(ctx, "user-a")
		require.NoError(t, err)
		assert.Equal(t, int64(4), credits)
	})

	t.Run("Exhausted balance is refused and left unchanged", func(t *testing.T) {
		f := newFixture(t)

		for want := int64(4); want >= 0; want-- {
			credits, err := f.credits.Decrement(ctx, "user-a")
			require.NoError(t, err)
			assert.Equal(t, want, credits)
		}

		credits, err := f.credits.Decrement(ctx, "user-a")
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		assert.Equal(t, "INSUFFICIENT", errs.Reason(err))
		assert.Equal(t, int64(0), credits)

		balance, err := f.credits.GetBalance(ctx, "user-a")
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("Concurrent decrements never overspend", func(t *testing.T) {
		f := newFixture(t)

		var wg sync.WaitGroup
		var mu sync.Mutex
		succeeded := 0
		for i := 0; i < 12; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := f.credits.Decrement(ctx, "user-a"); err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 5, succeeded)
		balance, err := f.credits.GetBalance(ctx, "user-a")
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})
}

func TestGrant(t *testing.T) {
	ctx := context.Background()

	t.Run("Grant to an unknown user creates the account with the amount", func(t *testing.T) {
		f := newFixture(t)

		credits, err := f.credits.Grant(ctx, "buyer", 50)
		require.NoError(t, err)
		assert.Equal(t, int64(50), credits)

		credits, err = f.credits.Grant(ctx, "buyer", 25)
		require.NoError(t, err)
		assert.Equal(t, int64(75), credits)
	})

	t.Run("Grant after decrement adds to the remaining balance", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.credits.Decrement(ctx, "user-a")
		require.NoError(t, err)

		credits, err := f.credits.Grant(ctx, "user-a", 10)
		require.NoError(t, err)
		assert.Equal(t, int64(14), credits)
	})

	t.Run("Non-positive amounts are rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.credits.Grant(ctx, "user-a", 0)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		_, err = f.credits.Grant(ctx, "user-a", -3)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestAdjust(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	set := int64(20)
	credits, err := f.credits.Adjust(ctx, "user-a", usecase.CreditAdjustment{Set: &set, Note: "support ticket"})
	require.NoError(t, err)
	assert.Equal(t, int64(20), credits)

	credits, err = f.credits.Adjust(ctx, "user-a", usecase.CreditAdjustment{Delta: -15})
	require.NoError(t, err)
	assert.Equal(t, int64(5), credits)

	_, err = f.credits.Adjust(ctx, "user-a", usecase.CreditAdjustment{Delta: -6})
	assert.ErrorIs(t, err, errs.ErrInsufficientCredits)

	credits, err = f.credits.Adjust(ctx, "user-a", usecase.CreditAdjustment{Delta: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(8), credits)

	negative := int64(-1)
	_, err = f.credits.Adjust(ctx, "user-a", usecase.CreditAdjustment{Set: &negative})
	assert.ErrorIs(t, err, errs.ErrNegativeCredits)

	_, err = f.credits.Adjust(ctx, "user-a", usecase.CreditAdjustment{})
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}
