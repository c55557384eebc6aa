package retention_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/retention"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/core"
	externalmocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/external"
)

var now = time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)

type fixture struct {
	sweeper   *retention.RetentionUseCase
	directory *externalmocks.MockIdentityDirectory
	accounts  *repository.AccountRepository
}

func newFixture(t *testing.T, policy retention.Policy) *fixture {
	t.Helper()
	tdb := database.NewTestDB(t)
	log := logger.NewNoopLogger()
	accounts := repository.NewAccountRepository(tdb.DB, timeprovider.NewRealTimeProvider(), log)

	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(now).Maybe()
	clock.EXPECT().Since(mock.Anything).Return(core.Millisecond).Maybe()

	directory := externalmocks.NewMockIdentityDirectory(t)
	return &fixture{
		sweeper:   retention.NewRetentionUseCase(directory, accounts, clock, log, policy),
		directory: directory,
		accounts:  accounts,
	}
}

func (f *fixture) seedAccount(t *testing.T, userID string) {
	t.Helper()
	account, err := entity.NewAccount(userID, entity.StartingCredits, timeprovider.NewRealTimeProvider())
	require.NoError(t, err)
	_, err = f.accounts.CreateIfAbsent(context.Background(), account)
	require.NoError(t, err)
}

func anonymous(userID string, age time.Duration) entity.IdentityRecord {
	return entity.IdentityRecord{UserID: userID, ProviderIDs: []string{entity.AnonymousProvider}, CreatedAt: now.Add(-age)}
}

func TestSweepAnonymousAccounts(t *testing.T) {
	ctx := context.Background()
	day := 24 * time.Hour

	t.Run("Deletes only expired anonymous identities across pages", func(t *testing.T) {
		f := newFixture(t, retention.Policy{PageSize: 2})
		f.seedAccount(t, "anon-old")
		f.seedAccount(t, "member")

		f.directory.EXPECT().ListIdentities(mock.Anything, "", 2).Return([]entity.IdentityRecord{
			anonymous("anon-old", 45*day),
			{UserID: "member", Email: "m@example.com", ProviderIDs: []string{"password"}, CreatedAt: now.Add(-90 * day)},
		}, "page-2", nil).Once()
		f.directory.EXPECT().ListIdentities(mock.Anything, "page-2", 2).Return([]entity.IdentityRecord{
			anonymous("anon-fresh", 29*day),
			anonymous("anon-no-account", 31*day),
		}, "", nil).Once()
		f.directory.EXPECT().DeleteIdentity(mock.Anything, "anon-old").Return(nil).Once()
		f.directory.EXPECT().DeleteIdentity(mock.Anything, "anon-no-account").Return(nil).Once()

		result, err := f.sweeper.SweepAnonymousAccounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, result.Scanned)
		assert.Equal(t, 3, result.Anonymous)
		assert.Equal(t, 2, result.Expired)
		assert.Equal(t, 2, result.Deleted)
		assert.Equal(t, 1, result.AccountsDeleted)
		assert.Empty(t, result.Errors)

		_, err = f.accounts.GetByID(ctx, "anon-old")
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
		_, err = f.accounts.GetByID(ctx, "member")
		assert.NoError(t, err)
	})

	t.Run("Failures are counted and only the first ones reported", func(t *testing.T) {
		f := newFixture(t, retention.Policy{MaxReportedErrors: 2})

		records := make([]entity.IdentityRecord, 0, 5)
		for i := 0; i < 5; i++ {
			records = append(records, anonymous(fmt.Sprintf("anon-%d", i), 60*day))
		}
		f.directory.EXPECT().ListIdentities(mock.Anything, "", retention.DefaultPageSize).Return(records, "", nil).Once()
		f.directory.EXPECT().DeleteIdentity(mock.Anything, mock.Anything).Return(errors.New("quota exceeded")).Times(5)

		result, err := f.sweeper.SweepAnonymousAccounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, result.Expired)
		assert.Equal(t, 0, result.Deleted)
		assert.Equal(t, 5, result.ErrorCount)
		assert.Len(t, result.Errors, 2)
		assert.Contains(t, result.Errors[0], "anon-0")
	})

	t.Run("Listing failure stops the sweep", func(t *testing.T) {
		f := newFixture(t, retention.Policy{})
		f.directory.EXPECT().ListIdentities(mock.Anything, "", retention.DefaultPageSize).Return(nil, "", errors.New("unavailable")).Once()

		result, err := f.sweeper.SweepAnonymousAccounts(ctx)
		assert.Error(t, err)
		assert.Equal(t, 0, result.Scanned)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		f := newFixture(t, retention.Policy{})
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := f.sweeper.SweepAnonymousAccounts(cancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
