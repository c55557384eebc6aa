package account_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
	usecasemocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/usecase"
)

func newInitializer(t *testing.T) *account.Initializer {
	t.Helper()
	tdb := database.NewTestDB(t)
	tp := timeprovider.NewRealTimeProvider()
	log := logger.NewNoopLogger()
	return account.NewInitializer(repository.NewAccountRepository(tdb.DB, tp, log), tp, log, entity.StartingCredits)
}

func TestEnsure(t *testing.T) {
	ctx := context.Background()
	initializer := newInitializer(t)

	created, isNew, err := initializer.Ensure(ctx, "user-a", "a@example.com")
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, int64(5), created.Credits())

	again, isNew, err := initializer.Ensure(ctx, "user-a", "other@example.com")
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, "a@example.com", again.Email)

	_, _, err = initializer.Ensure(ctx, "", "")
	assert.ErrorIs(t, err, errs.ErrInvalidUserID)
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	identity := &entity.Identity{UserID: "user-b", Email: "b@example.com"}

	t.Run("Without referral code", func(t *testing.T) {
		referrals := usecasemocks.NewMockReferralUseCase(t)
		uc := account.NewAccountUseCase(newInitializer(t), referrals, logger.NewNoopLogger())

		result, err := uc.Signup(ctx, identity, "")
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, int64(5), result.Account.Credits())
		assert.Empty(t, result.ReferrerID)
	})

	t.Run("With referral code", func(t *testing.T) {
		referrals := usecasemocks.NewMockReferralUseCase(t)
		referrals.EXPECT().TrackReferral(mock.Anything, "user-b", "AB23CD").Return("user-a", nil).Once()
		uc := account.NewAccountUseCase(newInitializer(t), referrals, logger.NewNoopLogger())

		result, err := uc.Signup(ctx, identity, "AB23CD")
		require.NoError(t, err)
		assert.Equal(t, "user-a", result.ReferrerID)
		assert.Empty(t, result.ReferralError)
	})

	t.Run("Referral failure does not fail signup", func(t *testing.T) {
		referrals := usecasemocks.NewMockReferralUseCase(t)
		referrals.EXPECT().TrackReferral(mock.Anything, "user-b", "ZZZZZZ").Return("", errs.ErrInvalidReferralCode).Once()
		uc := account.NewAccountUseCase(newInitializer(t), referrals, logger.NewNoopLogger())

		result, err := uc.Signup(ctx, identity, "ZZZZZZ")
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, errs.ReasonInvalidCode, result.ReferralError)
	})

	t.Run("Missing identity", func(t *testing.T) {
		uc := account.NewAccountUseCase(newInitializer(t), usecasemocks.NewMockReferralUseCase(t), logger.NewNoopLogger())

		_, err := uc.Signup(ctx, nil, "")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
