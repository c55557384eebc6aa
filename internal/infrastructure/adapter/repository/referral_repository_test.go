package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
)

func TestReferralRepository_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDB(t)
	repo := repository.NewReferralRepository(tdb.DB, logger.NewNoopLogger())
	tp := timeprovider.NewRealTimeProvider()

	referral, err := entity.NewReferral("referrer", "referred", "AB23CD", tp)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, referral))

	stored, err := repo.GetByReferredUser(ctx, "referred")
	require.NoError(t, err)
	assert.Equal(t, referral.ID, stored.ID)
	assert.Equal(t, entity.ReferralPending, stored.Status)
	assert.False(t, stored.CreditsAwarded)

	second, err := entity.NewReferral("other-referrer", "referred", "ZZ99ZZ", tp)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, second), errs.ErrAlreadyReferred)

	_, err = repo.GetByReferredUser(ctx, "nobody")
	assert.ErrorIs(t, err, errs.ErrReferralNotFound)
}

func TestReferralRepository_MarkAwardedOnce(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDB(t)
	repo := repository.NewReferralRepository(tdb.DB, logger.NewNoopLogger())
	tp := timeprovider.NewRealTimeProvider()

	referral, err := entity.NewReferral("referrer", "referred", "AB23CD", tp)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, referral))

	pending, err := repo.FindUnawardedByReferredUser(ctx, "referred")
	require.NoError(t, err)
	require.Len(t, pending, 1)

	flipped, err := repo.MarkAwarded(ctx, referral.ID, time.Now())
	require.NoError(t, err)
	assert.True(t, flipped)

	flipped, err = repo.MarkAwarded(ctx, referral.ID, time.Now())
	require.NoError(t, err)
	assert.False(t, flipped)

	pending, err = repo.FindUnawardedByReferredUser(ctx, "referred")
	require.NoError(t, err)
	assert.Empty(t, pending)

	stored, err := repo.GetByReferredUser(ctx, "referred")
	require.NoError(t, err)
	assert.Equal(t, entity.ReferralCompleted, stored.Status)
	assert.True(t, stored.CreditsAwarded)
	assert.NotNil(t, stored.CompletedAt)
}

func TestReferralRepository_ListByReferrer(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDB(t)
	repo := repository.NewReferralRepository(tdb.DB, logger.NewNoopLogger())
	tp := timeprovider.NewRealTimeProvider()

	for _, referred := range []string{"b", "c", "d"} {
		referral, err := entity.NewReferral("a", referred, "AB23CD", tp)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, referral))
	}

	referrals, err := repo.ListByReferrer(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, referrals, 3)

	referrals, err = repo.ListByReferrer(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, referrals)
}
