package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/repository"
)

func TestRateLimitRepository_Window(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDB(t)
	repo := repository.NewRateLimitRepository(tdb.DB)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Record(ctx, "generate:user-a", base.Add(time.Duration(i)*10*time.Second)))
	}
	require.NoError(t, repo.Record(ctx, "generate:user-b", base))

	count, err := repo.CountSince(ctx, "generate:user-a", base.Add(5*time.Second))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	oldest, err := repo.OldestSince(ctx, "generate:user-a", base.Add(5*time.Second))
	require.NoError(t, err)
	assert.True(t, oldest.Equal(base.Add(10*time.Second)))

	require.NoError(t, repo.PurgeBefore(ctx, "generate:user-a", base.Add(15*time.Second)))
	count, err = repo.CountSince(ctx, "generate:user-a", base.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountSince(ctx, "generate:user-b", base.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = repo.OldestSince(ctx, "feedback:nobody", base)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
