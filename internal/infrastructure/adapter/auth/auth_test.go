package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/core"
)

const (
	operatorSecret = "operator-secret-operator-secret-0123"
	identitySecret = "identity-secret-identity-secret-0123"
)

func fixedClock(t *testing.T, at time.Time) *coremocks.MockTimeProvider {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(at).Maybe()
	return clock
}

func TestOperatorTokens(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	tokens, err := NewOperatorTokens(operatorSecret, "credit-ledger", 30*time.Second, fixedClock(t, now))
	require.NoError(t, err)

	t.Run("Valid token", func(t *testing.T) {
		token, err := tokens.Issue("ops@example.com", time.Hour)
		require.NoError(t, err)

		subject, err := tokens.VerifyOperator(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "ops@example.com", subject)
	})

	t.Run("Expired token", func(t *testing.T) {
		token, err := tokens.Issue("ops", -time.Minute)
		require.NoError(t, err)

		_, err = tokens.VerifyOperator(ctx, token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		other, err := NewOperatorTokens(identitySecret, "credit-ledger", 0, fixedClock(t, now))
		require.NoError(t, err)
		token, err := other.Issue("ops", time.Hour)
		require.NoError(t, err)

		_, err = tokens.VerifyOperator(ctx, token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Token without operator role", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, operatorClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-a",
				Issuer:    "credit-ledger",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
			Role: "user",
		}).SignedString([]byte(operatorSecret))
		require.NoError(t, err)

		_, err = tokens.VerifyOperator(ctx, token)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Missing token", func(t *testing.T) {
		_, err := tokens.VerifyOperator(ctx, "")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Short secret is rejected", func(t *testing.T) {
		_, err := NewOperatorTokens("short", "", 0, fixedClock(t, now))
		assert.Error(t, err)
	})
}

func TestLocalIdentityTokens(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	tokens, err := NewLocalIdentityTokens(identitySecret, "", 0, fixedClock(t, now))
	require.NoError(t, err)

	token, err := tokens.Issue(entity.Identity{UserID: "user-a", Email: "a@example.com", Provider: "password"}, time.Hour)
	require.NoError(t, err)

	identity, err := tokens.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-a", identity.UserID)
	assert.Equal(t, "a@example.com", identity.Email)
	assert.False(t, identity.Anonymous)

	anonToken, err := tokens.Issue(entity.Identity{UserID: "anon-1", Anonymous: true}, time.Hour)
	require.NoError(t, err)
	anon, err := tokens.Verify(ctx, anonToken)
	require.NoError(t, err)
	assert.True(t, anon.Anonymous)

	_, err = tokens.Verify(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	operators, err := NewOperatorTokens(operatorSecret, "", 0, fixedClock(t, now))
	require.NoError(t, err)
	opToken, err := operators.Issue("ops", time.Hour)
	require.NoError(t, err)
	_, err = tokens.Verify(ctx, opToken)
	assert.ErrorIs(t, err, errs.ErrUnauthorized, "operator tokens must not authenticate users")
}
