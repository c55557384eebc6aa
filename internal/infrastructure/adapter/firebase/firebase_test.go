package firebase

import (
	"context"
	"errors"
	"testing"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

type stubVerifier struct {
	token *auth.Token
	err   error
}

func (s stubVerifier) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return s.token, s.err
}

func TestIdentityVerifier(t *testing.T) {
	ctx := context.Background()

	t.Run("Maps token claims", func(t *testing.T) {
		tok := &auth.Token{UID: "user-a", Claims: map[string]interface{}{"email": "a@example.com"}}
		tok.Firebase.SignInProvider = "google.com"

		identity, err := NewIdentityVerifier(stubVerifier{token: tok}).Verify(ctx, "id-token")
		require.NoError(t, err)
		assert.Equal(t, "user-a", identity.UserID)
		assert.Equal(t, "a@example.com", identity.Email)
		assert.False(t, identity.Anonymous)
	})

	t.Run("Anonymous sign-in", func(t *testing.T) {
		tok := &auth.Token{UID: "anon-1", Claims: map[string]interface{}{}}
		tok.Firebase.SignInProvider = "anonymous"

		identity, err := NewIdentityVerifier(stubVerifier{token: tok}).Verify(ctx, "id-token")
		require.NoError(t, err)
		assert.True(t, identity.Anonymous)
		assert.Empty(t, identity.Email)
	})

	t.Run("Rejected token", func(t *testing.T) {
		_, err := NewIdentityVerifier(stubVerifier{err: errors.New("expired")}).Verify(ctx, "id-token")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Missing token", func(t *testing.T) {
		_, err := NewIdentityVerifier(stubVerifier{}).Verify(ctx, "")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestToRecord(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	anonymous := toRecord(&auth.UserRecord{
		UserInfo:     &auth.UserInfo{UID: "anon-1"},
		UserMetadata: &auth.UserMetadata{CreationTimestamp: created.UnixMilli()},
	})
	assert.Equal(t, "anon-1", anonymous.UserID)
	assert.Equal(t, created, anonymous.CreatedAt)
	assert.True(t, anonymous.IsAnonymous())

	member := toRecord(&auth.UserRecord{
		UserInfo:         &auth.UserInfo{UID: "user-a", Email: "a@example.com"},
		ProviderUserInfo: []*auth.UserInfo{{ProviderID: "password"}},
	})
	assert.Equal(t, []string{"password"}, member.ProviderIDs)
	assert.False(t, member.IsAnonymous())
}
