package firebase

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
)

var _ external.IdentityVerifier = (*IdentityVerifier)(nil)

// tokenVerifier is the subset of *auth.Client used to check ID tokens
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// IdentityVerifier resolves Firebase ID tokens
type IdentityVerifier struct {
	client tokenVerifier
}

// NewIdentityVerifier creates a verifier backed by the auth client
func NewIdentityVerifier(client tokenVerifier) *IdentityVerifier {
	return &IdentityVerifier{client: client}
}

// Verify checks the ID token signature, audience and expiry
func (v *IdentityVerifier) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, errs.ErrUnauthorized
	}

	tok, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnauthorized, err.Error())
	}
	return identityFromToken(tok), nil
}

func identityFromToken(tok *auth.Token) *entity.Identity {
	email, _ := tok.Claims["email"].(string)
	provider := tok.Firebase.SignInProvider
	return &entity.Identity{
		UserID:    tok.UID,
		Email:     email,
		Provider:  provider,
		Anonymous: provider == entity.AnonymousProvider,
	}
}
