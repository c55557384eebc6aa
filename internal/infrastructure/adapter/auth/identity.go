package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
)

var _ external.IdentityVerifier = (*LocalIdentityTokens)(nil)

type identityClaims struct {
	jwt.RegisteredClaims
	Email    string `json:"email,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// LocalIdentityTokens verifies HS256 user tokens for deployments without the hosted identity provider
type LocalIdentityTokens struct {
	secret       []byte
	issuer       string
	skew         time.Duration
	timeProvider coreport.TimeProvider
}

// NewLocalIdentityTokens creates a local identity token verifier
func NewLocalIdentityTokens(secret, issuer string, skew time.Duration, timeProvider coreport.TimeProvider) (*LocalIdentityTokens, error) {
	if len(secret) < 32 {
		return nil, errors.New("identity token secret must be at least 32 bytes")
	}
	return &LocalIdentityTokens{
		secret:       []byte(secret),
		issuer:       issuer,
		skew:         skew,
		timeProvider: timeProvider,
	}, nil
}

// Issue signs an identity token
func (l *LocalIdentityTokens) Issue(identity entity.Identity, ttl time.Duration) (string, error) {
	now := l.timeProvider.Now()
	provider := identity.Provider
	if identity.Anonymous {
		provider = entity.AnonymousProvider
	}
	c := identityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    l.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:    identity.Email,
		Provider: provider,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(l.secret)
}

// Verify validates a user token and returns the caller
func (l *LocalIdentityTokens) Verify(_ context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, errs.ErrUnauthorized
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(l.skew),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(l.timeProvider.Now),
	}
	if l.issuer != "" {
		opts = append(opts, jwt.WithIssuer(l.issuer))
	}

	c := &identityClaims{}
	if _, err := jwt.ParseWithClaims(token, c, func(*jwt.Token) (any, error) {
		return l.secret, nil
	}, opts...); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnauthorized, err.Error())
	}
	if c.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", errs.ErrUnauthorized)
	}

	return &entity.Identity{
		UserID:    c.Subject,
		Email:     c.Email,
		Provider:  c.Provider,
		Anonymous: c.Provider == entity.AnonymousProvider,
	}, nil
}
