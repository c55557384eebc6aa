package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
)

// RoleOperator is the role claim required on admin tokens
const RoleOperator = "operator"

var _ external.OperatorVerifier = (*OperatorTokens)(nil)

type operatorClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// OperatorTokens issues and verifies HS256 operator tokens.
// The signing secret is distinct from the one used for user identity tokens.
type OperatorTokens struct {
	secret       []byte
	issuer       string
	skew         time.Duration
	timeProvider coreport.TimeProvider
}

// NewOperatorTokens creates an operator token verifier
func NewOperatorTokens(secret, issuer string, skew time.Duration, timeProvider coreport.TimeProvider) (*OperatorTokens, error) {
	if len(secret) < 32 {
		return nil, errors.New("operator token secret must be at least 32 bytes")
	}
	return &OperatorTokens{
		secret:       []byte(secret),
		issuer:       issuer,
		skew:         skew,
		timeProvider: timeProvider,
	}, nil
}

// Issue signs an operator token for subject
func (o *OperatorTokens) Issue(subject string, ttl time.Duration) (string, error) {
	now := o.timeProvider.Now()
	c := operatorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    o.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: RoleOperator,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(o.secret)
}

// VerifyOperator validates the signature, expiry, issuer and role
func (o *OperatorTokens) VerifyOperator(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", errs.ErrUnauthorized
	}

	c := &operatorClaims{}
	_, err := jwt.ParseWithClaims(token, c, func(*jwt.Token) (any, error) {
		return o.secret, nil
	}, o.parserOptions()...)
	if err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrUnauthorized, err.Error())
	}
	if c.Role != RoleOperator {
		return "", errs.ErrForbidden
	}
	return c.Subject, nil
}

func (o *OperatorTokens) parserOptions() []jwt.ParserOption {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(o.skew),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(o.timeProvider.Now),
	}
	if o.issuer != "" {
		opts = append(opts, jwt.WithIssuer(o.issuer))
	}
	return opts
}
