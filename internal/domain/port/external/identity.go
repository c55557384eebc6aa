package external

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// IdentityVerifier resolves bearer identity tokens issued by the identity provider
type IdentityVerifier interface {
	// Verify validates the token and returns the caller
	//
	// Possible errors:
	// - ErrUnauthorized: If the token is missing, expired or forged
	Verify(ctx context.Context, token string) (*entity.Identity, error)
}

// IdentityDirectory enumerates and deletes identity provider records
type IdentityDirectory interface {
	// ListIdentities returns one page of records and the token of the next page ("" when done)
	ListIdentities(ctx context.Context, pageToken string, pageSize int) ([]entity.IdentityRecord, string, error)

	// DeleteIdentity removes the identity record of a user
	DeleteIdentity(ctx context.Context, userID string) error
}

// OperatorVerifier authenticates operator tokens of the admin surface
type OperatorVerifier interface {
	// VerifyOperator validates the token and returns the operator subject
	//
	// Possible errors:
	// - ErrUnauthorized: If the token is missing, expired or forged
	// - ErrForbidden: If the token does not carry the operator role
	VerifyOperator(ctx context.Context, token string) (string, error)
}
