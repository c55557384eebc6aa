package main

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// emptyDirectory stands in for the identity directory when tokens are issued locally
type emptyDirectory struct{}

func (emptyDirectory) ListIdentities(context.Context, string, int) ([]entity.IdentityRecord, string, error) {
	return nil, "", nil
}

func (emptyDirectory) DeleteIdentity(context.Context, string) error {
	return nil
}
