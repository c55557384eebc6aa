package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// PurchaseRepository stores processed checkout sessions.
// The session id is the idempotency key of credit grants.
type PurchaseRepository interface {
	// Claim records the session as processed.
	// Returns true when the caller owns the grant: the session was unseen, or it was
	// recorded without credits and the new purchase carries credits.
	Claim(ctx context.Context, purchase *entity.Purchase) (bool, error)

	// GetBySessionID retrieves a processed session
	//
	// Possible errors:
	// - ErrPurchaseNotFound: If the session was never processed
	GetBySessionID(ctx context.Context, sessionID string) (*entity.Purchase, error)

	// ListRecent lists the most recently processed sessions
	ListRecent(ctx context.Context, limit int) ([]*entity.Purchase, error)

	// CountByStatus counts processed sessions per status
	CountByStatus(ctx context.Context) (map[entity.PurchaseStatus]int64, error)
}
