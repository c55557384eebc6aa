package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency.
// Repositories pick up the transaction carried by the context.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// WithinTransaction runs fn inside a transaction, committing when fn returns nil.
	// When ctx already carries a transaction fn joins it.
	WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}
