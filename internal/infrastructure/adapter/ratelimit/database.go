package ratelimit

import (
	"context"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
)

var _ external.RateLimiter = (*DatabaseLimiter)(nil)

// DatabaseLimiter shares sliding windows across instances through the rate_limit_hits table
type DatabaseLimiter struct {
	repo         persistence.RateLimitRepository
	unitOfWork   persistence.UnitOfWork
	timeProvider coreport.TimeProvider
}

// NewDatabaseLimiter creates a limiter backed by the database
func NewDatabaseLimiter(repo persistence.RateLimitRepository, unitOfWork persistence.UnitOfWork, timeProvider coreport.TimeProvider) *DatabaseLimiter {
	return &DatabaseLimiter{
		repo:         repo,
		unitOfWork:   unitOfWork,
		timeProvider: timeProvider,
	}
}

// Allow purges, counts and records inside one transaction
func (d *DatabaseLimiter) Allow(ctx context.Context, key string, policy external.RateLimitPolicy) (*external.RateLimitDecision, error) {
	now := d.timeProvider.Now()
	windowStart := now.Add(-policy.Window)
	bucket := policy.Name + ":" + key

	var decision *external.RateLimitDecision
	err := d.unitOfWork.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := d.repo.PurgeBefore(txCtx, bucket, windowStart); err != nil {
			return err
		}

		count, err := d.repo.CountSince(txCtx, bucket, windowStart)
		if err != nil {
			return err
		}
		if int(count) >= policy.Limit {
			oldest, err := d.repo.OldestSince(txCtx, bucket, windowStart)
			if err != nil {
				return err
			}
			decision = &external.RateLimitDecision{
				Allowed:    false,
				RetryAfter: retryAfter(oldest, policy.Window, now),
			}
			return nil
		}

		if err := d.repo.Record(txCtx, bucket, now); err != nil {
			return err
		}
		decision = &external.RateLimitDecision{
			Allowed:   true,
			Remaining: policy.Limit - int(count) - 1,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decision, nil
}
