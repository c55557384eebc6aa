package persistence

import (
	"context"
	"time"
)

// RateLimitRepository stores request timestamps for the shared sliding-window limiter
type RateLimitRepository interface {
	// PurgeBefore drops hits of key older than before
	PurgeBefore(ctx context.Context, key string, before time.Time) error

	// CountSince counts hits of key at or after since
	CountSince(ctx context.Context, key string, since time.Time) (int64, error)

	// OldestSince returns the oldest hit of key at or after since
	OldestSince(ctx context.Context, key string, since time.Time) (time.Time, error)

	// Record stores one hit
	Record(ctx context.Context, key string, at time.Time) error
}
