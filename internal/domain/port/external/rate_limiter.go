package external

import (
	"context"
	"time"
)

// RateLimitPolicy is a sliding window budget
type RateLimitPolicy struct {
	Name   string
	Limit  int
	Window time.Duration
}

// RateLimitDecision is the outcome of one admission check
type RateLimitDecision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter admits requests per identifier using a sliding window:
// hits inside the window are counted, a request is admitted while the count is below the limit,
// and admitted requests are recorded.
type RateLimiter interface {
	Allow(ctx context.Context, key string, policy RateLimitPolicy) (*RateLimitDecision, error)
}
