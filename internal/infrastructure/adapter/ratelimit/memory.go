package ratelimit

import (
	"context"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
)

var _ external.RateLimiter = (*MemoryLimiter)(nil)

// MemoryLimiter keeps per-key timestamp lists in process memory.
// Only correct for a single instance; use DatabaseLimiter behind a load balancer.
type MemoryLimiter struct {
	mu           sync.Mutex
	hits         map[string][]time.Time
	timeProvider coreport.TimeProvider
}

// NewMemoryLimiter creates an in-process limiter
func NewMemoryLimiter(timeProvider coreport.TimeProvider) *MemoryLimiter {
	return &MemoryLimiter{
		hits:         make(map[string][]time.Time),
		timeProvider: timeProvider,
	}
}

// Allow drops timestamps outside the window, admits while below the limit and records admitted hits
func (m *MemoryLimiter) Allow(_ context.Context, key string, policy external.RateLimitPolicy) (*external.RateLimitDecision, error) {
	now := m.timeProvider.Now()
	windowStart := now.Add(-policy.Window)
	bucket := policy.Name + ":" + key

	m.mu.Lock()
	defer m.mu.Unlock()

	hits := prune(m.hits[bucket], windowStart)
	if len(hits) >= policy.Limit {
		m.hits[bucket] = hits
		return &external.RateLimitDecision{
			Allowed:    false,
			RetryAfter: retryAfter(hits[0], policy.Window, now),
		}, nil
	}

	hits = append(hits, now)
	m.hits[bucket] = hits
	return &external.RateLimitDecision{
		Allowed:   true,
		Remaining: policy.Limit - len(hits),
	}, nil
}

// Cleanup removes keys with no hits newer than maxWindow
func (m *MemoryLimiter) Cleanup(maxWindow time.Duration) int {
	cutoff := m.timeProvider.Now().Add(-maxWindow)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, hits := range m.hits {
		if len(hits) == 0 || !hits[len(hits)-1].After(cutoff) {
			delete(m.hits, key)
			removed++
		}
	}
	return removed
}

// prune drops timestamps before windowStart, hits are in ascending order
func prune(hits []time.Time, windowStart time.Time) []time.Time {
	i := 0
	for i < len(hits) && hits[i].Before(windowStart) {
		i++
	}
	return hits[i:]
}

func retryAfter(oldest time.Time, window time.Duration, now time.Time) time.Duration {
	wait := oldest.Add(window).Sub(now)
	if wait < time.Second {
		return time.Second
	}
	return wait
}
