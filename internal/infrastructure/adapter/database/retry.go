package database

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/repository"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    4,
		RetryInterval: 25 * time.Millisecond,
		MaxInterval:   500 * time.Millisecond,
		JitterFactor:  0.2,
	}
}

// RetryOnTransientError retries an operation when a transient or lock error occurs
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	classifier *repository.ErrorClassifier,
	logger coreport.Logger,
) error {
	var err error
	attempts := config.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		err = operation()
		if err == nil {
			return nil
		}

		if !isRetryable(classifier, err) || attempt == attempts-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": attempts,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts": attempt + 1,
				"error":    ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	if isRetryable(classifier, err) {
		logger.Error("All retry attempts failed", map[string]any{
			"max_retries": attempts,
			"error":       err.Error(),
		})
	}

	return err
}

// isRetryable reports whether err is worth another attempt
func isRetryable(classifier *repository.ErrorClassifier, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return classifier.IsLockError(err) || classifier.IsTransientError(err)
}

// calculateBackoffWithJitter computes the backoff duration with exponential increase and jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))

	if backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
		backoff += jitter
	}

	return backoff
}
