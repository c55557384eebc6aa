package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// slowOperationThreshold is the duration above which an operation is logged as slow
const slowOperationThreshold = 250 * time.Millisecond

// OperationMetrics holds metrics about a database operation
type OperationMetrics struct {
	Operation    string
	Duration     time.Duration
	Failed       bool
	ErrorMessage string
}

// MetricsCollector collects database operation metrics
type MetricsCollector struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider) *MetricsCollector {
	return &MetricsCollector{
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Measure runs fn and logs it when it is slow
func (c *MetricsCollector) Measure(ctx context.Context, operation string, fn func() error) (*OperationMetrics, error) {
	start := c.timeProvider.Now()

	err := fn()

	metrics := &OperationMetrics{
		Operation: operation,
		Duration:  c.timeProvider.Since(start).Std(),
		Failed:    err != nil,
	}

	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	if metrics.Duration > slowOperationThreshold {
		c.logger.Warn("Slow database operation detected", map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
			"canceled":      ctx.Err() != nil,
		})
	}

	return metrics, err
}
