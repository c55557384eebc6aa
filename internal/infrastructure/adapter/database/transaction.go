package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// UnitOfWork implements the unit of work pattern for database transactions.
// The open transaction travels in the context and repositories pick it up.
type UnitOfWork struct {
	db         *gorm.DB
	logger     coreport.Logger
	metrics    *MetricsCollector
	retry      RetryConfig
	classifier *repository.ErrorClassifier
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, metrics *MetricsCollector, retry RetryConfig) persistence.UnitOfWork {
	return &UnitOfWork{
		db:         db,
		logger:     logger,
		metrics:    metrics,
		retry:      retry,
		classifier: repository.NewErrorClassifier(),
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := repository.TxFromContext(ctx); ok {
		return ctx, errors.New("transaction already open in context")
	}

	u.logger.Debug("Beginning database transaction", nil)

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	return repository.ContextWithTx(ctx, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := repository.TxFromContext(ctx)
	if !ok {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := repository.TxFromContext(ctx)
	if !ok {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error

	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// WithinTransaction runs fn in a transaction and retries the whole unit on
// serialization, lock and transient connection failures
func (u *UnitOfWork) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	if _, ok := repository.TxFromContext(ctx); ok {
		return fn(ctx)
	}

	_, err := u.metrics.Measure(ctx, "transaction", func() error {
		return RetryOnTransientError(ctx, u.retry, func() error {
			return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				return fn(repository.ContextWithTx(ctx, tx))
			})
		}, u.classifier, u.logger)
	})

	return err
}
