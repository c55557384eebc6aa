package retention

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

var _ usecase.RetentionUseCase = (*RetentionUseCase)(nil)

// Sweep defaults
const (
	DefaultMaxAge            = 30 * 24 * time.Hour
	DefaultPageSize          = 1000
	DefaultMaxReportedErrors = 10
)

// Policy configures the anonymous account sweep
type Policy struct {
	MaxAge            time.Duration
	PageSize          int
	MaxReportedErrors int
}

func (p Policy) withDefaults() Policy {
	if p.MaxAge <= 0 {
		p.MaxAge = DefaultMaxAge
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.MaxReportedErrors <= 0 {
		p.MaxReportedErrors = DefaultMaxReportedErrors
	}
	return p
}

// RetentionUseCase deletes stale anonymous accounts
type RetentionUseCase struct {
	directory    external.IdentityDirectory
	accountRepo  persistence.AccountRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	policy       Policy
}

// NewRetentionUseCase creates a new RetentionUseCase
func NewRetentionUseCase(
	directory external.IdentityDirectory,
	accountRepo persistence.AccountRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	policy Policy,
) *RetentionUseCase {
	return &RetentionUseCase{
		directory:    directory,
		accountRepo:  accountRepo,
		timeProvider: timeProvider,
		logger:       logger,
		policy:       policy.withDefaults(),
	}
}

// SweepAnonymousAccounts pages through the identity directory and deletes anonymous
// identities older than the retention age together with their accounts.
// Per-user failures are collected and do not stop the sweep; a listing failure does.
func (u *RetentionUseCase) SweepAnonymousAccounts(ctx context.Context) (*usecase.SweepResult, error) {
	started := u.timeProvider.Now()
	cutoff := started.Add(-u.policy.MaxAge)
	result := &usecase.SweepResult{Errors: []string{}}

	u.logger.Info("Anonymous account sweep started", map[string]any{
		"cutoff":    cutoff,
		"page_size": u.policy.PageSize,
	})

	pageToken := ""
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		records, next, err := u.directory.ListIdentities(ctx, pageToken, u.policy.PageSize)
		if err != nil {
			u.logger.Error("Failed to list identities", map[string]any{
				"page_token": pageToken,
				"scanned":    result.Scanned,
				"error":      err.Error(),
			})
			return result, fmt.Errorf("listing identities: %w", err)
		}

		for _, record := range records {
			result.Scanned++
			if !record.IsAnonymous() {
				continue
			}
			result.Anonymous++
			if !record.CreatedAt.Before(cutoff) {
				continue
			}
			result.Expired++
			u.remove(ctx, record, result)
		}

		if next == "" {
			break
		}
		pageToken = next
	}

	u.logger.Info("Anonymous account sweep finished", map[string]any{
		"scanned":          result.Scanned,
		"anonymous":        result.Anonymous,
		"expired":          result.Expired,
		"deleted":          result.Deleted,
		"accounts_deleted": result.AccountsDeleted,
		"error_count":      result.ErrorCount,
		"duration_ms":      u.timeProvider.Since(started).Std().Milliseconds(),
	})
	return result, nil
}

// remove deletes the account row best-effort, then the identity
func (u *RetentionUseCase) remove(ctx context.Context, record entity.IdentityRecord, result *usecase.SweepResult) {
	err := u.accountRepo.Delete(ctx, record.UserID)
	switch {
	case err == nil:
		result.AccountsDeleted++
	case errors.Is(err, errs.ErrAccountNotFound):
	default:
		u.recordError(result, record.UserID, "account", err)
	}

	if err := u.directory.DeleteIdentity(ctx, record.UserID); err != nil {
		u.recordError(result, record.UserID, "identity", err)
		return
	}
	result.Deleted++
}

func (u *RetentionUseCase) recordError(result *usecase.SweepResult, userID, target string, err error) {
	result.ErrorCount++
	if len(result.Errors) < u.policy.MaxReportedErrors {
		result.Errors = append(result.Errors, fmt.Sprintf("%s: delete %s: %v", userID, target, err))
	}
	u.logger.Warn("Sweep deletion failed", map[string]any{
		"user_id": userID,
		"target":  target,
		"error":   err.Error(),
	})
}
