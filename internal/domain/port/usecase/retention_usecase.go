package usecase

import (
	"context"
)

// SweepResult summarizes an anonymous account sweep
type SweepResult struct {
	Scanned         int
	Anonymous       int
	Expired         int
	Deleted         int
	AccountsDeleted int
	Errors          []string // First N failures only
	ErrorCount      int
}

// RetentionUseCase defines the anonymous account retention sweep
type RetentionUseCase interface {
	SweepAnonymousAccounts(ctx context.Context) (*SweepResult, error)
}
