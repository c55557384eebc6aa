package persistence

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// FeedbackRepository stores product feedback
type FeedbackRepository interface {
	// Create saves a feedback entry
	Create(ctx context.Context, feedback *entity.Feedback) error
}
