package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// FeedbackRequest is a submitted rating
type FeedbackRequest struct {
	Rating    int
	Comment   string
	UserID    string
	UserEmail string
	ClientIP  string
}

// FeedbackUseCase defines feedback operations
type FeedbackUseCase interface {
	Submit(ctx context.Context, req FeedbackRequest) (*entity.Feedback, error)
}
