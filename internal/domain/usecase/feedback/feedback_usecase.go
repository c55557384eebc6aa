package feedback

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

var _ usecase.FeedbackUseCase = (*FeedbackUseCase)(nil)

// FeedbackUseCase stores product ratings
type FeedbackUseCase struct {
	feedbackRepo persistence.FeedbackRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewFeedbackUseCase creates a new FeedbackUseCase
func NewFeedbackUseCase(feedbackRepo persistence.FeedbackRepository, timeProvider coreport.TimeProvider, logger coreport.Logger) *FeedbackUseCase {
	return &FeedbackUseCase{
		feedbackRepo: feedbackRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Submit validates and stores a rating
func (u *FeedbackUseCase) Submit(ctx context.Context, req usecase.FeedbackRequest) (*entity.Feedback, error) {
	fb, err := entity.NewFeedback(
		req.Rating,
		strings.TrimSpace(req.Comment),
		req.UserID,
		strings.TrimSpace(req.UserEmail),
		req.ClientIP,
		u.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := u.feedbackRepo.Create(ctx, fb); err != nil {
		u.logger.Error("Failed to store feedback", map[string]any{
			"rating": req.Rating,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Feedback received", map[string]any{
		"feedback_id": fb.ID,
		"rating":      fb.Rating,
		"has_comment": fb.Comment != "",
		"user_id":     fb.UserID,
	})
	return fb, nil
}
