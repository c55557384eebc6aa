package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/model"
)

var _ persistence.FeedbackRepository = (*FeedbackRepository)(nil)

// FeedbackRepository implements FeedbackRepository interface using GORM
type FeedbackRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewFeedbackRepository creates a new FeedbackRepository instance
func NewFeedbackRepository(db *gorm.DB, logger coreport.Logger) *FeedbackRepository {
	return &FeedbackRepository{db: db, logger: logger}
}

// Create saves a feedback entry
func (r *FeedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	m := model.Feedback{
		ID:        feedback.ID,
		Rating:    feedback.Rating,
		Comment:   feedback.Comment,
		UserID:    feedback.UserID,
		UserEmail: feedback.UserEmail,
		ClientIP:  feedback.ClientIP,
		CreatedAt: feedback.CreatedAt,
	}

	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		r.logger.Error("Database error when saving feedback", map[string]any{
			"feedback_id": feedback.ID,
			"error":       err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}
