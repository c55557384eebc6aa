package feedback_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/feedback"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/model"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
)

func newUseCase(t *testing.T) (*feedback.FeedbackUseCase, *gorm.DB) {
	t.Helper()
	tdb := database.NewTestDB(t)
	log := logger.NewNoopLogger()
	return feedback.NewFeedbackUseCase(repository.NewFeedbackRepository(tdb.DB, log), timeprovider.NewRealTimeProvider(), log), tdb.DB
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a rating", func(t *testing.T) {
		uc, db := newUseCase(t)

		fb, err := uc.Submit(ctx, usecase.FeedbackRequest{
			Rating:    4,
			Comment:   "  useful  ",
			UserEmail: "a@example.com",
			ClientIP:  "10.0.0.1",
		})
		require.NoError(t, err)
		assert.Equal(t, "useful", fb.Comment)

		var stored model.Feedback
		require.NoError(t, db.First(&stored, "id = ?", fb.ID).Error)
		assert.Equal(t, 4, stored.Rating)
	})

	t.Run("Rejects out of range ratings and long comments", func(t *testing.T) {
		uc, db := newUseCase(t)

		_, err := uc.Submit(ctx, usecase.FeedbackRequest{Rating: 0})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		_, err = uc.Submit(ctx, usecase.FeedbackRequest{Rating: 3, Comment: strings.Repeat("x", 1001)})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		var count int64
		require.NoError(t, db.Model(&model.Feedback{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}
