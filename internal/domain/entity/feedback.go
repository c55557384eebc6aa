package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// Feedback limits
const (
	MinFeedbackRating     = 1
	MaxFeedbackRating     = 5
	MaxFeedbackCommentLen = 1000
)

// Feedback is a product rating left by a visitor or user
type Feedback struct {
	ID        string
	Rating    int
	Comment   string
	UserID    string
	UserEmail string
	ClientIP  string
	CreatedAt time.Time
}

// NewFeedback validates and creates a feedback entry
func NewFeedback(rating int, comment, userID, userEmail, clientIP string, timeProvider coreport.TimeProvider) (*Feedback, error) {
	if rating < MinFeedbackRating || rating > MaxFeedbackRating {
		return nil, errs.NewValidationError("rating", "must be between 1 and 5")
	}
	if len([]rune(comment)) > MaxFeedbackCommentLen {
		return nil, errs.NewValidationError("comment", "must be at most 1000 characters")
	}

	return &Feedback{
		ID:        uuid.NewString(),
		Rating:    rating,
		Comment:   comment,
		UserID:    userID,
		UserEmail: userEmail,
		ClientIP:  clientIP,
		CreatedAt: timeProvider.Now(),
	}, nil
}
