package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles product ratings
type FeedbackHandler struct {
	feedback usecase.FeedbackUseCase
	logger   coreport.Logger
}

// NewFeedbackHandler creates a new feedback handler instance
func NewFeedbackHandler(feedback usecase.FeedbackUseCase, logger coreport.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedback: feedback,
		logger:   logger,
	}
}

// Submit handles POST /api/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, false)
		return
	}

	fb, err := h.feedback.Submit(c.Request.Context(), usecase.FeedbackRequest{
		Rating:    req.Rating,
		Comment:   req.Comment,
		UserID:    req.UserID,
		UserEmail: req.UserEmail,
		ClientIP:  c.ClientIP(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FeedbackResponse{
		ID:        fb.ID,
		Success:   true,
		CreatedAt: fb.CreatedAt,
	})
}
