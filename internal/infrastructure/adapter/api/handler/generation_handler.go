package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// GenerationHandler handles the paid AI rewrite
type GenerationHandler struct {
	generation usecase.GenerationUseCase
	logger     coreport.Logger
}

// NewGenerationHandler creates a new generation handler instance
func NewGenerationHandler(generation usecase.GenerationUseCase, logger coreport.Logger) *GenerationHandler {
	return &GenerationHandler{
		generation: generation,
		logger:     logger,
	}
}

// Generate handles POST /api/generate
func (h *GenerationHandler) Generate(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, false)
		return
	}

	result, err := h.generation.Generate(c.Request.Context(), &entity.GenerationRequest{
		UserID:             identity.UserID,
		MessageType:        req.MessageType,
		MessageDescription: req.MessageDescription,
		Context: entity.ToneContext{
			Formality:            req.Context.Formality,
			Directness:           req.Context.Directness,
			EmotionalSensitivity: req.Context.EmotionalSensitivity,
			PowerRelationship:    entity.PowerRelationship(req.Context.PowerRelationship),
			CulturalContext:      req.Context.CulturalContext,
			Medium:               req.Context.Medium,
		},
		Locale:         req.Locale,
		TargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		if dto.StatusCode(err) >= http.StatusInternalServerError {
			h.logger.Error("Generation request failed", map[string]any{
				"user_id": identity.UserID,
				"error":   err.Error(),
			})
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateResponse{
		Message:          result.Message.Message,
		Explanation:      result.Message.Explanation,
		RemainingCredits: result.RemainingCredits,
	})
}
