package generation

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
)

var _ usecase.GenerationUseCase = (*GenerationUseCase)(nil)

// GenerationUseCase charges one credit per AI rewrite
type GenerationUseCase struct {
	credits   usecase.CreditUseCase
	generator external.MessageGenerator
	logger    coreport.Logger
}

// NewGenerationUseCase creates a new GenerationUseCase
func NewGenerationUseCase(credits usecase.CreditUseCase, generator external.MessageGenerator, logger coreport.Logger) *GenerationUseCase {
	return &GenerationUseCase{
		credits:   credits,
		generator: generator,
		logger:    logger,
	}
}

// Generate consumes a credit before calling the generator and refunds it when the call fails
func (u *GenerationUseCase) Generate(ctx context.Context, req *entity.GenerationRequest) (*entity.GenerationResult, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	if req.UserID == "" {
		return nil, errs.ErrInvalidUserID
	}

	remaining, err := u.credits.Decrement(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	message, err := u.generator.Generate(ctx, req)
	if err != nil {
		u.logger.Error("Message generation failed", map[string]any{
			"user_id":      req.UserID,
			"message_type": req.MessageType,
			"error":        err.Error(),
		})
		u.refund(ctx, req.UserID)
		return nil, fmt.Errorf("%w: %s", errs.ErrGenerationFailed, err.Error())
	}

	u.logger.Info("Message generated", map[string]any{
		"user_id":           req.UserID,
		"message_type":      req.MessageType,
		"target_language":   req.TargetLanguage,
		"remaining_credits": remaining,
	})
	return &entity.GenerationResult{
		Message:          message,
		RemainingCredits: remaining,
	}, nil
}

// refund gives the consumed credit back even when the request context is gone
func (u *GenerationUseCase) refund(ctx context.Context, userID string) {
	credits, err := u.credits.Grant(context.WithoutCancel(ctx), userID, 1)
	if err != nil {
		u.logger.Error("Failed to refund credit", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}
	u.logger.Info("Credit refunded", map[string]any{
		"user_id": userID,
		"credits": credits,
	})
}
