package usecase

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// GenerationUseCase defines the paid AI rewrite
type GenerationUseCase interface {
	// Generate validates the request, consumes one credit and calls the generator
	Generate(ctx context.Context, req *entity.GenerationRequest) (*entity.GenerationResult, error)
}
