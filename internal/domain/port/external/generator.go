package external

import (
	"context"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
)

// MessageGenerator produces the AI rewrite for a generation request
type MessageGenerator interface {
	Generate(ctx context.Context, req *entity.GenerationRequest) (*entity.GeneratedMessage, error)
}
