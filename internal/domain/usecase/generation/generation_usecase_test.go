package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/core"
	externalmocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/external"
	usecasemocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/usecase"
)

func validRequest() *entity.GenerationRequest {
	return &entity.GenerationRequest{
		UserID:             "user-a",
		MessageType:        "Decline a meeting",
		MessageDescription: "Tell my manager I cannot attend Friday's sync",
		Context: entity.ToneContext{
			Formality:            70,
			Directness:           40,
			EmotionalSensitivity: 60,
			PowerRelationship:    entity.PowerMore,
			CulturalContext:      "German workplace",
			Medium:               "email",
		},
		Locale:         "en-us",
		TargetLanguage: "de",
	}
}

func newLogger(t *testing.T) *coremocks.MockLogger {
	log := coremocks.NewMockLogger(t)
	log.On("Info", mock.Anything, mock.Anything).Maybe()
	log.On("Error", mock.Anything, mock.Anything).Maybe()
	return log
}

func TestValidateRequest(t *testing.T) {
	t.Run("Valid request is normalized", func(t *testing.T) {
		req := validRequest()
		req.MessageType = "  Decline a meeting  "

		require.NoError(t, ValidateRequest(req))
		assert.Equal(t, "Decline a meeting", req.MessageType)
		assert.Equal(t, "en-US", req.Locale)
		assert.Equal(t, "de", req.TargetLanguage)
	})

	t.Run("Target language defaults to the locale", func(t *testing.T) {
		req := validRequest()
		req.Locale = ""
		req.TargetLanguage = ""

		require.NoError(t, ValidateRequest(req))
		assert.Equal(t, "en", req.Locale)
		assert.Equal(t, "en", req.TargetLanguage)
	})

	testCases := []struct {
		name   string
		mutate func(*entity.GenerationRequest)
	}{
		{"Missing message type", func(r *entity.GenerationRequest) { r.MessageType = " " }},
		{"Long message type", func(r *entity.GenerationRequest) { r.MessageType = strings.Repeat("a", 61) }},
		{"Long description", func(r *entity.GenerationRequest) { r.MessageDescription = strings.Repeat("a", 1001) }},
		{"Formality above range", func(r *entity.GenerationRequest) { r.Context.Formality = 101 }},
		{"Negative directness", func(r *entity.GenerationRequest) { r.Context.Directness = -1 }},
		{"Unknown power relationship", func(r *entity.GenerationRequest) { r.Context.PowerRelationship = "boss" }},
		{"Malformed locale", func(r *entity.GenerationRequest) { r.Locale = "not a tag!" }},
		{"Malformed target language", func(r *entity.GenerationRequest) { r.TargetLanguage = "zz-@@" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			assert.ErrorIs(t, ValidateRequest(req), errs.ErrInvalidRequest)
		})
	}
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	message := &entity.GeneratedMessage{Message: "Hallo", Explanation: "polite"}

	t.Run("Charges one credit", func(t *testing.T) {
		credits := usecasemocks.NewMockCreditUseCase(t)
		generator := externalmocks.NewMockMessageGenerator(t)
		credits.EXPECT().Decrement(ctx, "user-a").Return(int64(4), nil).Once()
		generator.EXPECT().Generate(ctx, mock.AnythingOfType("*entity.GenerationRequest")).Return(message, nil).Once()

		result, err := NewGenerationUseCase(credits, generator, newLogger(t)).Generate(ctx, validRequest())
		require.NoError(t, err)
		assert.Equal(t, message, result.Message)
		assert.Equal(t, int64(4), result.RemainingCredits)
	})

	t.Run("Exhausted balance never reaches the generator", func(t *testing.T) {
		credits := usecasemocks.NewMockCreditUseCase(t)
		generator := externalmocks.NewMockMessageGenerator(t)
		credits.EXPECT().Decrement(ctx, "user-a").Return(int64(0), errs.NewInsufficientCreditsError("user-a", 0)).Once()

		_, err := NewGenerationUseCase(credits, generator, newLogger(t)).Generate(ctx, validRequest())
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("Generator failure refunds the credit", func(t *testing.T) {
		credits := usecasemocks.NewMockCreditUseCase(t)
		generator := externalmocks.NewMockMessageGenerator(t)
		credits.EXPECT().Decrement(ctx, "user-a").Return(int64(2), nil).Once()
		generator.EXPECT().Generate(ctx, mock.Anything).Return(nil, errors.New("upstream timeout")).Once()
		credits.EXPECT().Grant(mock.Anything, "user-a", int64(1)).Return(int64(3), nil).Once()

		_, err := NewGenerationUseCase(credits, generator, newLogger(t)).Generate(ctx, validRequest())
		assert.ErrorIs(t, err, errs.ErrGenerationFailed)
		assert.Equal(t, errs.ReasonGenerationFailed, errs.Reason(err))
	})

	t.Run("Invalid request is not charged", func(t *testing.T) {
		credits := usecasemocks.NewMockCreditUseCase(t)
		generator := externalmocks.NewMockMessageGenerator(t)
		req := validRequest()
		req.Context.Formality = 500

		_, err := NewGenerationUseCase(credits, generator, newLogger(t)).Generate(ctx, req)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
