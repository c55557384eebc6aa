package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/ratelimit"
	timeProvider "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
	externalmocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/external"
	usecasemocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/usecase"
)

const (
	userToken     = "user-token"
	operatorToken = "operator-token"
	cronSecret    = "cron-secret"
)

type fixture struct {
	router     *gin.Engine
	accounts   *usecasemocks.MockAccountUseCase
	credits    *usecasemocks.MockCreditUseCase
	generation *usecasemocks.MockGenerationUseCase
	referrals  *usecasemocks.MockReferralUseCase
	payments   *usecasemocks.MockPaymentUseCase
	feedback   *usecasemocks.MockFeedbackUseCase
	retention  *usecasemocks.MockRetentionUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{
		router:     gin.New(),
		accounts:   usecasemocks.NewMockAccountUseCase(t),
		credits:    usecasemocks.NewMockCreditUseCase(t),
		generation: usecasemocks.NewMockGenerationUseCase(t),
		referrals:  usecasemocks.NewMockReferralUseCase(t),
		payments:   usecasemocks.NewMockPaymentUseCase(t),
		feedback:   usecasemocks.NewMockFeedbackUseCase(t),
		retention:  usecasemocks.NewMockRetentionUseCase(t),
	}

	identities := externalmocks.NewMockIdentityVerifier(t)
	identities.EXPECT().Verify(mock.Anything, userToken).
		Return(&entity.Identity{UserID: "user-a", Email: "a@example.com"}, nil).Maybe()
	identities.EXPECT().Verify(mock.Anything, mock.Anything).
		Return(nil, errs.ErrUnauthorized).Maybe()

	operators := externalmocks.NewMockOperatorVerifier(t)
	operators.EXPECT().VerifyOperator(mock.Anything, operatorToken).Return("ops@example.com", nil).Maybe()
	operators.EXPECT().VerifyOperator(mock.Anything, userToken).Return("", errs.ErrForbidden).Maybe()
	operators.EXPECT().VerifyOperator(mock.Anything, mock.Anything).Return("", errs.ErrUnauthorized).Maybe()

	log := logger.NewNoopLogger()
	tp := timeProvider.NewRealTimeProvider()

	routes.SetupMiddlewares(f.router, log, tp, middleware.CORSOptions{AllowedOrigins: []string{"https://app.example.com"}})
	routes.SetupRoutes(f.router, routes.Handlers{
		Account:    handler.NewAccountHandler(f.accounts, f.credits, log),
		Generation: handler.NewGenerationHandler(f.generation, log),
		Referral:   handler.NewReferralHandler(f.referrals, log),
		Webhook:    handler.NewWebhookHandler(f.payments, log, 5*time.Second),
		Feedback:   handler.NewFeedbackHandler(f.feedback, log),
		Admin:      handler.NewAdminHandler(f.credits, f.payments, f.referrals, f.retention, log),
	}, routes.Guards{
		Identity:   identities,
		Operator:   operators,
		CronSecret: cronSecret,
		Limiter:    ratelimit.NewMemoryLimiter(tp),
		Policies: routes.Policies{
			Generate:   external.RateLimitPolicy{Name: "generate", Limit: 6, Window: time.Minute},
			Feedback:   external.RateLimitPolicy{Name: "feedback", Limit: 10, Window: time.Hour},
			AdminSweep: external.RateLimitPolicy{Name: "admin_sweep", Limit: 2, Window: time.Hour},
			CronSweep:  external.RateLimitPolicy{Name: "cron_sweep", Limit: 1, Window: time.Hour},
		},
	}, log)

	return f
}

func (f *fixture) do(method, path, token string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case []byte:
		reader = bytes.NewReader(b)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestCreditsRoute(t *testing.T) {
	t.Run("Returns the balance", func(t *testing.T) {
		f := newFixture(t)
		f.credits.EXPECT().GetBalance(mock.Anything, "user-a").Return(int64(5), nil).Once()

		w := f.do(http.MethodGet, "/api/credits", userToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(5), decode[dto.CreditsResponse](t, w).Credits)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("Missing token", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(http.MethodGet, "/api/credits", "", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, errs.ReasonUnauthorized, resp.Error)
		assert.Equal(t, errs.CodeUnauthorized, resp.Code)
	})

	t.Run("Forged token", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(http.MethodGet, "/api/credits", "forged", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAccountInitRoute(t *testing.T) {
	t.Run("Creates the account without a body", func(t *testing.T) {
		f := newFixture(t)
		account, err := entity.NewAccount("user-a", entity.StartingCredits, timeProvider.NewRealTimeProvider())
		require.NoError(t, err)
		f.accounts.EXPECT().Signup(mock.Anything, mock.MatchedBy(func(id *entity.Identity) bool {
			return id.UserID == "user-a"
		}), "").Return(&usecase.SignupResult{Account: account, Created: true}, nil).Once()

		w := f.do(http.MethodPost, "/api/account/init", userToken, nil)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decode[dto.AccountInitResponse](t, w)
		assert.Equal(t, int64(5), resp.Credits)
		assert.True(t, resp.Created)
	})

	t.Run("Reports a failed referral capture", func(t *testing.T) {
		f := newFixture(t)
		account, err := entity.NewAccount("user-a", entity.StartingCredits, timeProvider.NewRealTimeProvider())
		require.NoError(t, err)
		f.accounts.EXPECT().Signup(mock.Anything, mock.Anything, "ZZZZZZ").
			Return(&usecase.SignupResult{Account: account, ReferralError: errs.ReasonInvalidCode}, nil).Once()

		w := f.do(http.MethodPost, "/api/account/init", userToken, dto.AccountInitRequest{ReferralCode: "ZZZZZZ"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, errs.ReasonInvalidCode, decode[dto.AccountInitResponse](t, w).ReferralError)
	})
}

func TestGenerateRoute(t *testing.T) {
	body := dto.GenerateRequest{
		MessageType:        "apology",
		MessageDescription: "I missed the meeting",
		Context:            dto.ToneContextRequest{Formality: 70, Directness: 40, EmotionalSensitivity: 80, PowerRelationship: "less"},
		Locale:             "en",
	}

	t.Run("Generates and reports remaining credits", func(t *testing.T) {
		f := newFixture(t)
		f.generation.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(req *entity.GenerationRequest) bool {
			return req.UserID == "user-a" && req.Context.PowerRelationship == entity.PowerLess
		})).Return(&entity.GenerationResult{
			Message:          &entity.GeneratedMessage{Message: "Sorry", Explanation: "short"},
			RemainingCredits: 4,
		}, nil).Once()

		w := f.do(http.MethodPost, "/api/generate", userToken, body)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.GenerateResponse](t, w)
		assert.Equal(t, "Sorry", resp.Message)
		assert.Equal(t, int64(4), resp.RemainingCredits)
	})

	t.Run("Insufficient credits", func(t *testing.T) {
		f := newFixture(t)
		f.generation.EXPECT().Generate(mock.Anything, mock.Anything).
			Return(nil, errs.NewInsufficientCreditsError("user-a", 0)).Once()

		w := f.do(http.MethodPost, "/api/generate", userToken, body)

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
		assert.Equal(t, errs.ReasonInsufficient, decode[dto.ErrorResponse](t, w).Error)
	})

	t.Run("Validation failure", func(t *testing.T) {
		f := newFixture(t)
		f.generation.EXPECT().Generate(mock.Anything, mock.Anything).
			Return(nil, errs.NewValidationError("messageType", "must be at most 60 characters")).Once()

		w := f.do(http.MethodPost, "/api/generate", userToken, body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, errs.ReasonInvalidRequest, resp.Error)
		assert.Empty(t, resp.Message)
	})

	t.Run("Missing fields are rejected before the use case", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(http.MethodPost, "/api/generate", userToken, `{"context":{}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Generator failure", func(t *testing.T) {
		f := newFixture(t)
		f.generation.EXPECT().Generate(mock.Anything, mock.Anything).Return(nil, errs.ErrGenerationFailed).Once()

		w := f.do(http.MethodPost, "/api/generate", userToken, body)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("Rate limited after six requests per minute", func(t *testing.T) {
		f := newFixture(t)
		f.generation.EXPECT().Generate(mock.Anything, mock.Anything).Return(&entity.GenerationResult{
			Message: &entity.GeneratedMessage{Message: "ok"},
		}, nil).Times(6)

		for i := 0; i < 6; i++ {
			require.Equal(t, http.StatusOK, f.do(http.MethodPost, "/api/generate", userToken, body).Code)
		}
		w := f.do(http.MethodPost, "/api/generate", userToken, body)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
		assert.Equal(t, errs.ReasonRateLimited, decode[dto.ErrorResponse](t, w).Error)
	})
}

func TestReferralRoutes(t *testing.T) {
	t.Run("Issues a code", func(t *testing.T) {
		f := newFixture(t)
		f.referrals.EXPECT().GenerateCode(mock.Anything, "user-a").
			Return(&usecase.ReferralSummary{ReferralCode: "AB23CD", ReferralCount: 2, CreditsEarned: 20}, nil).Once()

		w := f.do(http.MethodGet, "/api/referral/generate", userToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.ReferralCodeResponse](t, w)
		assert.Equal(t, "AB23CD", resp.ReferralCode)
		assert.Equal(t, int64(20), resp.CreditsEarned)
	})

	t.Run("Code generation exhausted", func(t *testing.T) {
		f := newFixture(t)
		f.referrals.EXPECT().GenerateCode(mock.Anything, "user-a").Return(nil, errs.ErrCodeGenerationExhausted).Once()

		w := f.do(http.MethodGet, "/api/referral/generate", userToken, nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, errs.ReasonCodeGenerationExhausted, decode[dto.ErrorResponse](t, w).Error)
	})

	t.Run("Tracks a code", func(t *testing.T) {
		f := newFixture(t)
		f.referrals.EXPECT().TrackReferral(mock.Anything, "user-a", "AB23CD").Return("user-z", nil).Once()

		w := f.do(http.MethodPost, "/api/referral/track", userToken, dto.TrackReferralRequest{ReferralCode: "AB23CD"})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.TrackReferralResponse](t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "user-z", resp.ReferrerID)
	})

	for name, tc := range map[string]struct {
		err    error
		reason string
	}{
		"Invalid code":     {errs.NewReferralError("user-a", "", "ZZZZZZ", errs.ErrInvalidReferralCode), errs.ReasonInvalidCode},
		"Self referral":    {errs.NewReferralError("user-a", "user-a", "AB23CD", errs.ErrSelfReferral), errs.ReasonSelfReferral},
		"Already referred": {errs.NewReferralError("user-a", "user-y", "AB23CD", errs.ErrAlreadyReferred), errs.ReasonAlreadyReferred},
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			f.referrals.EXPECT().TrackReferral(mock.Anything, "user-a", mock.Anything).Return("", tc.err).Once()

			w := f.do(http.MethodPost, "/api/referral/track", userToken, dto.TrackReferralRequest{ReferralCode: "AB23CD"})

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.reason, decode[dto.ErrorResponse](t, w).Error)
		})
	}
}

func TestWebhookRoute(t *testing.T) {
	t.Run("Acknowledges a signature-valid delivery", func(t *testing.T) {
		f := newFixture(t)
		f.payments.EXPECT().HandleWebhook(mock.Anything, []byte(`{"id":"evt_1"}`), "t=1,v1=abc").
			Return(&usecase.ReconciliationOutcome{EventID: "evt_1", Status: usecase.ReconciliationNoCredits}, nil).Once()

		w := f.do(http.MethodPost, "/api/webhooks/stripe", "", []byte(`{"id":"evt_1"}`), handler.SignatureHeader, "t=1,v1=abc")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decode[dto.WebhookResponse](t, w).Received)
	})

	t.Run("Invalid signature", func(t *testing.T) {
		f := newFixture(t)
		f.payments.EXPECT().HandleWebhook(mock.Anything, mock.Anything, "").Return(nil, errs.ErrInvalidSignature).Once()

		w := f.do(http.MethodPost, "/api/webhooks/stripe", "", []byte(`{}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.ReasonInvalidSignature, decode[dto.ErrorResponse](t, w).Error)
	})

	t.Run("Downstream failure is still acknowledged", func(t *testing.T) {
		f := newFixture(t)
		f.payments.EXPECT().HandleWebhook(mock.Anything, mock.Anything, mock.Anything).Return(nil, errs.ErrInternalServer).Once()

		w := f.do(http.MethodPost, "/api/webhooks/stripe", "", []byte(`{}`), handler.SignatureHeader, "t=1,v1=abc")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestFeedbackRoute(t *testing.T) {
	t.Run("Stores feedback", func(t *testing.T) {
		f := newFixture(t)
		f.feedback.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(req usecase.FeedbackRequest) bool {
			return req.Rating == 5 && req.Comment == "great" && req.ClientIP != ""
		})).Return(&entity.Feedback{ID: "fb-1", Rating: 5, CreatedAt: time.Now()}, nil).Once()

		w := f.do(http.MethodPost, "/api/feedback", "", dto.FeedbackRequest{Rating: 5, Comment: "great"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "fb-1", decode[dto.FeedbackResponse](t, w).ID)
	})

	t.Run("Invalid rating", func(t *testing.T) {
		f := newFixture(t)
		f.feedback.EXPECT().Submit(mock.Anything, mock.Anything).
			Return(nil, errs.NewValidationError("rating", "must be between 1 and 5")).Once()

		w := f.do(http.MethodPost, "/api/feedback", "", dto.FeedbackRequest{Rating: 9})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Rate limited after ten per hour", func(t *testing.T) {
		f := newFixture(t)
		f.feedback.EXPECT().Submit(mock.Anything, mock.Anything).
			Return(&entity.Feedback{ID: "fb"}, nil).Times(10)

		for i := 0; i < 10; i++ {
			require.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/feedback", "", dto.FeedbackRequest{Rating: 4}).Code)
		}

		assert.Equal(t, http.StatusTooManyRequests, f.do(http.MethodPost, "/api/feedback", "", dto.FeedbackRequest{Rating: 4}).Code)
	})
}

func TestAdminRoutes(t *testing.T) {
	t.Run("User token is forbidden", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(http.MethodPost, "/api/admin/credits", userToken, dto.AdjustCreditsRequest{UserID: "user-a"})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Adjusts credits", func(t *testing.T) {
		f := newFixture(t)
		f.credits.EXPECT().Adjust(mock.Anything, "user-b", mock.MatchedBy(func(adj usecase.CreditAdjustment) bool {
			return adj.Set == nil && adj.Delta == 3
		})).Return(int64(8), nil).Once()

		delta := int64(3)
		w := f.do(http.MethodPost, "/api/admin/credits", operatorToken, dto.AdjustCreditsRequest{UserID: "user-b", Delta: &delta})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(8), decode[dto.AdjustCreditsResponse](t, w).Credits)
	})

	t.Run("Adjust requires exactly one of set or delta", func(t *testing.T) {
		f := newFixture(t)
		set, delta := int64(1), int64(1)

		w := f.do(http.MethodPost, "/api/admin/credits", operatorToken, dto.AdjustCreditsRequest{UserID: "user-b", Set: &set, Delta: &delta})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotEmpty(t, decode[dto.ErrorResponse](t, w).Message)
	})

	t.Run("Repairs a payment", func(t *testing.T) {
		f := newFixture(t)
		f.payments.EXPECT().RepairPayment(mock.Anything, "cs_1", int64(50)).Return(&usecase.ReconciliationOutcome{
			SessionID: "cs_1", UserID: "user-b", Status: usecase.ReconciliationCredited, CreditsGranted: 50,
		}, nil).Once()

		w := f.do(http.MethodPost, "/api/admin/payments/repair", operatorToken, dto.RepairPaymentRequest{SessionID: "cs_1", CreditsOverride: 50})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.ReconciliationResponse](t, w)
		assert.Equal(t, "credited", resp.Status)
		assert.Equal(t, int64(50), resp.CreditsGranted)
	})

	t.Run("Repairs a referral", func(t *testing.T) {
		f := newFixture(t)
		f.referrals.EXPECT().ForceReferral(mock.Anything, usecase.ForceReferralRequest{ReferralCode: "AB23CD", ReferredUserID: "user-b"}).
			Return(&usecase.AwardResult{Awarded: true, ReferrerID: "user-a", Bonus: 10}, nil).Once()

		w := f.do(http.MethodPost, "/api/admin/referrals/repair", operatorToken, dto.RepairReferralRequest{ReferralCode: "AB23CD", ReferredUserID: "user-b"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decode[dto.AwardResponse](t, w).Awarded)
	})

	t.Run("Lists referrals", func(t *testing.T) {
		f := newFixture(t)
		f.referrals.EXPECT().ListByReferrer(mock.Anything, "user-a").Return([]*entity.Referral{
			{ID: "r1", ReferrerID: "user-a", ReferredUserID: "user-b", Status: entity.ReferralPending},
		}, nil).Once()

		w := f.do(http.MethodGet, "/api/admin/referrals/user-a", operatorToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.ReferralListResponse](t, w)
		require.Len(t, resp.Referrals, 1)
		assert.Equal(t, "pending", resp.Referrals[0].Status)
	})

	t.Run("Webhook diagnostics", func(t *testing.T) {
		f := newFixture(t)
		f.payments.EXPECT().Diagnostics(mock.Anything, 5).Return(&usecase.WebhookDiagnostics{
			SigningSecretConfigured: true,
			CountsByStatus:          map[entity.PurchaseStatus]int64{entity.PurchaseCredited: 3},
			Recent: []*entity.Purchase{
				{SessionID: "cs_1", AmountTotal: decimal.New(1999, -2), Status: entity.PurchaseCredited},
			},
		}, nil).Once()

		w := f.do(http.MethodGet, "/api/admin/webhooks/diagnostics?limit=5", operatorToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.WebhookDiagnosticsResponse](t, w)
		assert.True(t, resp.SigningSecretConfigured)
		assert.False(t, resp.APIKeyConfigured)
		assert.Equal(t, int64(3), resp.CountsByStatus["credited"])
		require.Len(t, resp.Recent, 1)
		assert.Equal(t, "19.99", resp.Recent[0].AmountTotal)
	})

	t.Run("Diagnostics rejects a bad limit", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(http.MethodGet, "/api/admin/webhooks/diagnostics?limit=abc", operatorToken, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSweepRoutes(t *testing.T) {
	result := &usecase.SweepResult{Scanned: 4, Anonymous: 2, Expired: 1, Deleted: 1, AccountsDeleted: 1}

	t.Run("Operator sweep", func(t *testing.T) {
		f := newFixture(t)
		f.retention.EXPECT().SweepAnonymousAccounts(mock.Anything).Return(result, nil).Once()

		w := f.do(http.MethodPost, "/api/admin/retention/sweep", operatorToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.SweepResponse](t, w)
		assert.Equal(t, 1, resp.Deleted)
		assert.NotNil(t, resp.Errors)
	})

	t.Run("Cron sweep requires the secret", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(http.MethodPost, "/api/cron/retention/sweep", "", nil, middleware.CronSecretHeader, "wrong")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Cron sweep has its own budget", func(t *testing.T) {
		f := newFixture(t)
		f.retention.EXPECT().SweepAnonymousAccounts(mock.Anything).Return(result, nil).Times(2)

		first := f.do(http.MethodPost, "/api/cron/retention/sweep", "", nil, middleware.CronSecretHeader, cronSecret)
		second := f.do(http.MethodPost, "/api/cron/retention/sweep", "", nil, middleware.CronSecretHeader, cronSecret)
		operator := f.do(http.MethodPost, "/api/admin/retention/sweep", operatorToken, nil)

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.Equal(t, http.StatusOK, operator.Code)
	})
}

func TestCORSPreflight(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodOptions, "/api/credits", "", nil,
		"Origin", "https://app.example.com",
		"Access-Control-Request-Method", http.MethodGet)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
