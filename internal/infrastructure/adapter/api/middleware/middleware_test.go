package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	externalmocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/external"
)

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name   string
		header string
		want   string
	}{
		{"Standard", "Bearer abc.def", "abc.def"},
		{"Lowercase scheme", "bearer abc", "abc"},
		{"Other scheme", "Basic abc", ""},
		{"Missing", "", ""},
		{"Scheme only", "Bearer", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				c.Request.Header.Set("Authorization", tc.header)
			}
			assert.Equal(t, tc.want, bearerToken(c))
		})
	}
}

func TestRateLimitLetsRequestsThroughWhenLimiterFails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := externalmocks.NewMockRateLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, "ip:192.0.2.1", mock.Anything).Return(nil, errors.New("db down")).Once()

	router := gin.New()
	policy := external.RateLimitPolicy{Name: "feedback", Limit: 1, Window: time.Hour}
	router.POST("/", RateLimit(limiter, policy, ByClientIP, logger.NewNoopLogger()), func(c *gin.Context) {
		c.Status(http.StatusAccepted)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestRateLimitRoundsRetryAfterUp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := externalmocks.NewMockRateLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, mock.Anything, mock.Anything).
		Return(&external.RateLimitDecision{Allowed: false, RetryAfter: 1500 * time.Millisecond}, nil).Once()

	router := gin.New()
	router.GET("/", RateLimit(limiter, external.RateLimitPolicy{Name: "generate", Limit: 6, Window: time.Minute}, ByUser, logger.NewNoopLogger()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRequestIDReusesCallerValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Body.String())
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNoopLogger()))
	router.GET("/", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"INTERNAL"`)
}
