package middleware

import (
	"math"
	"strconv"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
	"github.com/gin-gonic/gin"
)

// KeyFunc picks the identifier a request is counted against
type KeyFunc func(c *gin.Context) string

// ByUser counts authenticated callers by user id and everyone else by client ip
func ByUser(c *gin.Context) string {
	if userID := c.GetString(UserIDKey); userID != "" {
		return "user:" + userID
	}
	return ByClientIP(c)
}

// ByClientIP counts requests by client ip
func ByClientIP(c *gin.Context) string {
	return "ip:" + c.ClientIP()
}

// ByRoute counts every request of the route against one shared budget
func ByRoute(c *gin.Context) string {
	return "route:" + c.FullPath()
}

// RateLimit admits requests within policy. Limiter failures let the request through.
func RateLimit(limiter external.RateLimiter, policy external.RateLimitPolicy, key KeyFunc, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, err := limiter.Allow(c.Request.Context(), key(c), policy)
		if err != nil {
			logger.Error("Rate limiter unavailable", map[string]any{
				"policy":     policy.Name,
				"path":       c.Request.URL.Path,
				"request_id": c.GetString(RequestIDKey),
				"error":      err.Error(),
			})
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(policy.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			logger.Info("Request rate limited", map[string]any{
				"policy":      policy.Name,
				"path":        c.Request.URL.Path,
				"retry_after": seconds,
			})
			abort(c, errs.ErrRateLimited)
			return
		}

		c.Next()
	}
}
