package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares
const (
	IdentityKey = "identity"
	UserIDKey   = "user_id"
	OperatorKey = "operator"
)

// CronSecretHeader carries the shared secret of scheduled callers
const CronSecretHeader = "X-Cron-Secret"

// IdentityAuth requires a valid bearer identity token
func IdentityAuth(verifier external.IdentityVerifier, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abort(c, errs.ErrUnauthorized)
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Debug("Identity token rejected", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": c.GetString(RequestIDKey),
				"error":      err.Error(),
			})
			abort(c, errs.ErrUnauthorized)
			return
		}

		c.Set(IdentityKey, identity)
		c.Set(UserIDKey, identity.UserID)
		c.Next()
	}
}

// OperatorAuth requires a valid operator token
func OperatorAuth(verifier external.OperatorVerifier, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abort(c, errs.ErrUnauthorized)
			return
		}

		operator, err := verifier.VerifyOperator(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Operator token rejected", map[string]any{
				"path":      c.Request.URL.Path,
				"client_ip": c.ClientIP(),
				"error":     err.Error(),
			})
			abort(c, err)
			return
		}

		c.Set(OperatorKey, operator)
		c.Next()
	}
}

// CronSecret requires the shared cron secret header. An empty secret disables the route.
func CronSecret(secret string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(CronSecretHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			logger.Warn("Cron secret rejected", map[string]any{
				"path":      c.Request.URL.Path,
				"client_ip": c.ClientIP(),
			})
			abort(c, errs.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the caller set by IdentityAuth
func IdentityFrom(c *gin.Context) (*entity.Identity, bool) {
	value, ok := c.Get(IdentityKey)
	if !ok {
		return nil, false
	}
	identity, ok := value.(*entity.Identity)
	return identity, ok && identity != nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(dto.StatusCode(err), dto.NewErrorResponse(err, false))
}
