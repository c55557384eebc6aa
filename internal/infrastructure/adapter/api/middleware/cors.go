package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORSOptions configures cross-origin access
type CORSOptions struct {
	AllowedOrigins []string
	MaxAge         int // seconds
}

// CORS adapts rs/cors to gin. Preflight requests are answered here.
func CORS(opts CORSOptions) gin.HandlerFunc {
	handler := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", RequestIDHeader, CronSecretHeader},
		ExposedHeaders: []string{RequestIDHeader, "Retry-After"},
		MaxAge:         opts.MaxAge,
	})

	return func(c *gin.Context) {
		handler.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
