package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the API handlers
type Handlers struct {
	Account    *handler.AccountHandler
	Generation *handler.GenerationHandler
	Referral   *handler.ReferralHandler
	Webhook    *handler.WebhookHandler
	Feedback   *handler.FeedbackHandler
	Admin      *handler.AdminHandler
}

// Policies holds the rate-limit budget of each limited route
type Policies struct {
	Generate   external.RateLimitPolicy
	Feedback   external.RateLimitPolicy
	AdminSweep external.RateLimitPolicy
	CronSweep  external.RateLimitPolicy
}

// Guards holds the credential checks and the limiter shared by the routes
type Guards struct {
	Identity   external.IdentityVerifier
	Operator   external.OperatorVerifier
	CronSecret string
	Limiter    external.RateLimiter
	Policies   Policies
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, g Guards, logger coreport.Logger) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Public routes
	api.POST("/webhooks/stripe", h.Webhook.HandleStripe)
	api.POST("/feedback",
		middleware.RateLimit(g.Limiter, g.Policies.Feedback, middleware.ByClientIP, logger),
		h.Feedback.Submit)

	// Identity routes
	user := api.Group("", middleware.IdentityAuth(g.Identity, logger))
	{
		user.POST("/account/init", h.Account.Init)
		user.GET("/credits", h.Account.GetCredits)
		user.POST("/generate",
			middleware.RateLimit(g.Limiter, g.Policies.Generate, middleware.ByUser, logger),
			h.Generation.Generate)
		user.GET("/referral/generate", h.Referral.GenerateCode)
		user.POST("/referral/track", h.Referral.Track)
	}

	// Operator routes
	admin := api.Group("/admin", middleware.OperatorAuth(g.Operator, logger))
	{
		admin.POST("/credits", h.Admin.AdjustCredits)
		admin.POST("/payments/repair", h.Admin.RepairPayment)
		admin.POST("/referrals/repair", h.Admin.RepairReferral)
		admin.GET("/referrals/:userId", h.Admin.ListReferrals)
		admin.GET("/webhooks/diagnostics", h.Admin.WebhookDiagnostics)
		admin.POST("/retention/sweep",
			middleware.RateLimit(g.Limiter, g.Policies.AdminSweep, middleware.ByRoute, logger),
			h.Admin.SweepAnonymousAccounts)
	}

	// Scheduled callers
	cron := api.Group("/cron", middleware.CronSecret(g.CronSecret, logger))
	{
		cron.POST("/retention/sweep",
			middleware.RateLimit(g.Limiter, g.Policies.CronSweep, middleware.ByRoute, logger),
			h.Admin.SweepAnonymousAccounts)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, cors middleware.CORSOptions) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(cors))
}
