package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	accountUseCase "github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/account"
	creditUseCase "github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/credit"
	feedbackUseCase "github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/feedback"
	generationUseCase "github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/generation"
	paymentUseCase "github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/payment"
	referralUseCase "github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/referral"
	retentionUseCase "github.com/amirhossein-jamali/credit-ledger/internal/domain/usecase/retention"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/firebase"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/openai"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/ratelimit"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/scheduler"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/stripe"
	timeProvider "github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/config"
)

// Auth providers
const (
	providerFirebase = "firebase"
	providerJWT      = "jwt"
)

// Rate limiter backends
const (
	backendMemory   = "memory"
	backendDatabase = "database"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Flush()

	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	// Connect to the database
	dbConfig, err := database.FromAppConfig(cfg.Database, cfg.Logger.Level)
	if err != nil {
		fatal(appLogger, "Invalid database configuration", err)
	}
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		fatal(appLogger, "Failed to connect to database", err)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.Migrate(ctx); err != nil {
		fatal(appLogger, "Failed to run migrations", err)
	}

	// Initialize repositories
	db := dbManager.DB()
	accountRepo := repository.NewAccountRepository(db, tp, appLogger)
	referralRepo := repository.NewReferralRepository(db, appLogger)
	purchaseRepo := repository.NewPurchaseRepository(db, appLogger)
	feedbackRepo := repository.NewFeedbackRepository(db, appLogger)
	uow := dbManager.CreateUnitOfWork()

	// Initialize external adapters
	identityVerifier, identityDirectory, err := buildIdentity(ctx, cfg, tp, appLogger)
	if err != nil {
		fatal(appLogger, "Failed to initialize identity provider", err)
	}
	operatorTokens, err := auth.NewOperatorTokens(cfg.Auth.OperatorTokenSecret, cfg.Auth.OperatorTokenIssuer, cfg.Auth.TokenClockSkew, tp)
	if err != nil {
		fatal(appLogger, "Failed to initialize operator tokens", err)
	}
	generator, err := openai.NewGenerator(openai.Options{
		APIKey:      cfg.OpenAI.APIKey,
		Model:       cfg.OpenAI.Model,
		Timeout:     cfg.OpenAI.Timeout,
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Temperature: cfg.OpenAI.Temperature,
	})
	if err != nil {
		fatal(appLogger, "Failed to initialize message generator", err)
	}
	limiter, memoryLimiter := buildLimiter(cfg, db, uow, tp)

	// Initialize use cases
	initializer := accountUseCase.NewInitializer(accountRepo, tp, appLogger, cfg.Credits.StartingGrant)
	credits := creditUseCase.NewCreditUseCase(accountRepo, uow, initializer, tp, appLogger, cfg.Credits.DecrementRetries)
	referrals := referralUseCase.NewReferralUseCase(
		accountRepo,
		referralRepo,
		uow,
		initializer,
		tp,
		appLogger,
		cfg.Credits.ReferralBonus,
		cfg.Referral.MaxCodeAttempts,
	)
	accounts := accountUseCase.NewAccountUseCase(initializer, referrals, appLogger)
	payments := paymentUseCase.NewPaymentUseCase(
		stripe.NewEventVerifier(cfg.Stripe.WebhookSecret, cfg.Stripe.WebhookTolerance),
		stripe.NewCheckoutProvider(cfg.Stripe.SecretKey, nil),
		credits,
		referrals,
		accountRepo,
		purchaseRepo,
		uow,
		tp,
		appLogger,
		paymentUseCase.Secrets{
			SigningSecretConfigured: cfg.Stripe.WebhookSecret != "",
			APIKeyConfigured:        cfg.Stripe.SecretKey != "",
		},
	)
	retention := retentionUseCase.NewRetentionUseCase(identityDirectory, accountRepo, tp, appLogger, retentionUseCase.Policy{
		MaxAge:            cfg.Retention.AnonymousMaxAge,
		PageSize:          cfg.Retention.PageSize,
		MaxReportedErrors: cfg.Retention.MaxReportedErrors,
	})
	generation := generationUseCase.NewGenerationUseCase(credits, generator, appLogger)
	feedback := feedbackUseCase.NewFeedbackUseCase(feedbackRepo, tp, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, middleware.CORSOptions{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxAge:         cfg.CORS.MaxAge,
	})
	routes.SetupRoutes(router, routes.Handlers{
		Account:    handler.NewAccountHandler(accounts, credits, appLogger),
		Generation: handler.NewGenerationHandler(generation, appLogger),
		Referral:   handler.NewReferralHandler(referrals, appLogger),
		Webhook:    handler.NewWebhookHandler(payments, appLogger, cfg.Server.WebhookTimeout),
		Feedback:   handler.NewFeedbackHandler(feedback, appLogger),
		Admin:      handler.NewAdminHandler(credits, payments, referrals, retention, appLogger),
	}, routes.Guards{
		Identity:   identityVerifier,
		Operator:   operatorTokens,
		CronSecret: cfg.Auth.CronSecret,
		Limiter:    limiter,
		Policies: routes.Policies{
			Generate:   policy("generate", cfg.RateLimit.Generate),
			Feedback:   policy("feedback", cfg.RateLimit.Feedback),
			AdminSweep: policy("admin_sweep", cfg.RateLimit.AdminSweep),
			CronSweep:  policy("cron_sweep", cfg.RateLimit.CronSweep),
		},
	}, appLogger)

	// Background jobs
	jobs, err := scheduler.New(appLogger)
	if err != nil {
		fatal(appLogger, "Failed to create scheduler", err)
	}
	if cfg.Retention.Enabled {
		err := jobs.AddCron("retention_sweep", cfg.Retention.Schedule, cfg.Retention.Timeout, func(ctx context.Context) error {
			_, err := retention.SweepAnonymousAccounts(ctx)
			return err
		})
		if err != nil {
			fatal(appLogger, "Failed to schedule retention sweep", err)
		}
	}
	if memoryLimiter != nil {
		maxWindow := longestWindow(cfg.RateLimit)
		err := jobs.AddInterval("rate_limit_cleanup", time.Minute, 10*time.Second, func(context.Context) error {
			if removed := memoryLimiter.Cleanup(maxWindow); removed > 0 {
				appLogger.Debug("Pruned idle rate limit buckets", map[string]any{"removed": removed})
			}
			return nil
		}, false)
		if err != nil {
			fatal(appLogger, "Failed to schedule rate limit cleanup", err)
		}
	}
	jobs.Start()

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":          server.Addr,
			"env":           cfg.Environment,
			"auth_provider": cfg.Auth.Provider,
			"rate_limiter":  cfg.RateLimit.Backend,
			"db_driver":     cfg.Database.Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(appLogger, "Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	// Running jobs finish before the database goes away
	if err := jobs.Shutdown(); err != nil {
		appLogger.Error("Scheduler shutdown failed", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// buildIdentity selects the identity adapters for the configured provider
func buildIdentity(ctx context.Context, cfg *config.Config, tp coreport.TimeProvider, appLogger coreport.Logger) (external.IdentityVerifier, external.IdentityDirectory, error) {
	switch cfg.Auth.Provider {
	case providerFirebase:
		client, err := firebase.NewAuthClient(ctx, cfg.Auth.FirebaseProjectID, cfg.Auth.FirebaseCredentials)
		if err != nil {
			return nil, nil, err
		}
		return firebase.NewIdentityVerifier(client), firebase.NewDirectory(client), nil
	case providerJWT:
		tokens, err := auth.NewLocalIdentityTokens(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenClockSkew, tp)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Retention.Enabled {
			appLogger.Warn("Retention sweep has no identity directory with the jwt provider", nil)
		}
		return tokens, emptyDirectory{}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported auth provider: %s", cfg.Auth.Provider)
	}
}

// buildLimiter selects the rate limiter backend. The memory limiter is also returned for cleanup.
func buildLimiter(cfg *config.Config, db *gorm.DB, uow persistence.UnitOfWork, tp coreport.TimeProvider) (external.RateLimiter, *ratelimit.MemoryLimiter) {
	if cfg.RateLimit.Backend == backendDatabase {
		return ratelimit.NewDatabaseLimiter(repository.NewRateLimitRepository(db), uow, tp), nil
	}
	memory := ratelimit.NewMemoryLimiter(tp)
	return memory, memory
}

func policy(name string, c config.RateLimitPolicyConfig) external.RateLimitPolicy {
	return external.RateLimitPolicy{Name: name, Limit: c.Limit, Window: c.Window}
}

func longestWindow(c config.RateLimitConfig) time.Duration {
	longest := c.Generate.Window
	for _, w := range []time.Duration{c.Feedback.Window, c.AdminSweep.Window, c.CronSweep.Window} {
		if w > longest {
			longest = w
		}
	}
	return longest
}

func fatal(appLogger coreport.Logger, msg string, err error) {
	appLogger.Error(msg, map[string]any{
		"error": err.Error(),
	})
	appLogger.Flush()
	os.Exit(1)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Database configuration
	switch cfg.Database.Driver {
	case database.DriverPostgres:
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or CL_DB_HOST)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or CL_DB_USERNAME)")
		}
		if cfg.Database.Password == "" {
			missingConfigs = append(missingConfigs, "database.password (or CL_DB_PASSWORD)")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or CL_DB_NAME)")
		}
	case database.DriverSQLite:
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database")
		}
		if cfg.Environment == config.Production {
			return errors.New("database.driver sqlite is not supported in production")
		}
	default:
		return fmt.Errorf("invalid database.driver: %q, must be %s or %s", cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Payment provider
	if cfg.Stripe.WebhookSecret == "" {
		missingConfigs = append(missingConfigs, "stripe.webhookSecret (or CL_STRIPE_WEBHOOK_SECRET)")
	}
	if cfg.Stripe.SecretKey == "" {
		missingConfigs = append(missingConfigs, "stripe.secretKey (or CL_STRIPE_SECRET_KEY)")
	}

	// Credentials
	switch cfg.Auth.Provider {
	case providerFirebase:
		if cfg.Auth.FirebaseProjectID == "" {
			missingConfigs = append(missingConfigs, "auth.firebaseProjectId (or CL_FIREBASE_PROJECT_ID)")
		}
	case providerJWT:
		if cfg.Auth.JWTSecret == "" {
			missingConfigs = append(missingConfigs, "auth.jwtSecret (or CL_AUTH_JWT_SECRET)")
		}
		if cfg.Environment == config.Production {
			return errors.New("auth.provider jwt is not supported in production")
		}
	default:
		return fmt.Errorf("invalid auth.provider: %q, must be %s or %s", cfg.Auth.Provider, providerFirebase, providerJWT)
	}
	if cfg.Auth.OperatorTokenSecret == "" {
		missingConfigs = append(missingConfigs, "auth.operatorTokenSecret (or CL_AUTH_OPERATOR_TOKEN_SECRET)")
	}

	// Generator
	if cfg.OpenAI.APIKey == "" {
		missingConfigs = append(missingConfigs, "openai.apiKey (or CL_OPENAI_API_KEY)")
	}

	// Credits
	if cfg.Credits.StartingGrant < 0 {
		return fmt.Errorf("credits.startingGrant must not be negative, got %d", cfg.Credits.StartingGrant)
	}
	if cfg.Credits.ReferralBonus <= 0 {
		return fmt.Errorf("credits.referralBonus must be positive, got %d", cfg.Credits.ReferralBonus)
	}

	// Rate limiting
	if cfg.RateLimit.Backend != backendMemory && cfg.RateLimit.Backend != backendDatabase {
		return fmt.Errorf("invalid rateLimit.backend: %q, must be %s or %s", cfg.RateLimit.Backend, backendMemory, backendDatabase)
	}
	for name, p := range map[string]config.RateLimitPolicyConfig{
		"generate":   cfg.RateLimit.Generate,
		"feedback":   cfg.RateLimit.Feedback,
		"adminSweep": cfg.RateLimit.AdminSweep,
		"cronSweep":  cfg.RateLimit.CronSweep,
	} {
		if p.Limit <= 0 || p.Window <= 0 {
			return fmt.Errorf("rateLimit.%s needs a positive limit and window", name)
		}
	}

	// Retention
	if cfg.Retention.Enabled && cfg.Retention.Schedule == "" {
		missingConfigs = append(missingConfigs, "retention.schedule")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Auth.CronSecret == "" {
			warnings = append(warnings, "auth.cronSecret is empty, the cron sweep route is disabled")
		}
		if len(cfg.CORS.AllowedOrigins) == 0 {
			warnings = append(warnings, "cors.allowedOrigins is empty, browsers cannot call the API")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
