package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "CL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		fmt.Printf("Warning: no %s config file found, using defaults and environment\n", env)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Sensitive values are never read from YAML when the environment provides them
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 60)      // seconds, generation waits on the model
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.webhookTimeout", 20)    // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.database", "credit_ledger")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("credits.startingGrant", 5)
	v.SetDefault("credits.referralBonus", 10)
	v.SetDefault("credits.decrementRetries", 3)

	v.SetDefault("referral.maxCodeAttempts", 10)

	v.SetDefault("stripe.webhookTolerance", "5m")

	v.SetDefault("auth.provider", "firebase")
	v.SetDefault("auth.operatorTokenIssuer", "credit-ledger")
	v.SetDefault("auth.tokenClockSkew", "30s")

	v.SetDefault("rateLimit.backend", "memory")
	v.SetDefault("rateLimit.generate.limit", 6)
	v.SetDefault("rateLimit.generate.window", "1m")
	v.SetDefault("rateLimit.feedback.limit", 10)
	v.SetDefault("rateLimit.feedback.window", "1h")
	v.SetDefault("rateLimit.adminSweep.limit", 5)
	v.SetDefault("rateLimit.adminSweep.window", "1h")
	v.SetDefault("rateLimit.cronSweep.limit", 2)
	v.SetDefault("rateLimit.cronSweep.window", "1h")

	v.SetDefault("retention.enabled", false)
	v.SetDefault("retention.anonymousMaxAge", "720h")
	v.SetDefault("retention.pageSize", 1000)
	v.SetDefault("retention.maxReportedErrors", 10)
	v.SetDefault("retention.schedule", "0 3 * * *")
	v.SetDefault("retention.timeout", "10m")

	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.timeout", "30s")
	v.SetDefault("openai.maxTokens", 400)
	v.SetDefault("openai.temperature", 0.8)

	v.SetDefault("cors.allowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("cors.maxAge", 600)
}

// getEnvironment determines the environment to use based on CL_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"CL_DB_DRIVER":                  "database.driver",
		"CL_DB_HOST":                    "database.host",
		"CL_DB_PORT":                    "database.port",
		"CL_DB_USERNAME":                "database.username",
		"CL_DB_PASSWORD":                "database.password",
		"CL_DB_NAME":                    "database.database",
		"CL_DB_SSL_MODE":                "database.sslMode",
		"CL_SERVER_HOST":                "server.host",
		"CL_LOGGER_LEVEL":               "logger.level",
		"CL_STRIPE_SECRET_KEY":          "stripe.secretKey",
		"CL_STRIPE_WEBHOOK_SECRET":      "stripe.webhookSecret",
		"CL_AUTH_PROVIDER":              "auth.provider",
		"CL_FIREBASE_PROJECT_ID":        "auth.firebaseProjectId",
		"CL_FIREBASE_CREDENTIALS_FILE":  "auth.firebaseCredentialsFile",
		"CL_AUTH_JWT_SECRET":            "auth.jwtSecret",
		"CL_AUTH_OPERATOR_TOKEN_SECRET": "auth.operatorTokenSecret",
		"CL_CRON_SECRET":                "auth.cronSecret",
		"CL_OPENAI_API_KEY":             "openai.apiKey",
		"CL_OPENAI_MODEL":               "openai.model",
		"CL_RATE_LIMIT_BACKEND":         "rateLimit.backend",
	}
	for envName, key := range stringOverrides {
		if val := os.Getenv(envName); val != "" {
			v.Set(key, val)
		}
	}

	if serverPort := getEnvInt("CL_SERVER_PORT", 0); serverPort > 0 {
		v.Set("server.port", serverPort)
	}
	if maxOpenConns := getEnvInt("CL_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("CL_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt("CL_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if retryAttempts := getEnvInt("CL_DB_RETRY_ATTEMPTS", -1); retryAttempts >= 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}

	if origins := os.Getenv("CL_CORS_ALLOWED_ORIGINS"); origins != "" {
		parts := strings.Split(origins, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		v.Set("cors.allowedOrigins", parts)
	}
	if enabled := os.Getenv("CL_RETENTION_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			v.Set("retention.enabled", b)
		}
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the integer server and database timings to durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
	config.Server.WebhookTimeout = time.Duration(config.Server.WebhookTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute

	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
}
