package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Credits     CreditsConfig   `mapstructure:"credits"`
	Referral    ReferralConfig  `mapstructure:"referral"`
	Stripe      StripeConfig    `mapstructure:"stripe"`
	Auth        AuthConfig      `mapstructure:"auth"`
	RateLimit   RateLimitConfig `mapstructure:"rateLimit"`
	Retention   RetentionConfig `mapstructure:"retention"`
	OpenAI      OpenAIConfig    `mapstructure:"openai"`
	CORS        CORSConfig      `mapstructure:"cors"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	WebhookTimeout    time.Duration `mapstructure:"webhookTimeout"`    // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"` // database name, or file path for sqlite
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// CreditsConfig contains balance settings
type CreditsConfig struct {
	StartingGrant    int64 `mapstructure:"startingGrant"`
	ReferralBonus    int64 `mapstructure:"referralBonus"`
	DecrementRetries int   `mapstructure:"decrementRetries"`
}

// ReferralConfig contains referral code settings
type ReferralConfig struct {
	MaxCodeAttempts int `mapstructure:"maxCodeAttempts"`
}

// StripeConfig contains payment provider settings
type StripeConfig struct {
	SecretKey        string        `mapstructure:"secretKey"`
	WebhookSecret    string        `mapstructure:"webhookSecret"`
	WebhookTolerance time.Duration `mapstructure:"webhookTolerance"`
}

// AuthConfig contains identity and operator credential settings
type AuthConfig struct {
	Provider            string        `mapstructure:"provider"` // firebase or jwt
	FirebaseProjectID   string        `mapstructure:"firebaseProjectId"`
	FirebaseCredentials string        `mapstructure:"firebaseCredentialsFile"`
	JWTSecret           string        `mapstructure:"jwtSecret"`
	JWTIssuer           string        `mapstructure:"jwtIssuer"`
	OperatorTokenSecret string        `mapstructure:"operatorTokenSecret"`
	OperatorTokenIssuer string        `mapstructure:"operatorTokenIssuer"`
	CronSecret          string        `mapstructure:"cronSecret"`
	TokenClockSkew      time.Duration `mapstructure:"tokenClockSkew"`
}

// RateLimitPolicyConfig is one sliding window budget
type RateLimitPolicyConfig struct {
	Limit  int           `mapstructure:"limit"`
	Window time.Duration `mapstructure:"window"`
}

// RateLimitConfig contains limiter settings
type RateLimitConfig struct {
	Backend    string                `mapstructure:"backend"` // memory or database
	Generate   RateLimitPolicyConfig `mapstructure:"generate"`
	Feedback   RateLimitPolicyConfig `mapstructure:"feedback"`
	AdminSweep RateLimitPolicyConfig `mapstructure:"adminSweep"`
	CronSweep  RateLimitPolicyConfig `mapstructure:"cronSweep"`
}

// RetentionConfig contains anonymous account sweep settings
type RetentionConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	AnonymousMaxAge   time.Duration `mapstructure:"anonymousMaxAge"`
	PageSize          int           `mapstructure:"pageSize"`
	MaxReportedErrors int           `mapstructure:"maxReportedErrors"`
	Schedule          string        `mapstructure:"schedule"` // cron expression
	Timeout           time.Duration `mapstructure:"timeout"`
}

// OpenAIConfig contains generator settings
type OpenAIConfig struct {
	APIKey      string        `mapstructure:"apiKey"`
	Model       string        `mapstructure:"model"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxTokens   int           `mapstructure:"maxTokens"`
	Temperature float32       `mapstructure:"temperature"`
}

// CORSConfig contains cross-origin settings
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
	MaxAge         int      `mapstructure:"maxAge"` // seconds
}
