package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfigDir(t *testing.T, env, content string) {
	t.Helper()

	dir := t.TempDir()
	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))
	}

	origPaths, origDotEnv := ConfigPaths, DotEnvPaths
	ConfigPaths = []string{dir}
	DotEnvPaths = []string{filepath.Join(dir, ".env")}
	t.Cleanup(func() {
		ConfigPaths, DotEnvPaths = origPaths, origDotEnv
	})

	t.Setenv("CL_ENV", env)
}

func TestLoadConfig_Defaults(t *testing.T) {
	withConfigDir(t, "isolated", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "isolated", cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, int64(5), cfg.Credits.StartingGrant)
	assert.Equal(t, int64(10), cfg.Credits.ReferralBonus)
	assert.Equal(t, 10, cfg.Referral.MaxCodeAttempts)
	assert.Equal(t, 6, cfg.RateLimit.Generate.Limit)
	assert.Equal(t, time.Minute, cfg.RateLimit.Generate.Window)
	assert.Equal(t, 10, cfg.RateLimit.Feedback.Limit)
	assert.Equal(t, time.Hour, cfg.RateLimit.Feedback.Window)
	assert.Equal(t, 30*24*time.Hour, cfg.Retention.AnonymousMaxAge)
	assert.Equal(t, 10, cfg.Retention.MaxReportedErrors)
	assert.Equal(t, "memory", cfg.RateLimit.Backend)
}

func TestLoadConfig_FileAndEnvironmentOverrides(t *testing.T) {
	withConfigDir(t, "test", `
server:
  port: 9090
  readTimeout: 3
database:
  driver: sqlite
  database: "file:ledger?mode=memory&cache=shared"
stripe:
  webhookSecret: whsec_from_file
rateLimit:
  generate:
    limit: 2
    window: 30s
retention:
  anonymousMaxAge: 48h
`)
	t.Setenv("CL_STRIPE_WEBHOOK_SECRET", "whsec_from_env")
	t.Setenv("CL_CRON_SECRET", "cron-secret")
	t.Setenv("CL_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "whsec_from_env", cfg.Stripe.WebhookSecret)
	assert.Equal(t, "cron-secret", cfg.Auth.CronSecret)
	assert.Equal(t, 2, cfg.RateLimit.Generate.Limit)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Generate.Window)
	assert.Equal(t, 48*time.Hour, cfg.Retention.AnonymousMaxAge)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	withConfigDir(t, "broken", "server: [unterminated")

	_, err := LoadConfig()
	assert.Error(t, err)
}
