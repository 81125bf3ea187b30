// Package config loads leadmail settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/huisverkoopklaar/leadmail/pkg/logger"
	"github.com/huisverkoopklaar/leadmail/pkg/mailer/brevo"
	"github.com/huisverkoopklaar/leadmail/pkg/mailer/resend"
	"github.com/huisverkoopklaar/leadmail/pkg/report"
)

// EnvLocal is the APP_ENV value for a developer machine.
const EnvLocal = "local"

// Config is the complete application configuration.
type Config struct {
	// Env stays empty when APP_ENV is unset; debug-env reports it as null.
	Env             string        `env:"APP_ENV" env-description:"Deployment environment (local, preview, production)"`
	Address         string        `env:"ADDRESS" env-default:":8080" env-description:"HTTP listen address"`
	LogLevel        string        `env:"LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"30s" env-description:"Graceful shutdown window"`

	Sentry    logger.SentryConfig
	Resend    resend.Config
	Brevo     brevo.Config
	Report    report.Policy
	Relay     Relay
	RateLimit RateLimit
}

// RateLimit bounds how often one client may send mail.
type RateLimit struct {
	Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"30" env-description:"Mail requests per window per client IP, 0 disables"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"1m" env-description:"Rate limit window"`
}

// Relay configures the generic send endpoint.
type Relay struct {
	FromEmail    string   `env:"FROM_EMAIL" env-default:"no-reply@huisverkoopklaar.nl" env-description:"Relay sender address"`
	FromName     string   `env:"FROM_NAME" env-default:"Huisverkoopklaar" env-description:"Relay sender display name"`
	BCCEmail     string   `env:"BCC_EMAIL" env-description:"Blind copy appended to every relayed message"`
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" env-default:"*" env-separator:"," env-description:"Origins allowed to call the relay"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	cfg.Sentry.Level = logger.ParseLevel(cfg.LogLevel)
	cfg.Sentry.MinLevel = slog.LevelWarn
	cfg.Sentry.Text = cfg.IsLocal()

	return &cfg, nil
}

// MustLoad is Load for main; it panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// IsLocal reports whether the app runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal
}

// Usage returns the list of supported environment variables.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return err.Error()
	}
	return text
}
