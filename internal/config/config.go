// Package config provides configuration loading from environment variables.
// #IMPLEMENTATION_DECISION: Using envconfig for type-safe environment variable parsing
// #CODE_ASSUMPTION: All secrets provided via environment variables (no secret manager integration)
package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration loaded from environment variables.
// It is passed explicitly into services at construction so tests can run with
// varied configurations without process restarts.
// #INTEGRATION_POINT: All services depend on this configuration
type Config struct {
	// Server configuration
	ServerPort  string `envconfig:"SERVER_PORT" default:"8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Redis configuration (rate-limit window store)
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// Webhook configuration
	WebhookURL     string        `envconfig:"WEBHOOK_URL"`
	WebhookEnabled bool          `envconfig:"WEBHOOK_ENABLED" default:"true"`
	WebhookTimeout time.Duration `envconfig:"WEBHOOK_TIMEOUT" default:"10s"`

	// Debug mode gates verbose logging and internal-error leakage in responses
	DebugMode bool `envconfig:"DEBUG_MODE" default:"false"`

	// Rate limiting
	RateLimitMax    int           `envconfig:"RATE_LIMIT_MAX" default:"10"`
	RateLimitWindow time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1h"`

	// Anti-forgery nonce configuration
	NonceSecret string        `envconfig:"NONCE_SECRET" required:"true"`
	NonceExpiry time.Duration `envconfig:"NONCE_EXPIRY" default:"24h"`

	// Language configuration
	SupportedLanguages  []string `envconfig:"SUPPORTED_LANGUAGES" default:"de,en,nl"`
	DefaultLanguage     string   `envconfig:"DEFAULT_LANGUAGE"`
	TranslationsBaseURL string   `envconfig:"TRANSLATIONS_BASE_URL"`

	// Interpretation band policy: "standard" (20/40/60/75) or "legacy" (20/35/55/75)
	InterpretationVariant string `envconfig:"INTERPRETATION_VARIANT" default:"standard"`

	// Source tag attached to webhook payloads
	SourceTag string `envconfig:"SOURCE_TAG" default:"Malta Assessment QuickCheck v2.0"`

	// CORS configuration
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

var (
	instance *Config
	once     sync.Once
	errInit  error
)

// Load loads configuration from environment variables.
// #IMPLEMENTATION_DECISION: Singleton pattern ensures config is loaded once
func Load() (*Config, error) {
	once.Do(func() {
		instance = &Config{}
		errInit = envconfig.Process("MALTA", instance)
		if errInit != nil {
			return
		}
		errInit = instance.Validate()
	})

	return instance, errInit
}

// Validate checks cross-field constraints and fills derived defaults.
func (c *Config) Validate() error {
	if len(c.SupportedLanguages) == 0 {
		return fmt.Errorf("at least one supported language is required")
	}
	if c.DefaultLanguage == "" {
		// The fallback language defaults to the first supported tag
		c.DefaultLanguage = c.SupportedLanguages[0]
	}
	if !c.IsSupportedLanguage(c.DefaultLanguage) {
		return fmt.Errorf("default language %q is not in supported languages", c.DefaultLanguage)
	}
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("rate limit max must be positive, got %d", c.RateLimitMax)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("rate limit window must be positive, got %s", c.RateLimitWindow)
	}
	switch c.InterpretationVariant {
	case "standard", "legacy":
	default:
		return fmt.Errorf("unknown interpretation variant %q", c.InterpretationVariant)
	}
	return nil
}

// IsSupportedLanguage reports whether the tag is one of the configured languages.
func (c *Config) IsSupportedLanguage(tag string) bool {
	for _, lang := range c.SupportedLanguages {
		if strings.EqualFold(lang, tag) {
			return true
		}
	}
	return false
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
