package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		ServerPort:            "8080",
		Environment:           "development",
		RateLimitMax:          10,
		RateLimitWindow:       time.Hour,
		NonceSecret:           "test-secret",
		NonceExpiry:           24 * time.Hour,
		SupportedLanguages:    []string{"de", "en", "nl"},
		InterpretationVariant: "standard",
	}
}

func TestConfig_Validate_DefaultLanguage(t *testing.T) {
	cfg := validConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.DefaultLanguage != "de" {
		t.Errorf("DefaultLanguage = %q, want first supported tag \"de\"", cfg.DefaultLanguage)
	}
}

func TestConfig_Validate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Empty languages", func(c *Config) { c.SupportedLanguages = nil }},
		{"Unsupported default language", func(c *Config) { c.DefaultLanguage = "fr" }},
		{"Zero rate limit max", func(c *Config) { c.RateLimitMax = 0 }},
		{"Negative rate limit window", func(c *Config) { c.RateLimitWindow = -time.Second }},
		{"Unknown interpretation variant", func(c *Config) { c.InterpretationVariant = "v3" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() expected error, got nil")
			}
		})
	}
}

func TestConfig_IsSupportedLanguage(t *testing.T) {
	cfg := validConfig()

	tests := []struct {
		tag      string
		expected bool
	}{
		{"de", true},
		{"EN", true}, // case-insensitive
		{"nl", true},
		{"fr", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := cfg.IsSupportedLanguage(tt.tag); got != tt.expected {
			t.Errorf("IsSupportedLanguage(%q) = %v, want %v", tt.tag, got, tt.expected)
		}
	}
}

func TestConfig_EnvironmentHelpers(t *testing.T) {
	cfg := validConfig()

	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false for development environment")
	}
	cfg.Environment = "production"
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false for production environment")
	}
}
