package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all storefront configuration.
type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Metrics MetricsConfig
	Admin   AdminConfig
	Quotes  QuoteConfig
}

// ServerConfig holds HTTP listener and bundle settings.
type ServerConfig struct {
	Host       string
	Port       int
	StaticDir  string
	TrustProxy bool
}

type LoggerConfig struct {
	Level string
}

type MetricsConfig struct {
	Enabled bool
	Token   string
}

// AdminConfig configures the admin token guard. An empty secret disables it.
type AdminConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type QuoteConfig struct {
	RateLimit  int
	RateWindow time.Duration
}

const minSecretLen = 32

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:       getEnv("HOST", ""),
			Port:       getEnvAsInt("PORT", 5000),
			StaticDir:  getEnv("STATIC_DIR", "client/dist"),
			TrustProxy: getEnvAsBool("TRUST_PROXY", false),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
			Token:   getEnv("METRICS_TOKEN", ""),
		},
		Admin: AdminConfig{
			JWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
			TokenTTL:  getEnvAsDuration("ADMIN_TOKEN_TTL", 12*time.Hour),
		},
		Quotes: QuoteConfig{
			RateLimit:  getEnvAsInt("QUOTE_RATE_LIMIT", 30),
			RateWindow: getEnvAsDuration("QUOTE_RATE_WINDOW", time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.StaticDir == "" {
		return fmt.Errorf("static dir is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Admin.JWTSecret != "" && len(c.Admin.JWTSecret) < minSecretLen {
		return fmt.Errorf("ADMIN_JWT_SECRET must be at least %d chars", minSecretLen)
	}

	if c.Admin.TokenTTL <= 0 {
		return fmt.Errorf("admin token ttl must be positive")
	}

	if c.Quotes.RateLimit < 0 {
		return fmt.Errorf("quote rate limit cannot be negative")
	}

	if c.Quotes.RateWindow <= 0 {
		return fmt.Errorf("quote rate window must be positive")
	}

	return nil
}

// AdminGuardEnabled reports whether mutating admin routes require a token.
func (c *Config) AdminGuardEnabled() bool {
	return c.Admin.JWTSecret != ""
}

// Address returns the listen address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
