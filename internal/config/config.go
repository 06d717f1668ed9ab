// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded from a
// `.env` file), loads them into structured Go types, and validates that
// required values are present so the application fails fast on bad or
// missing config.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, godotenv loads it into the
	// process env before anything here reads env vars. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Env vars are read with the TRADEPOST_ prefix and mapped onto nested struct
// fields with "__" as the nesting separator (a single "_" stays part of the
// key, so multi-word leaves keep their names):
//
//	TRADEPOST_SERVER__PORT                  -> server.port
//	TRADEPOST_SERVER__READ_TIMEOUT          -> server.read_timeout
//	TRADEPOST_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level
const (
	envPrefix    = "TRADEPOST_"
	envDelimiter = "__"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"required"` tags are used by go-playground/validator
// to enforce that the config is present and populated.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Usually used to tag logs/traces and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string          `koanf:"port" validate:"required"`
	ReadTimeout        int             `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int             `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int             `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string        `koanf:"cors_allowed_origins" validate:"required"`
	RateLimit          RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig tunes the per-client request limiter on the API routes.
// Optional; when enabled with zero values, defaults are applied at load time.
type RateLimitConfig struct {
	Enabled bool    `koanf:"enabled"`
	RPS     float64 `koanf:"rps"`
	Burst   int     `koanf:"burst"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
// The lifetime/idle values are whole seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig stores authentication-related secrets.
//
// SecretKey is the Clerk secret key used to verify bearer tokens. Keep the
// `.env` file and deployment env access protected accordingly.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key" validate:"required"`
}

// IntegrationConfig stores credentials for third-party integrations.
type IntegrationConfig struct {
	// ResendAPIKey authenticates against the Resend email API.
	ResendAPIKey string `koanf:"resend_api_key" validate:"required"`

	// EmailFrom is the sender address for transactional email,
	// e.g. "Tradepost <noreply@tradepost.dev>".
	EmailFrom string `koanf:"email_from" validate:"required"`
}

// Load reads configuration from environment variables, unmarshals it into
// Config, applies defaults for the optional blocks, and validates the result.
//
// Behavior summary:
//   - Loads env vars with prefix TRADEPOST_
//   - Converts env keys into koanf keys ("__" becomes the "." nesting delimiter)
//   - Unmarshals into Config
//   - Injects/completes the observability block before validation, so a
//     partially configured block is topped up rather than rejected
//   - Validates required config blocks/fields and the observability rules
//
// Errors are returned to the caller; the entrypoint decides to exit.
func Load() (*Config, error) {
	// The "." is the key-path delimiter koanf uses to represent nesting,
	// e.g. "server.port" means Config.Server.Port.
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, envDelimiter, ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env variables: %w", err)
	}

	mainConfig := &Config{}

	// Unmarshal from the root ("") so the whole tree is decoded in one pass.
	// koanf's default decode hooks handle comma-separated lists ([]string)
	// and duration strings (time.Duration) for us.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Top up optional blocks before validating, so partial env config
	// (say, only OBSERVABILITY__LOGGING__LEVEL) is completed with defaults
	// rather than rejected.
	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}
	mainConfig.Observability.applyDefaults()

	// Force service name and environment regardless of what was set, so
	// tracing/logging sees consistent service naming.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if mainConfig.Server.RateLimit.Enabled {
		if mainConfig.Server.RateLimit.RPS <= 0 {
			mainConfig.Server.RateLimit.RPS = 20
		}
		if mainConfig.Server.RateLimit.Burst <= 0 {
			mainConfig.Server.RateLimit.Burst = 40
		}
	}

	// Validate the entire config struct recursively. Any missing
	// `validate:"required"` field fails the load.
	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Observability carries rules that go beyond struct tags.
	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
