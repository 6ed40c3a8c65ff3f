// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), maps them into structured Go types, and
// validates that required values are present so the app fails fast on
// bad or missing config.
//
// Env vars use the MATHSVC_ prefix and "." nesting, e.g.
//
//	MATHSVC_SERVER.PORT        -> server.port -> Config.Server.Port
//	MATHSVC_PRIMARY.ENV        -> primary.env -> Config.Primary.Env
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix selects which environment variables belong to this service.
const envPrefix = "MATHSVC_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from, and the
// `validate:"required"` tags enforce presence via go-playground/validator.
//
// Observability is a pointer because it is optional; when absent,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs/traces and pick per-environment defaults.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as whole seconds in the environment.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// New loads configuration from the environment, unmarshals it into
// Config, validates it, and applies observability defaults.
//
// It returns an error instead of exiting so callers (main, tests)
// decide how fatal a bad config is.
func New() (*Config, error) {
	// "." is the key-path delimiter: "server.port" means Config.Server.Port.
	k := koanf.New(".")

	// Only env vars carrying the service prefix are read; the prefix is
	// stripped and the remainder lowercased, so MATHSVC_SERVER.PORT
	// becomes the koanf key "server.port".
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are forced so telemetry always sees
	// consistent naming regardless of what the environment provides.
	// This happens before validation so a partially-specified
	// observability block is judged in its final form.
	cfg.Observability.ServiceName = "mathsvc"
	cfg.Observability.Environment = cfg.Primary.Env

	// Struct-tag validation: any missing required field is an error here,
	// before the server ever binds a port.
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := cfg.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return cfg, nil
}
