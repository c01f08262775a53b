// Package config manages the service configuration.
//
// It reads a YAML file given on the command line, overlays environment
// variables (optionally loaded from a `.env` file), maps the result into
// structured Go types and validates it so the process fails fast on bad or
// missing values.
//
// Responsibilities:
//   - Load the YAML config file.
//   - Overlay FLIGHT_ITINERARY_* environment variables.
//   - Validate required values.
//   - Provide defaults for optional blocks (observability, rate limit).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env, if present,
	// before the env provider below reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

/*
	Sources are layered, later ones win:
	  1. the YAML file passed with --config
	  2. env vars with the FLIGHT_ITINERARY_ prefix

	Env keys are lowercased and a double underscore marks nesting, e.g.
	  FLIGHT_ITINERARY_SERVER__PORT -> server.port -> Config.Server.Port
*/

// EnvPrefix is the prefix env vars must carry to be picked up.
const EnvPrefix = "FLIGHT_ITINERARY_"

// ServiceName identifies this service in logs and APM.
const ServiceName = "flight-itinerary-service"

// Config is the root configuration object for the application.
//
// Observability and RateLimit are pointers because they are optional.
// Defaults are injected when they are missing.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	RateLimit     *RateLimitConfig     `koanf:"rate_limit"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are in seconds.
type ServerConfig struct {
	Name               string   `koanf:"name"`
	Host               string   `koanf:"host"`
	Port               string   `koanf:"port" validate:"required,numeric"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// Address returns host:port for the HTTP listener. An empty host listens on
// all interfaces.
func (s ServerConfig) Address() string {
	return s.Host + ":" + s.Port
}

// GracePeriod is how long shutdown waits for in-flight requests.
func (s ServerConfig) GracePeriod() time.Duration {
	if s.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.ShutdownTimeout) * time.Second
}

// RedisConfig contains Redis connection details.
//
// Redis is optional. An empty Address disables it.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// Enabled reports whether a Redis address is configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// RateLimitConfig controls per-client request throttling.
type RateLimitConfig struct {
	Enabled bool `koanf:"enabled"`

	// RequestsPerSecond is the token refill rate per client IP.
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gte=0"`

	// Burst is the bucket size. Zero means ceil(RequestsPerSecond).
	Burst int `koanf:"burst" validate:"gte=0"`

	// ExpiresIn drops idle client buckets after this long.
	ExpiresIn time.Duration `koanf:"expires_in"`
}

// DefaultRateLimitConfig is used when the rate_limit block is missing.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		Enabled:           false,
		RequestsPerSecond: 20,
		Burst:             40,
		ExpiresIn:         3 * time.Minute,
	}
}

// LoadConfig loads configuration from the YAML file at path (skipped when
// path is empty), overlays env vars, applies defaults and validates the
// result.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("could not load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}
	if mainConfig.RateLimit == nil {
		mainConfig.RateLimit = DefaultRateLimitConfig()
	}
	if mainConfig.Server.Name == "" {
		mainConfig.Server.Name = ServiceName
	}

	// Service name and environment always follow the primary config so logs
	// and traces agree.
	mainConfig.Observability.ServiceName = mainConfig.Server.Name
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
