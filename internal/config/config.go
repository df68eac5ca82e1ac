package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"sponsorhub/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Auth configures token verification. Environment variables prefixed
	// with AUTH_ will populate this struct.
	Auth configs.Auth `envPrefix:"AUTH_"`

	// Rate configures request rate limiting (RATE_ prefix).
	Rate configs.RateLimit `envPrefix:"RATE_"`
}

// Load reads configuration from environment variables into a Config. A
// .env file in the working directory is loaded first when present; values
// already set in the environment win. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements that env tags cannot express.
// Only the serve command needs a complete auth section.
func (c Config) Validate() error {
	switch c.Auth.NormalizedMode() {
	case configs.AuthModeRemote:
		if c.Auth.URL == "" || c.Auth.AnonKey == "" {
			return errors.New("AUTH_URL and AUTH_ANON_KEY are required in remote auth mode")
		}
	default:
		if c.Auth.JWTSecret == "" {
			return errors.New("AUTH_JWT_SECRET is required in jwt auth mode")
		}
	}
	if c.Psql.MinConns > c.Psql.MaxConns {
		return errors.New("PSQL_MIN_CONNS must not exceed PSQL_MAX_CONNS")
	}
	return nil
}
