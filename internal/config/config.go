package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all process-wide configuration. It is read once at startup
// and treated as immutable afterwards.
type Config struct {
	HTTPAddr      string `env:"HTTP_ADDR"      envDefault:":3000"`
	MongoURI      string `env:"MONGO_URI"      envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"devconnect"`

	// JWTSecret signs every issued token. It must never be logged or
	// echoed in responses.
	JWTSecret     string        `env:"JWT_SECRET"`
	TokenIssuer   string        `env:"TOKEN_ISSUER"   envDefault:"devconnect-api"`
	TokenLifetime time.Duration `env:"TOKEN_LIFETIME" envDefault:"10h"`

	GithubClientID string `env:"GITHUB_CLIENT_ID"`
	GithubSecret   string `env:"GITHUB_SECRET"`

	SMTP SMTPConfig
}

// SMTPConfig configures the optional welcome mailer. Leaving Host empty
// disables outbound mail entirely.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks the parts of the configuration that have no sane default.
func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("missing JWT_SECRET environment variable")
	}
	if c.TokenLifetime <= 0 {
		return fmt.Errorf("TOKEN_LIFETIME must be a positive duration")
	}
	if c.SMTP.Host != "" && c.SMTP.From == "" {
		return fmt.Errorf("missing SMTP_FROM environment variable")
	}
	return nil
}
