package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ErrNoConnectionString is returned when neither POSTGRES_URL nor
// DATABASE_URL is set. Callers treat this as fatal at startup.
var ErrNoConnectionString = errors.New("POSTGRES_URL or DATABASE_URL environment variable is not defined")

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Invoiceboard"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		PostgresURL string `envconfig:"POSTGRES_URL"`
		DatabaseURL string `envconfig:"DATABASE_URL"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		JWTSecret string        `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
		TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	}
}

// ConnectionString resolves the database URL, preferring POSTGRES_URL over
// DATABASE_URL, and normalizes it to require a TLS session mode.
func (c *Config) ConnectionString() (string, error) {
	raw := c.DB.PostgresURL
	if raw == "" {
		raw = c.DB.DatabaseURL
	}

	if raw == "" {
		return "", ErrNoConnectionString
	}

	return ensureSSLMode(raw), nil
}

// ensureSSLMode sets sslmode=require on the connection URL unless the caller
// already chose a session mode. Unparsable strings are patched textually so a
// nonstandard DSN still reaches the driver.
func ensureSSLMode(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		if strings.Contains(raw, "sslmode=") {
			return raw
		}

		sep := "?"
		if strings.Contains(raw, "?") {
			sep = "&"
		}

		return raw + sep + "sslmode=require"
	}

	q := u.Query()
	if q.Has("sslmode") {
		return raw
	}

	q.Set("sslmode", "require")
	u.RawQuery = q.Encode()

	return u.String()
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
