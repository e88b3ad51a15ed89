// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const defaultSecretKey = "secretKey"

// Config holds runtime settings for the gophauth server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the JSON API.
//   - EndpointAddrGRPC: bind address for the gRPC health service; empty disables it.
//   - DatabaseDSN: mongodb://, postgres:// or memory:// URI selecting the credential store.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - TokenValidityDuration: session token lifetime; also the cookie Max-Age.
//   - AllowedOrigins: origins allowed to make credentialed cross-origin calls.
//   - Environment: "development" or "production"; selects cookie Secure/SameSite.
//   - CookieDomain: optional Domain attribute of the token cookie.
//   - PasswordHashCost: bcrypt work factor.
//   - HealthCheckInterval: how often the store is pinged for health reporting.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP      string
	EndpointAddrGRPC      string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	AllowedOrigins        []string
	Environment           string
	CookieDomain          string
	PasswordHashCost      int
	HealthCheckInterval   time.Duration
	LogLevel              string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the default secret is rejected by Validate in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":1163"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = "mongodb://localhost:27017/gophauth"
	c.SecretKey = defaultSecretKey
	c.TokenValidityDuration = common.DefaultTokenValidityDuration
	c.AllowedOrigins = []string{"http://localhost:5173"}
	c.Environment = EnvDevelopment
	c.CookieDomain = ""
	c.PasswordHashCost = bcrypt.DefaultCost
	c.HealthCheckInterval = 10 * time.Second
	c.LogLevel = "info"
}

// IsProduction reports whether production cookie attributes apply.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.EndpointAddrHTTP == "" {
		return errors.New("http address is required")
	}
	if c.DatabaseDSN == "" {
		return errors.New("database DSN is required")
	}
	if c.SecretKey == "" {
		return errors.New("secret key is required")
	}
	if c.TokenValidityDuration <= 0 {
		return fmt.Errorf("token validity duration must be positive, got %s", c.TokenValidityDuration)
	}
	if !slices.Contains([]string{EnvDevelopment, EnvProduction}, c.Environment) {
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	if c.IsProduction() && c.SecretKey == defaultSecretKey {
		return errors.New("default secret key must not be used in production")
	}
	if c.PasswordHashCost < bcrypt.MinCost || c.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("password hash cost must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.PasswordHashCost)
	}
	for _, o := range c.AllowedOrigins {
		// credentialed CORS cannot use a wildcard origin
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("allowed origin %q must be an http(s) URL", o)
		}
	}
	if c.HealthCheckInterval <= 0 {
		return fmt.Errorf("health check interval must be positive, got %s", c.HealthCheckInterval)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment (including a .env file) and
// finally command-line flags. The result is validated.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
