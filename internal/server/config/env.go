package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envFile is read, when present, before the process environment is parsed.
// Variables already set in the environment win over the file.
var envFile = ".env"

// EnvConfig mirrors the variables the server understands. MONGO_URI is
// accepted as an alias of DATABASE_URI; DATABASE_URI wins when both are set.
type EnvConfig struct {
	Port           string        `env:"PORT"`
	GRPCAddress    string        `env:"GRPC_ADDRESS"`
	DatabaseURI    string        `env:"DATABASE_URI"`
	MongoURI       string        `env:"MONGO_URI"`
	JWTSecret      string        `env:"JWT_SECRET"`
	TokenTTL       time.Duration `env:"TOKEN_TTL"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
	AppEnv         string        `env:"APP_ENV"`
	CookieDomain   string        `env:"COOKIE_DOMAIN"`
	BcryptCost     int           `env:"BCRYPT_COST"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

func parseEnv(config *Config) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	var e EnvConfig
	if err := env.Parse(&e); err != nil {
		return err
	}

	if e.Port != "" {
		config.EndpointAddrHTTP = ":" + e.Port
	}
	setString(&config.EndpointAddrGRPC, e.GRPCAddress)
	setString(&config.DatabaseDSN, e.MongoURI)
	setString(&config.DatabaseDSN, e.DatabaseURI)
	setString(&config.SecretKey, e.JWTSecret)
	setString(&config.Environment, e.AppEnv)
	setString(&config.CookieDomain, e.CookieDomain)
	setString(&config.LogLevel, e.LogLevel)
	if e.TokenTTL != 0 {
		config.TokenValidityDuration = e.TokenTTL
	}
	if len(e.AllowedOrigins) > 0 {
		config.AllowedOrigins = e.AllowedOrigins
	}
	if e.BcryptCost != 0 {
		config.PasswordHashCost = e.BcryptCost
	}
	return nil
}
