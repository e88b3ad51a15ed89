package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Run("reads process environment", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("PORT", "1163")
		t.Setenv("GRPC_ADDRESS", ":7000")
		t.Setenv("MONGO_URI", "mongodb://mongo:27017/users")
		t.Setenv("JWT_SECRET", "s3cr3t")
		t.Setenv("TOKEN_TTL", "2h")
		t.Setenv("ALLOWED_ORIGINS", "https://app.example,http://localhost:5173")
		t.Setenv("APP_ENV", "production")
		t.Setenv("COOKIE_DOMAIN", ".example")
		t.Setenv("BCRYPT_COST", "11")
		t.Setenv("LOG_LEVEL", "debug")

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseEnv(cfg))

		assert.Equal(t, ":1163", cfg.EndpointAddrHTTP)
		assert.Equal(t, ":7000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "mongodb://mongo:27017/users", cfg.DatabaseDSN)
		assert.Equal(t, "s3cr3t", cfg.SecretKey)
		assert.Equal(t, 2*time.Hour, cfg.TokenValidityDuration)
		assert.Equal(t, []string{"https://app.example", "http://localhost:5173"}, cfg.AllowedOrigins)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, ".example", cfg.CookieDomain)
		assert.Equal(t, 11, cfg.PasswordHashCost)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("DATABASE_URI wins over MONGO_URI", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("MONGO_URI", "mongodb://mongo/users")
		t.Setenv("DATABASE_URI", "postgres://pg/users")

		cfg := &Config{}
		require.NoError(t, parseEnv(cfg))
		assert.Equal(t, "postgres://pg/users", cfg.DatabaseDSN)
	})

	t.Run("reads .env file without overriding the environment", func(t *testing.T) {
		isolateEnv(t)
		require.NoError(t, os.WriteFile(envFile, []byte("JWT_SECRET=from-file\nLOG_LEVEL=warn\n"), 0o600))
		t.Setenv("LOG_LEVEL", "error")
		t.Cleanup(func() {
			os.Unsetenv("JWT_SECRET")
		})

		cfg := &Config{}
		require.NoError(t, parseEnv(cfg))
		assert.Equal(t, "from-file", cfg.SecretKey)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("unset variables leave values alone", func(t *testing.T) {
		isolateEnv(t)

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseEnv(cfg))

		var want Config
		want.LoadDefaults()
		assert.Equal(t, want, *cfg)
	})

	t.Run("malformed duration is an error", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("TOKEN_TTL", "tomorrow")

		require.Error(t, parseEnv(&Config{}))
	})

	t.Run("unreadable .env is an error", func(t *testing.T) {
		isolateEnv(t)
		envFile = filepath.Join(t.TempDir())

		require.Error(t, parseEnv(&Config{}))
	})
}
