package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("APP_ENV", EnvDevelopment)
	t.Setenv("JWT_SECRET", "dev-secret")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("JWT_EXPIRATION", "24h")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiration)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_DefaultsToProduction(t *testing.T) {
	t.Setenv("APP_ENV", "")
	require.NoError(t, os.Unsetenv("APP_ENV"))

	t.Setenv("JWT_SECRET", "short")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", strings.Repeat("s", MinJWTSecretLength))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvProduction, cfg.Env)
	assert.False(t, cfg.IsDevelopment())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Env:           EnvProduction,
			DBDriver:      DriverPostgres,
			JWTSecret:     strings.Repeat("s", MinJWTSecretLength),
			JWTExpiration: time.Hour,
		}
	}

	assert.NoError(t, base().Validate())

	cfg := base()
	cfg.JWTSecret = ""
	assert.ErrorIs(t, cfg.Validate(), errMissingSecret)

	cfg = base()
	cfg.JWTSecret = "short"
	assert.Error(t, cfg.Validate())

	cfg.Env = EnvDevelopment
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.JWTExpiration = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.DBDriver = "mysql"
	assert.Error(t, cfg.Validate())
}
