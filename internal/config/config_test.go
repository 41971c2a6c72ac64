package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BACKOFFICE_AUTH_JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 24, cfg.Auth.JWTExpirationHours)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
	assert.Equal(t, "en", cfg.I18n.DefaultLocale)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("BACKOFFICE_AUTH_JWT_SECRET", "test-secret")
	t.Setenv("BACKOFFICE_SERVER_PORT", "9090")
	t.Setenv("BACKOFFICE_DATABASE_DRIVER", "sqlite")
	t.Setenv("BACKOFFICE_DATABASE_DSN", "local.db")
	t.Setenv("BACKOFFICE_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "local.db", cfg.Database.DSN)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("BACKOFFICE_AUTH_JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}
