package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.App.CORSOrigins)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.True(t, cfg.Postgres.RunMigrations)
	assert.False(t, cfg.Worker.OverdueEnabled)
	assert.Equal(t, time.Hour, cfg.Worker.OverdueInterval())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("PORT", "8080")
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "1")
	t.Setenv("CORS_ORIGIN", "https://app.invyfy.com, https://staging.invyfy.com")
	t.Setenv("WORKER_OVERDUE_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, []string{"https://app.invyfy.com", "https://staging.invyfy.com"}, cfg.App.CORSOrigins)
	assert.True(t, cfg.Worker.OverdueEnabled)
}

func TestAppConfig_Addr(t *testing.T) {
	t.Parallel()

	cfg := AppConfig{Host: "127.0.0.1", Port: "5000"}
	assert.Equal(t, "127.0.0.1:5000", cfg.Addr())
}
