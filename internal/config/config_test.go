package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("AUTH_JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL())
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.StaffRefreshTTL())
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.CustomerRefreshTTL())
	assert.False(t, cfg.Auth.CookieSecure)
	assert.False(t, cfg.Auth.RefreshDenylist)
	assert.Equal(t, 5*time.Minute, cfg.Banner.SchedulerInterval())
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "5")
	t.Setenv("AUTH_CUSTOMER_REFRESH_TTL_DAYS", "1")
	t.Setenv("AUTH_COOKIE_SECURE", "true")
	t.Setenv("AUTH_BCRYPT_COST", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTTL())
	assert.Equal(t, 24*time.Hour, cfg.Auth.CustomerRefreshTTL())
	assert.True(t, cfg.Auth.CookieSecure)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoadRejectsDevSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET")
}

func TestLoadRejectsInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "abc")

	_, err := Load()
	require.Error(t, err)
}
