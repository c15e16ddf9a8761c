package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresTokenSecret(t *testing.T) {
	t.Setenv("KEZIG_SECRET_KEY", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingTokenSecret)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KEZIG_SECRET_KEY", "unit-test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "unit-test-secret", cfg.Auth.TokenSecret)
	require.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL())
	require.Equal(t, time.Minute, cfg.Auth.LoginWindow())
	require.Equal(t, "logistics-service", cfg.App.Name)
	require.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	require.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KEZIG_SECRET_KEY", "unit-test-secret")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "5")
	t.Setenv("AUTH_LOGIN_MAX_ATTEMPTS", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL())
	require.Equal(t, 3, cfg.Auth.LoginMaxAttempts)
	require.Equal(t, "debug", cfg.Logger.Level)
}
