package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "8080", cfg.APIPort)
	require.Equal(t, 24*time.Hour, cfg.TokenExp)
	require.Equal(t, time.Hour, cfg.VerifyTokenExp)
	require.Equal(t, time.Hour, cfg.ResetTokenExp)
	require.NotEmpty(t, cfg.TokenKey)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("TOKEN_SECRET", "super-secret")
	t.Setenv("TOKEN_EXPIRATION_HOURS", "48")
	t.Setenv("VERIFY_TOKEN_EXPIRATION_MINUTES", "30")

	cfg := Load()

	require.Equal(t, "9090", cfg.APIPort)
	require.Equal(t, []byte("super-secret"), cfg.TokenKey)
	require.Equal(t, 48*time.Hour, cfg.TokenExp)
	require.Equal(t, 30*time.Minute, cfg.VerifyTokenExp)
}

func TestGetEnvAsInt_IgnoresGarbage(t *testing.T) {
	t.Setenv("TOKEN_EXPIRATION_HOURS", "not-a-number")

	cfg := Load()
	require.Equal(t, 24*time.Hour, cfg.TokenExp)
}
