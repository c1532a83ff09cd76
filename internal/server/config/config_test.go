package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, time.Hour, cfg.TokenValidityDuration)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.TokenSecret)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://env-host:5432/reservas")
	t.Setenv("TOKEN_SECRET", "env-secret")
	t.Setenv("TOKEN_VALIDITY", "30m")
	t.Setenv("PORT", "8081")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "postgres://env-host:5432/reservas", cfg.DatabaseDSN)
	assert.Equal(t, "env-secret", cfg.TokenSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, 8081, cfg.Port)
}

func TestParseEnv_EmptyValueRejected(t *testing.T) {
	t.Setenv("DATABASE_URI", "")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Error(t, parseEnv(cfg))
}

func TestParseEnv_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Error(t, parseEnv(cfg))

	t.Setenv("PORT", "70000")
	require.Error(t, parseEnv(cfg))
}

func TestParseEnv_InvalidValidity(t *testing.T) {
	t.Setenv("TOKEN_VALIDITY", "-5m")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Error(t, parseEnv(cfg))
}
