package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerConfigDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := GetServerConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestGetServerConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", "127.0.0.1:9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := GetServerConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestGetServerConfigRejectsBadLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	_, err := GetServerConfig()
	assert.Error(t, err)
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("CHATWIDGET_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnvOrDefault("CHATWIDGET_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnvOrDefault("CHATWIDGET_TEST_MISSING", "fallback"))
}
