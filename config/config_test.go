package config

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus-crane/steamwebapi/shared"
)

func TestLoad(t *testing.T) {
	t.Setenv("STEAM_TOKEN", "abc123")
	t.Setenv("STEAM_API_BASE_URL", "http://localhost:9000")
	t.Setenv("STEAM_API_TIMEOUT_SECONDS", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, shared.WebAPIKey("abc123"), cfg.APIKey())
	assert.Equal(t, "http://localhost:9000", cfg.Steam.BaseURL)
	assert.Equal(t, 3, cfg.Steam.TimeoutSeconds)
	assert.Equal(t, "debug", cfg.General.LogLevel)
}

func TestGetLogLevel(t *testing.T) {
	for level, want := range map[string]slog.Level{
		"error":   slog.LevelError,
		"WARNING": slog.LevelWarn,
		"info":    slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	} {
		cfg := Config{General: GeneralConfig{LogLevel: level}}
		assert.Equal(t, want, cfg.GetLogLevel().Level(), level)
	}
}

func TestClientConfig(t *testing.T) {
	cfg := Config{
		General: GeneralConfig{LogLevel: "error"},
		Steam:   SteamConfig{BaseURL: "http://localhost:9000", TimeoutSeconds: 5},
	}

	got := cfg.ClientConfig()
	assert.Equal(t, "http://localhost:9000", got.BaseURL)
	assert.Equal(t, 5*time.Second, got.Timeout)
	assert.Empty(t, got.UserAgent)
	require.NotNil(t, got.Logger)
	assert.False(t, got.Logger.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, got.Logger.Enabled(context.Background(), slog.LevelError))
}

func TestClientConfig_ZeroValuesFallThrough(t *testing.T) {
	got := (&Config{}).ClientConfig()
	assert.Empty(t, got.BaseURL)
	assert.Zero(t, got.Timeout)
}
