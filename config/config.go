// Package config loads settings for the steam facade from the environment.
// Nothing in this module calls it implicitly.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	golobby "github.com/golobby/config/v3"
	"github.com/golobby/config/v3/pkg/feeder"
	"github.com/joho/godotenv"

	"github.com/marcus-crane/steamwebapi/shared"
	"github.com/marcus-crane/steamwebapi/webapi"
)

type Config struct {
	General GeneralConfig
	Steam   SteamConfig
}

type GeneralConfig struct {
	LogLevel string `env:"LOG_LEVEL"`
}

type SteamConfig struct {
	Token          string `env:"STEAM_TOKEN"`
	BaseURL        string `env:"STEAM_API_BASE_URL"`
	TimeoutSeconds int    `env:"STEAM_API_TIMEOUT_SECONDS"`
}

// Load reads a .env file from the working directory if there is one, then
// fills Config from environment variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.With(slog.String("stack", err.Error())).Warn("Failed to read .env file")
	}

	var cfg Config
	err := golobby.New().
		AddFeeder(feeder.Env{}).
		AddStruct(&cfg).
		Feed()
	return cfg, err
}

func (c *Config) GetLogLevel() slog.Leveler {
	logLevel := strings.ToLower(c.General.LogLevel)
	if logLevel == "error" {
		return slog.LevelError
	}
	if logLevel == "warning" {
		return slog.LevelWarn
	}
	if logLevel == "info" {
		return slog.LevelInfo
	}
	if logLevel == "debug" {
		return slog.LevelDebug
	}
	// default to info if unknown
	if logLevel != "" {
		slog.With(slog.String("log_level", logLevel)).Info("Received invalid log level. Defaulting to INFO.")
	}
	return slog.LevelInfo
}

// Logger returns a text logger on stderr at the configured level.
func (c *Config) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.GetLogLevel()}))
}

func (c *Config) APIKey() shared.WebAPIKey {
	return shared.WebAPIKey(c.Steam.Token)
}

func (c *Config) ClientConfig() *webapi.ClientConfig {
	return &webapi.ClientConfig{
		BaseURL: c.Steam.BaseURL,
		Timeout: time.Duration(c.Steam.TimeoutSeconds) * time.Second,
		Logger:  c.Logger(),
	}
}
