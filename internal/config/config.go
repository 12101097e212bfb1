package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	APIBaseURL         string
	ListenAddr         string
	SessionSecret      string
	RequestTimeout     time.Duration
	SearchDebounce     time.Duration
	NotifyPollInterval time.Duration
	LogLevel           string
	LogFormat          string
}

// Load reads configuration from the environment, with .env as a convenience
// for local development. Everything has a default; only API_BASE_URL usually
// needs setting.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("api_base_url", "http://localhost:8000")
	v.SetDefault("listen_addr", "0.0.0.0:5000")
	v.SetDefault("session_secret", "default-secret-key-change-in-production")
	v.SetDefault("request_timeout", "15s")
	v.SetDefault("search_debounce", "300ms")
	v.SetDefault("notify_poll_interval", "30s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	cfg := &Config{
		APIBaseURL:         v.GetString("api_base_url"),
		ListenAddr:         v.GetString("listen_addr"),
		SessionSecret:      v.GetString("session_secret"),
		RequestTimeout:     v.GetDuration("request_timeout"),
		SearchDebounce:     v.GetDuration("search_debounce"),
		NotifyPollInterval: v.GetDuration("notify_poll_interval"),
		LogLevel:           v.GetString("log_level"),
		LogFormat:          v.GetString("log_format"),
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL must not be empty")
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}
	if cfg.SearchDebounce <= 0 {
		cfg.SearchDebounce = 300 * time.Millisecond
	}
	if cfg.NotifyPollInterval <= 0 {
		cfg.NotifyPollInterval = 30 * time.Second
	}

	return cfg, nil
}
