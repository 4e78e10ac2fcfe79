package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Chat relay specifics
	Baichuan BaichuanConfig
	Session  SessionConfig
	Frontend FrontendConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BaichuanConfig configures the remote completion client. An empty APIKey is
// valid: the service runs in fallback-only mode.
type BaichuanConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

// SessionConfig tunes the in-memory session store and its reaper.
type SessionConfig struct {
	MaxHistoryTurns int
	IdleTimeout     time.Duration
	ReaperInterval  time.Duration
}

type FrontendConfig struct {
	Dir string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
// A local .env file is loaded first so flat env vars like BAICHUAN_API_KEY work.
func Load() (*Config, error) {
	// .env is optional; env vars may already be set in production.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Remote provider
	cfg.Baichuan.APIKey = viper.GetString("baichuan.api_key")
	cfg.Baichuan.BaseURL = viper.GetString("baichuan.base_url")
	cfg.Baichuan.Model = viper.GetString("baichuan.model")
	cfg.Baichuan.Timeout = viper.GetDuration("baichuan.timeout")
	cfg.Baichuan.MaxTokens = viper.GetInt("baichuan.max_tokens")
	cfg.Baichuan.Temperature = viper.GetFloat64("baichuan.temperature")
	if key := viper.GetString("baichuan_api_key"); key != "" {
		cfg.Baichuan.APIKey = key
	}

	// Sessions
	cfg.Session.MaxHistoryTurns = viper.GetInt("session.max_history_turns")
	cfg.Session.IdleTimeout = viper.GetDuration("session.idle_timeout")
	cfg.Session.ReaperInterval = viper.GetDuration("session.reaper_interval")

	// Frontend
	cfg.Frontend.Dir = viper.GetString("frontend.dir")
	if dir := viper.GetString("frontend_dir"); dir != "" {
		cfg.Frontend.Dir = dir
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")

	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "release")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("baichuan.base_url", "https://api.baichuan-ai.com/v1")
	viper.SetDefault("baichuan.model", "Baichuan3-Turbo")
	viper.SetDefault("baichuan.timeout", "30s")
	viper.SetDefault("baichuan.max_tokens", 1500)
	viper.SetDefault("baichuan.temperature", 0.7)

	viper.SetDefault("session.max_history_turns", 6)
	viper.SetDefault("session.idle_timeout", "1h")
	viper.SetDefault("session.reaper_interval", "5m")

	viper.SetDefault("frontend.dir", "")
}
