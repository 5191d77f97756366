package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Backend BackendConfig `mapstructure:"backend"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// BackendConfig points at the E-WIZZ REST API. BaseURL is the only value
// with no usable default; the /api prefix is appended by the client.
type BackendConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type SessionConfig struct {
	DBPath string `mapstructure:"db_path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("session.db_path", "ewizz.db")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("EWIZZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// env override for deployments without a config file
	if u := v.GetString("backend.base_url"); u != "" {
		cfg.Backend.BaseURL = u
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend.base_url is required (or set EWIZZ_BACKEND_BASE_URL)")
	}
	cfg.Backend.BaseURL = strings.TrimRight(cfg.Backend.BaseURL, "/")

	return &cfg, nil
}
