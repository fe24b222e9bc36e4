// Package config loads dashboard settings from an optional YAML file
// plus DASHBOARD_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ExportDir       string `mapstructure:"export_dir"`
	PageSize        int    `mapstructure:"page_size"`
	ReportTitle     string `mapstructure:"report_title"`
	LogLevel        string `mapstructure:"log_level"`
	ExportStaggerMS int    `mapstructure:"export_stagger_ms"`
}

// Load reads dashboard.yaml from path (or the working directory when
// path is empty). A missing file is fine: defaults plus environment
// overrides apply.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("export_dir", "exports")
	v.SetDefault("page_size", 10)
	v.SetDefault("report_title", "Marketing Analytics Dashboard Report")
	v.SetDefault("log_level", "info")
	v.SetDefault("export_stagger_ms", 100)

	v.SetEnvPrefix("DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("dashboard")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = 10
	}
	return cfg, nil
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
