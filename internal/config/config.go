package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config captures the runtime knobs of the dashboard.
type Config struct {
	FeedInterval    time.Duration
	RefreshInterval time.Duration
	Seed            uint64
	LogFile         string
	LogLevel        slog.Level
}

const (
	defaultConfigPath      = "~/.config/sentinel/config.toml"
	defaultFeedInterval    = 2500 * time.Millisecond
	defaultRefreshInterval = 500 * time.Millisecond
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		FeedInterval:    defaultFeedInterval,
		RefreshInterval: defaultRefreshInterval,
		LogLevel:        slog.LevelInfo,
	}
}

// fileConfig mirrors the on-disk layout. Durations and levels stay strings so
// TOML, YAML and the environment share one parser.
type fileConfig struct {
	FeedInterval    string `toml:"feed_interval" yaml:"feed_interval" env:"SENTINEL_FEED_INTERVAL"`
	RefreshInterval string `toml:"refresh_interval" yaml:"refresh_interval" env:"SENTINEL_REFRESH_INTERVAL"`
	Seed            uint64 `toml:"seed" yaml:"seed" env:"SENTINEL_SEED"`
	LogFile         string `toml:"log_file" yaml:"log_file" env:"SENTINEL_LOG_FILE"`
	LogLevel        string `toml:"log_level" yaml:"log_level" env:"SENTINEL_LOG_LEVEL"`
}

// Load reads the config file at path (or the default location), applies
// SENTINEL_* environment overrides, and falls back to defaults for anything
// left blank. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw fileConfig
	if err := decodeFile(resolved, &raw); err != nil {
		return Config{}, err
	}
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return raw.resolve()
}

func decodeFile(path string, raw *fileConfig) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, raw)
	default:
		err = toml.Unmarshal(bytes, raw)
	}
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func (raw fileConfig) resolve() (Config, error) {
	cfg := Default()

	var err error
	if cfg.FeedInterval, err = parseInterval(raw.FeedInterval, defaultFeedInterval); err != nil {
		return Config{}, fmt.Errorf("feed_interval: %w", err)
	}
	if cfg.RefreshInterval, err = parseInterval(raw.RefreshInterval, defaultRefreshInterval); err != nil {
		return Config{}, fmt.Errorf("refresh_interval: %w", err)
	}

	cfg.Seed = raw.Seed

	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("log_level: %w", err)
		}
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	return cfg, nil
}

func parseInterval(value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", value)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
