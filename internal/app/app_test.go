package app

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sentinelhq/sentinel/internal/config"
)

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("feed_interval = \"1s\"\nseed = 3\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.FeedInterval != time.Second || cfg.Seed != 3 {
		t.Fatalf("LoadConfig = %#v, want file values", cfg)
	}

	cfg, err = LoadConfig(Options{ConfigPath: path, FeedInterval: 5 * time.Second, Seed: 8})
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.FeedInterval != 5*time.Second || cfg.Seed != 8 {
		t.Fatalf("LoadConfig = %#v, want flag overrides", cfg)
	}
}

func TestLoadConfig_WrapsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("feed_interval = ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := LoadConfig(Options{ConfigPath: path})
	if err == nil || !strings.HasPrefix(err.Error(), "load config:") {
		t.Fatalf("LoadConfig error = %v, want load config prefix", err)
	}
}

func TestNewLogger_DiscardsWithoutFile(t *testing.T) {
	logger, closeLog, err := NewLogger(config.Default())
	if err != nil {
		t.Fatalf("NewLogger returned error: %v", err)
	}
	defer closeLog()
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Fatalf("discard logger should not be enabled")
	}
}

func TestNewLogger_WritesToFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "sentinel.log")

	logger, closeLog, err := NewLogger(cfg)
	if err != nil {
		t.Fatalf("NewLogger returned error: %v", err)
	}
	logger.Info("hello", "k", "v")
	logger.Debug("hidden")
	closeLog()

	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "msg=hello k=v") {
		t.Fatalf("log file = %q, want hello line", data)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("log file = %q, debug should be filtered at info level", data)
	}
}

func TestNewTextLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newTextLogger(&buf, slog.LevelWarn)
	logger.Info("quiet")
	logger.Warn("loud")
	if strings.Contains(buf.String(), "quiet") || !strings.Contains(buf.String(), "loud") {
		t.Fatalf("output = %q, want only warn", buf.String())
	}
}
