package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/sentinelhq/sentinel/internal/config"
	"github.com/sentinelhq/sentinel/internal/feed"
	"github.com/sentinelhq/sentinel/internal/mockdata"
	"github.com/sentinelhq/sentinel/internal/prefs"
	"github.com/sentinelhq/sentinel/internal/state"
	"github.com/sentinelhq/sentinel/internal/ui"
)

// Options configure the dashboard application.
type Options struct {
	ConfigPath   string
	PrefsPath    string        // empty uses default ~/.config/sentinel/prefs.toml
	FeedInterval time.Duration // zero uses the configured interval
	Seed         uint64        // zero uses the configured seed
}

// Run boots the dashboard until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := NewLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)
	logger.Info("starting dashboard",
		"feed_interval", cfg.FeedInterval,
		"refresh_interval", cfg.RefreshInterval,
		"seed", cfg.Seed,
		"theme", userPrefs.Theme)

	store := &state.Store{}
	scheduler := NewScheduler(feed.NewGenerator(cfg.Seed), store, cfg.FeedInterval, logger)

	// The feed lives exactly as long as the UI.
	stop := scheduler.Start(ctx)
	defer stop()

	return ui.Run(ui.Options{
		Context:     ctx,
		Store:       store,
		Series:      mockdata.NewSeries(cfg.Seed, mockdata.DefaultDays),
		Services:    mockdata.Services(),
		RefreshTick: cfg.RefreshInterval,
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
		Logger:      logger,
	})
}

// LoadConfig loads the config file and applies command-line overrides.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.FeedInterval > 0 {
		cfg.FeedInterval = opts.FeedInterval
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}
	return cfg, nil
}

// NewLogger builds the structured logger. Without a log file everything is
// discarded so the alt screen is never written to.
func NewLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newTextLogger(file, cfg.LogLevel), func() { _ = file.Close() }, nil
}

func newTextLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
