package commands

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sentinelhq/sentinel/internal/app"
	"github.com/sentinelhq/sentinel/internal/feed"
)

func newFeedCmd() *cobra.Command {
	var count int
	var noColor bool

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Print the operations feed to stdout",
		Example: `  sentinel feed
  sentinel feed --count 5
  sentinel feed --interval 500ms --seed 42 --no-color`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("--count must not be negative, got %d", count)
			}

			cfg, err := app.LoadConfig(app.Options{ConfigPath: cfgFile, FeedInterval: interval, Seed: seed})
			if err != nil {
				return err
			}
			logger, closeLog, err := app.NewLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			out := newPrinter(cmd.OutOrStdout(), count, noColor)
			scheduler := app.NewScheduler(feed.NewGenerator(cfg.Seed), out, cfg.FeedInterval, logger)

			ctx := cmd.Context()
			stop := scheduler.Start(ctx)
			defer stop()

			select {
			case <-ctx.Done():
			case <-out.done:
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "stop after N entries (0 = until interrupted)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

// printer is an app.Sink that writes entries as lines, colored by category.
type printer struct {
	mu    sync.Mutex
	w     io.Writer
	limit int
	n     int
	done  chan struct{}

	dim        *color.Color
	categories map[feed.Category]*color.Color
}

func newPrinter(w io.Writer, limit int, noColor bool) *printer {
	p := &printer{
		w:     w,
		limit: limit,
		done:  make(chan struct{}),
		dim:   color.New(color.Faint),
		categories: map[feed.Category]*color.Color{
			feed.CategorySystem:   color.New(color.FgCyan),
			feed.CategorySecurity: color.New(color.FgRed, color.Bold),
			feed.CategoryPayment:  color.New(color.FgGreen),
		},
	}
	if noColor {
		p.dim.DisableColor()
		for _, c := range p.categories {
			c.DisableColor()
		}
	}
	return p
}

// Push prints e. Entries past the limit are dropped.
func (p *printer) Push(e feed.Entry) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.limit > 0 && p.n >= p.limit {
		return
	}
	p.n++
	fmt.Fprintf(p.w, "%s %s\n", p.dim.Sprintf("[%s]", e.Timestamp), p.categories[e.Category].Sprint(e.Message)) //nolint:errcheck // CLI output
	if p.limit > 0 && p.n == p.limit {
		close(p.done)
	}
}
