package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/sentinelhq/sentinel/internal/app"
)

var (
	cfgFile  string
	interval time.Duration
	seed     uint64
)

// NewRoot builds the sentinel command tree. Without a subcommand it runs the
// dashboard.
func NewRoot() *cobra.Command {
	var prefsPath string

	root := &cobra.Command{
		Use:           "sentinel",
		Short:         "Enterprise operations dashboard demo for the terminal",
		Long:          "Sentinel renders a mock business intelligence dashboard with a live operations feed. All data is synthetic.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath:   cfgFile,
				PrefsPath:    prefsPath,
				FeedInterval: interval,
				Seed:         seed,
			})
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default ~/.config/sentinel/config.toml)")
	root.PersistentFlags().DurationVar(&interval, "interval", 0, "feed interval, overrides the config file")
	root.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed for the feed and chart (0 = random)")
	root.Flags().StringVar(&prefsPath, "prefs", "", "preferences file path (default ~/.config/sentinel/prefs.toml)")

	root.AddCommand(
		newFeedCmd(),
		newVersionCmd(),
	)

	return root
}
