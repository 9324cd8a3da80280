// Package app is the composition root for the Sentinel dashboard.
//
// Run loads configuration, builds the logger, creates the shared
// state.Store, starts the feed Scheduler and then hands control to the
// terminal UI until the user quits or the context is cancelled.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        file + SENTINEL_* env
//	       ├─────> NewLogger()          slog text file or discard
//	       ├─────> prefs.Load()         saved theme
//	       ├─────> Scheduler.Start()    feed.Generator -> state.Store
//	       └─────> ui.Run()             blocks
//
// The Scheduler fires once per feed interval (2.5s by default) and pushes a
// new feed.Entry into its Sink. The stop function returned by Start is
// idempotent and waits for the goroutine to exit, so no entry is produced
// after the UI has gone away.
package app
