// Package config loads the dashboard's runtime configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/sentinel/config.toml (default)
//  3. If the config file doesn't exist, start from defaults
//  4. Apply SENTINEL_* environment variables on top of the file
//  5. Anything still blank falls back to defaults
//
// Paths ending in .yaml or .yml are decoded as YAML; everything else as TOML.
//
// # Default Values
//
//   - feed_interval: 2.5s (one operations log entry per tick)
//   - refresh_interval: 500ms (UI snapshot polling)
//   - seed: 0 (random; set it for a reproducible demo)
//   - log_file: empty (logs are discarded so the alt screen stays clean)
//   - log_level: info
//
// # Example
//
//	feed_interval = "2.5s"
//	refresh_interval = "500ms"
//	seed = 42
//	log_file = "~/.local/state/sentinel/sentinel.log"
//	log_level = "debug"
//
// # Error Handling
//
// A missing file is not an error. Unreadable files, malformed TOML/YAML,
// unparsable or non-positive durations, and unknown log levels are returned
// wrapped with the offending field or stage ("parse config: ...",
// "feed_interval: ...").
package config
