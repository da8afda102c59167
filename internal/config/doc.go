// Package config loads dexter's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/dexter/config.toml
//  3. If the file doesn't exist, use Default()
//  4. Missing, blank or non-positive fields keep their defaults
//
// # TOML Format
//
//	api_base = "https://pokeapi.co/api/v2"
//	fallback_max_id = 1010        # bound used until the count lookup answers
//	start_id = 1
//	transition_ms = 180           # exit fade before a record is rendered
//	request_timeout_seconds = 10
//	requests_per_second = 5       # client-side throttle, 0 keeps the default
//	burst = 2
//	discard_stale = true          # false restores last-write-wins rendering
//	log_file = "~/.local/state/dexter/dexter.log"   # "" disables the log
//
// Tilde expansion is performed for log_file and the config path itself.
// Load returns an error only for unreadable or unparseable files; a missing
// file is not an error.
package config
