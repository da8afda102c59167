// Package app wires dexter together.
//
// Run loads config.toml and prefs.toml, opens the diagnostic log, builds the
// rate-limited catalog client and hands a nav.State and pipeline.Pipeline to
// the Bubble Tea UI. It blocks until the UI exits.
//
// Show performs a single lookup without the TUI, using the same search-term
// rules as the search field.
//
// Configuration errors are fatal. Network failures never are: the bound
// lookup falls back to fallback_max_id and a failed record fetch shows the
// not-found placeholder.
package app
