// Package logtail reads the tail of dexter's diagnostic log.
//
// Read uses a ring buffer so only the last maxLines lines are kept in memory,
// whatever the file size. ReadEntries parses those lines as the JSON written
// by the diag package; lines that are not JSON are kept verbatim in
// Entry.Raw so a hand-edited or truncated file still displays.
//
//	entries, err := logtail.ReadEntries(cfg.LogFile, 200)
package logtail
