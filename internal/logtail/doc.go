// Package logtail reads the tail of the session log for the diagnostics
// overlay.
//
// # Reading Log Files
//
// Read keeps a ring buffer of the last maxLines lines, so a long session
// log is scanned once with O(maxLines) memory:
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//	if err != nil {
//		return err
//	}
//
// # Parsing
//
// Parse splits a line written by the slog text handler into time, level,
// message and remaining attributes. The UI colours entries by level.
// Lines that are not slog output are returned as a bare message.
package logtail
