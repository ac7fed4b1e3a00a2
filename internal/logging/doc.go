// Package logging provides structured logging for moviedb.
//
// This package wraps a zap logger with convenience functions. Logging is
// silent unless a level is given, because the editor draws on the terminal
// and any stray output would corrupt the screen.
//
// # Log Levels
//
//   - Debug: every applied action, including keystrokes in the form
//   - Info: startup, records added, saved and deleted
//   - Warn: rejected actions (validation failures, bad row positions)
//   - Error: startup failures
//
// # Configuration
//
// Initialize logging before the program starts:
//
//	if err := logging.Initialize("debug", "/tmp/moviedb.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// An empty level falls back to MOVIEDB_LOG_LEVEL. An empty path writes to
// stderr, which is only useful for the non-interactive commands.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
