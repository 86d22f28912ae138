// Package logging provides structured logging for EduPortal.
//
// This package wraps a zap logger with convenience functions for the
// patterns used throughout the portal: route changes, view mounts, state
// transitions and player lifecycle events.
//
// # Log Levels
//
//   - Debug: State transitions, mounts, no-op inputs
//   - Info: Route changes, player mount/unmount
//   - Warn: Recoverable problems (clipboard unavailable)
//   - Error: Catalog/state mismatches such as an out-of-range checklist index
//
// # Configuration
//
// Logging is silent unless a level is given, either explicitly or through
// EDUPORTAL_LOG_LEVEL. The TUI owns the terminal, so it logs to a file:
//
//	if err := logging.Initialize("debug", "/tmp/eduportal.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Correlation
//
// Every entry carries a per-run session id. Views mint a mount id with
// NewMountID when they are mounted, so the lifetime of one view instance can
// be followed through the log.
package logging
