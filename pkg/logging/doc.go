// Package logging provides structured logging utilities for revtag.
//
// # Overview
//
// This package wraps the standard library slog package with revtag defaults:
// JSON records on stderr, a level taken from LOG_LEVEL or an explicit flag,
// module and version attributes on every record, and source locations when
// debugging.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("revtag", version)
//	    slog.Debug("describing", "dir", dir)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("revtag", "v1.0.0", "warn")
//
// # Environment Configuration
//
//	LOG_LEVEL=debug revtag describe
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "described revision",
//	    "module": "revtag",
//	    "version": "v1.0.0",
//	    "revision": "v0.9.8-760-gabcd1234"
//	}
//
// The revision package itself never logs; logging happens at the describe
// and cli layers.
package logging
