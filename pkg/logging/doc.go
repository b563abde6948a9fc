// Package logging provides structured logging utilities for modelver
// components.
//
// # Overview
//
// This package wraps the standard library slog package with project-wide
// defaults: JSON output to stderr, module/version context on every record,
// environment-based level configuration, and source location tracking for
// debug logs.
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("modelver", version)
//
//	    // Use slog as normal
//	    slog.Info("version created", "version", "1.2.0")
//	    slog.Error("operation failed", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("modelverd", version, "debug")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given (case-insensitive: debug, info, warn/warning, error).
// If LOG_LEVEL is not set, the level defaults to INFO.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2026-08-28T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "version created",
//	    "module": "modelver",
//	    "version": "v1.0.0"
//	}
//
// Debug logs additionally include the source location of the call site.
package logging
