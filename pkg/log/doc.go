// Package log provides structured event logging for parameter sessions.
//
// This package defines the Logger interface and Event types for capturing
// what happens to each requested attribute in an update cycle and what the
// device did with each committed batch. It is separate from operational
// logging (slog): the event log is a complete machine-readable trace of a
// session for debugging and replay analysis.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For hosts that already run logrus
//	cfg.EventLogger = log.NewLogrusAdapter(logrus.StandardLogger())
//
//	// For production: write to binary file
//	cfg.EventLogger, _ = log.NewFileLogger("/var/log/camparam/rear.plog")
//
//	// Several at once: use MultiLogger
//	cfg.EventLogger = log.NewMultiLogger(console, file)
//
// # Event Types
//
// Every event carries the session ID and a category:
//   - Attribute: the outcome of one setter (AttributeEvent)
//   - Commit: a batch handed to the device (CommitEvent)
//   - Lifecycle: session open and close (LifecycleEvent)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with the .plog extension.
// The camparam-log CLI tool provides viewing, filtering and export.
package log
