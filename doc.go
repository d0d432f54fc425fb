// Package logger provides a concurrency-safe leveled logger that writes
// plain-text lines to the console and, optionally, a file.
//
// Two pieces of process-wide state — the default file path and the minimum
// severity — are set once by the host program and read on every log call:
//
//	logger.SetPath("/var/log/app.log")
//	logger.SetLevel(logger.LevelWarn)
//
//	logger.Error("failed to connect")
//	logger.Debug("retrying")          // below threshold: no output
//
// Every emitted message becomes a single line
//
//	[2024-02-21 12:05:51] WARNING: This is a logged message!
//
// echoed to stdout (stderr for errors) and appended to the configured file.
// The file is opened in append mode and closed on every call, so external
// log rotation is tolerated.
//
// # Per-Call Destination Override
//
// A call can route its line to a different file than the configured default
// by passing [WithPath] as a per-call option:
//
//	logger.Error("boom", logger.WithPath("/tmp/crash.log"))
//
// The override applies to that single call only. Passing WithPath("")
// suppresses the file sink for the call.
//
// # Dedicated Loggers
//
// Independent loggers with their own configuration are created with [Make]
// and derived with [Logger.Wrap]:
//
//	audit := logger.Make(
//		logger.WithPath("/var/log/audit.log"),
//		logger.WithLevel(logger.LevelInfo))
//	audit.Info("user logged in")
//
// # Error Handling
//
// Log calls return the rendered line together with an error. A file that
// cannot be opened or written surfaces the underlying I/O error to the
// caller; the console echo is best-effort. Logging never terminates the
// host process.
//
// # Supported Levels
//
// The package supports four totally ordered levels: [LevelDebug],
// [LevelInfo], [LevelWarn], and [LevelError]. Messages below the configured
// threshold are discarded before any I/O.
//
// # Configuration Files
//
// [LoadFile] reads the path, level, timestamp layout, and color settings
// from a YAML document and returns the corresponding options for [Config]
// or [Make].
package logger
