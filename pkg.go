package logger

import "sync"

// Package-level default logger shared by the whole process.
var (
	defaultMutex sync.RWMutex
	defaultLog   = Make()
)

// Config updates the default logger with the given options.
// The change is visible to all subsequent log calls; lines already written
// are unaffected.
func Config(opts ...Option) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()

	defaultLog = defaultLog.Wrap(opts...)
}

// Default returns a snapshot of the current default logger.
func Default() Logger {
	defaultMutex.RLock()
	defer defaultMutex.RUnlock()

	return defaultLog
}

// SetPath sets the default path the logger uses to write to.
// If set to an empty string, the logger won't write to a file; only to
// stdout and stderr.
func SetPath(path string) {
	Config(WithPath(path))
}

// SetLevel sets the minimum severity required for a message to be emitted.
func SetLevel(level Level) {
	Config(WithLevel(level))
}

// SetTimeLayout sets the layout used to format log timestamps.
// See [WithTimeLayout] for accepted values.
func SetTimeLayout(layout string) {
	Config(WithTimeLayout(layout))
}

// Log emits a message through the default logger.
// See [Logger.Log] for dispatch and error semantics.
func Log(level Level, message string, opts ...Option) (string, error) {
	return Default().Log(level, message, opts...)
}

// Debug logs a message at Debug level using the default logger.
func Debug(message string, opts ...Option) (string, error) {
	return Default().Debug(message, opts...)
}

// Info logs a message at Info level using the default logger.
func Info(message string, opts ...Option) (string, error) {
	return Default().Info(message, opts...)
}

// Warn logs a message at Warn level using the default logger.
func Warn(message string, opts ...Option) (string, error) {
	return Default().Warn(message, opts...)
}

// Error logs a message at Error level using the default logger.
func Error(message string, opts ...Option) (string, error) {
	return Default().Error(message, opts...)
}
