package logger

import (
	"fmt"
	"os"
	"time"
)

// Logger provides a concurrency-safe leveled logging interface.
//
// A Logger echoes every emitted message to the console (stderr for
// [LevelError], stdout otherwise) and, when a file path is configured,
// appends the same line to that file. The file is opened in append mode and
// closed again on every call, so no descriptor is held between calls and
// external rotation of the file is tolerated.
//
// The zero value is inert: all of its methods are no-ops. Use [Make] to
// create a usable Logger.
type Logger struct {
	config
}

// Make creates a new [Logger].
// The default configuration is no file sink, [DefaultLevel],
// [DefaultTimeLayout], console output on [os.Stdout]/[os.Stderr], and color
// disabled.
//
// Optional configuration can be applied using functional options like
// [WithPath], [WithLevel], [WithTimeLayout], and [WithColor].
func Make(opts ...Option) Logger {
	// No need to lock the mutex here since we have the only reference to the
	// new config. The functional options will lock it as needed.
	return Logger{config: makeConfig(opts...)}
}

// Wrap returns a new [Logger] that wraps the current logger with the
// provided configuration options.
// The existing configuration is used as the base, and any provided options
// will override specific values.
func (l Logger) Wrap(opts ...Option) Logger {
	if l.mutex == nil {
		return Make(opts...)
	}

	// Method [config.clone] has a value receiver, implicitly copies l.config,
	// and creates a new mutex for the copy embedded in the returned Logger.
	// Passing opts to [config.clone] means all of its mutations happen while
	// nothing else holds a reference to the new mutex.
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return Logger{config: l.clone(opts...)}
}

// Level returns the current minimum log level.
func (l Logger) Level() Level {
	if l.mutex == nil {
		return DefaultLevel
	}

	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.level
}

// Path returns the current default log file path.
// An empty path means no file sink is configured.
func (l Logger) Path() string {
	if l.mutex == nil {
		return ""
	}

	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.path
}

// Log formats and emits a message at the given level.
//
// If level is below the configured threshold, Log performs no I/O and
// returns an empty line with a nil error. Otherwise the message is rendered
// as a single line
//
//	[<timestamp>] <LEVEL>: <message>
//
// echoed to the console, and appended to the resolved file. Per-call options
// override the configuration for this single call only: in particular,
// [WithPath] selects an override destination, and WithPath("") suppresses
// the file sink for the call. With no per-call override the configured
// default path is used; if that is empty, the line goes to the console only.
//
// The rendered line is returned. If the resolved file cannot be opened,
// written, or closed, the error is returned to the caller; the console echo
// is best-effort and never fails the call. Log never terminates the process.
func (l Logger) Log(level Level, message string, opts ...Option) (string, error) {
	// Silently return for zero value loggers
	if l.mutex == nil {
		return "", nil
	}

	l.mutex.RLock()
	cfg := l.clone(opts...)
	l.mutex.RUnlock()

	if level < cfg.level {
		return "", nil
	}

	line := cfg.render(level, message, time.Now())

	cfg.echo(level, line)

	if cfg.path == "" {
		return line, nil
	}

	if err := appendLine(cfg.path, line); err != nil {
		return line, err
	}

	return line, nil
}

// Debug logs a message at Debug level.
func (l Logger) Debug(message string, opts ...Option) (string, error) {
	return l.Log(LevelDebug, message, opts...)
}

// Info logs a message at Info level.
func (l Logger) Info(message string, opts ...Option) (string, error) {
	return l.Log(LevelInfo, message, opts...)
}

// Warn logs a message at Warn level.
func (l Logger) Warn(message string, opts ...Option) (string, error) {
	return l.Log(LevelWarn, message, opts...)
}

// Error logs a message at Error level.
func (l Logger) Error(message string, opts ...Option) (string, error) {
	return l.Log(LevelError, message, opts...)
}

// render formats a single log line without a trailing newline.
// When the configured time layout produces no timestamp, the bracketed
// prefix is omitted entirely.
func (c config) render(level Level, message string, t time.Time) string {
	stamp := c.formatTime(t)
	if stamp == "" {
		return fmt.Sprintf("%s: %s", level, message)
	}

	return fmt.Sprintf("[%s] %s: %s", stamp, level, message)
}

// echo writes the line to the console stream for the given level.
// Write errors are ignored: the console is a courtesy sink, and a failed
// echo must not fail the log call.
func (c config) echo(level Level, line string) {
	w := c.stdout
	if level >= LevelError {
		w = c.stderr
	}

	if w == nil {
		return
	}

	if c.color {
		line = colorize(level, line)
	}

	_, _ = fmt.Fprintln(w, line)
}

// appendLine appends line and a newline to the file at path, creating the
// file if it does not exist. The handle is scoped to this call.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	_, werr := fmt.Fprintln(f, line)

	cerr := f.Close()
	if werr != nil {
		return werr
	}

	return cerr
}
