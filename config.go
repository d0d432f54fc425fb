package logger

//go:generate go tool stringer --linecomment --type Level --output level_string.go

import (
	"io"
	"iter"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
//
// Levels are totally ordered: a message is emitted only when its level is at
// or above the configured threshold.
type Level int

const (
	LevelDebug Level = iota // DEBUG
	LevelInfo               // INFO
	LevelWarn               // WARNING
	LevelError              // ERROR
)

// DefaultLevel is the default threshold. Every message is emitted.
const DefaultLevel = LevelDebug

// Levels returns an iterator over all defined log levels.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range []Level{
			LevelDebug,
			LevelInfo,
			LevelWarn,
			LevelError,
		} {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// ParseLevel parses a string representation of a log level.
//
// Matching is case-insensitive. Valid level strings are "DEBUG", "INFO",
// "WARN" (or "WARNING"), and "ERROR". The threshold names used by earlier
// releases are also accepted and map onto the ordered scale: "verbose" is
// Debug, "default" is Warn, and "errors-only" is Error.
// Anything else yields [DefaultLevel].
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "verbose":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning", "default":
		return LevelWarn
	case "error", "errors-only", "errorsonly":
		return LevelError
	default:
		return DefaultLevel
	}
}

// FormatTime defines a function that formats a time.Time value as a string.
type FormatTime func(time.Time) string

// DefaultTimeLayout is the default used when no valid time layout is
// provided.
const DefaultTimeLayout = "2006-01-02 15:04:05"

// DefaultColor is the default setting for colorizing the console echo.
const DefaultColor = false

// config holds the configuration options for a Logger.
type config struct {
	mutex      *sync.RWMutex
	stdout     io.Writer
	stderr     io.Writer
	formatTime FormatTime
	path       string
	level      Level
	color      bool
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(opts ...Option) config {
	var c config

	c.mutex = &sync.RWMutex{}

	return apply(apply(c, WithDefaults()), opts...)
}

// clone creates a copy of the config with a separate mutex and applies any
// provided options.
func (c config) clone(opts ...Option) config {
	c.mutex = &sync.RWMutex{}

	return apply(c, opts...)
}

// WithDefaults returns a functional option that sets the default
// configuration: no file sink, [DefaultLevel], [DefaultTimeLayout],
// console on [os.Stdout]/[os.Stderr], and color disabled.
func WithDefaults() Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.stdout = os.Stdout
		c.stderr = os.Stderr
		c.formatTime = makeFormatTimeFunc(DefaultTimeLayout)
		c.path = ""
		c.level = DefaultLevel
		c.color = DefaultColor

		return c
	}
}

// WithPath returns a functional option that sets the log file path.
// An empty path disables file output; messages then go to the console
// streams only.
//
// Applied per-call to [Logger.Log], it overrides the configured default path
// for that single call.
func WithPath(path string) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.path = path

		return c
	}
}

// WithLevel returns a functional option that sets the minimum log level.
// Messages below this level are discarded.
func WithLevel(level Level) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.level = level

		return c
	}
}

// WithTimeLayout returns a functional option that sets the layout used to
// format log timestamps.
//
// The layout string can be one of the named layouts from the [time] package
// (for example, "RFC3339" or "RFC3339Nano"). Otherwise, it is passed verbatim
// to [time.Time.Format] and must follow the standard specification.
//
// If an empty string (after trimming whitespace) is provided, timestamps are
// disabled and no time is included in log output.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		format := makeFormatTimeFunc(layout)

		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.formatTime = format

		return c
	}
}

// WithConsole returns a functional option that sets the console streams.
// Messages at [LevelError] are echoed to stderr, all others to stdout.
// If a nil writer is provided, [io.Discard] is used instead.
func WithConsole(stdout, stderr io.Writer) Option {
	return func(c config) config {
		if stdout == nil {
			stdout = io.Discard
		}

		if stderr == nil {
			stderr = io.Discard
		}

		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.stdout = stdout
		c.stderr = stderr

		return c
	}
}

// WithColor returns a functional option that controls whether the level tag
// is colorized on the console echo. Lines written to a file are never
// colorized.
func WithColor(enable bool) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.color = enable

		return c
	}
}

// timeLayout maps named layouts to their corresponding time.Time constants.
var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,

	"stamp": time.Stamp,
	"none":  "",

	"stampmilli": time.StampMilli,
	"milli":      time.StampMilli,
	"millis":     time.StampMilli,
	"ms":         time.StampMilli,

	"stampmicro": time.StampMicro,
	"micro":      time.StampMicro,
	"micros":     time.StampMicro,
	"us":         time.StampMicro,

	"stampnano": time.StampNano,
	"nano":      time.StampNano,
	"nanos":     time.StampNano,
	"ns":        time.StampNano,
}

func makeFormatTimeFunc(layout string) FormatTime {
	// Trim whitespace only for inspection.
	// Custom layouts are used verbatim.
	trimmed := strings.Map(
		func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}

			return -1
		},
		strings.ToLower(layout),
	)

	if trimmed == "" {
		return func(time.Time) string { return "" }
	}

	if std, ok := timeLayout[trimmed]; ok {
		layout = std
	}

	return func(t time.Time) string { return t.Format(layout) }
}
