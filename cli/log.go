package cli

import (
	logger "github.com/Subwoof01/sw-logger"
)

// logLevel is a custom type that configures the logger threshold as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --level flag, this method is called, allowing us to
// configure the logger early enough to affect messages emitted while the
// remaining flags are still being parsed.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)

	if *l != "" {
		logger.Config(logger.WithLevel(logger.ParseLevel(string(*l))))
	}

	return nil
}
