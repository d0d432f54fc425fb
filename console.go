package logger

import "strings"

// ANSI color codes for the console echo.
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// levelColor returns the ANSI color for a level's tag.
func levelColor(level Level) string {
	switch level {
	case LevelDebug:
		return colorGray
	case LevelInfo:
		return colorCyan
	case LevelWarn:
		return colorYellow
	case LevelError:
		return colorRed
	default:
		return colorReset
	}
}

// colorize wraps the level tag of a rendered line in ANSI color codes.
// The rest of the line, including the timestamp, is left untouched.
func colorize(level Level, line string) string {
	tag := level.String() + ":"

	return strings.Replace(
		line,
		tag,
		levelColor(level)+level.String()+colorReset+":",
		1,
	)
}
