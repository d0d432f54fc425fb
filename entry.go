package logger

import "strings"

// Entry is a single log line split back into its parts.
type Entry struct {
	// Stamp is the raw timestamp text, without brackets. Empty when the line
	// was rendered with timestamps disabled.
	Stamp string
	// Level is the severity the line was tagged with.
	Level Level
	// Message is the message text.
	Message string
}

// ParseEntry parses a line rendered by [Logger.Log] back into an [Entry].
// It reports false for lines that do not follow the
// "[<timestamp>] <LEVEL>: <message>" format.
func ParseEntry(line string) (Entry, bool) {
	var e Entry

	rest := line

	if strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "] ")
		if end < 0 {
			return Entry{}, false
		}

		e.Stamp = rest[1:end]
		rest = rest[end+2:]
	}

	tag, msg, ok := strings.Cut(rest, ": ")
	if !ok {
		// A message can be empty; accept a bare "LEVEL:" terminator.
		tag, ok = strings.CutSuffix(rest, ":")
		if !ok {
			return Entry{}, false
		}
	}

	switch tag {
	case LevelDebug.String():
		e.Level = LevelDebug
	case LevelInfo.String():
		e.Level = LevelInfo
	case LevelWarn.String():
		e.Level = LevelWarn
	case LevelError.String():
		e.Level = LevelError
	default:
		return Entry{}, false
	}

	e.Message = msg

	return e, true
}
