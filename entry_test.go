package logger

import (
	"testing"
	"time"
)

func TestParseEntry_InvertsRender(t *testing.T) {
	now := time.Date(2024, 2, 21, 12, 5, 51, 0, time.Local)

	tests := []struct {
		name    string
		layout  string
		level   Level
		message string
		stamp   string
	}{
		{
			name:    "default layout",
			layout:  DefaultTimeLayout,
			level:   LevelWarn,
			message: "This is a logged message!",
			stamp:   "2024-02-21 12:05:51",
		},
		{
			name:    "no timestamp",
			layout:  "none",
			level:   LevelError,
			message: "boom",
			stamp:   "",
		},
		{
			name:    "message containing separator",
			layout:  DefaultTimeLayout,
			level:   LevelInfo,
			message: "listen: tcp 0.0.0.0:8080",
			stamp:   "2024-02-21 12:05:51",
		},
		{
			name:    "empty message",
			layout:  DefaultTimeLayout,
			level:   LevelDebug,
			message: "",
			stamp:   "2024-02-21 12:05:51",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := apply(config{}, WithTimeLayout(tt.layout))
			line := cfg.render(tt.level, tt.message, now)

			entry, ok := ParseEntry(line)
			if !ok {
				t.Fatalf("expected %q to parse", line)
			}

			if entry.Stamp != tt.stamp {
				t.Errorf("expected stamp %q, got %q", tt.stamp, entry.Stamp)
			}
			if entry.Level != tt.level {
				t.Errorf("expected level %v, got %v", tt.level, entry.Level)
			}
			if entry.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, entry.Message)
			}
		})
	}
}

func TestParseEntry_RejectsMalformedLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"unterminated bracket", "[2024-02-21 boom"},
		{"unknown tag", "[2024-02-21 12:05:51] NOTICE: hello"},
		{"lowercase tag", "info: hello"},
		{"no separator", "ERROR hello"},
		{"plain text", "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ParseEntry(tt.line); ok {
				t.Errorf("expected %q to be rejected", tt.line)
			}
		})
	}
}
