package cmd

import (
	"testing"
)

func TestCompileFilter_EmptySource_MatchesEverything(t *testing.T) {
	f, err := compileFilter("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != nil {
		t.Fatal("expected nil filter for empty source")
	}

	if !f.match("[2024-02-21 12:05:51] ERROR: boom") {
		t.Error("expected nil filter to match entries")
	}
	if !f.match("not an entry at all") {
		t.Error("expected nil filter to match raw lines")
	}
}

func TestCompileFilter_InvalidExpression_ReturnsError(t *testing.T) {
	_, err := compileFilter(`level ==`)
	if err == nil {
		t.Fatal("expected compile error")
	}
}

func TestFilter_Match(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		line     string
		expected bool
	}{
		{
			name:     "level equality matches",
			source:   `level == "ERROR"`,
			line:     "[2024-02-21 12:05:51] ERROR: boom",
			expected: true,
		},
		{
			name:     "level equality rejects",
			source:   `level == "ERROR"`,
			line:     "[2024-02-21 12:05:51] INFO: fine",
			expected: false,
		},
		{
			name:     "message substring",
			source:   `message contains "timeout"`,
			line:     "[2024-02-21 12:05:51] WARNING: request timeout after 3s",
			expected: true,
		},
		{
			name:     "level membership",
			source:   `level in ["WARNING", "ERROR"]`,
			line:     "[2024-02-21 12:05:51] WARNING: iffy",
			expected: true,
		},
		{
			name:     "unparsed line has empty level",
			source:   `level == ""`,
			line:     "plain text line",
			expected: true,
		},
		{
			name:     "raw line remains visible to expressions",
			source:   `line contains "plain"`,
			line:     "plain text line",
			expected: true,
		},
		{
			name:     "stamp is exposed",
			source:   `stamp startsWith "2024-02-21"`,
			line:     "[2024-02-21 12:05:51] DEBUG: tick",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := compileFilter(tt.source)
			if err != nil {
				t.Fatalf("unexpected compile error: %v", err)
			}

			if got := f.match(tt.line); got != tt.expected {
				t.Errorf(
					"match(%q) with %q = %v, want %v",
					tt.line,
					tt.source,
					got,
					tt.expected,
				)
			}
		})
	}
}
