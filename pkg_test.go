package logger

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// swapDefault replaces the package default logger for the duration of a test.
func swapDefault(t *testing.T, opts ...Option) {
	t.Helper()

	original := defaultLog
	t.Cleanup(func() {
		defaultMutex.Lock()
		defer defaultMutex.Unlock()

		defaultLog = original
	})

	defaultMutex.Lock()
	defer defaultMutex.Unlock()

	defaultLog = Make(opts...)
}

func TestPackage_SetPath_SetsPath(t *testing.T) {
	swapDefault(t)

	path := filepath.Join(t.TempDir(), "test.log")
	SetPath(path)

	if got := Default().Path(); got != path {
		t.Errorf("expected path %q, got %q", path, got)
	}
}

func TestPackage_SetLevel_SetsLevel(t *testing.T) {
	swapDefault(t)

	SetLevel(LevelError)

	if got := Default().Level(); got != LevelError {
		t.Errorf("expected level Error, got %v", got)
	}
}

func TestPackage_DefaultConfiguration(t *testing.T) {
	swapDefault(t)

	if got := Default().Level(); got != DefaultLevel {
		t.Errorf("expected most permissive default level, got %v", got)
	}
	if got := Default().Path(); got != "" {
		t.Errorf("expected no default file sink, got %q", got)
	}
}

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	var out, errs bytes.Buffer

	swapDefault(t, WithConsole(&out, &errs), WithTimeLayout("none"))

	path := filepath.Join(t.TempDir(), "test.log")
	SetPath(path)

	tests := []struct {
		name string
		fn   func(string, ...Option) (string, error)
		tag  string
		msg  string
	}{
		{"Debug", Debug, "DEBUG", "debug message"},
		{"Info", Info, "INFO", "info message"},
		{"Warn", Warn, "WARNING", "warn message"},
		{"Error", Error, "ERROR", "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := tt.fn(tt.msg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			expected := tt.tag + ": " + tt.msg
			if line != expected {
				t.Errorf("expected line %q, got %q", expected, line)
			}

			got := readLines(t, path)
			if len(got) == 0 || got[len(got)-1] != expected {
				t.Errorf("expected %q appended to file, got %v", expected, got)
			}
		})
	}
}

func TestPackage_Log_WritesToDefaultFile(t *testing.T) {
	var out, errs bytes.Buffer

	swapDefault(t, WithConsole(&out, &errs))

	path := filepath.Join(t.TempDir(), "test.log")
	SetPath(path)

	line, err := Log(LevelError, "This is a test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := readLines(t, path)
	if len(got) != 1 || got[0] != line {
		t.Errorf("did not find logged line in default file, got %v", got)
	}
}

func TestPackage_Log_WritesToCustomFile(t *testing.T) {
	var out, errs bytes.Buffer

	swapDefault(t, WithConsole(&out, &errs))

	path := filepath.Join(t.TempDir(), "custom.log")

	line, err := Log(LevelError, "This is a test", WithPath(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := readLines(t, path)
	if len(got) != 1 || got[0] != line {
		t.Errorf("did not find logged line in custom file, got %v", got)
	}
}

func TestPackage_Config_NotRetroactive(t *testing.T) {
	var out, errs bytes.Buffer

	swapDefault(t, WithConsole(&out, &errs), WithTimeLayout("none"))

	path := filepath.Join(t.TempDir(), "test.log")
	SetPath(path)

	if _, err := Info("before"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	SetLevel(LevelError)

	if _, err := Info("after"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := readLines(t, path)
	if len(got) != 1 || !strings.Contains(got[0], "before") {
		t.Errorf("expected only the line written before the level change, got %v", got)
	}
}
