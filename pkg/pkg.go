//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// version is the semantic version of the sw-logger module embedded at build
// time. It is printed by the CLI when users invoke --version.
//
//go:embed VERSION
var version string

// Version returns the embedded module version without surrounding
// whitespace.
func Version() string {
	return strings.TrimSpace(version)
}

const (
	// Name is the canonical command identifier used across the project.
	// For example, it appears in help text and usage errors.
	Name = "swlog"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Leveled message logger with per-call file routing"
)
