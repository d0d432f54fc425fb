package cmd

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	logger "github.com/Subwoof01/sw-logger"
)

// filterEnv is the variable set exposed to --filter expressions.
// Lines that do not parse as log entries expose empty level, stamp, and
// message fields but keep the raw line available.
type filterEnv map[string]any

func newFilterEnv(line string) filterEnv {
	env := filterEnv{
		"line":    line,
		"level":   "",
		"stamp":   "",
		"message": "",
	}

	entry, ok := logger.ParseEntry(line)
	if ok {
		env["level"] = entry.Level.String()
		env["stamp"] = entry.Stamp
		env["message"] = entry.Message
	}

	return env
}

// filter is a compiled boolean entry-selection expression.
// A nil filter matches every line.
type filter struct {
	program *vm.Program
}

// compileFilter compiles an entry-selection expression such as
//
//	level == "ERROR" or message contains "timeout"
//
// An empty source yields a nil filter, which matches everything.
func compileFilter(source string) (*filter, error) {
	if source == "" {
		return nil, nil
	}

	program, err := expr.Compile(source, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, err
	}

	return &filter{program: program}, nil
}

// match reports whether the line satisfies the filter expression.
// Runtime evaluation errors exclude the line rather than failing the viewer.
func (f *filter) match(line string) bool {
	if f == nil {
		return true
	}

	out, err := expr.Run(f.program, newFilterEnv(line))
	if err != nil {
		return false
	}

	keep, ok := out.(bool)

	return ok && keep
}
