//go:build pprof

package cli

import (
	"context"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/profile"

	logger "github.com/Subwoof01/sw-logger"
	"github.com/Subwoof01/sw-logger/pkg"
)

type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Enable profiling"         placeholder:"${enum}"`
	Dir  string `default:"${pprofDir}"                          help:"Profile output directory"                       type:"path"`
}

// pprofMode maps mode names to their pkg/profile selectors.
var pprofMode = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(slices.Sorted(maps.Keys(pprofMode)), ","),
		"pprofDir":      filepath.Join(os.TempDir(), pkg.Name+"-pprof"),
	}
}

func (pprofConfig) group() kong.Group {
	var group kong.Group

	group.Key = "pprof"
	group.Title = "Profiling (pprof)"

	return group
}

// start starts profiling if configured.
func (f pprofConfig) start(context.Context) (stop func()) {
	mode, ok := pprofMode[f.Mode]
	if !ok {
		return func() {}
	}

	_, _ = logger.Debug("pprof start: " + f.Mode + " -> " + f.Dir)

	profiler := profile.Start(mode, profile.ProfilePath(f.Dir), profile.Quiet)

	return func() {
		_, _ = logger.Debug("pprof stop: " + f.Mode)

		profiler.Stop()
	}
}
