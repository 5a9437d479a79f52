//go:build pprof

package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/calcsheet/log"
	"github.com/ardnew/calcsheet/profile"
)

// pprofConfig selects a profile to record while a command runs.
type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Record a profile of the given kind" placeholder:"${enum}" short:"p"`
	Dir  string `default:"${pprofDir}"                          help:"Directory receiving profile files"                         type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofDir":      filepath.Join(cacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	return kong.Group{Key: "pprof", Title: "Profiling (pprof)"}
}

func (f pprofConfig) attr() slog.Attr {
	return slog.Group(profile.Tag, slog.String("mode", f.Mode), slog.String("dir", f.Dir))
}

func (f pprofConfig) start(ctx context.Context) (stop func()) {
	p := profile.Profiler{Mode: f.Mode, Path: f.Dir, Quiet: true}.Start()
	if f.Mode != "" {
		log.DebugContext(ctx, "profiling started", f.attr())
	}

	return func() {
		p.Stop()

		if f.Mode != "" {
			log.DebugContext(ctx, "profiling stopped", f.attr())
		}
	}
}
