//go:build !pprof

package profile

// Modes returns nil when built without the pprof tag.
func Modes() []string { return nil }

// Enabled reports whether profiling support was compiled in.
const Enabled = false

func start(Profiler) Stopper { return ignore{} }
