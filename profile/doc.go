// Package profile provides optional runtime profiling for calcsheet.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. When built without the tag, [Profiler.Start] is a no-op and [Modes]
// reports no modes.
//
//	go build -tags pprof .
//
// # Available Profiling Modes
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// # Usage
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}
//	defer p.Start().Stop()
//
// From the command line:
//
//	calcsheet --pprof-mode cpu check -s budget.calc
//	calcsheet --pprof-mode heap --pprof-dir ./profiles eval -s budget.calc
//
// The default output directory is the pprof subdirectory of the user cache
// directory, e.g. $XDG_CACHE_HOME/calcsheet/pprof. Analyze the output with:
//
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
