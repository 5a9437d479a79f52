// Package cli contains the command line interface for calcsheet.
//
// # Usage
//
// A worksheet is a list of formulas, one per row. Each row may assign a
// name that later rows refer to:
//
//	calcsheet 'price=18' 'qty=2' 'price*qty/8'
//	calcsheet -s budget.calc check
//	calcsheet -s budget.calc fmt json --indent 0
//	calcsheet repl
//
// With no subcommand, eval prints the result of every row.
//
// # Sources
//
// Worksheets are read from --source files (or '-' for stdin), or from stdin
// when none are given. A relative source that does not exist in the working
// directory is looked up in each --path directory and then in the
// directories listed in $CALCSHEET_PATH.
//
// # Configuration
//
// Flag defaults are read from config.json and config.yaml in the user
// configuration directory (e.g. ~/.config/calcsheet). The YAML file holds the
// flags under a "config" key, and flag names may use hyphens or
// underscores:
//
//	config:
//	  log_level: debug
//	  fractions: false
//
// The init subcommand writes the current flag values to config.yaml.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/calcsheet/pprof)
package cli
