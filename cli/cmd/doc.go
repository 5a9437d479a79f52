// Package cmd implements the calcsheet subcommands: eval, check, fmt, init
// and repl.
//
// Commands read their worksheet from the formulas given as arguments, from
// the source files stored in the context by [WithSourceFiles], or from
// standard input, in that order of preference. Each line of a source is one
// row.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path
	// of the YAML configuration file written by init.
	ConfigIdentifier = "config"
)
