// Package cmd implements the pbxsetting subcommands.
//
// Each command is a kong command struct whose Run method receives the
// [context.Context] bound by the cli package. Output goes to the writer set
// with [WithOutput], or [os.Stdout] by default.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)
