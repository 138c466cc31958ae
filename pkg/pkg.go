package pkg

import (
	_ "embed"
	"strings"
)

// version is the contents of the VERSION file embedded at build time.
//
//go:embed VERSION
var version string

// Version returns the semantic version of the module, as printed by the
// --version flag.
func Version() string { return strings.TrimSpace(version) }

const (
	// Name is the command and module identifier. It appears in help text and
	// in the default configuration and cache paths.
	Name = "pbxsetting"
	// Description is the one-line summary shown in help output.
	Description = "Parse, normalize and combine build setting values"
)
