// Package cli contains the command line interface for pbxsetting.
//
// # Usage
//
// Without a command, arguments are parsed and their structure printed:
//
//	pbxsetting '$(SRCROOT)/${TARGET_NAME}/lib$PRODUCT.a'
//
// Commands:
//
//   - parse: print the structure of expressions (tree, json, yaml, raw)
//   - raw: print expressions normalized to the $(NAME) form
//   - concat: join expressions into one value
//   - load: convert a YAML mapping of typed settings into values
//   - repl: explore expressions interactively
//   - init: write the configuration file with current flag values
//
// Expression arguments given as "-" are read from stdin, one per line.
//
// # Configuration
//
// Flag defaults are read from config.yaml and config.json in the user
// configuration directory (for example ~/.config/pbxsetting). In YAML,
// nested mappings are flattened with "-":
//
//	log:
//	  level: debug
//	  format: json
//
// Command-line flags override configuration files.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o pbxsetting .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/pbxsetting/pprof)
package cli
