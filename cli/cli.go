package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/pbxsetting/cli/cmd"
	"github.com/ardnew/pbxsetting/pkg"
)

// CLI is the top-level command-line interface for pbxsetting.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Init   cmd.Init   `cmd:"" help:"Initialize configuration file"`
	Raw    cmd.Raw    `cmd:"" help:"Normalize setting expressions to the $(NAME) form"`
	Concat cmd.Concat `cmd:"" help:"Concatenate setting expressions"`
	Load   cmd.Load   `cmd:"" help:"Convert a YAML file of typed settings"`
	Repl   cmd.Repl   `cmd:"" help:"Explore setting expressions interactively"`

	Parse cmd.Parse `cmd:"" default:"withargs" help:"Print the structure of setting expressions"`
}

// Run executes the pbxsetting CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	vars := kong.Vars{
		"version":            pkg.Name + " " + pkg.Version(),
		cmd.ConfigIdentifier: configPath(yamlConfigFile),
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(jsonConfigFile)),
		kong.Configuration(resolveYAML, configPath(yamlConfigFile)),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	// Finalize logger configuration with all parsed values.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx)
}
