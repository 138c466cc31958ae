package cmd

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ardnew/pbxsetting/cli/cmd/repl"
	"github.com/ardnew/pbxsetting/log"
)

// Repl starts an interactive shell for exploring setting expressions.
type Repl struct{}

// Run executes the repl command. When the input is not a terminal, each line
// of input is evaluated and printed without the interactive interface.
func (r *Repl) Run(ctx context.Context) error {
	in := inputFrom(ctx)

	if f, ok := in.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return repl.Script(ctx, in, outputFrom(ctx), log.Default())
	}

	cacheDir, _ := kongVar(ctx, CacheIdentifier)

	return repl.Run(ctx, cacheDir, log.Default())
}
