package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/pbxsetting/log"
	"github.com/ardnew/pbxsetting/setting"
)

// Concat joins setting expressions, left to right, into a single value.
type Concat struct {
	Format Format   `default:"raw" enum:"raw,tree,json,yaml" help:"Output format"                                   short:"f"`
	Indent int      `default:"2"                              help:"Indent width of JSON and YAML output"`
	Expr   []string `arg:""                                   help:"Setting expression(s) or '-' to read lines from stdin" name:"expr"`
}

// Run executes the concat command.
func (c *Concat) Run(ctx context.Context) error {
	out, err := newPrinter(outputFrom(ctx), c.Format, c.Indent)
	if err != nil {
		return err
	}

	var (
		v setting.Value
		n int
	)

	for expr, err := range expressions(ctx, c.Expr) {
		if err != nil {
			return err
		}

		v = setting.Concat(v, setting.ParseCached(ctx, expr))
		n++
	}

	log.TraceContext(ctx, "concatenated expressions",
		slog.Int("count", n),
		slog.Int("entries", v.Len()),
	)

	return out.value(v)
}
