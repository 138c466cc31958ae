package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/pbxsetting/log"
	"github.com/ardnew/pbxsetting/setting"
)

// Parse prints the structure of setting expressions.
type Parse struct {
	Format Format   `default:"tree" enum:"tree,json,yaml,raw" help:"Output format"                                   short:"f"`
	Indent int      `default:"2"                               help:"Indent width of JSON and YAML output"`
	Expr   []string `arg:""                                    help:"Setting expression(s) or '-' to read lines from stdin" name:"expr"`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) error {
	out, err := newPrinter(outputFrom(ctx), p.Format, p.Indent)
	if err != nil {
		return err
	}

	for expr, err := range expressions(ctx, p.Expr) {
		if err != nil {
			return err
		}

		v := setting.ParseCached(ctx, expr)

		log.TraceContext(ctx, "parsed expression",
			slog.Int("length", len(expr)),
			slog.Int("entries", v.Len()),
		)

		if err := out.value(v); err != nil {
			return err
		}
	}

	return nil
}
