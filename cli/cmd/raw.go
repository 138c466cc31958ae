package cmd

import (
	"context"

	"github.com/ardnew/pbxsetting/setting"
)

// Raw prints setting expressions normalized to the $(NAME) form.
type Raw struct {
	Expr []string `arg:"" help:"Setting expression(s) or '-' to read lines from stdin" name:"expr"`
}

// Run executes the raw command.
func (r *Raw) Run(ctx context.Context) error {
	out := printer{w: outputFrom(ctx), format: FormatRaw}

	for expr, err := range expressions(ctx, r.Expr) {
		if err != nil {
			return err
		}

		if err := out.value(setting.ParseCached(ctx, expr)); err != nil {
			return err
		}
	}

	return nil
}
