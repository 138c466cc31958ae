package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/pbxsetting/log"
	"github.com/ardnew/pbxsetting/setting"
)

// Load converts a YAML mapping of setting names to typed scalars into
// setting values.
//
// Strings are parsed as expressions, booleans become YES or NO, integers
// their decimal form, and lists of strings are joined with spaces. Other
// kinds are reported with a warning and yield an empty value.
type Load struct {
	Key    []string `help:"Print only the named setting(s)"               placeholder:"NAME" short:"k"`
	Format Format   `default:"raw" enum:"raw,tree,json,yaml"              help:"Output format"             short:"f"`
	Indent int      `default:"2"                                          help:"Indent width of JSON and YAML output"`
	File   string   `arg:""        help:"YAML settings file or '-' for stdin" name:"file"`
}

// Run executes the load command.
func (l *Load) Run(ctx context.Context) error {
	out, err := newPrinter(outputFrom(ctx), l.Format, l.Indent)
	if err != nil {
		return err
	}

	names, values, err := l.decode(ctx)
	if err != nil {
		return err
	}

	names, values, err = l.filter(names, values)
	if err != nil {
		return err
	}

	return out.values(names, values)
}

// decode reads the settings file and converts each entry in document order.
func (l *Load) decode(ctx context.Context) ([]string, []setting.Value, error) {
	data, err := readAll(ctx, l.File)
	if err != nil {
		return nil, nil, ErrReadInput.With(slog.String("file", l.File)).Wrap(err)
	}

	var doc yaml.MapSlice

	err = yaml.Unmarshal(data, &doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, ErrDecodeYAML.With(slog.String("file", l.File)).Wrap(err)
	}

	names := make([]string, 0, len(doc))
	values := make([]setting.Value, 0, len(doc))

	for _, item := range doc {
		name := fmt.Sprint(item.Key)
		logger := log.With(
			slog.String("file", l.File),
			slog.String("setting", name),
		)

		names = append(names, name)
		values = append(values, setting.FromScalarContext(
			ctx, item.Value, setting.WithLogger(logger),
		))
	}

	log.DebugContext(ctx, "loaded settings",
		slog.String("file", l.File),
		slog.Int("count", len(names)),
	)

	return names, values, nil
}

// filter keeps the settings selected with --key, in document order.
// Every selected key must exist.
func (l *Load) filter(
	names []string,
	values []setting.Value,
) ([]string, []setting.Value, error) {
	if len(l.Key) == 0 {
		return names, values, nil
	}

	for _, key := range l.Key {
		if !slices.Contains(names, key) {
			return nil, nil, ErrUnknownKey.With(
				slog.String("file", l.File),
				slog.String("key", key),
			)
		}
	}

	var (
		keptNames  []string
		keptValues []setting.Value
	)

	for i, name := range names {
		if slices.Contains(l.Key, name) {
			keptNames = append(keptNames, name)
			keptValues = append(keptValues, values[i])
		}
	}

	return keptNames, keptValues, nil
}
