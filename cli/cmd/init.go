package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/pbxsetting/log"
	"github.com/ardnew/pbxsetting/profile"
)

// Init generates a default configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	confPath, ok := kongVar(ctx, ConfigIdentifier)
	if !ok {
		panic("internal error: config path undefined")
	}

	// Check if file exists and force not set
	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	data, err := yaml.MarshalWithOptions(
		i.buildConfig(kongContextFrom(ctx)),
		yaml.Indent(defaultIndent),
	)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(ErrMarshalYAML.Wrap(err))
	}

	err = os.WriteFile(confPath, data, 0o600)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// buildConfig returns the configuration document for the current flag
// values. A flag named "group-key" is written as key within the mapping
// group, which the configuration resolver flattens back to "group-key".
func (i *Init) buildConfig(ktx *kong.Context) yaml.MapSlice {
	var doc yaml.MapSlice

	prefixIgnore := []string{"help", "version", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		val, ok := flagValue(ktx.FlagValue(flag))
		if !ok {
			continue
		}

		group, key, nested := strings.Cut(flag.Name, "-")
		if !nested {
			doc = append(doc, yaml.MapItem{Key: flag.Name, Value: val})

			continue
		}

		idx := slices.IndexFunc(doc, func(item yaml.MapItem) bool {
			return item.Key == group
		})
		if idx == -1 {
			doc = append(doc, yaml.MapItem{Key: group, Value: yaml.MapSlice{}})
			idx = len(doc) - 1
		}

		sub, _ := doc[idx].Value.(yaml.MapSlice)
		doc[idx].Value = append(sub, yaml.MapItem{Key: key, Value: val})
	}

	return doc
}

// flagValue returns the configuration value for a flag's current value, or
// false if the flag is unset.
func flagValue(val any) (any, bool) {
	switch v := val.(type) {
	case nil:
		return nil, false

	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v, true

	case string:
		return v, v != ""

	case []string:
		return v, len(v) > 0

	default:
		s := fmt.Sprint(v)

		return s, s != ""
	}
}
