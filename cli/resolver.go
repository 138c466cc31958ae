package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] that reads a YAML
// configuration file.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolveYAML, "/path/to/config.yaml")
//
// Nested mappings are flattened by joining keys with "-", so both of these
// documents set the --log-level flag:
//
//	log:
//	  level: debug
//
//	log-level: debug
//
// Keys may use "_" in place of "-". Numbers are passed to kong as strings
// and sequences as lists. Command-line flags override config file values.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc map[string]any

	err = yaml.Unmarshal(data, &doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	conf := make(config)
	conf.flatten("", doc)

	return conf, nil
}

// config implements [kong.Resolver] for a flattened configuration document.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	if value, ok := c[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found: let kong use the default.
	return nil, nil
}

func (c config) flatten(prefix string, m map[string]any) {
	for key, value := range m {
		if prefix != "" {
			key = prefix + "-" + key
		}

		if nested, ok := value.(map[string]any); ok {
			c.flatten(key, nested)

			continue
		}

		if value != nil {
			c[key] = native(value)
		}
	}
}

// native converts a decoded YAML value to a form kong accepts.
func native(value any) any {
	switch v := value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		list := make([]any, len(v))
		for i := range v {
			list[i] = native(v[i])
		}

		return list
	case string, bool:
		return v
	default:
		return fmt.Sprint(v)
	}
}
