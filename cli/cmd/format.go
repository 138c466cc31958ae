package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/pbxsetting/cli/cmd/view"
	"github.com/ardnew/pbxsetting/setting"
)

// Format selects how commands print values.
type Format string

// Output formats.
const (
	FormatRaw  Format = "raw"
	FormatTree Format = "tree"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// defaultIndent is the number of spaces used to indent JSON and YAML output.
const defaultIndent = 2

// named is a value printed together with its setting name.
type named struct {
	Name  string `json:"name"  yaml:"name"`
	Raw   string `json:"raw"   yaml:"raw"`
	Value []any  `json:"value" yaml:"value"`
}

func makeNamed(name string, v setting.Value) named {
	return named{Name: name, Raw: v.Raw(), Value: v.Tree()}
}

// printer writes values to w in a fixed format.
type printer struct {
	w      io.Writer
	format Format
	indent int
}

func newPrinter(w io.Writer, format Format, indent int) (printer, error) {
	switch format {
	case FormatRaw, FormatTree, FormatJSON, FormatYAML:
	default:
		return printer{}, ErrInvalidFormat.With(slog.String("format", string(format)))
	}

	if indent <= 0 {
		indent = defaultIndent
	}

	return printer{w: w, format: format, indent: indent}, nil
}

// value prints a single value.
func (p printer) value(v setting.Value) error {
	switch p.format {
	case FormatTree:
		return p.line(view.Tree(view.Label(v), v))
	case FormatJSON:
		return p.json(v.Tree())
	case FormatYAML:
		return p.yaml(v.Tree())
	default:
		return p.line(v.Raw())
	}
}

// values prints a sequence of named values. JSON and YAML output is a single
// document holding every value in order.
func (p printer) values(names []string, values []setting.Value) error {
	switch p.format {
	case FormatJSON, FormatYAML:
		doc := make([]named, len(names))
		for i := range names {
			doc[i] = makeNamed(names[i], values[i])
		}

		if p.format == FormatJSON {
			return p.json(doc)
		}

		return p.yaml(doc)
	}

	for i := range names {
		var err error

		if p.format == FormatTree {
			err = p.line(view.Tree(names[i], values[i]))
		} else {
			err = p.line(view.Assign(names[i], values[i]))
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (p printer) json(doc any) error {
	b, err := json.MarshalIndent(doc, "", strings.Repeat(" ", p.indent))
	if err != nil {
		return ErrMarshalJSON.Wrap(err)
	}

	return p.line(string(b))
}

func (p printer) yaml(doc any) error {
	b, err := yaml.MarshalWithOptions(doc, yaml.Indent(p.indent))
	if err != nil {
		return ErrMarshalYAML.Wrap(err)
	}

	_, err = p.w.Write(b)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

func (p printer) line(s string) error {
	_, err := fmt.Fprintln(p.w, s)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
