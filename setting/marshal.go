package setting

import (
	"log/slog"
)

// Keys of the maps produced by [Value.Tree].
const (
	TreeLiteral   = "literal"
	TreeReference = "reference"
)

// Tree returns the structure of v as plain data suitable for JSON or YAML
// encoding: a slice with one single-key map per entry, either
// {"literal": text} or {"reference": Tree(name)}.
func (v Value) Tree() []any {
	tree := make([]any, 0, len(v.entries))

	for _, e := range v.entries {
		tree = append(tree, Fold(e,
			func(l Literal) any {
				return map[string]any{TreeLiteral: string(l)}
			},
			func(r Reference) any {
				return map[string]any{TreeReference: r.Value.Tree()}
			},
		))
	}

	return tree
}

// MarshalText implements [encoding.TextMarshaler] using [Value.Raw].
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.Raw()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [Parse].
func (v *Value) UnmarshalText(text []byte) error {
	*v = Parse(string(text))

	return nil
}

// UnmarshalYAML decodes a YAML scalar or sequence with [FromScalar], so
// booleans become YES or NO and integers their decimal form.
func (v *Value) UnmarshalYAML(unmarshal func(any) error) error {
	var scalar any

	if err := unmarshal(&scalar); err != nil {
		return err
	}

	*v = FromScalar(scalar)

	return nil
}

// LogValue implements [slog.LogValuer] and logs the raw form of v.
func (v Value) LogValue() slog.Value {
	return slog.StringValue(v.Raw())
}
