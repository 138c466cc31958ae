package setting

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func TestValue_Tree(t *testing.T) {
	got := Parse("a$(B$(C))").Tree()
	want := []any{
		map[string]any{TreeLiteral: "a"},
		map[string]any{TreeReference: []any{
			map[string]any{TreeLiteral: "B"},
			map[string]any{TreeReference: []any{
				map[string]any{TreeLiteral: "C"},
			}},
		}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tree() mismatch (-want +got):\n%s", diff)
	}

	if tree := Empty().Tree(); len(tree) != 0 {
		t.Errorf("Empty().Tree() = %v", tree)
	}
}

func TestValue_JSON(t *testing.T) {
	type settings struct {
		Path Value `json:"path"`
	}

	data, err := json.Marshal(settings{Path: Parse("${SRCROOT}/$NAME")})
	if err != nil {
		t.Fatal(err)
	}

	if got, want := string(data), `{"path":"$(SRCROOT)/$(NAME)"}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}

	var back settings

	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}

	if !back.Path.Equal(Parse("$(SRCROOT)/$(NAME)")) {
		t.Errorf("Unmarshal() = %v", back.Path.Tree())
	}
}

func TestValue_UnmarshalYAML(t *testing.T) {
	src := `
product: ${TARGET_NAME}
strip: true
version: 42
flags: [-Wall, $(OTHER_CFLAGS)]
`

	var got struct {
		Product Value `yaml:"product"`
		Strip   Value `yaml:"strip"`
		Version Value `yaml:"version"`
		Flags   Value `yaml:"flags"`
	}

	if err := yaml.Unmarshal([]byte(src), &got); err != nil {
		t.Fatal(err)
	}

	checks := []struct {
		name string
		got  Value
		want string
	}{
		{"product", got.Product, "$(TARGET_NAME)"},
		{"strip", got.Strip, "YES"},
		{"version", got.Version, "42"},
		{"flags", got.Flags, "-Wall $(OTHER_CFLAGS)"},
	}

	for _, c := range checks {
		if !c.got.Equal(Parse(c.want)) {
			t.Errorf("%s = %v, want %v", c.name, c.got.Tree(), Parse(c.want).Tree())
		}
	}
}

func TestValue_YAMLTree(t *testing.T) {
	data, err := yaml.Marshal(Parse("a$(B)").Tree())
	if err != nil {
		t.Fatal(err)
	}

	out := string(data)

	for _, want := range []string{"literal: a", "reference:", "literal: B"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output %q missing %q", out, want)
		}
	}
}

func TestValue_LogValue(t *testing.T) {
	var buf bytes.Buffer

	slog.New(slog.NewJSONHandler(&buf, nil)).Info("msg", slog.Any("value", Parse("${X}")))

	if !strings.Contains(buf.String(), `"value":"$(X)"`) {
		t.Errorf("log output %q missing raw value", buf.String())
	}
}
