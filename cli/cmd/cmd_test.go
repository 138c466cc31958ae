package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// run executes fn with its output captured and stdin replaced by in.
func run(t *testing.T, in string, fn func(ctx context.Context) error) (string, error) {
	t.Helper()

	var out bytes.Buffer

	ctx := WithOutput(context.Background(), &out)
	ctx = WithInput(ctx, strings.NewReader(in))

	err := fn(ctx)

	return out.String(), err
}

func TestExpressions(t *testing.T) {
	t.Parallel()

	ctx := WithInput(context.Background(), strings.NewReader("$(B)\n${C}\n"))

	var got []string

	for expr, err := range expressions(ctx, []string{"$(A)", "-", "$(D)", "-"}) {
		if err != nil {
			t.Fatal(err)
		}

		got = append(got, expr)
	}

	// stdin is read once, at the position of the first "-"
	want := []string{"$(A)", "$(B)", "${C}", "$(D)"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expressions() mismatch (-want +got):\n%s", diff)
	}
}

func TestRawRun(t *testing.T) {
	t.Parallel()

	got, err := run(t, "lib$NAME.a\n", (&Raw{
		Expr: []string{"${SRCROOT}/build", "$(A", "-"},
	}).Run)
	if err != nil {
		t.Fatalf("Raw.Run() error = %v", err)
	}

	want := "$(SRCROOT)/build\n$(A\nlib$(NAME).a\n"
	if got != want {
		t.Errorf("Raw.Run() output = %q, want %q", got, want)
	}
}

func TestParseRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		expr   string
		want   string
	}{
		{
			name:   "raw",
			format: FormatRaw,
			expr:   "${A}b",
			want:   "$(A)b\n",
		},
		{
			name:   "json",
			format: FormatJSON,
			expr:   "x$(A)",
			want: `[
  {
    "literal": "x"
  },
  {
    "reference": [
      {
        "literal": "A"
      }
    ]
  }
]
`,
		},
		{
			name:   "json_empty",
			format: FormatJSON,
			expr:   "",
			want:   "[]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := run(t, "", (&Parse{
				Format: tt.format,
				Indent: 2,
				Expr:   []string{tt.expr},
			}).Run)
			if err != nil {
				t.Fatalf("Parse.Run() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse.Run() output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRun_Tree(t *testing.T) {
	t.Parallel()

	got, err := run(t, "", (&Parse{
		Format: FormatTree,
		Expr:   []string{"$(A_$(B))"},
	}).Run)
	if err != nil {
		t.Fatalf("Parse.Run() error = %v", err)
	}

	for _, want := range []string{`"$(A_$(B))"`, `$(A_$(B))`, `"A_"`, `$(B)`, `"B"`} {
		if !strings.Contains(got, want) {
			t.Errorf("Parse.Run() tree missing %q:\n%s", want, got)
		}
	}
}

func TestParseRun_InvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := run(t, "", (&Parse{Format: "xml", Expr: []string{"a"}}).Run)
	if err == nil || !strings.Contains(err.Error(), ErrInvalidFormat.Error()) {
		t.Errorf("Parse.Run() error = %v, want %v", err, ErrInvalidFormat)
	}
}

func TestConcatRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr []string
		want string
	}{
		{"merges_literals", []string{"$(A)/", "lib", "$(B)"}, "$(A)/lib$(B)\n"},
		{"empty_is_identity", []string{"", "$(A)", ""}, "$(A)\n"},
		{"all_empty", []string{"", ""}, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := run(t, "", (&Concat{Format: FormatRaw, Expr: tt.expr}).Run)
			if err != nil {
				t.Fatalf("Concat.Run() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Concat.Run() output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConcatRun_YAML(t *testing.T) {
	t.Parallel()

	got, err := run(t, "", (&Concat{
		Format: FormatYAML,
		Indent: 2,
		Expr:   []string{"a", "b"},
	}).Run)
	if err != nil {
		t.Fatalf("Concat.Run() error = %v", err)
	}

	want := "- literal: ab\n"
	if got != want {
		t.Errorf("Concat.Run() output = %q, want %q", got, want)
	}
}
