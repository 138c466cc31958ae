package setting

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{"empty", "", Empty()},
		{"literal", "abc", New(Literal("abc"))},
		{"parenthesis", "$(X)", New(ref(Literal("X")))},
		{"brace", "${X}", New(ref(Literal("X")))},
		{"identifier", "$X", New(ref(Literal("X")))},
		{"identifier underscore", "$_", New(ref(Literal("_")))},
		{"identifier stops at punctuation", "$X-Y", New(ref(Literal("X")), Literal("-Y"))},
		{"identifier stops at dollar", "$A$B", New(ref(Literal("A")), ref(Literal("B")))},
		{
			"interleaved",
			"a$(B)c$(D)e",
			New(Literal("a"), ref(Literal("B")), Literal("c"), ref(Literal("D")), Literal("e")),
		},
		{"adjacent references", "$(A)${B}", New(ref(Literal("A")), ref(Literal("B")))},
		{
			"nested parenthesis",
			"$(A$(B)C)",
			New(ref(Literal("A"), ref(Literal("B")), Literal("C"))),
		},
		{"nested in brace", "${A$(B)}", New(ref(Literal("A"), ref(Literal("B"))))},
		{"nested identifier", "$(A_$B)", New(ref(Literal("A_"), ref(Literal("B"))))},
		{"empty name", "$()", New(ref())},
		{"any characters in name", "$(a b:c)", New(ref(Literal("a b:c")))},
		{"non-ascii", "é$(X)ü", New(Literal("é"), ref(Literal("X")), Literal("ü"))},

		// Malformed references stay literal.
		{"unterminated parenthesis", "$(", New(Literal("$("))},
		{"unterminated brace", "${", New(Literal("${"))},
		{"unterminated with name", "$(X", New(Literal("$(X"))},
		{"lone dollar", "$", New(Literal("$"))},
		{"trailing dollar", "a$", New(Literal("a$"))},
		{"dollar space", "$ X", New(Literal("$ X"))},
		{"mismatched closer", "$(A}", New(Literal("$(A}"))},
		{"double dollar", "$$X", New(Literal("$"), ref(Literal("X")))},
		{"unterminated before reference", "$(A$(B)", New(Literal("$(A"), ref(Literal("B")))},
		{"unterminated inside name", "$(${A)", New(ref(Literal("${A")))},
		{"closer without opener", "a)b}", New(Literal("a)b}"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)

			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s",
					tt.input, cmp.Diff(tt.want.Tree(), got.Tree()))
			}
		})
	}
}

// Each unterminated opener is skipped as literal text, and only the
// innermost one, next to the closer, becomes a reference.
func TestParse_NestedUnterminated(t *testing.T) {
	tests := []struct {
		name   string
		opener string
		closer string
	}{
		{"parenthesis", "$(", ")"},
		{"brace", "${", "}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			const depth = 64

			input := strings.Repeat(tt.opener, depth) + tt.closer
			want := New(Literal(strings.Repeat(tt.opener, depth-1)), ref())

			done := make(chan Value, 1)

			go func() { done <- Parse(input) }()

			select {
			case got := <-done:
				if !got.Equal(want) {
					t.Errorf("Parse(%q) mismatch (-want +got):\n%s",
						input, cmp.Diff(want.Tree(), got.Tree()))
				}

			case <-time.After(5 * time.Second):
				t.Fatalf("Parse() of %d nested %q did not return", depth, tt.opener)
			}
		})
	}
}

func TestParse_DelimiterFormsAgree(t *testing.T) {
	paren := Parse("$(X)")

	for _, input := range []string{"${X}", "$X"} {
		if got := Parse(input); !got.Equal(paren) {
			t.Errorf("Parse(%q) = %v, want %v", input, got.Tree(), paren.Tree())
		}
	}
}

func TestParse_NoEmptyOrAdjacentLiterals(t *testing.T) {
	inputs := []string{
		"", "$", "$$", "$$$", "$($(", "a$(b$(c", "$(A)$(B)", "x$", "$($)",
		"${${}}", "$(()", "a$(B)$", "$(A$)B", "$X$", "$(X)${Y}$Z$",
	}

	for _, input := range inputs {
		checkWellFormed(t, input, Parse(input))
	}
}

func checkWellFormed(t *testing.T, input string, v Value) {
	t.Helper()

	prevLiteral := false

	for e := range v.All() {
		Visit(e,
			func(l Literal) {
				if l == "" {
					t.Errorf("Parse(%q): empty literal", input)
				}

				if prevLiteral {
					t.Errorf("Parse(%q): adjacent literals", input)
				}

				prevLiteral = true
			},
			func(r Reference) {
				prevLiteral = false

				checkWellFormed(t, input, r.Value)
			},
		)
	}
}

func TestParse_Idempotent(t *testing.T) {
	inputs := []string{
		"abc",
		"$(X)",
		"${X}",
		"$X",
		"$(",
		"$$X",
		"a$(B)c$(D)e",
		"$(A$(B)C)",
		"${A$(B)}",
		"$(${A)",
		"$(A$(B)",
		"$X/$(Y)",
		"${X}.${Y}",
		"$($A(x)",
		"$(SRCROOT)/$(TARGET_NAME)/Info.plist",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			v := Parse(input)
			again := Parse(v.Raw())

			if !again.Equal(v) {
				t.Errorf("Parse(Raw(Parse(%q))) mismatch (-first +second):\n%s",
					input, cmp.Diff(v.Tree(), again.Tree()))
			}

			if again.Raw() != v.Raw() {
				t.Errorf("Raw() not stable: %q then %q", v.Raw(), again.Raw())
			}
		})
	}
}

// A brace-delimited name may contain ')'. Rewriting it with parentheses
// moves the end of the reference, so the structure changes on re-parse.
func TestParse_BraceNameWithParenthesis(t *testing.T) {
	v := Parse("${A)}")

	if want := New(ref(Literal("A)"))); !v.Equal(want) {
		t.Fatalf("Parse() = %v, want %v", v.Tree(), want.Tree())
	}

	if got := v.Raw(); got != "$(A))" {
		t.Fatalf("Raw() = %q, want %q", got, "$(A))")
	}

	again := Parse(v.Raw())
	if want := New(ref(Literal("A")), Literal(")")); !again.Equal(want) {
		t.Errorf("Parse(Raw()) = %v, want %v", again.Tree(), want.Tree())
	}
}
