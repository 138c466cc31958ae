package setting

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConcat(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want Value
	}{
		{"literals merge", "foo", "bar", New(Literal("foobar"))},
		{"literal then reference", "foo", "$(X)", New(Literal("foo"), ref(Literal("X")))},
		{"reference then literal", "$(X)", "foo", New(ref(Literal("X")), Literal("foo"))},
		{"references", "$(X)", "$(Y)", New(ref(Literal("X")), ref(Literal("Y")))},
		{
			"merge only at boundary",
			"a$(B)c",
			"d$(E)f",
			New(Literal("a"), ref(Literal("B")), Literal("cd"), ref(Literal("E")), Literal("f")),
		},
		{"empty left", "", "$(X)", New(ref(Literal("X")))},
		{"empty right", "foo", "", New(Literal("foo"))},
		{"both empty", "", "", Empty()},
		{"split reference stays literal", "$(", "X)", New(Literal("$(X)"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Concat(Parse(tt.a), Parse(tt.b))

			if !got.Equal(tt.want) {
				t.Errorf("Concat(%q, %q) mismatch (-want +got):\n%s",
					tt.a, tt.b, cmp.Diff(tt.want.Tree(), got.Tree()))
			}

			if got.Raw() != Parse(tt.a).Raw()+Parse(tt.b).Raw() {
				t.Errorf("Raw() = %q, want concatenated raw forms", got.Raw())
			}
		})
	}
}

func TestConcat_DoesNotModifyInputs(t *testing.T) {
	a := Parse("foo")
	b := Parse("bar$(X)")

	_ = Concat(a, b)
	_ = a.Append(b)

	if want := New(Literal("foo")); !a.Equal(want) {
		t.Errorf("left operand changed to %v", a.Tree())
	}

	if want := New(Literal("bar"), ref(Literal("X"))); !b.Equal(want) {
		t.Errorf("right operand changed to %v", b.Tree())
	}

	// Appending to the result must not reach back into the operands.
	ab := Concat(Parse("$(A)x"), b)
	_ = Concat(ab, Parse("tail"))

	if want := New(ref(Literal("A")), Literal("xbar"), ref(Literal("X"))); !ab.Equal(want) {
		t.Errorf("intermediate result changed to %v", ab.Tree())
	}
}

func TestConcat_Associative(t *testing.T) {
	inputs := []string{
		"", "a", "bc", "$(X)", "a$(X)", "$(X)b", "a$(X)b", "$(X)$(Y)", "$(", "$",
	}

	for _, a := range inputs {
		for _, b := range inputs {
			for _, c := range inputs {
				va, vb, vc := Parse(a), Parse(b), Parse(c)

				left := Concat(Concat(va, vb), vc)
				right := Concat(va, Concat(vb, vc))

				if !left.Equal(right) {
					t.Errorf("(%q+%q)+%q != %q+(%q+%q):\n%s",
						a, b, c, a, b, c, cmp.Diff(left.Tree(), right.Tree()))
				}
			}
		}
	}
}

func TestJoin(t *testing.T) {
	got := Join(Parse("$(SRCROOT)"), String("/"), Parse("lib"), Parse("$(NAME).a"))
	want := New(ref(Literal("SRCROOT")), Literal("/lib"), ref(Literal("NAME")), Literal(".a"))

	if !got.Equal(want) {
		t.Errorf("Join() mismatch (-want +got):\n%s", cmp.Diff(want.Tree(), got.Tree()))
	}

	if !Join().IsEmpty() {
		t.Error("Join() of nothing is not empty")
	}
}
