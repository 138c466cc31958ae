package setting

import "testing"

func TestValue_Raw(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"abc", "abc"},
		{"$(X)", "$(X)"},
		{"${X}", "$(X)"},
		{"$X", "$(X)"},
		{"$X/y", "$(X)/y"},
		{"$(", "$("},
		{"$", "$"},
		{"a${B$(C)}d", "a$(B$(C))d"},
		{"$(A$(B)C)", "$(A$(B)C)"},
		{"$()", "$()"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v := Parse(tt.input)

			if got := v.Raw(); got != tt.want {
				t.Errorf("Raw() = %q, want %q", got, tt.want)
			}

			if got := v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}

			if got := Raw(v); got != tt.want {
				t.Errorf("Raw(v) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_Raw_Constructed(t *testing.T) {
	v := New(Literal("a"), Literal("b"), ref(ref(Literal("X"))))

	if got, want := v.Raw(), "ab$($(X))"; got != want {
		t.Errorf("Raw() = %q, want %q", got, want)
	}
}
