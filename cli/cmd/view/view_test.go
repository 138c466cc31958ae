package view

import (
	"strings"
	"testing"

	"github.com/ardnew/pbxsetting/setting"
)

func TestTree(t *testing.T) {
	v := setting.Parse("lib$(NAME_$(ARCH)).a")

	got := Tree(Label(v), v)

	for _, want := range []string{
		`"lib$(NAME_$(ARCH)).a"`,
		`"lib"`,
		`$(NAME_$(ARCH))`,
		`"NAME_"`,
		`$(ARCH)`,
		`"ARCH"`,
		`".a"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Tree() missing %q:\n%s", want, got)
		}
	}

	// root line plus one line per entry at every depth
	if n := len(strings.Split(strings.TrimSpace(got), "\n")); n != 7 {
		t.Errorf("Tree() has %d lines, want 7:\n%s", n, got)
	}
}

func TestTree_Empty(t *testing.T) {
	got := Tree(Label(setting.Empty()), setting.Empty())

	if strings.TrimSpace(got) != `""` {
		t.Errorf("Tree(empty) = %q, want %q", got, `""`)
	}
}

func TestAssign(t *testing.T) {
	got := Assign("SDKROOT", setting.Parse("${DEVELOPER}/SDKs"))

	if !strings.HasPrefix(got, "SDKROOT") ||
		!strings.HasSuffix(got, " = $(DEVELOPER)/SDKs") {
		t.Errorf("Assign() = %q", got)
	}
}
