// Package view renders setting values for terminal output.
package view

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/ardnew/pbxsetting/setting"
)

// Styles.
var (
	RootStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ReferenceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5"))
	LiteralStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))
	EnumeratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			PaddingRight(1)
)

// Tree renders the structure of v below the given label. Literals are
// quoted leaves and each reference is a subtree labeled with its raw form.
func Tree(label string, v setting.Value) string {
	return build(RootStyle, label, v).String()
}

func build(style lipgloss.Style, label string, v setting.Value) *tree.Tree {
	t := tree.Root(label).
		RootStyle(style).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(EnumeratorStyle)

	for e := range v.All() {
		t.Child(setting.Fold(e,
			func(l setting.Literal) any {
				return LiteralStyle.Render(strconv.Quote(string(l)))
			},
			func(r setting.Reference) any {
				return build(ReferenceStyle, setting.New(r).Raw(), r.Value)
			},
		))
	}

	return t
}

// Label returns the label used for the root of an expression's tree.
func Label(v setting.Value) string {
	return strconv.Quote(v.Raw())
}

// Assign renders a "NAME = RAW" line.
func Assign(name string, v setting.Value) string {
	return name + " = " + v.Raw()
}
