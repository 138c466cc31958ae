package repl

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/ardnew/pbxsetting/cli/cmd/view"
	"github.com/ardnew/pbxsetting/setting"
)

// session accumulates the setting names referenced by every expression
// evaluated since the REPL started.
type session struct {
	mu    sync.RWMutex
	names []string // sorted, unique
}

// eval parses input, records the names it references, and returns the
// rendered structure followed by the normalized raw form.
func (s *session) eval(ctx context.Context, input string) (setting.Value, string) {
	v := setting.ParseCached(ctx, input)

	s.record(v)

	var b strings.Builder

	b.WriteString(view.Tree(view.Label(v), v))
	b.WriteString("\n")
	b.WriteString(resultStyle.Render("= " + v.Raw()))

	return v, b.String()
}

// record adds the name of every reference in v, at any depth, whose nested
// value is a single literal.
func (s *session) record(v setting.Value) {
	var found []string

	var walk func(setting.Value)

	walk = func(v setting.Value) {
		for nested := range v.References() {
			if nested.Len() == 1 {
				if l, ok := nested.At(0).(setting.Literal); ok {
					found = append(found, string(l))
				}
			}

			walk(nested)
		}
	}

	walk(v)

	if len(found) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range found {
		i, ok := slices.BinarySearch(s.names, name)
		if !ok {
			s.names = slices.Insert(s.names, i, name)
		}
	}
}

// Names returns the recorded names in sorted order.
func (s *session) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.names)
}
