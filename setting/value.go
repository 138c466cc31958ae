package setting

import (
	"iter"
	"slices"
	"sync"
)

// Entry is one element of a [Value]: either a [Literal] or a [Reference].
//
// The interface is sealed. Code outside this package distinguishes the
// variants with [Visit] or [Fold], whose signatures name every variant, so a
// new variant breaks every matching site at compile time.
type Entry interface {
	visit(literal func(Literal), reference func(Reference))
}

// Literal is a run of text copied verbatim from the parsed input.
type Literal string

// Reference is a variable reference whose name is the nested [Value].
type Reference struct {
	Value Value
}

func (l Literal) visit(literal func(Literal), _ func(Reference)) { literal(l) }

func (r Reference) visit(_ func(Literal), reference func(Reference)) {
	reference(r)
}

// Visit calls literal or reference depending on the variant of e.
// A nil e calls neither.
func Visit(e Entry, literal func(Literal), reference func(Reference)) {
	if e == nil {
		return
	}

	e.visit(literal, reference)
}

// Fold maps e to a result of type T using the function for its variant.
// A nil e yields the zero T.
func Fold[T any](
	e Entry,
	literal func(Literal) T,
	reference func(Reference) T,
) (result T) {
	Visit(e,
		func(l Literal) { result = literal(l) },
		func(r Reference) { result = reference(r) },
	)

	return result
}

// Value is an ordered sequence of entries.
// The zero Value is empty and equal to [Empty].
type Value struct {
	entries []Entry
}

// empty is the shared empty value, built once on first use.
var empty = sync.OnceValue(func() Value { return Value{entries: []Entry{}} })

// Empty returns the empty value.
func Empty() Value { return empty() }

// New returns a value holding the given entries in order.
//
// The entries are copied. New does not merge adjacent literals or drop empty
// ones; the result is exactly the sequence given.
func New(entries ...Entry) Value {
	if len(entries) == 0 {
		return Empty()
	}

	return Value{entries: slices.Clone(entries)}
}

// String returns a value holding text as a single literal. The text is not
// parsed, so '$' has no special meaning. Empty text yields [Empty].
func String(text string) Value {
	if text == "" {
		return Empty()
	}

	return Value{entries: []Entry{Literal(text)}}
}

// Variable returns a value holding a single reference to name.
// The name is not parsed.
func Variable(name string) Value {
	return Value{entries: []Entry{
		Reference{Value: Value{entries: []Entry{Literal(name)}}},
	}}
}

// Len returns the number of entries in v.
func (v Value) Len() int { return len(v.entries) }

// IsEmpty reports whether v has no entries.
func (v Value) IsEmpty() bool { return len(v.entries) == 0 }

// At returns the entry at index i. It panics if i is out of range.
func (v Value) At(i int) Entry { return v.entries[i] }

// Entries returns a copy of the entries of v.
func (v Value) Entries() []Entry { return slices.Clone(v.entries) }

// All returns an iterator over the entries of v.
func (v Value) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range v.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// References returns an iterator over the names of the top-level references
// in v, in order. Nested references inside a name are not expanded.
func (v Value) References() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, e := range v.entries {
			r, ok := e.(Reference)
			if ok && !yield(r.Value) {
				return
			}
		}
	}
}

// Equal reports whether v and w have the same entries in the same order.
//
// Equality is structural. Two values whose literal text concatenates to the
// same string are still unequal if the text is split into different entries.
func (v Value) Equal(w Value) bool {
	return slices.EqualFunc(v.entries, w.entries, equalEntry)
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Value) bool { return a.Equal(b) }

func equalEntry(a, b Entry) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return Fold(a,
		func(l Literal) bool {
			m, ok := b.(Literal)

			return ok && l == m
		},
		func(r Reference) bool {
			s, ok := b.(Reference)

			return ok && r.Value.Equal(s.Value)
		},
	)
}
