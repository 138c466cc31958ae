package setting

// Concat returns the concatenation of a and b. Neither input is modified.
//
// When a ends with a literal and b begins with one, the two are merged into a
// single literal. No other entries are merged, so concatenation is
// associative: Concat(Concat(a, b), c) equals Concat(a, Concat(b, c)).
func Concat(a, b Value) Value {
	switch {
	case a.IsEmpty() && b.IsEmpty():
		return Empty()
	case a.IsEmpty():
		return b
	case b.IsEmpty():
		return a
	}

	entries := make([]Entry, 0, len(a.entries)+len(b.entries))
	entries = append(entries, a.entries...)
	rest := b.entries

	last, lok := entries[len(entries)-1].(Literal)
	first, fok := rest[0].(Literal)

	if lok && fok {
		entries[len(entries)-1] = last + first
		rest = rest[1:]
	}

	return Value{entries: append(entries, rest...)}
}

// Append returns the concatenation of v and w. See [Concat].
func (v Value) Append(w Value) Value { return Concat(v, w) }

// Join folds [Concat] over values from left to right.
// Join of no values is [Empty].
func Join(values ...Value) Value {
	result := Empty()

	for _, v := range values {
		result = Concat(result, v)
	}

	return result
}
