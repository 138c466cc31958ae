package setting

import "strings"

// terminator selects how the end of the span being parsed is found.
type terminator int

const (
	endOfInput  terminator = iota // top level
	closeParen                    // $( ... )
	closeBrace                    // ${ ... }
	endOfIdent                    // $NAME
)

// find returns the offset at which a span in mode t ends, searching s from
// offset from. It reports false if the end cannot be found.
func (t terminator) find(s string, from int) (int, bool) {
	switch t {
	case closeParen:
		return index(s, from, ')')

	case closeBrace:
		return index(s, from, '}')

	case endOfIdent:
		to := from
		for to < len(s) && isIdentByte(s[to]) {
			to++
		}

		// A '$' followed by no identifier bytes is not a reference.
		return to, to > from

	default:
		return len(s), true
	}
}

func index(s string, from int, c byte) (int, bool) {
	i := strings.IndexByte(s[from:], c)
	if i < 0 {
		return -1, false
	}

	return from + i, true
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

// marker describes an opening reference delimiter found in the input.
type marker struct {
	offset int        // position of the '$'
	open   int        // width of the opening delimiter
	close  int        // width of the closing delimiter
	mode   terminator // terminator of the nested span
}

// nextMarker finds the nearest opening delimiter at or after from.
//
// Every delimiter begins with '$', so the nearest one always starts at the
// first '$'. At that offset "$(" and "${" take priority over a bare '$'.
func nextMarker(s string, from int) (marker, bool) {
	at, ok := index(s, from, '$')
	if !ok {
		return marker{}, false
	}

	if at+1 < len(s) {
		switch s[at+1] {
		case '(':
			return marker{offset: at, open: 2, close: 1, mode: closeParen}, true
		case '{':
			return marker{offset: at, open: 2, close: 1, mode: closeBrace}, true
		}
	}

	return marker{offset: at, open: 1, close: 0, mode: endOfIdent}, true
}

// span is the result of parsing one span of the input.
type span struct {
	value Value
	end   int  // offset of the terminator
	found bool // whether the terminator was found
}

// Parse converts raw setting text into a [Value].
//
// Parse never fails. A reference whose closing delimiter is missing, or a '$'
// followed by no identifier characters, is kept as literal text.
func Parse(text string) Value {
	p := parser{s: text}

	return p.parseSpan(0, endOfInput).value
}

// spanKey identifies a nested span by where it starts and how it ends.
type spanKey struct {
	from int
	t    terminator
}

// parser holds the input of a single [Parse] call.
//
// The result of a span depends only on its offset and terminator. When an
// unterminated opener is skipped, the spans nested inside it are visited
// again, so results are kept in memo to parse each span at most once.
type parser struct {
	s    string
	memo map[spanKey]span
}

// parseSpan parses the input from offset from until the terminator of mode t.
//
// The flush offset marks the start of literal text not yet emitted, and the
// search offset marks where the next delimiter search begins. They differ
// only after a delimiter failed to open a reference, in which case its
// characters stay pending as literal text.
func (p *parser) parseSpan(from int, t terminator) span {
	var entries []Entry

	search, flush := from, from

	for {
		to, ok := t.find(p.s, search)
		if !ok {
			return span{value: Empty(), end: from}
		}

		m, ok := nextMarker(p.s, search)
		if !ok || m.offset >= to {
			entries = appendLiteral(entries, p.s[flush:to])

			return span{value: makeValue(entries), end: to, found: true}
		}

		inner := p.nested(m)
		if !inner.found {
			search = m.offset + m.open

			continue
		}

		entries = appendLiteral(entries, p.s[flush:m.offset])
		entries = append(entries, Reference{Value: inner.value})

		flush = inner.end + m.close
		search = flush
	}
}

// nested returns the span opened by m, parsing it on first use.
func (p *parser) nested(m marker) span {
	key := spanKey{from: m.offset + m.open, t: m.mode}

	if sp, ok := p.memo[key]; ok {
		return sp
	}

	sp := p.parseSpan(key.from, key.t)

	if p.memo == nil {
		p.memo = make(map[spanKey]span)
	}

	p.memo[key] = sp

	return sp
}

func appendLiteral(entries []Entry, text string) []Entry {
	if text == "" {
		return entries
	}

	return append(entries, Literal(text))
}

func makeValue(entries []Entry) Value {
	if len(entries) == 0 {
		return Empty()
	}

	return Value{entries: entries}
}
