package setting

import "strings"

// Raw returns the text form of v.
//
// Literals are written verbatim and every reference is written as
// "$(" + name + ")", so references originally spelled ${NAME} or $NAME come
// back in parenthesized form. Parsing the result yields a value equal to v
// whenever v itself came from [Parse].
func (v Value) Raw() string {
	var sb strings.Builder

	v.writeRaw(&sb)

	return sb.String()
}

// String implements [fmt.Stringer] and returns [Value.Raw].
func (v Value) String() string { return v.Raw() }

func (v Value) writeRaw(sb *strings.Builder) {
	for _, e := range v.entries {
		Visit(e,
			func(l Literal) { sb.WriteString(string(l)) },
			func(r Reference) {
				sb.WriteString("$(")
				r.Value.writeRaw(sb)
				sb.WriteString(")")
			},
		)
	}
}

// Raw returns the text form of v. See [Value.Raw].
func Raw(v Value) string { return v.Raw() }
