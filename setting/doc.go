// Package setting models the textual values of build settings: literal text
// interleaved with variable references written as $(NAME), ${NAME}, or $NAME.
// A reference's name may itself contain further references.
//
// # Model
//
// A [Value] is an ordered sequence of [Entry] elements. An entry is exactly
// one of two variants:
//
//   - [Literal]: a non-empty run of text
//   - [Reference]: a nested [Value] holding the parsed text between the
//     reference delimiters
//
// Values are immutable once constructed and safe to share between goroutines.
//
// # Operations
//
//   - [Parse] converts raw text into a [Value]. It never fails: malformed or
//     unterminated references degrade to literal text.
//   - [Value.Raw] converts a [Value] back into text. Every reference is
//     written in the $(NAME) form regardless of how it was spelled.
//   - [Concat] joins two values, merging the literal runs that meet at the
//     boundary.
//   - [FromScalar] converts typed configuration scalars (string, bool,
//     integer, string array) into a [Value] by formatting and parsing them.
//
// # Example
//
//	v := setting.Parse("$(SRCROOT)/${TARGET_NAME}/Info.plist")
//	for e := range v.All() {
//		setting.Visit(e,
//			func(l setting.Literal) { fmt.Printf("literal %q\n", l) },
//			func(r setting.Reference) { fmt.Printf("reference %s\n", r.Value.Raw()) },
//		)
//	}
//	fmt.Println(v.Raw()) // $(SRCROOT)/$(TARGET_NAME)/Info.plist
//
// Resolving reference names to values is left to the caller.
package setting
