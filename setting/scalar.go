package setting

import (
	"context"
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"github.com/ardnew/pbxsetting/log"
)

// Boolean scalars are written using these words.
const (
	True  = "YES"
	False = "NO"
)

// Option configures the conversion performed by [FromScalar].
type Option func(*adapter)

type adapter struct {
	logger log.Logger
}

// WithLogger sets the logger that receives conversion diagnostics.
// By default they go to [log.Default].
func WithLogger(logger log.Logger) Option {
	return func(a *adapter) { a.logger = logger }
}

// FromScalar converts a typed configuration scalar into a [Value].
// See [FromScalarContext].
func FromScalar(scalar any, opts ...Option) Value {
	return FromScalarContext(log.DefaultContextProvider(), scalar, opts...)
}

// FromScalarContext converts a typed configuration scalar into a [Value] by
// formatting it as text and parsing the text with [Parse]:
//
//   - string: the string itself
//   - bool: "YES" or "NO"
//   - any integer kind: its decimal form
//   - []string, []any: the string elements joined by a single space;
//     elements that are not strings are skipped
//   - nil: [Empty]
//
// Any other kind logs an "unknown value type" warning and yields [Empty].
// No input is an error.
func FromScalarContext(ctx context.Context, scalar any, opts ...Option) Value {
	a := adapter{logger: log.Default()}

	for _, opt := range opts {
		opt(&a)
	}

	text, ok := formatScalar(scalar)
	if !ok {
		a.logger.WarnContext(ctx, "unknown value type",
			slog.String("type", typeName(scalar)),
		)

		return Empty()
	}

	return Parse(text)
}

func formatScalar(scalar any) (string, bool) {
	switch v := scalar.(type) {
	case nil:
		return "", true

	case string:
		return v, true

	case bool:
		if v {
			return True, true
		}

		return False, true

	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true

	case []string:
		return strings.Join(v, " "), true

	case []any:
		parts := make([]string, 0, len(v))

		for _, elem := range v {
			if s, ok := elem.(string); ok {
				parts = append(parts, s)
			}
		}

		return strings.Join(parts, " "), true
	}

	return "", false
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}

	return reflect.TypeOf(value).String()
}
