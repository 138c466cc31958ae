package cmd

import (
	"bufio"
	"context"
	"io"
	"iter"
	"os"

	"github.com/alecthomas/kong"
	"github.com/klauspost/readahead"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// kongVar returns the kong variable with the given identifier, or the empty
// string if ctx carries no kong.Context or the variable is undefined.
func kongVar(ctx context.Context, id string) (string, bool) {
	ktx := kongContextFrom(ctx)
	if ktx == nil || ktx.Model == nil {
		return "", false
	}

	v, ok := ktx.Model.Vars()[id]

	return v, ok
}

type (
	outputKey struct{}
	inputKey  struct{}
)

// WithOutput returns a new context.Context whose commands write to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// WithInput returns a new context.Context whose commands read the standard
// input source "-" from r.
func WithInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, inputKey{}, r)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

func inputFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(inputKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// expressions yields each argument in args as an expression, except that
// the argument "-" yields every line read from the input source instead.
//
// Input is consumed at most once. A read error is yielded with an empty
// expression and ends the sequence.
func expressions(ctx context.Context, args []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		consumed := false

		for _, arg := range args {
			if arg != stdinSource {
				if !yield(arg, nil) {
					return
				}

				continue
			}

			if consumed {
				continue
			}

			consumed = true

			for line, err := range lines(inputFrom(ctx)) {
				if !yield(line, err) || err != nil {
					return
				}
			}
		}
	}
}

// lines yields each line of r without its line terminator.
func lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		ra := readahead.NewReader(r)
		defer ra.Close()

		scan := bufio.NewScanner(ra)
		scan.Buffer(nil, maxLineSize)

		for scan.Scan() {
			if !yield(scan.Text(), nil) {
				return
			}
		}

		if err := scan.Err(); err != nil {
			yield("", ErrReadInput.Wrap(err))
		}
	}
}

// maxLineSize is the longest line accepted from an input source.
const maxLineSize = 1 << 20

// readAll reads the file at path, or the input source if path is "-".
func readAll(ctx context.Context, path string) ([]byte, error) {
	var r io.Reader

	if path == stdinSource {
		r = inputFrom(ctx)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		r = f
	}

	ra := readahead.NewReader(r)
	defer ra.Close()

	return io.ReadAll(ra)
}
