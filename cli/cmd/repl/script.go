package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/klauspost/readahead"

	"github.com/ardnew/pbxsetting/log"
)

// maxLineSize limits the length of one line of script input.
const maxLineSize = 1 << 20

// Script evaluates each non-blank line read from r the way the interactive
// REPL evaluates a submitted expression, writing each result to w.
// It is used when the input is not a terminal.
func Script(ctx context.Context, r io.Reader, w io.Writer, logger log.Logger) error {
	ra := readahead.NewReader(r)
	defer ra.Close()

	var s session

	scan := bufio.NewScanner(ra)
	scan.Buffer(nil, maxLineSize)

	for n := 1; scan.Scan(); n++ {
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}

		v, out := s.eval(ctx, line)

		logger.TraceContext(ctx, "repl script eval",
			slog.Int("line", n),
			slog.Int("entries", v.Len()),
		)

		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}

	return scan.Err()
}
