package sheet

import (
	"bufio"
	"context"
	"io"
	"log/slog"

	"github.com/klauspost/readahead"
)

// maxLineBytes bounds a single formula read by [Load].
const maxLineBytes = 1 << 20

// Load reads a worksheet from r, one row per line. Line terminators (\n or
// \r\n) are not part of the row input. Reading stops early if ctx is
// cancelled.
func Load(ctx context.Context, r io.Reader, opts ...Option) (*Worksheet, error) {
	inputs, err := readLines(ctx, r)
	if err != nil {
		return nil, err
	}

	return FromInputs(inputs, append([]Option{WithContext(ctx)}, opts...)...), nil
}

func readLines(ctx context.Context, r io.Reader) ([]string, error) {
	// Wrap reader with async read-ahead so the next block is fetched while
	// the current one is split into lines.
	ra := readahead.NewReader(r)
	defer ra.Close()

	sc := bufio.NewScanner(ra)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var lines []string

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, ErrReadSheet.Wrap(context.Cause(ctx)).
				With(slog.Int("line", len(lines)+1))
		}

		lines = append(lines, sc.Text())
	}

	if err := sc.Err(); err != nil {
		return nil, ErrReadSheet.Wrap(err).
			With(slog.Int("line", len(lines)+1))
	}

	return lines, nil
}
