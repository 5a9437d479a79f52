package lang

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/calcsheet/log"
)

// globalCache stores parse results keyed by the xxh3 hash of the formula.
// Callers receive their own copy of an entry's Errors.
var (
	globalCache sync.Map
	cacheSize   atomic.Int64
)

// MaxCacheEntries bounds the parse cache. When the bound is reached the
// cache is emptied before the next entry is stored.
const MaxCacheEntries = 1 << 14

// entry is a parse result with the formula it was produced from, guarding
// against hash collisions.
type entry struct {
	input  string
	result ParseResult
}

// options configure [ParseString] and [ParseReader].
type options struct {
	logger  log.Logger
	noCache bool
}

// Option configures parsing behavior.
type Option func(*options)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithCache controls whether the shared parse cache is consulted.
// The cache is enabled by default.
func WithCache(enable bool) Option {
	return func(o *options) { o.noCache = !enable }
}

func makeOptions(opts ...Option) options {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ParseString parses a formula like [Parse], reusing the result of any
// earlier parse of identical input.
func ParseString(ctx context.Context, input string, opts ...Option) ParseResult {
	o := makeOptions(opts...)

	if o.noCache {
		o.logger.TraceContext(ctx, "cache bypass", slog.Int("input_length", len(input)))

		return Parse(input)
	}

	key := xxh3.HashString(input)

	if v, ok := globalCache.Load(key); ok {
		if e, ok := v.(*entry); ok && e.input == input {
			o.logger.TraceContext(
				ctx,
				"cache lookup",
				slog.String("hash", strconv.FormatUint(key, 16)),
				slog.Bool("cache_hit", true),
			)

			return e.result.clone()
		}
	}

	result := Parse(input)

	if cacheSize.Add(1) > MaxCacheEntries {
		ClearCache()
		cacheSize.Add(1)
	}

	globalCache.Store(key, &entry{input: input, result: result.clone()})

	o.logger.TraceContext(
		ctx,
		"cache lookup",
		slog.String("hash", strconv.FormatUint(key, 16)),
		slog.Bool("cache_hit", false),
		slog.Int("error_count", len(result.Errors)),
	)

	return result
}

// ParseReader reads all of r and parses it as a single formula.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (ParseResult, error) {
	// Wrap reader with async read-ahead for concurrent I/O.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return ParseResult{}, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	makeOptions(opts...).logger.TraceContext(
		ctx,
		"read input",
		slog.Int("source_bytes", len(data)),
		slog.Bool("read_ahead", true),
	)

	return ParseString(ctx, string(data), opts...), nil
}

// clone copies r so that changes to its Errors do not reach the cache. The
// expression tree is immutable and is shared.
func (r ParseResult) clone() ParseResult {
	r.Errors = slices.Clone(r.Errors)

	return r
}

// ClearCache removes all cached parse results.
// This is primarily useful for testing or when memory needs to be reclaimed.
func ClearCache() {
	globalCache.Clear()
	cacheSize.Store(0)
}
