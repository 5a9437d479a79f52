package lang

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/calcsheet/log"
)

func TestParseString_Cache(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	var buf bytes.Buffer

	logger := log.Make(&buf,
		log.WithLevel(log.LevelTrace),
		log.WithFormat(log.FormatJSON),
		log.WithPretty(false))

	ctx := context.Background()

	first := ParseString(ctx, "x = 1 + 2", WithLogger(logger))
	assert.Equal(t, Parse("x = 1 + 2"), first)
	assert.Contains(t, buf.String(), `"cache_hit":false`)

	buf.Reset()

	second := ParseString(ctx, "x = 1 + 2", WithLogger(logger))
	assert.Equal(t, first, second)
	assert.Contains(t, buf.String(), `"cache_hit":true`)

	buf.Reset()

	third := ParseString(ctx, "x = 1 + 2", WithLogger(logger), WithCache(false))
	assert.Equal(t, first, third)
	assert.Contains(t, buf.String(), "cache bypass")
}

func TestParseString_CachedErrorsNotShared(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	ctx := context.Background()
	want := []ParseError{{ExpectedOperator, At(1)}}

	first := ParseString(ctx, "1 2")
	require.Equal(t, want, first.Errors)

	first.Errors[0].Kind = ExpectedName

	second := ParseString(ctx, "1 2")
	require.Equal(t, want, second.Errors)

	second.Errors[0].Position = At(0)

	assert.Equal(t, want, ParseString(ctx, "1 2").Errors)
}

func TestParseString_ClearCache(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	ctx := context.Background()

	_ = ParseString(ctx, "1+2")
	assert.Equal(t, int64(1), cacheSize.Load())

	ClearCache()
	assert.Equal(t, int64(0), cacheSize.Load())

	_, ok := globalCache.Load(xxh3.HashString("1+2"))
	assert.False(t, ok)
}

func TestParseReader(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	got, err := ParseReader(context.Background(), strings.NewReader("a * 3/2"))
	require.NoError(t, err)
	assert.Equal(t, "a*3/2", got.Expression.String())
}

func TestParseReader_Error(t *testing.T) {
	boom := errors.New("boom")

	_, err := ParseReader(context.Background(), iotest.ErrReader(boom))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadInput)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to read input: boom")
}

func TestFault(t *testing.T) {
	cause := errors.New("cause")

	err := ErrReadInput.Wrap(cause)
	assert.Equal(t, "failed to read input: cause", err.Error())
	assert.ErrorIs(t, err, ErrReadInput)
	assert.Same(t, err, WrapFault(err))
	assert.Equal(t, "plain", WrapFault(errors.New("plain")).Error())

	assert.Equal(t, "failed to read input", ErrReadInput.Error())
	assert.NotErrorIs(t, NewFault("other"), ErrReadInput)
}

func BenchmarkParseString(b *testing.B) {
	ClearCache()
	b.Cleanup(ClearCache)

	ctx := context.Background()

	b.Run("cached", func(b *testing.B) {
		for b.Loop() {
			_ = ParseString(ctx, "total = price * quantity + tax")
		}
	})

	b.Run("uncached", func(b *testing.B) {
		for b.Loop() {
			_ = ParseString(ctx, "total = price * quantity + tax", WithCache(false))
		}
	})
}
