package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Palette used by the pretty handlers. Colors are suppressed automatically
// when color.NoColor is set (for example, output is not a terminal).
var (
	keyColor    = color.New(color.FgHiBlack)
	stringColor = color.New(color.FgCyan)
	numberColor = color.New(color.FgYellow)
	trueColor   = color.New(color.FgGreen)
	falseColor  = color.New(color.FgRed)
	timeColor   = color.New(color.FgBlue)
	spanColor   = color.New(color.FgMagenta)
)

func levelColor(level slog.Level) *color.Color {
	switch {
	case level >= slog.LevelError:
		return color.New(color.FgRed, color.Bold)
	case level >= slog.LevelWarn:
		return color.New(color.FgYellow)
	case level >= slog.LevelInfo:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgBlue)
	}
}

// prettyState is shared by the pretty handlers: options, a write lock, and
// the attributes and groups accumulated by WithAttrs and WithGroup.
type prettyState struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	groups []string
}

func (s prettyState) enabled(level slog.Level) bool {
	floor := slog.LevelInfo
	if s.opts.Level != nil {
		floor = s.opts.Level.Level()
	}

	return level >= floor
}

func (s prettyState) withAttrs(attrs []slog.Attr) prettyState {
	if len(s.groups) > 0 {
		attrs = []slog.Attr{nest(s.groups, attrs)}
	}

	s.attrs = append(slices.Clip(s.attrs), attrs...)

	return s
}

func (s prettyState) withGroup(name string) prettyState {
	if name != "" {
		s.groups = append(slices.Clip(s.groups), name)
	}

	return s
}

// record collects the attributes of r, qualified by the open groups, after
// those already attached to the handler. Built-in keys pass through
// ReplaceAttr so time and level are rendered consistently with the
// standard handlers.
func (s prettyState) record(r slog.Record) (builtin, attrs []slog.Attr) {
	replace := func(a slog.Attr) slog.Attr {
		if s.opts.ReplaceAttr != nil {
			return s.opts.ReplaceAttr(nil, a)
		}

		return a
	}

	if !r.Time.IsZero() {
		if a := replace(slog.Time(slog.TimeKey, r.Time)); a.Key != "" {
			builtin = append(builtin, a)
		}
	}

	builtin = append(builtin, replace(slog.Any(slog.LevelKey, r.Level)))

	if s.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			builtin = append(builtin,
				slog.String(slog.SourceKey, src.File+":"+strconv.Itoa(src.Line)))
		}
	}

	builtin = append(builtin, slog.String(slog.MessageKey, r.Message))

	own := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		own = append(own, a)

		return true
	})

	if len(s.groups) > 0 && len(own) > 0 {
		own = []slog.Attr{nest(s.groups, own)}
	}

	return builtin, append(slices.Clip(s.attrs), own...)
}

func (s prettyState) write(buf *bytes.Buffer) error {
	buf.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.w.Write(buf.Bytes())

	return err
}

// nest wraps attrs in the innermost of groups.
func nest(groups []string, attrs []slog.Attr) slog.Attr {
	a := slog.Attr{Key: groups[len(groups)-1], Value: slog.GroupValue(attrs...)}

	for i := len(groups) - 2; i >= 0; i-- {
		a = slog.Attr{Key: groups[i], Value: slog.GroupValue(a)}
	}

	return a
}

// prettyTextHandler implements a colorized key=value handler.
type prettyTextHandler struct{ prettyState }

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{prettyState{opts: *opts, mu: &sync.Mutex{}, w: w}}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	builtin, attrs := h.record(r)

	for _, a := range builtin {
		h.writeAttr(buf, "", a)
	}

	for _, a := range attrs {
		h.writeAttr(buf, "", a)
	}

	return h.write(buf)
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{h.withAttrs(attrs)}
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	return &prettyTextHandler{h.withGroup(name)}
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, g := range a.Value.Group() {
			h.writeAttr(buf, prefix, g)
		}

		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(keyColor.Sprint(prefix + a.Key))
	buf.WriteByte('=')
	buf.WriteString(colorValue(a.Key, a.Value))
}

// prettyJSONHandler implements an indented, colorized JSON-like handler.
type prettyJSONHandler struct{ prettyState }

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	return &prettyJSONHandler{prettyState{opts: *opts, mu: &sync.Mutex{}, w: w}}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	builtin, attrs := h.record(r)

	h.writeObject(buf, append(builtin, attrs...), 1)

	return h.write(buf)
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{h.withAttrs(attrs)}
}

func (h *prettyJSONHandler) WithGroup(name string) slog.Handler {
	return &prettyJSONHandler{h.withGroup(name)}
}

func (h *prettyJSONHandler) writeObject(buf *bytes.Buffer, attrs []slog.Attr, depth int) {
	buf.WriteString("{\n")

	first := true
	indent := strings.Repeat("  ", depth)

	for _, a := range attrs {
		a.Value = a.Value.Resolve()
		if a.Equal(slog.Attr{}) {
			continue
		}

		if !first {
			buf.WriteString(",\n")
		}

		first = false

		buf.WriteString(indent)
		buf.WriteString(keyColor.Sprint(strconv.Quote(a.Key)))
		buf.WriteString(": ")

		if a.Value.Kind() == slog.KindGroup {
			h.writeObject(buf, a.Value.Group(), depth+1)

			continue
		}

		buf.WriteString(colorValue(a.Key, a.Value))
	}

	buf.WriteString("\n")
	buf.WriteString(strings.Repeat("  ", depth-1))
	buf.WriteString("}")
}

// colorValue renders v without quotes in a color chosen by its kind.
func colorValue(key string, v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		if key == slog.LevelKey {
			return levelColor(slog.Level(ParseLevel(v.String()))).Sprint(v.String())
		}

		return stringColor.Sprint(v.String())

	case slog.KindInt64:
		return numberColor.Sprint(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return numberColor.Sprint(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return numberColor.Sprint(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return trueColor.Sprint("true")
		}

		return falseColor.Sprint("false")

	case slog.KindDuration:
		return spanColor.Sprint(v.Duration().String())

	case slog.KindTime:
		return timeColor.Sprint(v.Time().String())

	case slog.KindAny:
		if level, ok := v.Any().(slog.Level); ok {
			return levelColor(level).Sprint(strings.ToUpper(Level(level).String()))
		}

		if err, ok := v.Any().(error); ok {
			return falseColor.Sprint(err.Error())
		}

		return stringColor.Sprint(fmt.Sprint(v.Any()))

	default:
		return stringColor.Sprint(v.String())
	}
}
