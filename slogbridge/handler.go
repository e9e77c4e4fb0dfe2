package slogbridge

import (
	"context"
	"log/slog"

	"github.com/joeycumines/logiface"
)

// Handler implements slog.Handler on top of a logiface.Logger, the reverse
// direction of this bridge. It works with any logiface event implementation.
//
// Groups are flattened: group names prefix attribute keys, joined with ".",
// as logiface has no native group concept at the field level.
type Handler[E logiface.Event] struct {
	logger *logiface.Logger[E]
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a slog.Handler writing to the given logiface logger.
// Will panic if the logger is nil.
func NewHandler[E logiface.Event](logger *logiface.Logger[E]) *Handler[E] {
	if logger == nil {
		panic(`nil logger`)
	}
	return &Handler[E]{logger: logger}
}

func (x *Handler[E]) Enabled(_ context.Context, level slog.Level) bool {
	if b := x.logger.Build(logifaceLevel(level)); b != nil {
		b.Release()
		return true
	}
	return false
}

func (x *Handler[E]) Handle(_ context.Context, record slog.Record) error {
	b := x.logger.Build(logifaceLevel(record.Level))
	if b == nil {
		return nil
	}
	// keys of attrs from WithAttrs were prefixed when added
	for _, attr := range x.attrs {
		x.addValue(b, attr.Key, attr.Value)
	}
	record.Attrs(func(attr slog.Attr) bool {
		x.addAttr(b, attr)
		return true
	})
	b.Log(record.Message)
	return nil
}

func (x *Handler[E]) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return x
	}
	clone := *x
	clone.attrs = x.attrs[:len(x.attrs):len(x.attrs)]
	for _, attr := range attrs {
		// capture the group prefix as of this call
		attr.Key = x.key(attr.Key)
		clone.attrs = append(clone.attrs, attr)
	}
	return &clone
}

func (x *Handler[E]) WithGroup(name string) slog.Handler {
	if name == "" {
		return x
	}
	clone := *x
	clone.groups = append(x.groups[:len(x.groups):len(x.groups)], name)
	return &clone
}

func (x *Handler[E]) addAttr(b *logiface.Builder[E], attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	x.addValue(b, x.key(attr.Key), attr.Value)
}

func (x *Handler[E]) key(key string) string {
	for i := len(x.groups) - 1; i >= 0; i-- {
		key = x.groups[i] + "." + key
	}
	return key
}

func (x *Handler[E]) addValue(b *logiface.Builder[E], key string, value slog.Value) {
	value = value.Resolve()
	switch value.Kind() {
	case slog.KindString:
		b.Str(key, value.String())
	case slog.KindInt64:
		b.Int64(key, value.Int64())
	case slog.KindUint64:
		b.Uint64(key, value.Uint64())
	case slog.KindFloat64:
		b.Float64(key, value.Float64())
	case slog.KindBool:
		b.Bool(key, value.Bool())
	case slog.KindDuration:
		b.Dur(key, value.Duration())
	case slog.KindTime:
		b.Time(key, value.Time())
	case slog.KindGroup:
		for _, attr := range value.Group() {
			x.addValue(b, key+"."+attr.Key, attr.Value)
		}
	default:
		b.Any(key, value.Any())
	}
}
