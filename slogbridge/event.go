package slogbridge

import (
	"context"
	"log/slog"
	"time"

	"github.com/joeycumines/logiface"
)

type (
	// Event is the logiface.Event implementation for the forward direction.
	// It accumulates slog.Attr values and is emitted as a slog.Record.
	Event struct {
		//lint:ignore U1000 embedded for it's methods
		unimplementedEvent

		logger  *Logger
		ctx     context.Context
		time    time.Time
		err     error
		message string
		attrs   []slog.Attr
		lvl     logiface.Level
	}

	//lint:ignore U1000 used to embed without exporting
	unimplementedEvent = logiface.UnimplementedEvent
)

func (x *Event) Level() logiface.Level {
	if x != nil {
		return x.lvl
	}
	return logiface.LevelDisabled
}

func (x *Event) AddField(key string, val any) {
	x.attrs = append(x.attrs, slog.Any(key, val))
}

func (x *Event) AddMessage(msg string) bool {
	x.message = msg
	return true
}

func (x *Event) AddError(err error) bool {
	x.err = err
	return true
}

func (x *Event) AddString(key string, val string) bool {
	x.attrs = append(x.attrs, slog.String(key, val))
	return true
}

func (x *Event) AddInt(key string, val int) bool {
	x.attrs = append(x.attrs, slog.Int(key, val))
	return true
}

func (x *Event) AddInt64(key string, val int64) bool {
	x.attrs = append(x.attrs, slog.Int64(key, val))
	return true
}

func (x *Event) AddUint64(key string, val uint64) bool {
	x.attrs = append(x.attrs, slog.Uint64(key, val))
	return true
}

func (x *Event) AddFloat64(key string, val float64) bool {
	x.attrs = append(x.attrs, slog.Float64(key, val))
	return true
}

func (x *Event) AddBool(key string, val bool) bool {
	x.attrs = append(x.attrs, slog.Bool(key, val))
	return true
}

func (x *Event) AddTime(key string, val time.Time) bool {
	x.attrs = append(x.attrs, slog.Time(key, val))
	return true
}

func (x *Event) AddDuration(key string, val time.Duration) bool {
	x.attrs = append(x.attrs, slog.Duration(key, val))
	return true
}

// reset clears the event for reuse, dropping references so pooled events
// don't pin the logger or context.
func (x *Event) reset() {
	x.logger = nil
	x.ctx = nil
	x.time = time.Time{}
	x.err = nil
	x.message = ""
	x.attrs = x.attrs[:0]
	x.lvl = logiface.LevelDisabled
}
