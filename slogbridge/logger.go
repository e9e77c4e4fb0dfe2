package slogbridge

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/joeycumines/logiface"
)

type (
	// Logger implements logiface.EventFactory, logiface.Writer, and
	// logiface.EventReleaser, writing events to a slog.Handler.
	Logger struct {
		handler slog.Handler
		ctx     context.Context
		attrs   []slog.Attr
	}

	// LoggerFactory is provided as a convenience, embedding
	// logiface.LoggerFactory[*Event], and aliasing the option functions
	// implemented within this package.
	LoggerFactory struct {
		//lint:ignore U1000 embedded for it's methods
		baseLoggerFactory
	}

	//lint:ignore U1000 used to embed without exporting
	baseLoggerFactory = logiface.LoggerFactory[*Event]
)

// L is a LoggerFactory, and may be used to configure a
// logiface.Logger[*Event], using the implementations provided by this
// package.
var L = LoggerFactory{}

var eventPool = sync.Pool{New: func() any {
	return &Event{attrs: make([]slog.Attr, 0, 16)}
}}

// WithHandler configures a logiface logger to write to a slog.Handler.
// Will panic if the handler is nil.
//
// See also LoggerFactory.WithHandler and L (an alias for LoggerFactory{}).
func WithHandler(handler slog.Handler, opts ...Option) logiface.Option[*Event] {
	if handler == nil {
		panic(`nil handler`)
	}
	l := Logger{handler: handler, ctx: context.Background()}
	for _, opt := range opts {
		opt(&l)
	}
	return L.WithOptions(
		L.WithWriter(&l),
		L.WithEventFactory(&l),
		L.WithEventReleaser(&l),
	)
}

// WithHandler is an alias of the package function of the same name.
func (LoggerFactory) WithHandler(handler slog.Handler, opts ...Option) logiface.Option[*Event] {
	return WithHandler(handler, opts...)
}

func (x *Logger) NewEvent(level logiface.Level) *Event {
	event := eventPool.Get().(*Event)
	event.logger = x
	event.ctx = x.ctx
	event.time = time.Now()
	event.lvl = level
	return event
}

func (x *Logger) ReleaseEvent(event *Event) {
	event.reset()
	eventPool.Put(event)
}

func (x *Logger) Write(event *Event) error {
	level := slogLevel(event.lvl)
	if !x.handler.Enabled(event.ctx, level) {
		// lets other writers (e.g. in a logiface.WriterSlice) attempt to
		// handle the event
		return logiface.ErrDisabled
	}

	// the zero PC is deliberate: the call depth between here and the log
	// site varies with the builder chain, so no source location is recorded
	record := slog.NewRecord(event.time, level, event.message, 0)
	record.AddAttrs(x.attrs...)
	record.AddAttrs(event.attrs...)
	if event.err != nil {
		record.AddAttrs(slog.Any(`error`, event.err))
	}

	return x.handler.Handle(event.ctx, record)
}
