package zerologbridge

import (
	"sync"
	"time"

	"github.com/joeycumines/logiface"
	"github.com/rs/zerolog"
)

type (
	// Event is the logiface.Event implementation, building a zerolog.Event.
	Event struct {
		Z   *zerolog.Event
		lvl logiface.Level
		msg string
		//lint:ignore U1000 embedded for it's methods
		unimplementedEvent
	}

	// Logger implements logiface.EventFactory, logiface.Writer, and
	// logiface.EventReleaser on top of a zerolog.Logger.
	Logger struct {
		Zerolog zerolog.Logger
	}

	// LoggerFactory is provided as a convenience, embedding
	// logiface.LoggerFactory[*Event], and aliasing the option functions
	// implemented within this package.
	LoggerFactory struct {
		//lint:ignore U1000 embedded for it's methods
		baseLoggerFactory
	}

	//lint:ignore U1000 used to embed without exporting
	unimplementedEvent = logiface.UnimplementedEvent

	//lint:ignore U1000 used to embed without exporting
	baseLoggerFactory = logiface.LoggerFactory[*Event]
)

var (
	// L is a LoggerFactory, and may be used to configure a
	// logiface.Logger[*Event], using the implementations provided by this
	// package.
	L = LoggerFactory{}

	eventPool = sync.Pool{New: func() any {
		return new(Event)
	}}
)

// WithZerolog configures a logiface logger to use a zerolog logger.
//
// See also LoggerFactory.WithZerolog and L (an alias for LoggerFactory{}).
func WithZerolog(logger zerolog.Logger) logiface.Option[*Event] {
	l := Logger{Zerolog: logger}
	return L.WithOptions(
		L.WithWriter(&l),
		L.WithEventFactory(&l),
		L.WithEventReleaser(&l),
	)
}

// WithZerolog is an alias of the package function of the same name.
func (LoggerFactory) WithZerolog(logger zerolog.Logger) logiface.Option[*Event] {
	return WithZerolog(logger)
}

func (x *Event) Level() logiface.Level {
	if x != nil {
		return x.lvl
	}
	return logiface.LevelDisabled
}

func (x *Event) AddField(key string, val any) {
	x.Z = x.Z.Interface(key, val)
}

func (x *Event) AddMessage(msg string) bool {
	// zerolog finalizes the event on Msg, so hold it until write
	x.msg = msg
	return true
}

func (x *Event) AddError(err error) bool {
	x.Z = x.Z.Err(err)
	return true
}

func (x *Event) AddString(key string, val string) bool {
	x.Z = x.Z.Str(key, val)
	return true
}

func (x *Event) AddInt(key string, val int) bool {
	x.Z = x.Z.Int(key, val)
	return true
}

func (x *Event) AddInt64(key string, val int64) bool {
	x.Z = x.Z.Int64(key, val)
	return true
}

func (x *Event) AddUint64(key string, val uint64) bool {
	x.Z = x.Z.Uint64(key, val)
	return true
}

func (x *Event) AddFloat64(key string, val float64) bool {
	x.Z = x.Z.Float64(key, val)
	return true
}

func (x *Event) AddBool(key string, val bool) bool {
	x.Z = x.Z.Bool(key, val)
	return true
}

func (x *Event) AddTime(key string, val time.Time) bool {
	x.Z = x.Z.Time(key, val)
	return true
}

func (x *Event) AddDuration(key string, val time.Duration) bool {
	x.Z = x.Z.Dur(key, val)
	return true
}

func (x *Logger) NewEvent(level logiface.Level) *Event {
	event := eventPool.Get().(*Event)
	event.lvl = level
	// nil when the zerolog level filters the event, every Event method
	// no-ops on nil, and Write maps it to logiface.ErrDisabled
	event.Z = x.Zerolog.WithLevel(zerologLevel(level))
	return event
}

func (x *Logger) ReleaseEvent(event *Event) {
	*event = Event{}
	eventPool.Put(event)
}

func (x *Logger) Write(event *Event) error {
	if event.Z == nil {
		// lets other writers (e.g. in a logiface.WriterSlice) attempt to
		// handle the event
		return logiface.ErrDisabled
	}
	event.Z.Msg(event.msg)
	event.Z = nil
	return nil
}

// zerologLevel maps logiface.Level to zerolog.Level, see the package
// documentation for the full table. Custom (registered) logiface levels map
// to zerolog.PanicLevel.
func zerologLevel(level logiface.Level) zerolog.Level {
	switch level {
	case logiface.LevelTrace:
		return zerolog.TraceLevel

	case logiface.LevelDebug:
		return zerolog.DebugLevel

	case logiface.LevelInformational:
		return zerolog.InfoLevel

	case logiface.LevelNotice, logiface.LevelWarning:
		return zerolog.WarnLevel

	case logiface.LevelError, logiface.LevelCritical:
		return zerolog.ErrorLevel

	case logiface.LevelAlert:
		return zerolog.FatalLevel

	default:
		return zerolog.PanicLevel
	}
}
