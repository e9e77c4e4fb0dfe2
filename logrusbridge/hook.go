package logrusbridge

import (
	"sort"

	"github.com/joeycumines/logiface"
	"github.com/sirupsen/logrus"
)

// Hook implements logrus.Hook on top of a logiface.Logger, the reverse
// direction of this bridge. It works with any logiface event implementation.
//
// Install it on a logrus.Logger whose Out is io.Discard, so legacy call
// sites keep working while output routes through the new logger.
type Hook[E logiface.Event] struct {
	logger *logiface.Logger[E]
}

// NewHook returns a logrus.Hook writing to the given logiface logger.
// Will panic if the logger is nil.
func NewHook[E logiface.Event](logger *logiface.Logger[E]) *Hook[E] {
	if logger == nil {
		panic(`nil logger`)
	}
	return &Hook[E]{logger: logger}
}

func (x *Hook[E]) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (x *Hook[E]) Fire(entry *logrus.Entry) error {
	b := x.logger.Build(fromLogrusLevel(entry.Level))
	if b == nil {
		return nil
	}
	if err, ok := entry.Data[logrus.ErrorKey].(error); ok {
		b.Err(err)
	}
	// deterministic field order
	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		if key != logrus.ErrorKey {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.Any(key, entry.Data[key])
	}
	b.Log(entry.Message)
	return nil
}
