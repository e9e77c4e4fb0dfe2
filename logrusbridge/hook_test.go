package logrusbridge

import (
	"errors"
	"io"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/sirupsen/logrus"
)

// hook tests roundtrip legacy logrus call sites through a logiface logger
// backed by a second logrus instance, so output parses like the rest

func newHookTestPair(level logiface.Level) (*logrus.Logger, func(t *testing.T) []map[string]any) {
	backend, buf := newJSONBackend(logrus.TraceLevel)
	logger := logiface.New(
		WithLogrus(backend),
		logiface.WithLevel[*Event](level),
	)

	front := logrus.New()
	front.Level = logrus.TraceLevel
	front.Out = io.Discard
	front.AddHook(NewHook(logger))

	return front, func(t *testing.T) []map[string]any {
		return decodeLines(t, buf)
	}
}

func TestNewHook_nilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error(`expected panic`)
		}
	}()
	NewHook[*Event](nil)
}

func TestHook_fire(t *testing.T) {
	front, lines := newHookTestPair(logiface.LevelDebug)

	front.WithField(`user`, `alice`).WithError(errors.New(`boom`)).Warn(`careful`)

	out := lines(t)
	if len(out) != 1 {
		t.Fatalf(`expected 1 line, got %d`, len(out))
	}
	m := out[0]
	if m[`level`] != `warning` {
		t.Errorf(`unexpected level: %v`, m[`level`])
	}
	if m[`msg`] != `careful` {
		t.Errorf(`unexpected msg: %v`, m[`msg`])
	}
	if m[`user`] != `alice` {
		t.Errorf(`unexpected user: %v`, m[`user`])
	}
	if m[logrus.ErrorKey] != `boom` {
		t.Errorf(`unexpected error field: %v`, m[logrus.ErrorKey])
	}
}

func TestHook_fireDisabledLevel(t *testing.T) {
	front, lines := newHookTestPair(logiface.LevelError)

	front.Info(`quiet`)
	front.Error(`loud`)

	out := lines(t)
	if len(out) != 1 {
		t.Fatalf(`expected 1 line, got %d`, len(out))
	}
	if out[0][`msg`] != `loud` {
		t.Errorf(`unexpected msg: %v`, out[0][`msg`])
	}
}
