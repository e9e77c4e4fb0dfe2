package logrusbridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/sirupsen/logrus"
)

var (
	// compile time assertions

	_ logiface.Event                 = (*Event)(nil)
	_ logiface.EventFactory[*Event]  = (*Logger)(nil)
	_ logiface.Writer[*Event]        = (*Logger)(nil)
	_ logiface.EventReleaser[*Event] = (*Logger)(nil)
	_ logrus.Formatter               = (*TextFormatter)(nil)
	_ logrus.Hook                    = (*Hook[*Event])(nil)
)

// newJSONBackend returns a logrus logger writing JSON lines to the buffer,
// with timestamps suppressed so output parses deterministically
func newJSONBackend(level logrus.Level) (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.Level = level
	logger.Formatter = &logrus.JSONFormatter{DisableTimestamp: true}
	logger.Out = &buf
	return logger, &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	d := json.NewDecoder(buf)
	for {
		var m map[string]any
		if err := d.Decode(&m); err != nil {
			if err == io.EOF {
				return out
			}
			t.Fatal(err)
		}
		out = append(out, m)
	}
}

func TestLogger_basic(t *testing.T) {
	backend, buf := newJSONBackend(logrus.TraceLevel)
	logger := logiface.New(WithLogrus(backend))

	logger.Info().
		Str(`component`, `test`).
		Int(`count`, 3).
		Log(`hello world`)

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf(`expected 1 line, got %d`, len(lines))
	}
	m := lines[0]
	if m[`level`] != `info` {
		t.Errorf(`unexpected level: %v`, m[`level`])
	}
	if m[`msg`] != `hello world` {
		t.Errorf(`unexpected msg: %v`, m[`msg`])
	}
	if m[`component`] != `test` {
		t.Errorf(`unexpected component: %v`, m[`component`])
	}
	if m[`count`] != float64(3) {
		t.Errorf(`unexpected count: %v`, m[`count`])
	}
}

func TestLogger_error(t *testing.T) {
	backend, buf := newJSONBackend(logrus.TraceLevel)
	logger := logiface.New(WithLogrus(backend))

	logger.Err().
		Err(errors.New(`something broke`)).
		Log(`operation failed`)

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf(`expected 1 line, got %d`, len(lines))
	}
	if v := lines[0][logrus.ErrorKey]; v != `something broke` {
		t.Errorf(`unexpected error field: %v`, v)
	}
	if lines[0][`level`] != `error` {
		t.Errorf(`unexpected level: %v`, lines[0][`level`])
	}
}

func TestLogger_levelFiltering(t *testing.T) {
	backend, buf := newJSONBackend(logrus.WarnLevel)
	logger := logiface.New(
		WithLogrus(backend),
		logiface.WithLevel[*Event](logiface.LevelDebug),
	)

	logger.Debug().Log(`filtered`)
	logger.Warning().Log(`kept`)

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf(`expected 1 line, got %d`, len(lines))
	}
	if lines[0][`msg`] != `kept` {
		t.Errorf(`unexpected msg: %v`, lines[0][`msg`])
	}
}

func TestLogger_writeDisabled(t *testing.T) {
	backend, _ := newJSONBackend(logrus.ErrorLevel)
	l := Logger{Logrus: backend}
	event := l.NewEvent(logiface.LevelInformational)
	defer l.ReleaseEvent(event)
	if err := l.Write(event); !errors.Is(err, logiface.ErrDisabled) {
		t.Errorf(`expected logiface.ErrDisabled, got %v`, err)
	}
}

func TestWithLogrus_nilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error(`expected panic`)
		}
	}()
	WithLogrus(nil)
}

func TestLogger_eventReuse(t *testing.T) {
	backend, buf := newJSONBackend(logrus.TraceLevel)
	logger := logiface.New(WithLogrus(backend))

	for i := 0; i < 100; i++ {
		logger.Info().Int(`i`, i).Log(`iteration`)
	}

	lines := decodeLines(t, buf)
	if len(lines) != 100 {
		t.Fatalf(`expected 100 lines, got %d`, len(lines))
	}
	for i, m := range lines {
		// level + msg + the single field
		if len(m) != 3 {
			t.Fatalf(`line %d: stale fields leaked: %v`, i, m)
		}
		if m[`i`] != float64(i) {
			t.Fatalf(`line %d: unexpected i: %v`, i, m[`i`])
		}
	}
}

func TestToLogrusLevel(t *testing.T) {
	for _, tc := range []struct {
		in  logiface.Level
		out logrus.Level
		ok  bool
	}{
		{logiface.LevelTrace, logrus.TraceLevel, true},
		{logiface.LevelDebug, logrus.DebugLevel, true},
		{logiface.LevelInformational, logrus.InfoLevel, true},
		{logiface.LevelNotice, logrus.WarnLevel, true},
		{logiface.LevelWarning, logrus.WarnLevel, true},
		{logiface.LevelError, logrus.ErrorLevel, true},
		{logiface.LevelCritical, logrus.ErrorLevel, true},
		{logiface.LevelAlert, logrus.FatalLevel, true},
		{logiface.LevelEmergency, logrus.PanicLevel, true},
		{logiface.LevelDisabled, logrus.PanicLevel, false},
		{logiface.Level(9), logrus.PanicLevel, false},
	} {
		v, ok := toLogrusLevel(tc.in)
		if v != tc.out || ok != tc.ok {
			t.Errorf(`toLogrusLevel(%v): expected (%v, %v) got (%v, %v)`, tc.in, tc.out, tc.ok, v, ok)
		}
	}
}

func TestFromLogrusLevel(t *testing.T) {
	for _, tc := range []struct {
		in  logrus.Level
		out logiface.Level
	}{
		{logrus.TraceLevel, logiface.LevelTrace},
		{logrus.DebugLevel, logiface.LevelDebug},
		{logrus.InfoLevel, logiface.LevelInformational},
		{logrus.WarnLevel, logiface.LevelWarning},
		{logrus.ErrorLevel, logiface.LevelError},
		{logrus.FatalLevel, logiface.LevelAlert},
		{logrus.PanicLevel, logiface.LevelEmergency},
	} {
		if v := fromLogrusLevel(tc.in); v != tc.out {
			t.Errorf(`fromLogrusLevel(%v): expected %v got %v`, tc.in, tc.out, v)
		}
	}
}
