package slogbridge

import (
	"context"
	"log/slog"

	"github.com/joeycumines/logiface"
)

var (
	// compile time assertions

	_ logiface.Event                 = (*Event)(nil)
	_ logiface.EventFactory[*Event]  = (*Logger)(nil)
	_ logiface.Writer[*Event]        = (*Logger)(nil)
	_ logiface.EventReleaser[*Event] = (*Logger)(nil)
	_ slog.Handler                   = (*Handler[*Event])(nil)
)

// mockHandler captures records, filtering below min
type mockHandler struct {
	min     slog.Level
	records []slog.Record
}

func (m *mockHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= m.min
}

func (m *mockHandler) Handle(_ context.Context, r slog.Record) error {
	m.records = append(m.records, r.Clone())
	return nil
}

func (m *mockHandler) WithAttrs(attrs []slog.Attr) slog.Handler { return m }

func (m *mockHandler) WithGroup(name string) slog.Handler { return m }

// attrMap flattens a record's attrs to key -> stringified value
func attrMap(r slog.Record) map[string]string {
	out := make(map[string]string, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.String()
		return true
	})
	return out
}
