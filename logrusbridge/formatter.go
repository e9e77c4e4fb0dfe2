package logrusbridge

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/joeycumines/logbridge/datefmt"
	"github.com/sirupsen/logrus"
)

// TextFormatter is a logrus.Formatter rendering entries as
//
//	<timestamp> LEVEL message key=value ...
//
// with the timestamp column produced by a datefmt.Formatter. Logrus
// serialises Format calls, which satisfies the formatter's single-goroutine
// requirement, so don't share the same datefmt.Formatter with anything else.
type TextFormatter struct {
	// Timestamp renders the leading column. Defaults to datefmt.Default in
	// the local time zone.
	Timestamp *datefmt.Formatter

	// DisableTimestamp omits the leading column entirely.
	DisableTimestamp bool

	// DisableSorting emits fields in map order.
	DisableSorting bool

	initDefault sync.Once
	defaultFmt  *datefmt.Formatter
	scratch     []byte
}

func (f *TextFormatter) timestamp() *datefmt.Formatter {
	if f.Timestamp != nil {
		return f.Timestamp
	}
	f.initDefault.Do(func() {
		f.defaultFmt = datefmt.New(datefmt.Default, time.Local)
	})
	return f.defaultFmt
}

func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	if !f.DisableTimestamp {
		f.scratch = f.timestamp().AppendTime(f.scratch[:0], entry.Time)
		b.Write(f.scratch)
		b.WriteByte(' ')
	}

	b.WriteString(strings.ToUpper(entry.Level.String()))
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		keys = append(keys, key)
	}
	if !f.DisableSorting {
		sort.Strings(keys)
	}
	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		appendValue(b, entry.Data[key])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func appendValue(b *bytes.Buffer, value any) {
	s, ok := value.(string)
	if !ok {
		s = fmt.Sprint(value)
	}
	if needsQuoting(s) {
		fmt.Fprintf(b, "%q", s)
	} else {
		b.WriteString(s)
	}
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == '"' || r == '=' {
			return true
		}
	}
	return false
}
