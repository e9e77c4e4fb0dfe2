package zerologbridge

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/joeycumines/logbridge/datefmt"
	"github.com/rs/zerolog"
)

// NewConsoleWriter returns a zerolog.ConsoleWriter with the timestamp column
// rendered by the given datefmt formatter. The source logger must stamp
// events with zerolog.TimeFormatUnixMs (set zerolog.TimeFieldFormat, or use
// Logger.With().Timestamp() with that format configured), as the formatter
// consumes epoch milliseconds.
//
// The writer must not be shared across goroutines unless writes are
// serialised, as the formatter reuses internal state.
func NewConsoleWriter(w io.Writer, formatter *datefmt.Formatter) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:             w,
		TimeFormat:      time.StampMilli,
		FormatTimestamp: formatTimestamp(formatter),
	}
}

func formatTimestamp(formatter *datefmt.Formatter) zerolog.Formatter {
	return func(i any) string {
		millis, err := timestampMillis(i)
		if err != nil {
			return fmt.Sprint(i)
		}
		return formatter.Format(millis)
	}
}

// timestampMillis extracts epoch milliseconds from the decoded time field,
// which arrives as json.Number or string depending on the decoder
func timestampMillis(i any) (int64, error) {
	switch v := i.(type) {
	case json.Number:
		return v.Int64()
	case string:
		return strconv.ParseInt(v, 10, 64)
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, fmt.Errorf(`unsupported timestamp type %T`, i)
	}
}
