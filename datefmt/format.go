package datefmt

import (
	"strings"
)

type (
	// Precision identifies the sub-second component a Format emits, and the
	// source it is derived from.
	Precision uint8

	// TimeZoneFormat identifies the fixed-width timezone suffix a Format
	// emits, if any.
	TimeZoneFormat uint8

	// Format describes one supported timestamp pattern family.
	//
	// The catalog of Format values is closed: every instance is one of the
	// package-level vars (Default, ISO8601, ...), and all per-family data is
	// fixed at initialization. The pattern string exists for lookup and
	// documentation purposes only, it is never interpreted character by
	// character at format time.
	Format struct {
		name        string
		pattern     string
		datePattern string
		dateLen     int
		timeSep     byte
		subSep      byte
		precision   Precision
		tz          TimeZoneFormat
	}
)

const (
	PrecisionNone Precision = iota
	// PrecisionMilliseconds emits 3 digits, from the millisecond-of-second.
	PrecisionMilliseconds
	// PrecisionMicroseconds emits 6 digits, combining the
	// millisecond-of-second with the high 3 digits of the
	// nanosecond-of-millisecond.
	PrecisionMicroseconds
	// PrecisionNanoseconds emits 9 digits, combining the
	// millisecond-of-second with the full nanosecond-of-millisecond.
	PrecisionNanoseconds
)

// Digits returns the number of sub-second digits emitted.
func (x Precision) Digits() int {
	switch x {
	case PrecisionMilliseconds:
		return 3
	case PrecisionMicroseconds:
		return 6
	case PrecisionNanoseconds:
		return 9
	default:
		return 0
	}
}

const (
	TimeZoneNone TimeZoneFormat = iota
	// TimeZoneHour appends a numeric offset like "+08".
	TimeZoneHour
	// TimeZoneHourMinute appends a numeric offset like "+0800".
	TimeZoneHourMinute
	// TimeZoneHourColonMinute appends a numeric offset like "+08:00".
	TimeZoneHourColonMinute
	// TimeZoneZulu appends the literal 'Z'. Formats using it designate UTC
	// output, and are expected to be bound to the UTC location.
	TimeZoneZulu
)

// width returns the number of characters the suffix occupies.
func (x TimeZoneFormat) width() int {
	switch x {
	case TimeZoneHour:
		return 3
	case TimeZoneHourMinute:
		return 5
	case TimeZoneHourColonMinute:
		return 6
	case TimeZoneZulu:
		return 1
	default:
		return 0
	}
}

// The supported pattern families. Pattern strings use the conventional
// SimpleDateFormat-style vocabulary (yyyy year, MM month, dd day, HH hour,
// mm minute, ss second, SSS milliseconds, n sub-millisecond digits, X
// timezone offset), solely because that is the vocabulary configuration
// strings arrive in.
var (
	Absolute       = &Format{name: "ABSOLUTE", pattern: "HH:mm:ss,SSS", timeSep: ':', subSep: ',', precision: PrecisionMilliseconds}
	AbsoluteMicros = &Format{name: "ABSOLUTE_MICROS", pattern: "HH:mm:ss,nnnnnn", timeSep: ':', subSep: ',', precision: PrecisionMicroseconds}
	AbsoluteNanos  = &Format{name: "ABSOLUTE_NANOS", pattern: "HH:mm:ss,nnnnnnnnn", timeSep: ':', subSep: ',', precision: PrecisionNanoseconds}
	AbsolutePeriod = &Format{name: "ABSOLUTE_PERIOD", pattern: "HH:mm:ss.SSS", timeSep: ':', subSep: '.', precision: PrecisionMilliseconds}

	Compact = &Format{name: "COMPACT", pattern: "yyyyMMddHHmmssSSS", datePattern: "yyyyMMdd", dateLen: 8, precision: PrecisionMilliseconds}

	Date       = &Format{name: "DATE", pattern: "dd MMM yyyy HH:mm:ss,SSS", datePattern: "dd MMM yyyy ", dateLen: 12, timeSep: ':', subSep: ',', precision: PrecisionMilliseconds}
	DatePeriod = &Format{name: "DATE_PERIOD", pattern: "dd MMM yyyy HH:mm:ss.SSS", datePattern: "dd MMM yyyy ", dateLen: 12, timeSep: ':', subSep: '.', precision: PrecisionMilliseconds}

	Default       = &Format{name: "DEFAULT", pattern: "yyyy-MM-dd HH:mm:ss,SSS", datePattern: "yyyy-MM-dd ", dateLen: 11, timeSep: ':', subSep: ',', precision: PrecisionMilliseconds}
	DefaultMicros = &Format{name: "DEFAULT_MICROS", pattern: "yyyy-MM-dd HH:mm:ss,nnnnnn", datePattern: "yyyy-MM-dd ", dateLen: 11, timeSep: ':', subSep: ',', precision: PrecisionMicroseconds}
	DefaultNanos  = &Format{name: "DEFAULT_NANOS", pattern: "yyyy-MM-dd HH:mm:ss,nnnnnnnnn", datePattern: "yyyy-MM-dd ", dateLen: 11, timeSep: ':', subSep: ',', precision: PrecisionNanoseconds}
	DefaultPeriod = &Format{name: "DEFAULT_PERIOD", pattern: "yyyy-MM-dd HH:mm:ss.SSS", datePattern: "yyyy-MM-dd ", dateLen: 11, timeSep: ':', subSep: '.', precision: PrecisionMilliseconds}

	ISO8601Basic       = &Format{name: "ISO8601_BASIC", pattern: "yyyyMMdd'T'HHmmss,SSS", datePattern: "yyyyMMdd'T'", dateLen: 9, subSep: ',', precision: PrecisionMilliseconds}
	ISO8601BasicPeriod = &Format{name: "ISO8601_BASIC_PERIOD", pattern: "yyyyMMdd'T'HHmmss.SSS", datePattern: "yyyyMMdd'T'", dateLen: 9, subSep: '.', precision: PrecisionMilliseconds}

	ISO8601      = &Format{name: "ISO8601", pattern: "yyyy-MM-dd'T'HH:mm:ss,SSS", datePattern: "yyyy-MM-dd'T'", dateLen: 11, timeSep: ':', subSep: ',', precision: PrecisionMilliseconds}
	ISO8601Nanos = &Format{name: "ISO8601_NANOS", pattern: "yyyy-MM-dd'T'HH:mm:ss,nnnnnnnnn", datePattern: "yyyy-MM-dd'T'", dateLen: 11, timeSep: ':', subSep: ',', precision: PrecisionNanoseconds}

	ISO8601OffsetHH    = &Format{name: "ISO8601_OFFSET_DATE_TIME_HH", pattern: "yyyy-MM-dd'T'HH:mm:ss,SSSX", datePattern: "yyyy-MM-dd'T'", dateLen: 11, timeSep: ':', subSep: ',', precision: PrecisionMilliseconds, tz: TimeZoneHour}
	ISO8601OffsetHHMM  = &Format{name: "ISO8601_OFFSET_DATE_TIME_HHMM", pattern: "yyyy-MM-dd'T'HH:mm:ss,SSSXX", datePattern: "yyyy-MM-dd'T'", dateLen: 11, timeSep: ':', subSep: ',', precision: PrecisionMilliseconds, tz: TimeZoneHourMinute}
	ISO8601OffsetHHCMM = &Format{name: "ISO8601_OFFSET_DATE_TIME_HHCMM", pattern: "yyyy-MM-dd'T'HH:mm:ss,SSSXXX", datePattern: "yyyy-MM-dd'T'", dateLen: 11, timeSep: ':', subSep: ',', precision: PrecisionMilliseconds, tz: TimeZoneHourColonMinute}

	ISO8601Period       = &Format{name: "ISO8601_PERIOD", pattern: "yyyy-MM-dd'T'HH:mm:ss.SSS", datePattern: "yyyy-MM-dd'T'", dateLen: 11, timeSep: ':', subSep: '.', precision: PrecisionMilliseconds}
	ISO8601PeriodMicros = &Format{name: "ISO8601_PERIOD_MICROS", pattern: "yyyy-MM-dd'T'HH:mm:ss.nnnnnn", datePattern: "yyyy-MM-dd'T'", dateLen: 11, timeSep: ':', subSep: '.', precision: PrecisionMicroseconds}
	ISO8601PeriodNanos  = &Format{name: "ISO8601_PERIOD_NANOS", pattern: "yyyy-MM-dd'T'HH:mm:ss.nnnnnnnnn", datePattern: "yyyy-MM-dd'T'", dateLen: 11, timeSep: ':', subSep: '.', precision: PrecisionNanoseconds}

	ISO8601UTC       = &Format{name: "ISO8601_UTC", pattern: "yyyy-MM-dd'T'HH:mm:ss.SSS'Z'", datePattern: "yyyy-MM-dd'T'", dateLen: 11, timeSep: ':', subSep: '.', precision: PrecisionMilliseconds, tz: TimeZoneZulu}
	ISO8601UTCMicros = &Format{name: "ISO8601_UTC_MICROS", pattern: "yyyy-MM-dd'T'HH:mm:ss.nnnnnn'Z'", datePattern: "yyyy-MM-dd'T'", dateLen: 11, timeSep: ':', subSep: '.', precision: PrecisionMicroseconds, tz: TimeZoneZulu}
	ISO8601UTCNanos  = &Format{name: "ISO8601_UTC_NANOS", pattern: "yyyy-MM-dd'T'HH:mm:ss.nnnnnnnnn'Z'", datePattern: "yyyy-MM-dd'T'", dateLen: 11, timeSep: ':', subSep: '.', precision: PrecisionNanoseconds, tz: TimeZoneZulu}

	USMonthDayYear2Time = &Format{name: "US_MONTH_DAY_YEAR2_TIME", pattern: "dd/MM/yy HH:mm:ss.SSS", datePattern: "dd/MM/yy ", dateLen: 9, timeSep: ':', subSep: '.', precision: PrecisionMilliseconds}
	USMonthDayYear4Time = &Format{name: "US_MONTH_DAY_YEAR4_TIME", pattern: "dd/MM/yyyy HH:mm:ss.SSS", datePattern: "dd/MM/yyyy ", dateLen: 11, timeSep: ':', subSep: '.', precision: PrecisionMilliseconds}
)

var formats = [...]*Format{
	Absolute,
	AbsoluteMicros,
	AbsoluteNanos,
	AbsolutePeriod,
	Compact,
	Date,
	DatePeriod,
	Default,
	DefaultMicros,
	DefaultNanos,
	DefaultPeriod,
	ISO8601Basic,
	ISO8601BasicPeriod,
	ISO8601,
	ISO8601Nanos,
	ISO8601OffsetHH,
	ISO8601OffsetHHMM,
	ISO8601OffsetHHCMM,
	ISO8601Period,
	ISO8601PeriodMicros,
	ISO8601PeriodNanos,
	ISO8601UTC,
	ISO8601UTCMicros,
	ISO8601UTCNanos,
	USMonthDayYear2Time,
	USMonthDayYear4Time,
}

// Formats returns the full catalog, in a newly allocated slice.
func Formats() []*Format {
	return append([]*Format(nil), formats[:]...)
}

// Lookup resolves a format by name (case-insensitive) or by exact canonical
// pattern string. It returns false if neither matches.
func Lookup(nameOrPattern string) (*Format, bool) {
	for _, f := range formats {
		if strings.EqualFold(f.name, nameOrPattern) || f.pattern == nameOrPattern {
			return f, true
		}
	}
	return nil, false
}

// Name returns the family name, e.g. "DEFAULT".
func (x *Format) Name() string { return x.name }

// Pattern returns the canonical pattern string, e.g. "yyyy-MM-dd HH:mm:ss,SSS".
func (x *Format) Pattern() string { return x.pattern }

// DatePattern returns the date-only portion of the pattern, or the empty
// string for time-only families.
func (x *Format) DatePattern() string { return x.datePattern }

// DatePatternLength returns the number of characters the date prefix
// occupies in the output, zero for time-only families. Pattern escape quotes
// do not count, e.g. "yyyyMMdd'T'" has length 9.
func (x *Format) DatePatternLength() int { return x.dateLen }

// Precision returns the sub-second precision of the family.
func (x *Format) Precision() Precision { return x.precision }

// TimeZoneFormat returns the fixed timezone suffix of the family, or
// TimeZoneNone.
func (x *Format) TimeZoneFormat() TimeZoneFormat { return x.tz }

// String implements fmt.Stringer, returning the family name.
func (x *Format) String() string { return x.name }
