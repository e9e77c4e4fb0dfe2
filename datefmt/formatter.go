package datefmt

import (
	"math"
	"strings"
	"time"
)

// Formatter renders timestamps for a single Format, in a single timezone.
//
// A Formatter is constructed once and reused across many format calls. It
// caches the rendered date and time-of-day prefix, together with the
// timezone suffix, for the second boundary of the most recently formatted
// instant, so only the sub-second digits are recomputed while consecutive
// instants fall within one second. Cache invalidation compares second
// boundaries, not call order, so formatting instants out of order is fine.
//
// Instances are NOT safe for concurrent use, see the package documentation.
type Formatter struct {
	format *Format
	loc    *time.Location
	length int

	// cachedSecond is the unix second of the cached prefix/suffix, or
	// math.MinInt64 while the cache is empty.
	cachedSecond int64
	prefix       []byte
	suffix       []byte
}

// New returns a Formatter bound to the given format and location.
// It panics if either argument is nil: validation is the caller's problem,
// see NewForOptions for the forgiving construction path.
func New(format *Format, loc *time.Location) *Formatter {
	if format == nil {
		panic(`datefmt: nil format`)
	}
	if loc == nil {
		panic(`datefmt: nil location`)
	}
	timeLen := 6
	if format.timeSep != 0 {
		timeLen = 8
	}
	subLen := format.precision.Digits()
	if format.subSep != 0 {
		subLen++
	}
	x := &Formatter{
		format:       format,
		loc:          loc,
		length:       format.dateLen + timeLen + subLen + format.tz.width(),
		cachedSecond: math.MinInt64,
	}
	x.prefix = make([]byte, 0, format.dateLen+timeLen+1)
	x.suffix = make([]byte, 0, format.tz.width())
	return x
}

// NewForOptions resolves a Formatter from an ordered option list of at most
// two strings: a format name or canonical pattern, and a timezone.
//
// An empty or absent first option selects the DEFAULT format. A first option
// matching no catalog entry yields (nil, false): not an error, the caller is
// expected to fall back to a general-purpose formatter. The second option is
// resolved via ParseTimeZone; when absent, empty, or unparseable the system
// local timezone is used.
func NewForOptions(options ...string) (*Formatter, bool) {
	format := Default
	if len(options) > 0 && options[0] != "" {
		var ok bool
		if format, ok = Lookup(options[0]); !ok {
			return nil, false
		}
	}
	loc := time.Local
	if len(options) > 1 && options[1] != "" {
		if l, err := ParseTimeZone(options[1]); err == nil {
			loc = l
		}
	}
	return New(format, loc), true
}

// ParseTimeZone resolves a timezone option string. It accepts IANA zone
// names (via time.LoadLocation), "GMT" and "UTC" with or without an offset
// suffix, and bare numeric offsets of the form ±HH, ±HHMM, or ±HH:MM.
func ParseTimeZone(s string) (*time.Location, error) {
	v := s
	if strings.HasPrefix(v, "GMT") || strings.HasPrefix(v, "UTC") {
		v = v[3:]
		if v == "" {
			return time.UTC, nil
		}
	}
	if v != "" && (v[0] == '+' || v[0] == '-') {
		if offset, ok := parseOffset(v); ok {
			return time.FixedZone(s, offset), nil
		}
	}
	return time.LoadLocation(s)
}

// parseOffset parses ±HH, ±HHMM, or ±HH:MM into an offset in seconds.
func parseOffset(s string) (int, bool) {
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	s = s[1:]
	var h, m string
	switch len(s) {
	case 2:
		h = s
	case 4:
		h, m = s[:2], s[2:]
	case 5:
		if s[2] != ':' {
			return 0, false
		}
		h, m = s[:2], s[3:]
	default:
		return 0, false
	}
	hv, ok := atoi2(h)
	if !ok || hv > 23 {
		return 0, false
	}
	var mv int
	if m != "" {
		if mv, ok = atoi2(m); !ok || mv > 59 {
			return 0, false
		}
	}
	return sign * (hv*3600 + mv*60), true
}

func atoi2(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// FormatDescription returns the bound Format.
func (x *Formatter) FormatDescription() *Format { return x.format }

// Pattern returns the canonical pattern string of the bound Format.
func (x *Formatter) Pattern() string { return x.format.pattern }

// Location returns the bound timezone.
func (x *Formatter) Location() *time.Location { return x.loc }

// Length returns the exact number of characters every format call produces.
// Callers may rely on it to pre-size buffers.
func (x *Formatter) Length() int { return x.length }

// Format renders the given epoch-millisecond instant.
func (x *Formatter) Format(epochMillis int64) string {
	return x.FormatInstant(epochMillis, 0)
}

// FormatInstant renders the given epoch-millisecond instant, with the
// nanosecond-of-millisecond remainder (0-999999) supplying the digits beyond
// millisecond precision, where the bound Format emits them.
func (x *Formatter) FormatInstant(epochMillis int64, nanoOfMilli int) string {
	return string(x.AppendInstant(make([]byte, 0, x.length), epochMillis, nanoOfMilli))
}

// FormatTime renders t, discarding precision beyond the bound Format's.
func (x *Formatter) FormatTime(t time.Time) string {
	return x.FormatInstant(t.UnixMilli(), t.Nanosecond()%1e6)
}

// AppendTime appends the rendered form of t to dst.
func (x *Formatter) AppendTime(dst []byte, t time.Time) []byte {
	return x.AppendInstant(dst, t.UnixMilli(), t.Nanosecond()%1e6)
}

// FormatInto writes the rendered instant into buf starting at off, returning
// the number of bytes written (always Length). It panics if the destination
// is too small; callers are expected to size buf via Length.
func (x *Formatter) FormatInto(buf []byte, off int, epochMillis int64) int {
	return x.FormatInstantInto(buf, off, epochMillis, 0)
}

// FormatInstantInto is FormatInto with a nanosecond-of-millisecond remainder.
func (x *Formatter) FormatInstantInto(buf []byte, off int, epochMillis int64, nanoOfMilli int) int {
	if off < 0 || len(buf)-off < x.length {
		panic(`datefmt: destination buffer too small`)
	}
	x.AppendInstant(buf[off:off:off+x.length], epochMillis, nanoOfMilli)
	return x.length
}

// AppendInstant appends the rendered instant to dst, returning the extended
// slice. This is the zero-allocation variant the other format methods are
// built on.
func (x *Formatter) AppendInstant(dst []byte, epochMillis int64, nanoOfMilli int) []byte {
	// Floor toward negative infinity so the boundary is <= epochMillis even
	// before 1970, keeping millisOfSecond in 0..999.
	sec := epochMillis / 1000
	if epochMillis%1000 != 0 && epochMillis < 0 {
		sec--
	}
	millisOfSecond := int(epochMillis - sec*1000)

	if sec != x.cachedSecond {
		x.render(sec)
	}
	dst = append(dst, x.prefix...)
	switch x.format.precision {
	case PrecisionMilliseconds:
		dst = appendDigits(dst, millisOfSecond, 3)
	case PrecisionMicroseconds:
		dst = appendDigits(dst, millisOfSecond*1000+nanoOfMilli/1000, 6)
	case PrecisionNanoseconds:
		dst = appendDigits(dst, millisOfSecond*1_000_000+nanoOfMilli, 9)
	}
	return append(dst, x.suffix...)
}

// render recomputes the cached prefix and timezone suffix for the given
// second boundary. This is the only place calendar decomposition happens,
// and the timezone offset is evaluated at the instant itself, so daylight
// saving transitions resolve per instant.
func (x *Formatter) render(sec int64) {
	t := time.Unix(sec, 0).In(x.loc)
	f := x.format

	b := x.prefix[:0]
	if f.dateLen > 0 {
		year, month, day := t.Date()
		switch f.datePattern {
		case "yyyy-MM-dd ", "yyyy-MM-dd'T'":
			b = appendPad4(b, year)
			b = append(b, '-')
			b = appendPad2(b, int(month))
			b = append(b, '-')
			b = appendPad2(b, day)
			if f.datePattern[10] == '\'' {
				b = append(b, 'T')
			} else {
				b = append(b, ' ')
			}
		case "yyyyMMdd", "yyyyMMdd'T'":
			b = appendPad4(b, year)
			b = appendPad2(b, int(month))
			b = appendPad2(b, day)
			if len(f.datePattern) > 8 {
				b = append(b, 'T')
			}
		case "dd MMM yyyy ":
			b = appendPad2(b, day)
			b = append(b, ' ')
			b = append(b, month.String()[:3]...)
			b = append(b, ' ')
			b = appendPad4(b, year)
			b = append(b, ' ')
		case "dd/MM/yy ":
			b = appendPad2(b, day)
			b = append(b, '/')
			b = appendPad2(b, int(month))
			b = append(b, '/')
			b = appendPad2(b, year%100)
			b = append(b, ' ')
		case "dd/MM/yyyy ":
			b = appendPad2(b, day)
			b = append(b, '/')
			b = appendPad2(b, int(month))
			b = append(b, '/')
			b = appendPad4(b, year)
			b = append(b, ' ')
		}
	}

	hour, minute, second := t.Clock()
	b = appendPad2(b, hour)
	if f.timeSep != 0 {
		b = append(b, f.timeSep)
	}
	b = appendPad2(b, minute)
	if f.timeSep != 0 {
		b = append(b, f.timeSep)
	}
	b = appendPad2(b, second)
	if f.subSep != 0 {
		b = append(b, f.subSep)
	}
	x.prefix = b

	s := x.suffix[:0]
	switch f.tz {
	case TimeZoneZulu:
		s = append(s, 'Z')
	case TimeZoneHour, TimeZoneHourMinute, TimeZoneHourColonMinute:
		_, offset := t.Zone()
		sign := byte('+')
		if offset < 0 {
			sign = '-'
			offset = -offset
		}
		// Sub-minute offsets truncate, matching layout-based formatters.
		s = append(s, sign)
		s = appendPad2(s, offset/3600)
		switch f.tz {
		case TimeZoneHourMinute:
			s = appendPad2(s, offset%3600/60)
		case TimeZoneHourColonMinute:
			s = append(s, ':')
			s = appendPad2(s, offset%3600/60)
		}
	}
	x.suffix = s

	x.cachedSecond = sec
}

func appendPad2(b []byte, v int) []byte {
	return append(b, byte('0'+v/10), byte('0'+v%10))
}

func appendPad4(b []byte, v int) []byte {
	hi, lo := v/100, v%100
	return append(b,
		byte('0'+hi/10), byte('0'+hi%10),
		byte('0'+lo/10), byte('0'+lo%10),
	)
}

// appendDigits writes v zero-padded to exactly width digits, width <= 9.
func appendDigits(b []byte, v, width int) []byte {
	var tmp [9]byte
	for i := width - 1; i >= 0; i-- {
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(b, tmp[:width]...)
}
