// Package datefmt implements a fixed-pattern timestamp formatter, intended
// for the hot path of log line rendering.
//
// It supports a closed catalog of well-known timestamp patterns, see
// [Formats]. For each supported pattern it produces exactly the output a
// general-purpose layout-based formatter (e.g. [time.Time.Format], with an
// equivalent layout) would produce, but using integer arithmetic and direct
// byte-slice writes instead of general calendar machinery. A [Formatter]
// caches the rendered date-and-time prefix of the most recently formatted
// second, so consecutive calls within the same second only pay for the
// sub-second suffix.
//
// Patterns outside the catalog are deliberately unsupported. [NewForOptions]
// reports lookup failure rather than eagerly parsing the pattern, so callers
// can fall back to a general-purpose formatter.
//
// # Concurrency
//
// A Formatter instance is NOT safe for concurrent use. The prefix cache is
// plain per-instance mutable state, deliberately unsynchronized. Callers that
// format from multiple goroutines must use one Formatter per goroutine.
package datefmt
