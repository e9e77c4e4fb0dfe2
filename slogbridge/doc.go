// Package slogbridge bridges Go's built-in log/slog package and
// github.com/joeycumines/logiface, in both directions.
//
// The forward direction lets a logiface logger write through any
// slog.Handler:
//
//	logger := logiface.New(slogbridge.WithHandler(slog.NewJSONHandler(os.Stdout, nil)))
//	logger.Info().Str("key", "value").Log("message")
//
// The reverse direction lets code written against log/slog run unmodified on
// top of logiface infrastructure:
//
//	slog.SetDefault(slog.New(slogbridge.NewHandler(ifaceLogger)))
//
// # Level mapping
//
// logiface models the nine syslog severities plus trace, slog only four
// standard levels, so translation is lossy:
//
//	logiface trace, debug            <-> slog DEBUG
//	logiface info                    <-> slog INFO
//	logiface notice, warning         <-> slog WARN
//	logiface err through emerg       <-> slog ERROR
//
// Round trips preserve slog's four standard levels, not logiface's ten.
package slogbridge
