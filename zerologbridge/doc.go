// Package zerologbridge implements support for using github.com/rs/zerolog
// as the backend for github.com/joeycumines/logiface.
//
// Levels translate as below. Note that zerolog's fatal and panic levels are
// reached via logiface levels alert and emergency, and do not terminate the
// process, as events are created with zerolog.Logger.WithLevel.
//
//	logiface.LevelTrace         -> zerolog.TraceLevel
//	logiface.LevelDebug         -> zerolog.DebugLevel
//	logiface.LevelInformational -> zerolog.InfoLevel
//	logiface.LevelNotice        -> zerolog.WarnLevel
//	logiface.LevelWarning       -> zerolog.WarnLevel
//	logiface.LevelError         -> zerolog.ErrorLevel
//	logiface.LevelCritical      -> zerolog.ErrorLevel
//	logiface.LevelAlert         -> zerolog.FatalLevel
//	logiface.LevelEmergency     -> zerolog.PanicLevel
//
// The package also provides NewConsoleWriter, wiring a datefmt.Formatter
// into zerolog's console output.
package zerologbridge
