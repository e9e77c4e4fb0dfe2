// Package logrusbridge implements support for using github.com/sirupsen/logrus
// as the backend for github.com/joeycumines/logiface, for codebases migrating
// off the legacy framework one layer at a time.
//
// Levels translate as below. Logrus has no notice level, and treats fatal and
// panic as actions rather than severities, so the mapping is lossy in both
// directions.
//
//	logiface.LevelTrace         <-> logrus.TraceLevel
//	logiface.LevelDebug         <-> logrus.DebugLevel
//	logiface.LevelInformational <-> logrus.InfoLevel
//	logiface.LevelNotice         -> logrus.WarnLevel
//	logiface.LevelWarning       <-> logrus.WarnLevel
//	logiface.LevelError         <-> logrus.ErrorLevel
//	logiface.LevelCritical       -> logrus.ErrorLevel
//	logiface.LevelAlert         <-> logrus.FatalLevel
//	logiface.LevelEmergency     <-> logrus.PanicLevel
//
// The package also provides TextFormatter, a logrus.Formatter that renders
// the timestamp column with a datefmt.Formatter, so the cost of formatting
// repeated timestamps within the same second is amortised.
package logrusbridge
