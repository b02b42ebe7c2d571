package logger

import "sync/atomic"

// A Logger handles log records.
// The logging methods return the error reported by the sink, if any.
// Any Logger can be installed as the default with SetDefault.
type Logger interface {
	// Trace logs at LevelTrace.
	Trace(msg string) error

	// Debug logs at LevelDebug.
	Debug(msg string) error

	// Info logs at LevelInfo.
	Info(msg string) error

	// Warn logs at LevelWarn.
	Warn(msg string) error

	// Error logs at LevelError.
	Error(msg string) error

	// Fatal logs at LevelFatal.
	Fatal(msg string) error

	// Enabled reports whether the logger handles records at the given level.
	Enabled(level Level) bool

	// Level returns the active minimum level.
	Level() Level

	// SetLevel replaces the active minimum level.
	SetLevel(level Level) error

	// SetSink replaces the destination of emitted records.
	SetSink(sink Sink)
}

// holder keeps the concrete type stored in defaultLogger constant.
type holder struct {
	Logger
}

var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(holder{NewSimpleLogger(nil, LevelInfo)})
}

// Default returns the default logger.
func Default() Logger {
	return defaultLogger.Load().(holder).Logger
}

// SetDefault makes l the default logger. A nil l is ignored.
func SetDefault(l Logger) {
	if l != nil {
		defaultLogger.Store(holder{l})
	}
}

// SetLevel sets the level of the default logger.
func SetLevel(level Level) error {
	return Default().SetLevel(level)
}

// AtLevel returns the level of the default logger.
func AtLevel() Level {
	return Default().Level()
}

// SetSink sets the sink of the default logger.
func SetSink(sink Sink) {
	Default().SetSink(sink)
}

// Trace logs at LevelTrace using the default logger.
func Trace(msg string) error {
	return Default().Trace(msg)
}

// Debug logs at LevelDebug using the default logger.
func Debug(msg string) error {
	return Default().Debug(msg)
}

// Info logs at LevelInfo using the default logger.
func Info(msg string) error {
	return Default().Info(msg)
}

// Warn logs at LevelWarn using the default logger.
func Warn(msg string) error {
	return Default().Warn(msg)
}

// Error logs at LevelError using the default logger.
func Error(msg string) error {
	return Default().Error(msg)
}

// Fatal logs at LevelFatal using the default logger.
func Fatal(msg string) error {
	return Default().Fatal(msg)
}

// T is shorthand for Trace.
func T(msg string) error { return Trace(msg) }

// D is shorthand for Debug.
func D(msg string) error { return Debug(msg) }

// I is shorthand for Info.
func I(msg string) error { return Info(msg) }

// W is shorthand for Warn.
func W(msg string) error { return Warn(msg) }

// E is shorthand for Error.
func E(msg string) error { return Error(msg) }

// F is shorthand for Fatal.
func F(msg string) error { return Fatal(msg) }
