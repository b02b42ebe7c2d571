package logger

import (
	"fmt"
	"sync"
	"time"
)

// TimestampFormat is the ISO-8601 layout of the record timestamp.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// SimpleLogger implements the logger.Logger interface.
// Records are formatted as "<timestamp> [<LEVEL>] <msg>" and handed to the
// sink if the level is at or above the logger's threshold.
type SimpleLogger struct {
	mu    sync.RWMutex
	sink  Sink
	level Level

	now func() time.Time
}

var _ Logger = (*SimpleLogger)(nil)

// NewSimpleLogger returns a new SimpleLogger.
// A nil sink writes to standard output and an undefined level falls back to
// LevelInfo.
func NewSimpleLogger(sink Sink, level Level) *SimpleLogger {
	if sink == nil {
		sink = NewStdoutSink()
	}
	if !level.Valid() {
		level = LevelInfo
	}
	return &SimpleLogger{
		sink:  sink,
		level: level,
		now:   time.Now,
	}
}

// Level returns the active minimum level.
func (l *SimpleLogger) Level() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetLevel replaces the active minimum level. It returns ErrInvalidLevel and
// keeps the current level if level is not one of the defined levels.
func (l *SimpleLogger) SetLevel(level Level) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	return nil
}

// Sink returns the active sink.
func (l *SimpleLogger) Sink() Sink {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sink
}

// SetSink replaces the active sink. A nil sink restores standard output.
func (l *SimpleLogger) SetSink(sink Sink) {
	if sink == nil {
		sink = NewStdoutSink()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sink = sink
}

// Enabled reports whether the logger handles records at the given level.
func (l *SimpleLogger) Enabled(level Level) bool {
	return l.Level() <= level
}

// Log emits msg at the given level. The sink is called at most once and
// its error is returned to the caller as is. Log returns ErrInvalidLevel for
// a level that is not one of the defined levels.
func (l *SimpleLogger) Log(level Level, msg string) error {
	return l.log(level, msg)
}

// log is the single path to the sink; every exported logging method calls it
// directly so that the sink sees a fixed call depth.
func (l *SimpleLogger) log(level Level, msg string) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	}

	l.mu.RLock()
	threshold, sink, now := l.level, l.sink, l.now
	l.mu.RUnlock()

	if threshold > level {
		return nil
	}
	return sink.Write(Timestamp(now()) + " [" + level.Name() + "] " + msg)
}

// Trace logs at LevelTrace.
func (l *SimpleLogger) Trace(msg string) error {
	return l.log(LevelTrace, msg)
}

// Debug logs at LevelDebug.
func (l *SimpleLogger) Debug(msg string) error {
	return l.log(LevelDebug, msg)
}

// Info logs at LevelInfo.
func (l *SimpleLogger) Info(msg string) error {
	return l.log(LevelInfo, msg)
}

// Warn logs at LevelWarn.
func (l *SimpleLogger) Warn(msg string) error {
	return l.log(LevelWarn, msg)
}

// Error logs at LevelError.
func (l *SimpleLogger) Error(msg string) error {
	return l.log(LevelError, msg)
}

// Fatal logs at LevelFatal. It does not exit the process.
func (l *SimpleLogger) Fatal(msg string) error {
	return l.log(LevelFatal, msg)
}

// T is shorthand for Trace.
func (l *SimpleLogger) T(msg string) error { return l.log(LevelTrace, msg) }

// D is shorthand for Debug.
func (l *SimpleLogger) D(msg string) error { return l.log(LevelDebug, msg) }

// I is shorthand for Info.
func (l *SimpleLogger) I(msg string) error { return l.log(LevelInfo, msg) }

// W is shorthand for Warn.
func (l *SimpleLogger) W(msg string) error { return l.log(LevelWarn, msg) }

// E is shorthand for Error.
func (l *SimpleLogger) E(msg string) error { return l.log(LevelError, msg) }

// F is shorthand for Fatal.
func (l *SimpleLogger) F(msg string) error { return l.log(LevelFatal, msg) }

// Timestamp formats t in UTC using TimestampFormat.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// Date returns the current time formatted as a record timestamp.
func Date() string {
	return Timestamp(time.Now())
}
