package logger

import "time"

// SetClock replaces the logger's time source.
func (l *SimpleLogger) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}
