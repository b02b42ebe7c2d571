package logger

import (
	"errors"
	"fmt"
	"strings"
)

// A Level is the importance or severity of a log event.
// The higher the level, the more important or severe the event.
// The numeric value of a Level is its rank.
type Level int

// Names for common log levels.
const (
	LevelTrace Level = 0
	LevelDebug Level = 10
	LevelInfo  Level = 20
	LevelWarn  Level = 30
	LevelError Level = 40
	LevelFatal Level = 50
)

// ErrInvalidLevel is returned when a value is not one of the defined levels.
var ErrInvalidLevel = errors.New("invalid log level")

type levelInfo struct {
	code byte
	name string
}

var levelInfos = map[Level]levelInfo{
	LevelTrace: {'t', "TRACE"},
	LevelDebug: {'d', "DEBUG"},
	LevelInfo:  {'i', "INFO "},
	LevelWarn:  {'w', "WARN "},
	LevelError: {'e', "ERROR"},
	LevelFatal: {'f', "FATAL"},
}

// Levels returns all defined levels, from most to least verbose.
func Levels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	_, ok := levelInfos[l]
	return ok
}

// Code returns the single-character short code of the level, or '?' for an
// undefined level.
func (l Level) Code() byte {
	if info, ok := levelInfos[l]; ok {
		return info.code
	}
	return '?'
}

// Name returns the display name padded to five characters, as it appears in
// a log record.
func (l Level) Name() string {
	if info, ok := levelInfos[l]; ok {
		return info.name
	}
	return fmt.Sprintf("%-5s", fmt.Sprintf("L%d", int(l)))
}

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return strings.TrimRight(l.Name(), " ")
}

// ParseLevel returns the level named by s. Both the level name ("warn") and
// its short code ("w") are accepted, ignoring case and surrounding space.
func ParseLevel(s string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, l := range Levels() {
		if key == strings.ToLower(l.String()) || (len(key) == 1 && key[0] == l.Code()) {
			return l, nil
		}
	}
	return LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}
