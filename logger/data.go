package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// String returns the uppercase name of the level
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseLevel converts a level name (any case) into a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger writes timestamped, level-filtered lines to stdout and/or an
// append-only file. The minimum level and the stdout flag are fixed at
// construction; the file handle is shared by all callers and guarded by
// the mutex so lines are never interleaved.

type Logger struct {
	minLevel Level
	toStdout bool

	mu   sync.Mutex
	file *os.File

	// Bound to the real environment by New; tests swap these to run
	// deterministically.
	stdout io.Writer
	now    func() time.Time
	offset func() int64
}
