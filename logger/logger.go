package logger

import (
	"fmt"
	"os"
	"time"
)

// New creates a Logger that emits messages at or above level. A non-empty
// logFile enables the file sink: the file is opened in append mode and
// created if absent, and an open failure aborts construction rather than
// producing a logger without the sink it was asked for. An empty logFile
// means stdout-only output (or none, if toStdout is also false).
func New(level Level, logFile string, toStdout bool) (*Logger, error) {
	l := &Logger{
		minLevel: level,
		toStdout: toStdout,
		stdout:   os.Stdout,
		now:      time.Now,
		offset:   resolveOffset,
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", logFile, err)
		}
		l.file = f
	}

	return l, nil
}

// Close releases the file sink, if any. Safe to call on a logger without
// a file sink.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

func (l *Logger) emit(level Level, message string, args ...interface{}) {
	if level < l.minLevel {
		return
	}

	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}

	now := l.now()
	secs := now.Unix() + l.offset()
	millis := now.Nanosecond() / int(time.Millisecond)
	line := formatLine(secs, millis, level, message)

	if l.toStdout {
		fmt.Fprint(l.stdout, line)
	}

	if l.file != nil {
		l.mu.Lock()
		// Write failures are swallowed: logging must never fail the caller.
		l.file.WriteString(line)
		l.mu.Unlock()
	}
}

// Log emits a message at an arbitrary level
func (l *Logger) Log(level Level, message string, args ...interface{}) {
	l.emit(level, message, args...)
}

// Trace logs a trace message
func (l *Logger) Trace(message string, args ...interface{}) {
	l.emit(LevelTrace, message, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(message string, args ...interface{}) {
	l.emit(LevelDebug, message, args...)
}

// Info logs an info message
func (l *Logger) Info(message string, args ...interface{}) {
	l.emit(LevelInfo, message, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(message string, args ...interface{}) {
	l.emit(LevelWarn, message, args...)
}

// Error logs an error message
func (l *Logger) Error(message string, args ...interface{}) {
	l.emit(LevelError, message, args...)
}
