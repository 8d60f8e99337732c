// Package tuilog provides file-based logging for the suhoor TUI, where
// stdout and stderr belong to the terminal UI. It is a separate package
// to avoid import cycles with the tui package.
package tuilog

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger writes human-readable zerolog lines to a file.
type Logger struct {
	mu      sync.Mutex
	file    *os.File
	out     io.Writer
	zl      zerolog.Logger
	enabled bool
}

var (
	// Log is the global logger instance for the TUI
	Log     = &Logger{zl: zerolog.Nop()}
	logOnce sync.Once
)

// Init points the global logger at path. If path is empty, logging is
// disabled.
func Init(path string) error {
	if path == "" {
		Log.mu.Lock()
		Log.enabled = false
		Log.mu.Unlock()
		return nil
	}

	var initErr error
	logOnce.Do(func() {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			initErr = err
			return
		}
		Log.mu.Lock()
		Log.file = f
		Log.mu.Unlock()
		Log.setOutput(f)
		Log.Info("Logger initialized", "path", path)
	})
	return initErr
}

// New returns a logger writing to w. Used by tests and by callers that
// want a private log.
func New(w io.Writer) *Logger {
	l := &Logger{}
	l.setOutput(w)
	return l
}

func (l *Logger) setOutput(w io.Writer) {
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "15:04:05.000",
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.zl = zerolog.New(console).With().Timestamp().Logger()
	l.enabled = true
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = false
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Enabled returns whether logging is active.
func (l *Logger) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// Writer returns the underlying io.Writer for use with other loggers,
// e.g. the HTTP request logger.
func (l *Logger) Writer() io.Writer {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || l.out == nil {
		return io.Discard
	}
	return l.out
}

func (l *Logger) log(level zerolog.Level, msg string, keyvals ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return
	}

	ev := l.zl.WithLevel(level)
	if len(keyvals) >= 2 {
		ev = ev.Fields(keyvals[:len(keyvals)&^1])
	}
	ev.Msg(msg)

	if l.file != nil {
		l.file.Sync()
	}
}

// Debug logs a debug message with optional key-value pairs.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.log(zerolog.DebugLevel, msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.log(zerolog.InfoLevel, msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.log(zerolog.WarnLevel, msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func (l *Logger) Error(msg string, keyvals ...any) {
	l.log(zerolog.ErrorLevel, msg, keyvals...)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(zerolog.DebugLevel, format, args...)
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...any) {
	l.logf(zerolog.InfoLevel, format, args...)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...any) {
	l.logf(zerolog.WarnLevel, format, args...)
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(zerolog.ErrorLevel, format, args...)
}

func (l *Logger) logf(level zerolog.Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return
	}
	l.zl.WithLevel(level).Msgf(format, args...)
}

// Timed logs the duration of an operation. Usage:
//
//	defer tuilog.Log.Timed("operation name")()
func (l *Logger) Timed(operation string) func() {
	if !l.Enabled() {
		return func() {}
	}
	start := time.Now()
	l.Debug(operation, "status", "started")
	return func() {
		l.Debug(operation, "status", "completed", "duration", time.Since(start))
	}
}
