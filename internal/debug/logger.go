// Package debug provides debug logging functionality using zerolog.
package debug

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	// logger is the global debug logger instance
	logger = zerolog.Nop()
	// enabled indicates if debug logging is enabled
	enabled bool
	// mu protects the logger and enabled flag
	mu sync.RWMutex
)

// Init initializes the debug logger.
// If enable is true, debug logs are written to os.Stderr in console format.
// If enable is false, debug logs are discarded.
func Init(enable bool) {
	if enable {
		SetOutput(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		return
	}
	mu.Lock()
	defer mu.Unlock()
	enabled = false
	logger = zerolog.Nop()
}

// SetOutput enables debug logging to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
	logger = zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// Enabled returns whether debug logging is enabled
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Debug starts a debug level event
func Debug() *zerolog.Event {
	l := Logger()
	return l.Debug()
}

// Info starts an info level event
func Info() *zerolog.Event {
	l := Logger()
	return l.Info()
}

// Warn starts a warning level event
func Warn() *zerolog.Event {
	l := Logger()
	return l.Warn()
}

// Error starts an error level event
func Error() *zerolog.Event {
	l := Logger()
	return l.Error()
}

// With returns a context for building a child logger
func With() zerolog.Context {
	l := Logger()
	return l.With()
}

// Logger returns the underlying zerolog.Logger instance
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
