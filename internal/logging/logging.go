// Package logging is the core's structured logger. It is a thin wrapper
// around zerolog so that tree mutations, reconciliation decisions, and
// navigation choices can be traced without scattering fmt.Fprintf calls
// through the core packages.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	logger  = zerolog.New(io.Discard).With().Timestamp().Logger()
	logFile *os.File
)

// Init opens the log file at ~/.local/state/tilecore/tilecore.log.
// Safe to call more than once; the last call wins.
func Init(level zerolog.Level) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".local", "state", "tilecore")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "tilecore.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = zerolog.New(f).Level(level).With().Timestamp().Logger()
	return nil
}

// SetOutput redirects the logger to an arbitrary writer, primarily for tests
// and for the CLI's stderr output (debug level under --debug).
func SetOutput(w io.Writer, level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Close releases the underlying log file, if one was opened via Init.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug starts a debug-level event. Chain .Str/.Uint32/... then .Msg to emit.
func Debug() *zerolog.Event { l := current(); return l.Debug() }

// Info starts an info-level event.
func Info() *zerolog.Event { l := current(); return l.Info() }

// Warn starts a warn-level event.
func Warn() *zerolog.Event { l := current(); return l.Warn() }

// Error starts an error-level event.
func Error() *zerolog.Event { l := current(); return l.Error() }

// Fatal starts a fatal-level event. Unlike zerolog's package-level Fatal,
// this does not call os.Exit — the CLI entry point decides process exit
// behavior after logging an invariant violation.
func Fatal() *zerolog.Event { l := current(); return l.WithLevel(zerolog.FatalLevel) }
