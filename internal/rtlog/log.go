// Package rtlog is a thin, component-tagged wrapper over the standard
// log package, in the style of the teacher's hand-rolled diagnostics
// (internal/errors.SentraError formats its own context rather than
// delegating to a structured-logging library). No logging library appears
// anywhere in the retrieved corpus, so stdlib log is used directly.
package rtlog

import (
	"log"
	"os"
	"time"
)

// Logger tags every line with a component name.
type Logger struct {
	component string
	enabled   bool
	std       *log.Logger
}

// New returns a Logger for the given component, writing to stderr.
func New(component string) *Logger {
	return &Logger{
		component: component,
		std:       log.New(os.Stderr, "", log.LstdFlags),
	}
}

// SetTrace turns per-call operation tracing on or off. Off by default.
func (l *Logger) SetTrace(on bool) { l.enabled = on }

// Tracing reports whether trace-level logging is enabled.
func (l *Logger) Tracing() bool { return l.enabled }

func (l *Logger) Infof(format string, args ...interface{}) {
	l.std.Printf("["+l.component+"] "+format, args...)
}

// Trace logs a single runtime call if tracing is enabled, returning a
// function the caller should defer to log the elapsed time.
func (l *Logger) Trace(op string) func() {
	if !l.enabled {
		return func() {}
	}
	start := time.Now()
	l.std.Printf("[%s] -> %s", l.component, op)
	return func() {
		l.std.Printf("[%s] <- %s (%s)", l.component, op, time.Since(start))
	}
}
