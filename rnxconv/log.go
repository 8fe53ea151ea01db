package rnxconv

/*------------------------------------------------------------------------------
* log.go : leveled trace sink injected into the core, never read from a
*          process-wide location
*
* levels : 1 error, 2 warning, 3 info, 4 trace (verbose), 5 trace (verbose+)
*-----------------------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"os"
)

const (
	LevelError = 1
	LevelWarn  = 2
	LevelInfo  = 3
	LevelTrace = 4
)

// Logger is a leveled Printf-style sink. The zero value discards
// everything at level > LevelError and writes errors to os.Stderr, so a
// nil-safe default exists without requiring callers to construct one.
type Logger struct {
	w     io.Writer
	level int
}

// NewLogger returns a Logger writing entries at or below level to w.
func NewLogger(w io.Writer, level int) *Logger {
	return &Logger{w: w, level: level}
}

func (l *Logger) emit(level int, format string, v ...interface{}) {
	if l == nil {
		if level <= LevelError {
			fmt.Fprintf(os.Stderr, format, v...)
		}
		return
	}
	if l.w == nil || level > l.level {
		return
	}
	fmt.Fprintf(l.w, "%d "+format, append([]interface{}{level}, v...)...)
}

// Errf logs a condition fatal to the current call.
func (l *Logger) Errf(format string, v ...interface{}) { l.emit(LevelError, format, v...) }

// Warnf logs a recoverable element- or epoch-level condition (tiers 1-2).
func (l *Logger) Warnf(format string, v ...interface{}) { l.emit(LevelWarn, format, v...) }

// Infof logs a routine status message.
func (l *Logger) Infof(format string, v ...interface{}) { l.emit(LevelInfo, format, v...) }

// Tracef logs verbose diagnostic detail.
func (l *Logger) Tracef(format string, v ...interface{}) { l.emit(LevelTrace, format, v...) }

// SetLevel adjusts the sink's verbosity threshold.
func (l *Logger) SetLevel(level int) {
	if l != nil {
		l.level = level
	}
}
