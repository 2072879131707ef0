// Package ui holds the terminal output helpers: colored printers for the
// banner, warnings and debug lines, and a writer that paints everything red.
package ui

import (
	"fmt"
	"io"
)

const (
	red    = "\033[31m"
	yellow = "\033[33m"
	green  = "\033[92m"
	orange = "\033[93m"
	reset  = "\033[0m"
)

// RedWriter wraps an io.Writer and emits red-colored output.
type RedWriter struct{ w io.Writer }

func (r RedWriter) Write(p []byte) (int, error) {
	out := append([]byte(red), p...)
	out = append(out, reset...)
	if _, err := r.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}

// NewRedWriter returns a RedWriter wrapping the provided io.Writer.
func NewRedWriter(w io.Writer) RedWriter { return RedWriter{w: w} }

// Printer writes to W, wrapping messages in ANSI colors only when Color is
// set so that plain output stays byte-for-byte stable.
type Printer struct {
	W     io.Writer
	Color bool
}

func (p Printer) printf(color, format string, a ...interface{}) {
	if p.Color {
		fmt.Fprint(p.W, color)
		defer fmt.Fprint(p.W, reset)
	}
	fmt.Fprintf(p.W, format, a...)
}

// Debugf prints a yellow debug message when enabled is true.
func (p Printer) Debugf(enabled bool, format string, a ...interface{}) {
	if enabled {
		p.printf(yellow, "[DEBUG] "+format, a...)
	}
}

// Greenf prints a light green message.
func (p Printer) Greenf(format string, a ...interface{}) {
	p.printf(green, format, a...)
}

// Warningf prints a bright yellow/orange warning.
func (p Printer) Warningf(format string, a ...interface{}) {
	p.printf(orange, format, a...)
}
