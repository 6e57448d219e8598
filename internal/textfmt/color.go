package textfmt

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI color codes used by the report graph.
const (
	ColorBlue  = "\x1b[34m"
	ColorRed   = "\x1b[31m"
	ColorReset = "\x1b[0m"
)

// ColorMode selects when output is colorized.
type ColorMode int

// Color modes.
const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// UseColor reports whether output to w should be colorized.
// NO_COLOR always wins; auto mode colors only terminals.
func UseColor(w io.Writer, mode ColorMode) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// Paint wraps s in an ANSI color when enabled and s is not empty.
func Paint(s, color string, enabled bool) string {
	if !enabled || s == "" {
		return s
	}
	return color + s + ColorReset
}
