package output

import (
	"fmt"
	"io"
	"strings"
)

// Formatter styles progress messages written by the framework steps.
type Formatter interface {
	Info(msg string) string
	Success(msg string) string
	Failure(msg string) string
	Command(cmd string) string
}

// StyledFormatter renders messages with a Styles set.
type StyledFormatter struct {
	styles *Styles
}

// NewFormatter returns a formatter using colors when color is true.
func NewFormatter(color bool) *StyledFormatter {
	if color {
		return &StyledFormatter{styles: GetStyles()}
	}
	return &StyledFormatter{styles: NoColorStyles()}
}

// Info renders an informational message.
func (f *StyledFormatter) Info(msg string) string { return f.styles.Heading.Render(msg) }

// Success renders a completion message.
func (f *StyledFormatter) Success(msg string) string { return f.styles.Success.Render(msg) }

// Failure renders an error message.
func (f *StyledFormatter) Failure(msg string) string { return f.styles.Error.Render(msg) }

// Command renders a command line.
func (f *StyledFormatter) Command(cmd string) string {
	return f.styles.Muted.Render("$ ") + f.styles.Noun.Render(cmd)
}

// LineLogger writes one message per line.
type LineLogger func(msg string)

// WriterLogger returns a LineLogger writing to w.
func WriterLogger(w io.Writer) LineLogger {
	return func(msg string) {
		fmt.Fprintln(w, strings.TrimRight(msg, "\n"))
	}
}

// InfoLogger returns a LineLogger that forwards to the package logger at
// info level.
func InfoLogger() LineLogger {
	return func(msg string) {
		Info(msg)
	}
}
