package logging

import (
	"fmt"
	"io"
)

// Logger is the minimal logging surface the operation handlers need.
// Every message is a single line prefixed with its severity tag.
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// LineLogger writes severity-tagged lines to a single writer, normally
// the process error stream.
type LineLogger struct {
	w io.Writer
}

func New(w io.Writer) *LineLogger {
	return &LineLogger{w: w}
}

func (l *LineLogger) Info(format string, args ...any)  { l.line("INFO", format, args...) }
func (l *LineLogger) Warn(format string, args ...any)  { l.line("WARN", format, args...) }
func (l *LineLogger) Error(format string, args ...any) { l.line("ERROR", format, args...) }

func (l *LineLogger) line(tag, format string, args ...any) {
	if l.w == nil {
		return
	}
	fmt.Fprintf(l.w, "%s: %s\n", tag, fmt.Sprintf(format, args...))
}
