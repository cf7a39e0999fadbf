package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	Debug Level = iota
	Info
	Warning
	Error
)

var levelNames = map[Level]string{
	Debug:   "DEBUG",
	Info:    "INFO",
	Warning: "WARNING",
	Error:   "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel accepts the level names case-insensitively, plus "warn".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug, nil
	case "info", "":
		return Info, nil
	case "warning", "warn":
		return Warning, nil
	case "error":
		return Error, nil
	}
	return Info, fmt.Errorf("ParseLevel: unknown log level %q", s)
}

// Logger is passed into every component instead of relying on the global log
// configuration. Messages below Min are dropped.
type Logger struct {
	l   *log.Logger
	Min Level
}

func New(w io.Writer, min Level) *Logger {
	return &Logger{l: log.New(w, "", log.LstdFlags), Min: min}
}

func Stderr(min Level) *Logger {
	return New(os.Stderr, min)
}

func Discard() *Logger {
	return New(io.Discard, Error+1)
}

func (lg *Logger) Enabled(level Level) bool {
	return lg != nil && level >= lg.Min
}

func (lg *Logger) Logf(level Level, format string, args ...any) {
	if !lg.Enabled(level) {
		return
	}
	lg.l.Printf("%v: %v", level, fmt.Sprintf(format, args...))
}

func (lg *Logger) Debugf(format string, args ...any) { lg.Logf(Debug, format, args...) }
func (lg *Logger) Infof(format string, args ...any)  { lg.Logf(Info, format, args...) }
func (lg *Logger) Warnf(format string, args ...any)  { lg.Logf(Warning, format, args...) }
func (lg *Logger) Errorf(format string, args ...any) { lg.Logf(Error, format, args...) }
