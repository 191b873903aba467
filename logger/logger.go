package logger

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Logger is a named logger tagged with an instance id so that log lines from
// concurrent components of the same kind can be told apart.
type Logger struct {
	hclog.Logger
	id string
}

func NewLogger(name, id string) *Logger {
	return newLogger(name, id, os.Stderr)
}

// NewLoggerTo is NewLogger with an explicit output.
func NewLoggerTo(name, id string, w io.Writer) *Logger {
	return newLogger(name, id, w)
}

func newLogger(name, id string, w io.Writer) *Logger {
	l := hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(logCfg.Level),
		Output:     w,
		JSONFormat: logCfg.JSON,
	})
	return &Logger{
		Logger: l.With("instance", id),
		id:     id,
	}
}

func (l *Logger) ID() string { return l.id }

// Named returns a sub-logger that keeps the instance id.
func (l *Logger) Named(name string) *Logger {
	return &Logger{Logger: l.Logger.Named(name), id: l.id}
}
