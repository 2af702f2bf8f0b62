package main

import (
	"fmt"
	"io"

	clog "github.com/charmbracelet/log"

	"github.com/rpgo/decimaledit/internal/mask"
)

// charmLogger adapts a charmbracelet logger to mask.Logger.
type charmLogger struct {
	l *clog.Logger
}

func newCharmLogger(w io.Writer, level clog.Level) *charmLogger {
	return &charmLogger{l: clog.NewWithOptions(w, clog.Options{
		Level:  level,
		Prefix: "decimaledit",
	})}
}

// Debugf logs a debug-level formatted message.
func (c *charmLogger) Debugf(format string, v ...any) {
	c.l.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func (c *charmLogger) Infof(format string, v ...any) {
	c.l.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func (c *charmLogger) Warnf(format string, v ...any) {
	c.l.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func (c *charmLogger) Errorf(format string, v ...any) {
	c.l.Error(fmt.Sprintf(format, v...))
}

var _ mask.Logger = (*charmLogger)(nil)
