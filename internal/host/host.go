// Package host connects a masked field to a text surface.
//
// A surface reports every text change, including the ones caused by its own
// ReplaceText, and every selection change. The Controller turns those
// notifications into field operations and writes the results back.
package host

import (
	"github.com/rpgo/decimaledit/internal/domain"
	"github.com/rpgo/decimaledit/internal/mask"
)

// Host is the text surface a field renders into.
type Host interface {
	ReplaceText(text string)
	SetCursor(offset int)
}

// Listener receives a surface's notifications.
type Listener interface {
	OnTextChanged(text string)
	OnSelectionChanged(start, end int, text string)
}

// Controller drives a field from host notifications.
type Controller struct {
	field  *mask.Field
	host   Host
	logger mask.Logger

	last    domain.Edit
	lastErr error
}

// NewController binds field to h. A nil logger is replaced by a no-op one.
func NewController(field *mask.Field, h Host, logger mask.Logger) *Controller {
	if logger == nil {
		logger = mask.NopLogger{}
	}
	return &Controller{field: field, host: h, logger: logger}
}

// Field returns the controlled field.
func (c *Controller) Field() *mask.Field { return c.field }

// LastEdit returns the most recent edit that was not an echo.
func (c *Controller) LastEdit() domain.Edit { return c.last }

// LastError returns the error of the most recent rejected input, if any.
func (c *Controller) LastError() error { return c.lastErr }

// Attach writes the field's initial text to the host.
func (c *Controller) Attach() {
	e := c.field.InitialText()
	if e.Text == "" {
		c.last = e
		return
	}
	c.apply(e)
}

// OnTextChanged implements Listener. Echoes of the controller's own writes
// are swallowed by the field; parse failures are logged and the previous
// text is restored, so the host never sees an error.
func (c *Controller) OnTextChanged(text string) {
	e, err := c.field.ApplyRawInput(text)
	if e.Suppressed {
		return
	}
	c.lastErr = err
	if err != nil {
		c.logger.Warnf("restoring %q after invalid input: %v", e.Text, err)
	}
	c.apply(e)
}

// OnSelectionChanged implements Listener by pinning the cursor.
func (c *Controller) OnSelectionChanged(start, end int, text string) {
	if pos, moved := c.field.OnSelectionChanged(start, end, text); moved {
		c.host.SetCursor(pos)
	}
}

// SetValue assigns v programmatically and renders it.
func (c *Controller) SetValue(v float64) {
	c.lastErr = nil
	c.apply(c.field.SetValue(v))
}

func (c *Controller) apply(e domain.Edit) {
	c.last = e
	c.host.ReplaceText(e.Text)
	c.host.SetCursor(e.Cursor)
}

var _ Listener = (*Controller)(nil)
