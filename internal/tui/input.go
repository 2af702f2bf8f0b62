package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rpgo/decimaledit/internal/domain"
	"github.com/rpgo/decimaledit/internal/host"
	"github.com/rpgo/decimaledit/internal/mask"
)

// DecimalInput is a textinput whose text is owned by a masked decimal field.
type DecimalInput struct {
	Label string

	input   textinput.Model
	field   *mask.Field
	ctrl    *host.Controller
	focused bool
}

// NewDecimalInput builds the field for cfg and renders its initial text.
func NewDecimalInput(cfg domain.FieldConfig, logger mask.Logger) (*DecimalInput, error) {
	field, err := mask.NewField(cfg, mask.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = field.MaxTextLength()
	ti.Placeholder = field.Config().Hint

	d := &DecimalInput{
		Label: field.Config().Name,
		input: ti,
		field: field,
	}
	d.ctrl = host.NewController(field, inputHost{d}, logger)
	d.ctrl.Attach()
	return d, nil
}

// inputHost lets the controller write into the textinput. The textinput does
// not report programmatic writes, so ReplaceText delivers the echo itself.
type inputHost struct{ d *DecimalInput }

func (h inputHost) ReplaceText(text string) {
	h.d.input.SetValue(text)
	h.d.ctrl.OnTextChanged(h.d.input.Value())
}

func (h inputHost) SetCursor(offset int) { h.d.input.SetCursor(offset) }

var _ host.Host = inputHost{}

func (d *DecimalInput) Focus() tea.Cmd {
	d.focused = true
	return d.input.Focus()
}

func (d *DecimalInput) Blur() {
	d.focused = false
	d.input.Blur()
}

func (d *DecimalInput) Focused() bool { return d.focused }

// Text is what the input currently displays.
func (d *DecimalInput) Text() string { return d.input.Value() }

// Position is the caret offset in runes.
func (d *DecimalInput) Position() int { return d.input.Position() }

func (d *DecimalInput) Value() float64 { return d.field.Value() }

func (d *DecimalInput) HasValue() bool { return d.field.HasValue() }

func (d *DecimalInput) Field() *mask.Field { return d.field }

// Err is the error of the last rejected keystroke, cleared by the next accepted one.
func (d *DecimalInput) Err() error { return d.ctrl.LastError() }

func (d *DecimalInput) SetValue(v float64) {
	d.ctrl.SetValue(v)
}

// Reset clears the text as a user would, leaving the hint or zero.
func (d *DecimalInput) Reset() {
	d.input.SetValue("")
	d.ctrl.OnTextChanged("")
	d.pin()
}

func (d *DecimalInput) Update(msg tea.Msg) tea.Cmd {
	before := d.input.Value()

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)

	if after := d.input.Value(); after != before {
		d.ctrl.OnTextChanged(after)
	}
	d.pin()
	return cmd
}

// pin moves the caret back to the field's fixed position after navigation keys.
func (d *DecimalInput) pin() {
	pos := d.input.Position()
	d.ctrl.OnSelectionChanged(pos, pos, d.input.Value())
}

func (d *DecimalInput) View(width int) string {
	label := d.Label
	if d.focused {
		label = focusedLabelStyle.Render(label)
	} else {
		label = labelStyle.Render(label)
	}

	if width > 2 {
		d.input.Width = width - 2
	}

	rows := []string{label, d.input.View()}
	if err := d.Err(); err != nil {
		rows = append(rows, errorStyle.Render(fmt.Sprintf("invalid input: %v", err)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
