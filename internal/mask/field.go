package mask

import (
	"fmt"

	"github.com/rpgo/decimaledit/internal/domain"
)

// Option configures a Field.
type Option func(*Field)

// WithLogger sets the field's logger. A nil logger keeps the no-op default.
func WithLogger(l Logger) Option {
	return func(f *Field) {
		if l != nil {
			f.logger = l
		}
	}
}

// Field is a masked decimal text field: it owns its configuration, the
// current magnitude and the reentrancy guard for its own text writes.
type Field struct {
	cfg       domain.FieldConfig
	state     domain.FieldState
	text      string
	parser    *Parser
	formatter *Formatter
	logger    Logger
}

// NewField validates cfg and builds a field holding zero, or holding nothing
// when a hint is configured.
func NewField(cfg domain.FieldConfig, opts ...Option) (*Field, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid field config: %w", err)
	}
	tag, err := ParseLocale(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("invalid field config: %w", err)
	}

	f := &Field{
		cfg:       cfg,
		state:     domain.FieldState{Present: !cfg.HasHint()},
		parser:    NewParser(cfg, LocaleSymbols(tag)),
		formatter: NewFormatter(cfg, tag),
		logger:    NopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f, nil
}

// Config returns the configuration after defaults were applied.
func (f *Field) Config() domain.FieldConfig { return f.cfg }

// Value returns the current magnitude, zero when absent.
func (f *Field) Value() float64 { return f.state.Value }

// HasValue is false while the field shows its hint.
func (f *Field) HasValue() bool { return f.state.Present }

// Mode returns the reentrancy state.
func (f *Field) Mode() domain.Mode { return f.state.Mode }

// State returns a copy of the field state.
func (f *Field) State() domain.FieldState { return f.state }

// Text returns the text the field last asked its host to show.
func (f *Field) Text() string { return f.text }

// Format renders v with this field's configuration.
func (f *Field) Format(v float64) string { return f.formatter.Format(v) }

// Parse reads a magnitude from text with this field's configuration.
func (f *Field) Parse(raw string) (float64, error) { return f.parser.Parse(raw) }

// Check reports whether v would be accepted by the max value clamp.
func (f *Field) Check(v float64) error {
	if v > f.cfg.MaxValue {
		return &domain.ExceedsMaxError{Value: v, Max: f.cfg.MaxValue}
	}
	return nil
}

// InitialText is the text a host shows when the field is created. A field
// without a hint writes its zero rendering, so the echo of that write is
// suppressed like any other.
func (f *Field) InitialText() domain.Edit {
	if f.cfg.HasHint() {
		f.text = ""
		return f.edit("")
	}
	return f.rewrite(f.state.Value)
}

// ApplyRawInput handles a text change reported by the host.
//
// If the field is suppressing, the change is the echo of its own write: it is
// consumed and the edit comes back with Suppressed set. Otherwise raw is
// parsed. A parse failure keeps the value and returns the previous text for
// the host to restore, along with the error. A value above MaxValue is rolled
// back to the previous one without an error.
func (f *Field) ApplyRawInput(raw string) (domain.Edit, error) {
	if f.state.Mode == domain.ModeSuppressing {
		f.state.Mode = domain.ModeIdle
		f.text = raw
		e := f.edit(raw)
		e.Suppressed = true
		return e, nil
	}

	old := f.state.Value
	v, err := f.parser.Parse(raw)
	if err != nil {
		f.logger.Warnf("field %s: rejecting %q: %v", f.name(), raw, err)
		// the host restores the previous text; its echo is ours
		f.state.Mode = domain.ModeSuppressing
		return f.edit(f.text), err
	}

	if v == 0 && f.cfg.HasHint() {
		f.state.Value, f.state.Present = 0, false
		f.state.Mode = domain.ModeSuppressing
		f.text = ""
		return f.edit(""), nil
	}

	rejected := false
	if err := f.Check(v); err != nil {
		f.logger.Debugf("field %s: %v, keeping %v", f.name(), err, old)
		v, rejected = old, true
	}

	e := f.rewrite(v)
	e.Rejected = rejected
	return e, nil
}

// SetValue assigns v without the max value clamp and returns the formatted
// text the host must write.
func (f *Field) SetValue(v float64) domain.Edit {
	return f.rewrite(v)
}

// Clear empties the field: it shows the hint, or zero when there is none.
func (f *Field) Clear() domain.Edit {
	f.state.Mode = domain.ModeIdle
	// empty text always parses
	e, _ := f.ApplyRawInput("")
	return e
}

func (f *Field) rewrite(v float64) domain.Edit {
	f.state.Value, f.state.Present = v, true
	f.state.Mode = domain.ModeSuppressing
	f.text = f.formatter.Format(v)
	return f.edit(f.text)
}

func (f *Field) edit(text string) domain.Edit {
	cursor := 0
	if text != "" {
		cursor = f.PinnedPosition(text)
	}
	return domain.Edit{
		Text:    text,
		Cursor:  cursor,
		Value:   f.state.Value,
		Present: f.state.Present,
	}
}

func (f *Field) name() string {
	if f.cfg.Name != "" {
		return f.cfg.Name
	}
	return "<unnamed>"
}
