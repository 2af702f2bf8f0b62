package domain

// Mode is the reentrancy state of a field.
type Mode int

const (
	// ModeIdle reacts to the next text change.
	ModeIdle Mode = iota
	// ModeSuppressing swallows exactly one text change: the echo of the
	// field's own programmatic write.
	ModeSuppressing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeSuppressing:
		return "suppressing"
	default:
		return "unknown"
	}
}

// FieldState is the mutable part of a field
type FieldState struct {
	Value float64 `json:"value" yaml:"value"`
	// Present is false while the field shows its hint instead of a number
	Present bool `json:"present" yaml:"present"`
	Mode    Mode `json:"mode" yaml:"mode"`
}

// Edit is what a field hands back to its host after a change: the text to
// write and where the cursor goes.
type Edit struct {
	Text    string  `json:"text" yaml:"text"`
	Cursor  int     `json:"cursor" yaml:"cursor"`
	Value   float64 `json:"value" yaml:"value"`
	Present bool    `json:"present" yaml:"present"`
	// Rejected is set when the input exceeded the max value and the previous
	// value was kept.
	Rejected bool `json:"rejected,omitempty" yaml:"rejected,omitempty"`
	// Suppressed is set when the change was the echo of a programmatic write.
	// The host must not apply Text in that case.
	Suppressed bool `json:"suppressed,omitempty" yaml:"suppressed,omitempty"`
}
