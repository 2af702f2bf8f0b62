package domain

// EventType names a host interaction in a replay script.
type EventType string

const (
	// EventKeys types characters at the cursor.
	EventKeys EventType = "type"
	// EventBackspace deletes Count runes before the cursor.
	EventBackspace EventType = "backspace"
	// EventSelect moves the selection to Start..End.
	EventSelect EventType = "select"
	// EventPaste replaces the whole text, as a paste over a full selection does.
	EventPaste EventType = "paste"
	// EventSet assigns Value programmatically.
	EventSet EventType = "set"
	// EventClear empties the text.
	EventClear EventType = "clear"
)

// Event is one step of a replay script
type Event struct {
	Type  EventType `yaml:"type" json:"type"`
	Text  string    `yaml:"text,omitempty" json:"text,omitempty"`
	Count int       `yaml:"count,omitempty" json:"count,omitempty"`
	Start int       `yaml:"start,omitempty" json:"start,omitempty"`
	End   int       `yaml:"end,omitempty" json:"end,omitempty"`
	Value float64   `yaml:"value,omitempty" json:"value,omitempty"`
}

// Script is a field configuration plus the events to play against it.
type Script struct {
	Name   string      `yaml:"name,omitempty" json:"name,omitempty"`
	Field  FieldConfig `yaml:"field" json:"field"`
	Events []Event     `yaml:"events" json:"events"`
}

// Step records the host-visible state after one event.
type Step struct {
	Index    int     `yaml:"index" json:"index"`
	Event    Event   `yaml:"event" json:"event"`
	Text     string  `yaml:"text" json:"text"`
	Cursor   int     `yaml:"cursor" json:"cursor"`
	Value    float64 `yaml:"value" json:"value"`
	Present  bool    `yaml:"present" json:"present"`
	Rejected bool    `yaml:"rejected,omitempty" json:"rejected,omitempty"`
}

// Transcript is the result of replaying a script.
type Transcript struct {
	Name          string      `yaml:"name,omitempty" json:"name,omitempty"`
	Field         FieldConfig `yaml:"field" json:"field"`
	MaxTextLength int         `yaml:"max_text_length" json:"max_text_length"`
	InitialText   string      `yaml:"initial_text" json:"initial_text"`
	Steps         []Step      `yaml:"steps" json:"steps"`
}

// Final returns the last step, or false for an empty transcript.
func (t *Transcript) Final() (Step, bool) {
	if t == nil || len(t.Steps) == 0 {
		return Step{}, false
	}
	return t.Steps[len(t.Steps)-1], true
}
